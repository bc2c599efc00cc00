package main

import (
	"os"

	"pet-care-companion/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
