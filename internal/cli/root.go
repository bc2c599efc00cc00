// Package cli implementa petcarectl, el cliente de terminal de la API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pet-care-companion/internal/apiclient"
	"pet-care-companion/internal/platform/logger"
)

const (
	defaultAPI     = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
)

// app es el estado compartido por los subcomandos.
type app struct {
	v   *viper.Viper
	out io.Writer

	client *apiclient.Client
}

// NewRootCommand arma petcarectl. Prioridad de configuración:
// flags > PETCARECTL_* > ~/.petcarectl.yaml (o --config).
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "petcarectl",
		Short:         "Terminal client for the pet care companion API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default $HOME/.petcarectl.yaml)")
	pf.StringP("api", "a", defaultAPI, "API base URL")
	pf.Duration("timeout", defaultTimeout, "request timeout")
	pf.String("log-level", "warn", "debug|info|warn|error")

	_ = a.v.BindPFlag("config", pf.Lookup("config"))
	_ = a.v.BindPFlag("api", pf.Lookup("api"))
	_ = a.v.BindPFlag("timeout", pf.Lookup("timeout"))
	_ = a.v.BindPFlag("log_level", pf.Lookup("log-level"))

	root.AddCommand(
		newTasksCommand(a),
		newHistoryCommand(a),
		newCalendarCommand(a),
		newReportsCommand(a),
		newPetsCommand(a),
		newProfileCommand(a),
		newConfirmCommand(a),
		newAccountCommand(a),
	)
	return root
}

func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("PETCARECTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName(".petcarectl") // .yaml implícito
		a.v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(filepath.Clean("."))
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// api construye el cliente la primera vez que un comando lo necesita.
func (a *app) api() (*apiclient.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(a.v.GetString("log_level")),
		Format: logger.FormatText,
		App:    "petcarectl",
		Out:    os.Stderr,
	})

	c, err := apiclient.New(a.v.GetString("api"), a.v.GetDuration("timeout"), log)
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Execute corre petcarectl con os.Args.
func Execute() int {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
