package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account forms (validation only, nobody is signed in)",
	}

	validate := &cobra.Command{
		Use:       "validate FORM",
		Short:     "Check sign-in, register or forgot-password fields",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sign-in", "register", "forgot-password"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			email, _ := f.GetString("email")
			password, _ := f.GetString("password")
			confirm, _ := f.GetString("confirm-password")

			res, err := c.ValidateAccount(a.ctx(cmd), args[0], email, password, confirm)
			if err != nil {
				return err
			}
			if res.Valid {
				fmt.Fprintln(a.out, "ok")
				return nil
			}
			for _, e := range res.Errors {
				fmt.Fprintf(a.out, "%s: %s\n", e.Field, e.Message)
			}
			return fmt.Errorf("%d invalid field(s)", len(res.Errors))
		},
	}
	validate.Flags().String("email", "", "email")
	validate.Flags().String("password", "", "password")
	validate.Flags().String("confirm-password", "", "password again (register)")

	cmd.AddCommand(validate)
	return cmd
}
