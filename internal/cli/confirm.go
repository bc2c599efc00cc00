package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-care-companion/internal/apiclient"
)

var confirmKinds = []string{apiclient.KindTaskDelete, apiclient.KindReportMarkFound}

func printConfirmation(a *app, c apiclient.Confirmation) {
	fmt.Fprintf(a.out, "%s: %s", c.Kind, c.State)
	if id, ok := c.Candidate["id"]; ok {
		title, _ := c.Candidate["title"].(string)
		fmt.Fprintf(a.out, " (%v %s)", id, title)
	}
	fmt.Fprintln(a.out)
}

func newConfirmCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "confirm",
		Short:     "Pending destructive actions (task-delete, report-mark-found)",
		ValidArgs: confirmKinds,
	}

	status := &cobra.Command{
		Use:       "status [KIND]",
		Short:     "Show what is pending",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: confirmKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			kinds := confirmKinds
			if len(args) == 1 {
				kinds = args
			}
			for _, k := range kinds {
				p, err := c.Pending(a.ctx(cmd), k)
				if err != nil {
					return err
				}
				printConfirmation(a, p)
			}
			return nil
		},
	}

	yes := &cobra.Command{
		Use:       "yes KIND",
		Short:     "Apply the pending action",
		Args:      cobra.ExactArgs(1),
		ValidArgs: confirmKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			res, err := c.Confirm(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			printConfirmation(a, res)
			return nil
		},
	}

	no := &cobra.Command{
		Use:       "no KIND",
		Short:     "Discard the pending action",
		Args:      cobra.ExactArgs(1),
		ValidArgs: confirmKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			res, err := c.Cancel(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			printConfirmation(a, res)
			return nil
		},
	}

	cmd.AddCommand(status, yes, no)
	return cmd
}
