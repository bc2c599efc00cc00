package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-care-companion/internal/apiclient"
)

func newReportsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"alerts"},
		Short:   "Missing/found pet alerts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List alerts (scope: mine, community or all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			scope, _ := cmd.Flags().GetString("scope")
			items, err := c.ListReports(a.ctx(cmd), scope, readFilter(cmd))
			if err != nil {
				return err
			}
			printReports(a.out, items)
			return nil
		},
	}
	list.Flags().String("scope", "all", "mine | community | all")
	addFilterFlags(list)

	show := &cobra.Command{
		Use:   "show REPORT_ID",
		Short: "Show an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			r, err := c.GetReport(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			printReport(a.out, r)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Report one of your pets as missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			in := apiclient.CreateReport{}
			in.Title, _ = f.GetString("title")
			in.PetID, _ = f.GetString("pet-id")
			in.Description, _ = f.GetString("description")
			in.Location, _ = f.GetString("location")
			in.Tags, _ = f.GetStringSlice("tags")

			r, err := c.CreateReport(a.ctx(cmd), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created report %s for %s\n", r.ID, r.PetName)
			return nil
		},
	}
	add.Flags().String("title", "", "alert title")
	add.Flags().String("pet-id", "", "id of one of your pets (see `petcarectl pets list`)")
	add.Flags().String("description", "", "where and when it was last seen")
	add.Flags().String("location", "", "location (server default if empty)")
	add.Flags().StringSlice("tags", nil, "tags")

	upload := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a picture (returns the placeholder reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			url, err := c.UploadImage(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, url)
			return nil
		},
	}

	found := &cobra.Command{
		Use:   "mark-found REPORT_ID",
		Short: "Request marking your alert as found; it only happens after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			r, err := c.StageMarkFound(ctx, args[0])
			if err != nil {
				return err
			}
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprintf(a.out, "marking %q as found is pending; run `petcarectl confirm yes %s` or `petcarectl confirm no %s`\n",
					r.Title, apiclient.KindReportMarkFound, apiclient.KindReportMarkFound)
				return nil
			}
			if _, err := c.Confirm(ctx, apiclient.KindReportMarkFound); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "report %s marked as found\n", r.ID)
			return nil
		},
	}
	found.Flags().BoolP("yes", "y", false, "confirm right away")

	cmd.AddCommand(list, show, add, upload, found)
	return cmd
}
