package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-care-companion/internal/apiclient"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Your profile; edits go to a draft until submitted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			p, err := c.Profile(a.ctx(cmd))
			if err != nil {
				return err
			}
			printProfile(a.out, p)
			return nil
		},
	}

	draft := &cobra.Command{
		Use:   "draft",
		Short: "Show the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			p, err := c.ProfileDraft(a.ctx(cmd))
			if err != nil {
				return err
			}
			printProfile(a.out, p)
			return nil
		},
	}

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Change draft fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			var patch apiclient.ProfilePatch
			for flag, dst := range map[string]**string{
				"name":      &patch.Name,
				"email":     &patch.Email,
				"phone":     &patch.Phone,
				"image-url": &patch.ImageURL,
			} {
				if f.Changed(flag) {
					v, _ := f.GetString(flag)
					*dst = &v
				}
			}

			p, err := c.EditProfileDraft(a.ctx(cmd), patch)
			if err != nil {
				return err
			}
			printProfile(a.out, p)
			fmt.Fprintln(a.out, mutedStyle.Render("draft saved; run `petcarectl profile submit` to apply"))
			return nil
		},
	}
	edit.Flags().String("name", "", "full name")
	edit.Flags().String("email", "", "email")
	edit.Flags().String("phone", "", "phone")
	edit.Flags().String("image-url", "", "picture URL")

	submit := &cobra.Command{
		Use:   "submit",
		Short: "Replace the displayed profile with the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			p, err := c.SubmitProfileDraft(a.ctx(cmd))
			if err != nil {
				return err
			}
			printProfile(a.out, p)
			return nil
		},
	}

	discard := &cobra.Command{
		Use:   "discard",
		Short: "Throw the draft away",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			if err := c.DiscardProfileDraft(a.ctx(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "draft discarded")
			return nil
		},
	}

	cmd.AddCommand(draft, edit, submit, discard)
	return cmd
}
