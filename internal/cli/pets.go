package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-care-companion/internal/apiclient"
)

func addPetFormFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "pet name")
	f.String("type", "", "Dog | Cat | Bird | Fish | Other")
	f.String("breed", "", "breed")
	f.String("birth-date", "", "birth date dd/mm/yyyy")
	f.String("image-url", "", "picture URL")
}

func applyPetForm(cmd *cobra.Command, base apiclient.SavePet) apiclient.SavePet {
	f := cmd.Flags()
	if f.Changed("name") {
		base.Name, _ = f.GetString("name")
	}
	if f.Changed("type") {
		base.Type, _ = f.GetString("type")
	}
	if f.Changed("breed") {
		base.Breed, _ = f.GetString("breed")
	}
	if f.Changed("birth-date") {
		base.BirthDate, _ = f.GetString("birth-date")
	}
	if f.Changed("image-url") {
		base.ImageURL, _ = f.GetString("image-url")
	}
	return base
}

func newPetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Pets in your profile",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			items, err := c.ListPets(a.ctx(cmd))
			if err != nil {
				return err
			}
			printPets(a.out, items)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			p, err := c.CreatePet(a.ctx(cmd), applyPetForm(cmd, apiclient.SavePet{}))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created pet %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}
	addPetFormFlags(add)

	edit := &cobra.Command{
		Use:   "edit PET_ID",
		Short: "Edit a pet; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			all, err := c.ListPets(ctx)
			if err != nil {
				return err
			}
			var cur *apiclient.Pet
			for i := range all {
				if all[i].ID == args[0] {
					cur = &all[i]
					break
				}
			}
			if cur == nil {
				return fmt.Errorf("pet %s not found", args[0])
			}

			p, err := c.UpdatePet(ctx, cur.ID, applyPetForm(cmd, apiclient.SavePet{
				Name:      cur.Name,
				Type:      cur.Type,
				Breed:     cur.Breed,
				BirthDate: cur.BirthDate,
				ImageURL:  cur.ImageURL,
			}))
			if err != nil {
				return err
			}
			printPets(a.out, []apiclient.Pet{p})
			return nil
		},
	}
	addPetFormFlags(edit)

	cmd.AddCommand(list, add, edit)
	return cmd
}
