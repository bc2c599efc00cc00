package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pet-care-companion/internal/apiclient"
)

func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("query", "q", "", "text to search in title/description")
	f.String("pet", "", "exact pet name")
	f.StringSlice("tags", nil, "tags (any of them matches)")
	f.String("from", "", "min date YYYY-MM-DD")
	f.String("to", "", "max date YYYY-MM-DD")
}

func readFilter(cmd *cobra.Command) apiclient.Filter {
	f := cmd.Flags()
	q, _ := f.GetString("query")
	pet, _ := f.GetString("pet")
	tags, _ := f.GetStringSlice("tags")
	from, _ := f.GetString("from")
	to, _ := f.GetString("to")
	return apiclient.Filter{Query: q, Pet: pet, Tags: tags, From: from, To: to}
}

func addTaskFormFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("title", "", "task title")
	f.String("description", "", "task description")
	f.String("date", "", "date YYYY-MM-DD")
	f.String("time", "", "free-form time, e.g. 09:00")
	f.String("pet", "", "pet name")
	f.StringSlice("tags", nil, "tags")
}

// applyTaskForm pisa en base solo los flags que el usuario pasó.
func applyTaskForm(cmd *cobra.Command, base apiclient.SaveTask) apiclient.SaveTask {
	f := cmd.Flags()
	if f.Changed("title") {
		base.Title, _ = f.GetString("title")
	}
	if f.Changed("description") {
		base.Description, _ = f.GetString("description")
	}
	if f.Changed("date") {
		base.Date, _ = f.GetString("date")
	}
	if f.Changed("time") {
		base.Time, _ = f.GetString("time")
	}
	if f.Changed("pet") {
		base.Pet, _ = f.GetString("pet")
	}
	if f.Changed("tags") {
		base.Tags, _ = f.GetStringSlice("tags")
	}
	return base
}

func newTasksCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Care tasks grouped by day",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks for today, tomorrow and upcoming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			b, err := c.ListTasks(a.ctx(cmd), readFilter(cmd))
			if err != nil {
				return err
			}
			printBuckets(a.out, b)
			return nil
		},
	}
	addFilterFlags(list)

	show := &cobra.Command{
		Use:   "show TASK_ID",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			t, err := c.GetTask(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			printTask(a.out, t)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a task (title, date and pet are required)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			t, err := c.CreateTask(a.ctx(cmd), applyTaskForm(cmd, apiclient.SaveTask{}))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created task %s\n", t.ID)
			return nil
		},
	}
	addTaskFormFlags(add)

	edit := &cobra.Command{
		Use:   "edit TASK_ID",
		Short: "Edit a task; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			cur, err := c.GetTask(ctx, args[0])
			if err != nil {
				return err
			}
			in := applyTaskForm(cmd, apiclient.SaveTask{
				Title:       cur.Title,
				Description: cur.Description,
				Date:        cur.Date,
				Time:        cur.Time,
				Pet:         cur.Pet,
				Tags:        cur.Tags,
			})
			t, err := c.UpdateTask(ctx, args[0], in)
			if err != nil {
				return err
			}
			printTask(a.out, t)
			return nil
		},
	}
	addTaskFormFlags(edit)

	toggle := &cobra.Command{
		Use:   "toggle TASK_ID",
		Short: "Flip the completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			t, err := c.ToggleTask(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s\n", check(t.Completed), t.Title)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete TASK_ID",
		Short: "Request deletion; it only happens after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			t, err := c.StageTaskDelete(ctx, args[0])
			if err != nil {
				return err
			}
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprintf(a.out, "delete %q is pending; run `petcarectl confirm yes %s` or `petcarectl confirm no %s`\n",
					t.Title, apiclient.KindTaskDelete, apiclient.KindTaskDelete)
				return nil
			}
			if _, err := c.Confirm(ctx, apiclient.KindTaskDelete); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted task %s\n", t.ID)
			return nil
		},
	}
	del.Flags().BoolP("yes", "y", false, "confirm right away")

	options := &cobra.Command{
		Use:   "options",
		Short: "Pets and suggested tags for the task form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			o, err := c.TaskOptions(a.ctx(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "pets: %s\ntags: %s\n", strings.Join(o.Pets, ", "), strings.Join(o.Tags, ", "))
			return nil
		},
	}

	cmd.AddCommand(list, show, add, edit, toggle, del, options)
	return cmd
}

func newHistoryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "All tasks, newest first, with Done/Missed/Upcoming status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			items, err := c.History(a.ctx(cmd), readFilter(cmd))
			if err != nil {
				return err
			}
			printHistory(a.out, items)
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func newCalendarCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Month grid; days with tasks are marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			month, _ := cmd.Flags().GetString("month")
			selected, _ := cmd.Flags().GetString("selected")

			ctx := a.ctx(cmd)
			cal, err := c.Calendar(ctx, month, selected)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, renderCalendar(cal))

			items, err := c.TasksOnDay(ctx, cal.Selected)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			printTasks(a.out, cal.Selected, items)
			return nil
		},
	}
	cmd.Flags().String("month", "", "month YYYY-MM (default current)")
	cmd.Flags().String("selected", "", "selected day YYYY-MM-DD (default today)")

	day := &cobra.Command{
		Use:   "day DATE",
		Short: "Tasks on one day (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.api()
			if err != nil {
				return err
			}
			items, err := c.TasksOnDay(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			printTasks(a.out, args[0], items)
			return nil
		},
	}

	cmd.AddCommand(day)
	return cmd
}
