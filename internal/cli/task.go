package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

// newTaskCommand creates the task command.
func newTaskCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage preparation tasks",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newTaskAddCommand(c))
	cmd.AddCommand(newTaskDoneCommand(c))
	cmd.AddCommand(newTaskListCommand(c, flags))

	return cmd
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Deadline    string
		Assign      int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a preparation task assigned to a guest.

The guest is given by their number in 'party guest list'.

Examples:
  party task add --desc "Buy cake" --deadline Friday --assign 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Description: opts.Description,
				Deadline:    opts.Deadline,
				Responsible: opts.Assign,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' added.\n", out.Task.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "desc", "", "Task description (required)")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "Deadline")
	cmd.Flags().IntVar(&opts.Assign, "assign", 0, "Number of the responsible guest (required)")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("assign")

	return cmd
}

func newTaskDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber("task", args[0])
			if err != nil {
				return err
			}

			out, err := c.MarkTaskDoneUseCase().Execute(cmd.Context(), usecase.MarkTaskDoneInput{Number: n})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' marked as done.\n", out.Task.Description)
			return nil
		},
	}
}

func newTaskListCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tasks := taskInfos(out.Tasks)
			if wantJSON(flags) {
				return printJSON(w, tasks)
			}

			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks added.")
				return nil
			}
			renderTasks(w, tasks)
			return nil
		},
	}
}
