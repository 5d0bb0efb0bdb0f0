package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

// newGuestCommand creates the guest command.
func newGuestCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Manage the guest list",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newGuestAddCommand(c))
	cmd.AddCommand(newGuestRmCommand(c))
	cmd.AddCommand(newGuestListCommand(c, flags))

	return cmd
}

func newGuestAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name string
		Age  int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a guest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.AddGuestUseCase().Execute(cmd.Context(), usecase.AddGuestInput{
				Name: opts.Name,
				Age:  opts.Age,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Added {
				_, _ = fmt.Fprintf(w, "%s is already on the guest list.\n", out.Guest.Name)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Guest '%s' added.\n", out.Guest.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Guest name (required)")
	cmd.Flags().IntVar(&opts.Age, "age", 0, "Guest age")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGuestRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"remove"},
		Short:   "Remove a guest",
		Long: `Remove the guest at the given position of 'party guest list'.

Tasks assigned to the guest stay on the task list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber("guest", args[0])
			if err != nil {
				return err
			}

			out, err := c.RemoveGuestUseCase().Execute(cmd.Context(), usecase.RemoveGuestInput{Number: n})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Guest '%s' removed.\n", out.Guest.Name)
			return nil
		},
	}
}

func newGuestListCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List guests",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListGuestsUseCase().Execute(cmd.Context(), usecase.ListGuestsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			guests := personInfos(out.Guests)
			if wantJSON(flags) {
				return printJSON(w, struct {
					Celebrant domain.PersonInfo   `json:"celebrant"`
					Guests    []domain.PersonInfo `json:"guests"`
				}{out.Celebrant.Info(), guests})
			}

			if len(guests) == 0 {
				_, _ = fmt.Fprintln(w, "No guests added.")
				return nil
			}
			renderGuests(w, guests)
			return nil
		},
	}
}
