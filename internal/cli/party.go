package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

// newNewCommand creates the new command for starting a party.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Date     string
		Location string
		Budget   float64
		Age      int
		Force    bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new party",
		Long: `Start a new party for a celebrant.

The new party has no guests, gifts or tasks. An existing party is kept
unless --force is given.

Examples:
  party new --name Anna --age 30 --date 2024-06-01 --location Warsaw --budget 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.NewPartyUseCase().Execute(cmd.Context(), usecase.NewPartyInput{
				Name:     opts.Name,
				Age:      opts.Age,
				Date:     opts.Date,
				Location: opts.Location,
				Budget:   opts.Budget,
				Force:    opts.Force,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Party for %s created.\n", out.Party.Celebrant)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Celebrant name (required)")
	cmd.Flags().IntVar(&opts.Age, "age", 0, "Celebrant age")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Party date")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Party location")
	cmd.Flags().Float64Var(&opts.Budget, "budget", 0, "Gift budget")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Replace the current party")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// newLoadCommand creates the load command.
func newLoadCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load a party document",
		Long: `Replace the current party with the one stored in a party document.

The format follows the file extension (.json, .yaml, .yml). Gifts are not
part of party documents, so the loaded party has none. Tasks whose
responsible guest is missing from the document are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.LoadPartyUseCase().Execute(cmd.Context(), usecase.LoadPartyInput{Path: args[0]})
			if err != nil {
				return err
			}

			if wantJSON(flags) {
				return printJSON(cmd.OutOrStdout(), struct {
					File    string         `json:"file"`
					Dropped int            `json:"droppedTasks"`
					Summary domain.Summary `json:"party"`
				}{args[0], out.Dropped, out.Party.Summary()})
			}

			if out.Dropped > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %d task(s) without a matching guest\n", out.Dropped)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Data loaded from '%s'.\n", args[0])
			return nil
		},
	}
}

// newSaveCommand creates the save command.
func newSaveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Save the party to a party document",
		Long: `Write the current party to a party document.

The format follows the file extension (.json, .yaml, .yml); other names
use [document] format from the configuration. Gifts are not saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.SavePartyUseCase().Execute(cmd.Context(), usecase.SavePartyInput{Path: args[0]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Data saved to '%s'.\n", args[0])
			return nil
		},
	}
}

// newSummaryCommand creates the summary command.
func newSummaryCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the party summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowSummaryUseCase().Execute(cmd.Context(), usecase.ShowSummaryInput{})
			if err != nil {
				return err
			}
			if wantJSON(flags) {
				return printJSON(cmd.OutOrStdout(), out.Summary)
			}
			printSummary(cmd.OutOrStdout(), out.Summary, display(c))
			return nil
		},
	}
}

func printSummary(w io.Writer, s domain.Summary, d domain.DisplayConfig) {
	_, _ = fmt.Fprintln(w, "=== PARTY SUMMARY ===")
	_, _ = fmt.Fprintf(w, "Celebrant: %s (%d years old)\n", s.Celebrant.Name, s.Celebrant.Age)
	_, _ = fmt.Fprintf(w, "Date: %s\n", s.Date)
	_, _ = fmt.Fprintf(w, "Location: %s\n", s.Location)
	_, _ = fmt.Fprintf(w, "Budget: %s\n", d.Money(s.Budget))

	_, _ = fmt.Fprintln(w, "\nGuest List:")
	if len(s.Guests) == 0 {
		_, _ = fmt.Fprintln(w, "No guests added.")
	} else {
		renderGuests(w, s.Guests)
	}

	_, _ = fmt.Fprintln(w, "\nTask List:")
	if len(s.Tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks added.")
	} else {
		renderTasks(w, s.Tasks)
	}

	_, _ = fmt.Fprintf(w, "\nTotal value of all gifts: %s\n", d.Money(s.TotalGiftCost))
	_, _ = fmt.Fprintf(w, "Remaining budget: %s\n", d.Money(s.RemainingBudget))
}
