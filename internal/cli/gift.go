package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

const personRefHelp = `People are referenced as 'celebrant' (or 'c') or by their number
in 'party guest list'.`

// newGiftCommand creates the gift command.
func newGiftCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gift",
		Short: "Record and list gifts",
		Long:  "Record and list gifts.\n\n" + personRefHelp,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newGiftAddCommand(c))
	cmd.AddCommand(newGiftListCommand(c, flags))

	return cmd
}

func newGiftAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name  string
		From  string
		To    string
		Price float64
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a gift",
		Long: `Record a gift given by one participant to another.

` + personRefHelp + `

Examples:
  # Bob (guest 1) gives the celebrant a book
  party gift add --name Book --price 20 --from 1 --to celebrant`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.AddGiftUseCase().Execute(cmd.Context(), usecase.AddGiftInput{
				Name:      opts.Name,
				Price:     opts.Price,
				Giver:     opts.From,
				Recipient: opts.To,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Gift added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Gift name (required)")
	cmd.Flags().Float64Var(&opts.Price, "price", 0, "Gift price")
	cmd.Flags().StringVar(&opts.From, "from", "", "Giver (required)")
	cmd.Flags().StringVar(&opts.To, "to", usecase.CelebrantRef, "Recipient")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newGiftListCommand(c *app.Container, flags *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "list [person]",
		Aliases: []string{"ls"},
		Short:   "List the gifts a person received",
		Long:    "List the gifts a person received (default: the celebrant).\n\n" + personRefHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref string
			if len(args) == 1 {
				ref = args[0]
			}

			out, err := c.ListGiftsUseCase().Execute(cmd.Context(), usecase.ListGiftsInput{Person: ref})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if wantJSON(flags) {
				return printJSON(w, struct {
					Person domain.PersonInfo `json:"person"`
					Gifts  []domain.GiftLine `json:"gifts"`
					Total  float64           `json:"total"`
				}{out.Person.Info(), out.Gifts, out.Total})
			}

			_, _ = fmt.Fprintf(w, "Gifts received by %s:\n", out.Person.Name)
			if len(out.Gifts) == 0 {
				_, _ = fmt.Fprintln(w, "No gifts.")
				return nil
			}
			renderGifts(w, out.Gifts, out.Total, display(c))
			return nil
		},
	}
}
