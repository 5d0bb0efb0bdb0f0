package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/tui"
)

// launchMenuFunc is a function variable for launching the menu, allowing it to be mocked in tests.
var launchMenuFunc = launchMenu

// newMenuCommand creates the menu command for launching the interactive menu.
// Running `party` without arguments does the same.
func newMenuCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Long:  `Open the interactive terminal menu for planning the party.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchMenuFunc(c)
		},
	}
}

func launchMenu(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
