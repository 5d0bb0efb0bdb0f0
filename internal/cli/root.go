// Package cli provides the command-line interface for partyplan.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
)

// Command group IDs.
const (
	groupParty = "party"
	groupPlan  = "plan"
	groupSetup = "setup"
)

// jsonKey is the viper key bound to the persistent --json flag.
const jsonKey = "json"

// NewRootCommand creates the root command for partyplan.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	flags := viper.New()

	root := &cobra.Command{
		Use:   "party",
		Short: "Birthday party planner",
		Long: `partyplan keeps track of a birthday party: the celebrant, the guest list,
the gifts everyone receives and the preparation tasks.

The current party lives in the .partyplan directory of the workspace and is
kept between invocations. Use 'party save' and 'party load' to exchange it as
a JSON or YAML party document.

Run 'party' without arguments to open the interactive menu.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchMenuFunc(c)
		},
	}

	root.PersistentFlags().Bool(jsonKey, false, "Output JSON instead of tables")
	_ = flags.BindPFlag(jsonKey, root.PersistentFlags().Lookup(jsonKey))

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupParty, Title: "Party Commands:"},
		&cobra.Group{ID: groupPlan, Title: "Planning Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Party commands
	newCmd := newNewCommand(c)
	newCmd.GroupID = groupParty

	loadCmd := newLoadCommand(c, flags)
	loadCmd.GroupID = groupParty

	saveCmd := newSaveCommand(c)
	saveCmd.GroupID = groupParty

	summaryCmd := newSummaryCommand(c, flags)
	summaryCmd.GroupID = groupParty

	menuCmd := newMenuCommand(c)
	menuCmd.GroupID = groupParty

	// Planning commands
	guestCmd := newGuestCommand(c, flags)
	guestCmd.GroupID = groupPlan

	giftCmd := newGiftCommand(c, flags)
	giftCmd.GroupID = groupPlan

	taskCmd := newTaskCommand(c, flags)
	taskCmd.GroupID = groupPlan

	// Setup commands
	configCmd := newConfigCommand(c, flags)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		newCmd,
		loadCmd,
		saveCmd,
		summaryCmd,
		menuCmd,
		guestCmd,
		giftCmd,
		taskCmd,
		configCmd,
	)

	return root
}
