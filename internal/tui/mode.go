// Package tui provides the interactive terminal menu for partyplan.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeStart   Mode = iota // No party yet: create or load one
	ModeNormal              // Tab navigation
	ModeForm                // Form input
	ModeConfirm             // Confirmation dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeNormal:
		return "normal"
	case ModeForm:
		return "form"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeForm
}

// Tab is one of the menu tabs.
type Tab int

const (
	TabGuests Tab = iota
	TabGifts
	TabTasks
	TabSummary
	tabCount
)

// String returns the tab title.
func (t Tab) String() string {
	switch t {
	case TabGuests:
		return "Guests"
	case TabGifts:
		return "Gifts"
	case TabTasks:
		return "Tasks"
	case TabSummary:
		return "Summary"
	default:
		return "unknown"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone        ConfirmAction = iota
	ConfirmRemoveGuest               // Remove the selected guest
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmRemoveGuest:
		return "remove guest"
	}
	return ""
}
