package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

// Model is the main bubbletea model for the menu.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error
	form      *form
	celebrant *domain.Person

	// State (slices - contain pointers)
	guests []*domain.Person
	tasks  []*domain.Task
	notice string

	// Components (structs with pointers)
	keys    KeyMap
	styles  Styles
	help    help.Model
	summary domain.Summary
	display domain.DisplayConfig

	// Numeric state (smaller types last)
	mode          Mode
	tab           Tab
	confirmAction ConfirmAction
	cursor        int
	width         int
	height        int
}

// New creates a new menu Model with the given container.
func New(c *app.Container) *Model {
	display := domain.NewDefaultConfig().Display
	if c != nil && c.AppConfig != nil {
		display = c.AppConfig.Display
	}
	return &Model{
		container: c,
		mode:      ModeStart,
		tab:       TabGuests,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		display:   display,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadParty()
}

// hasParty reports whether a party has been loaded.
func (m *Model) hasParty() bool {
	return m.celebrant != nil
}

// baseMode is the mode forms and dialogs return to.
func (m *Model) baseMode() Mode {
	if m.hasParty() {
		return ModeNormal
	}
	return ModeStart
}

// loadParty returns a command that reads the current party from the session.
func (m *Model) loadParty() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		ctx := context.Background()
		guests, err := c.ListGuestsUseCase().Execute(ctx, usecase.ListGuestsInput{})
		if errors.Is(err, domain.ErrNoParty) {
			return MsgNoParty{}
		}
		if err != nil {
			return MsgError{Err: err}
		}
		tasks, err := c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		summary, err := c.ShowSummaryUseCase().Execute(ctx, usecase.ShowSummaryInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgPartyLoaded{
			Celebrant: guests.Celebrant,
			Guests:    guests.Guests,
			Tasks:     tasks.Tasks,
			Summary:   summary.Summary,
		}
	}
}

// action wraps a use case call into a command reporting MsgActionDone or MsgError.
func action(run func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		notice, err := run(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgActionDone{Notice: notice}
	}
}

// removeGuest returns a command removing the guest at the 1-based position.
func (m *Model) removeGuest(number int) tea.Cmd {
	c := m.container
	return action(func(ctx context.Context) (string, error) {
		out, err := c.RemoveGuestUseCase().Execute(ctx, usecase.RemoveGuestInput{Number: number})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Guest '%s' removed.", out.Guest.Name), nil
	})
}

// markTaskDone returns a command finishing the task at the 1-based position.
func (m *Model) markTaskDone(number int) tea.Cmd {
	c := m.container
	return action(func(ctx context.Context) (string, error) {
		out, err := c.MarkTaskDoneUseCase().Execute(ctx, usecase.MarkTaskDoneInput{Number: number})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Task '%s' marked as done.", out.Task.Description), nil
	})
}

// submit validates the form and returns the command running its use case.
func (m *Model) submit(f *form) (tea.Cmd, error) {
	c := m.container
	switch f.kind {
	case formNewParty:
		age, err := f.intValue(1)
		if err != nil {
			return nil, err
		}
		budget, err := f.floatValue(4)
		if err != nil {
			return nil, err
		}
		in := usecase.NewPartyInput{
			Name:     f.value(0),
			Age:      age,
			Date:     f.value(2),
			Location: f.value(3),
			Budget:   budget,
			Force:    true,
		}
		return action(func(ctx context.Context) (string, error) {
			out, err := c.NewPartyUseCase().Execute(ctx, in)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Party for %s created.", out.Party.Celebrant), nil
		}), nil

	case formGuest:
		age, err := f.intValue(1)
		if err != nil {
			return nil, err
		}
		in := usecase.AddGuestInput{Name: f.value(0), Age: age}
		return action(func(ctx context.Context) (string, error) {
			out, err := c.AddGuestUseCase().Execute(ctx, in)
			if err != nil {
				return "", err
			}
			if !out.Added {
				return fmt.Sprintf("%s is already on the guest list.", out.Guest.Name), nil
			}
			return fmt.Sprintf("Guest '%s' added.", out.Guest.Name), nil
		}), nil

	case formGift:
		price, err := f.floatValue(1)
		if err != nil {
			return nil, err
		}
		in := usecase.AddGiftInput{Name: f.value(0), Price: price, Giver: f.value(2), Recipient: f.value(3)}
		return action(func(ctx context.Context) (string, error) {
			if _, err := c.AddGiftUseCase().Execute(ctx, in); err != nil {
				return "", err
			}
			return "Gift added.", nil
		}), nil

	case formTask:
		responsible, err := f.intValue(2)
		if err != nil {
			return nil, err
		}
		in := usecase.AddTaskInput{Description: f.value(0), Deadline: f.value(1), Responsible: responsible}
		return action(func(ctx context.Context) (string, error) {
			out, err := c.AddTaskUseCase().Execute(ctx, in)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Task '%s' added.", out.Task.Description), nil
		}), nil

	case formSave:
		path := documentPath(f.value(0))
		return action(func(ctx context.Context) (string, error) {
			if _, err := c.SavePartyUseCase().Execute(ctx, usecase.SavePartyInput{Path: path}); err != nil {
				return "", err
			}
			return fmt.Sprintf("Data saved to '%s'.", path), nil
		}), nil

	case formLoad:
		path := documentPath(f.value(0))
		return action(func(ctx context.Context) (string, error) {
			out, err := c.LoadPartyUseCase().Execute(ctx, usecase.LoadPartyInput{Path: path})
			if err != nil {
				return "", err
			}
			notice := fmt.Sprintf("Data loaded from '%s'.", path)
			if out.Dropped > 0 {
				notice += fmt.Sprintf(" Skipped %d task(s) without a matching guest.", out.Dropped)
			}
			return notice, nil
		}), nil
	}
	return nil, fmt.Errorf("unknown form %d", f.kind)
}

// documentPath defaults an empty file name to party.json.
func documentPath(v string) string {
	if v == "" {
		return "party.json"
	}
	return v
}

// newFormForTab returns the form the New key opens on the current tab.
func (m *Model) newFormForTab() *form {
	switch m.tab {
	case TabGuests:
		return newForm(formGuest)
	case TabGifts:
		f := newForm(formGift)
		f.setValue(3, m.selectedPersonRef())
		return f
	case TabTasks:
		return newForm(formTask)
	default:
		return newForm(formNewParty)
	}
}

// selectedPersonRef is the person reference of the cursor on the Gifts tab.
func (m *Model) selectedPersonRef() string {
	if m.cursor == 0 {
		return usecase.CelebrantRef
	}
	return strconv.Itoa(m.cursor)
}

// people lists the celebrant followed by the guests.
func (m *Model) people() []*domain.Person {
	if !m.hasParty() {
		return nil
	}
	return append([]*domain.Person{m.celebrant}, m.guests...)
}

// itemCount is the number of selectable rows on the current tab.
func (m *Model) itemCount() int {
	switch m.tab {
	case TabGuests:
		return len(m.guests)
	case TabGifts:
		return len(m.people())
	case TabTasks:
		return len(m.tasks)
	default:
		return 0
	}
}

func (m *Model) clampCursor() {
	if n := m.itemCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}
