package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgPartyLoaded:
		m.celebrant = msg.Celebrant
		m.guests = msg.Guests
		m.tasks = msg.Tasks
		m.summary = msg.Summary
		if m.mode == ModeStart {
			m.mode = ModeNormal
		}
		m.clampCursor()
		return m, nil

	case MsgNoParty:
		m.celebrant = nil
		m.guests = nil
		m.tasks = nil
		if m.mode == ModeNormal {
			m.mode = ModeStart
		}
		return m, nil

	case MsgActionDone:
		m.notice = msg.Notice
		m.err = nil
		m.closeForm()
		return m, m.loadParty()

	case MsgError:
		m.err = msg.Err
		m.notice = ""
		m.closeForm()
		return m, nil
	}

	// Cursor blink and other input messages
	if m.mode == ModeForm && m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

// closeForm leaves form and dialog modes.
func (m *Model) closeForm() {
	m.form = nil
	m.confirmAction = ConfirmNone
	if m.mode == ModeForm || m.mode == ModeConfirm {
		m.mode = m.baseMode()
	}
}

// openForm shows f and focuses its first field.
func (m *Model) openForm(f *form) tea.Cmd {
	m.form = f
	m.mode = ModeForm
	m.err = nil
	m.notice = ""
	return f.focusField(0)
}

// handleKeyMsg dispatches a key press according to the mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		m.help.ShowAll = false
		m.mode = m.baseMode()
		return m, nil
	case ModeStart:
		return m.handleStartMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleStartMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		return m, m.openForm(newForm(formNewParty))
	case key.Matches(msg, m.keys.Open):
		return m, m.openForm(newForm(formLoad))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.mode = ModeHelp
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.mode = ModeHelp

	case key.Matches(msg, m.keys.NextTab):
		m.tab = m.tab.Next()
		m.cursor = 0

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = m.tab.Prev()
		m.cursor = 0

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		return m, m.openForm(m.newFormForTab())

	case key.Matches(msg, m.keys.Delete):
		if m.tab == TabGuests && len(m.guests) > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmRemoveGuest
		}

	case key.Matches(msg, m.keys.Done):
		if m.tab == TabTasks && len(m.tasks) > 0 {
			return m, m.markTaskDone(m.cursor + 1)
		}

	case key.Matches(msg, m.keys.Save):
		return m, m.openForm(newForm(formSave))

	case key.Matches(msg, m.keys.Open):
		return m, m.openForm(newForm(formLoad))

	case key.Matches(msg, m.keys.Reload):
		m.err = nil
		m.notice = ""
		return m, m.loadParty()
	}
	return m, nil
}

func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.next()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.prev()

	case key.Matches(msg, m.keys.Submit):
		if !m.form.last() {
			return m, m.form.next()
		}
		cmd, err := m.submit(m.form)
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, cmd
	}
	return m, m.form.update(msg)
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		pending := m.confirmAction
		m.confirmAction = ConfirmNone
		m.mode = ModeNormal
		if pending == ConfirmRemoveGuest {
			return m, m.removeGuest(m.cursor + 1)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.confirmAction = ConfirmNone
		m.mode = ModeNormal
	}
	return m, nil
}
