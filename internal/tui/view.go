package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeStart:
		b.WriteString(m.startView())
	case ModeHelp:
		b.WriteString(m.help.View(m.keys))
	case ModeForm:
		b.WriteString(m.formView())
	case ModeNormal, ModeConfirm:
		b.WriteString(m.tabsView())
		b.WriteString("\n\n")
		b.WriteString(m.bodyView())
		if m.mode == ModeConfirm {
			b.WriteString("\n\n")
			b.WriteString(m.confirmView())
		}
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	if m.mode == ModeNormal {
		b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	}

	return m.styles.App.Render(b.String())
}

func (m *Model) headerView() string {
	title := m.styles.Header.Render("Party Planner")
	if !m.hasParty() {
		return title
	}
	sub := fmt.Sprintf("  %s · %s · %s", m.celebrant, m.summary.Date, m.summary.Location)
	return title + m.styles.HeaderText.Render(sub)
}

func (m *Model) startView() string {
	lines := []string{
		"No party yet.",
		"",
		m.styles.CursorSelected.Render("n") + "  create a new party",
		m.styles.CursorSelected.Render("o") + "  load a party document",
		m.styles.CursorSelected.Render("q") + "  quit",
	}
	return strings.Join(lines, "\n")
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabGuests; t < tabCount; t++ {
		style := m.styles.Tab
		if t == m.tab {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) bodyView() string {
	switch m.tab {
	case TabGuests:
		return m.guestsView()
	case TabGifts:
		return m.giftsView()
	case TabTasks:
		return m.tasksView()
	case TabSummary:
		return m.summaryView()
	}
	return ""
}

// row renders one selectable line.
func (m *Model) row(i int, text string) string {
	if i == m.cursor {
		return m.styles.CursorSelected.Render("> ") + m.styles.ItemSelected.Render(text)
	}
	return "  " + m.styles.ItemNormal.Render(text)
}

func (m *Model) guestsView() string {
	if len(m.guests) == 0 {
		return m.styles.Muted.Render("No guests added. Press n to add one.")
	}
	lines := make([]string, 0, len(m.guests))
	for i, g := range m.guests {
		lines = append(lines, m.row(i, fmt.Sprintf("%d. %s", i+1, g)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) giftsView() string {
	people := m.people()
	lines := make([]string, 0, len(people)+8)
	for i, p := range people {
		label := fmt.Sprintf("%d. %s", i, p.Name)
		if i == 0 {
			label = "c. " + p.Name + " (celebrant)"
		}
		lines = append(lines, m.row(i, label))
	}

	if m.cursor < len(people) {
		person := people[m.cursor]
		lines = append(lines, "", m.styles.DialogTitle.Render("Gifts received by "+person.Name+":"))
		gifts := person.ListGifts()
		if len(gifts) == 0 {
			lines = append(lines, m.styles.Muted.Render("No gifts."))
		}
		for i, g := range gifts {
			lines = append(lines, fmt.Sprintf("%d. %s (from %s) - %s", i+1, g.Name, g.Giver, m.display.Money(g.Price)))
		}
		if len(gifts) > 0 {
			lines = append(lines, m.styles.Muted.Render("Total: "+m.display.Money(person.GiftTotal())))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) tasksView() string {
	if len(m.tasks) == 0 {
		return m.styles.Muted.Render("No tasks added. Press n to add one.")
	}
	lines := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		text := fmt.Sprintf("%d. %s (Deadline: %s, Responsible: %s) ", i+1, t.Description, t.Deadline, t.ResponsibleName())
		lines = append(lines, m.row(i, text)+m.styles.StatusStyle(t.Status).Render("["+string(t.Status)+"]"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) summaryView() string {
	s := m.summary
	field := func(label, value string) string {
		return m.styles.Label.Render(label) + m.styles.Value.Render(value)
	}

	done := 0
	for _, t := range s.Tasks {
		if t.Status.IsDone() {
			done++
		}
	}

	lines := []string{
		field("Celebrant", fmt.Sprintf("%s (%d years old)", s.Celebrant.Name, s.Celebrant.Age)),
		field("Date", s.Date),
		field("Location", s.Location),
		field("Guests", strconv.Itoa(len(s.Guests))),
		field("Tasks done", fmt.Sprintf("%d/%d", done, len(s.Tasks))),
		field("Budget", m.display.Money(s.Budget)),
		field("Gifts total", m.display.Money(s.TotalGiftCost)),
	}

	remaining := m.display.Money(s.RemainingBudget)
	if s.RemainingBudget < 0 {
		remaining = m.styles.ErrorMsg.Render(remaining)
	}
	lines = append(lines, m.styles.Label.Render("Remaining budget")+remaining)
	return strings.Join(lines, "\n")
}

func (m *Model) formView() string {
	if m.form == nil {
		return ""
	}
	lines := []string{m.styles.DialogTitle.Render(m.form.title)}
	for _, f := range m.form.fields {
		lines = append(lines, m.styles.InputLabel.Render(f.label)+f.input.View())
	}
	lines = append(lines, "", m.styles.Muted.Render("tab: next field · enter: submit · esc: cancel"))
	return m.styles.Dialog.Render(strings.Join(lines, "\n"))
}

func (m *Model) confirmView() string {
	name := ""
	if m.cursor < len(m.guests) {
		name = m.guests[m.cursor].Name
	}
	prompt := fmt.Sprintf("Remove %s from the guest list? (y/n)", name)
	return m.styles.Dialog.Render(m.styles.DialogPrompt.Render(prompt))
}

// statusLine shows the last error or notice.
func (m *Model) statusLine() string {
	if m.err != nil {
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	}
	if m.notice != "" {
		return m.styles.NoticeMsg.Render(m.notice)
	}
	return ""
}
