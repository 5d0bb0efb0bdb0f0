package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formKind identifies what a form submits to.
type formKind int

const (
	formNewParty formKind = iota
	formGuest
	formGift
	formTask
	formSave
	formLoad
)

type formField struct {
	label string
	input textinput.Model
}

// form is a column of labelled text inputs with one focused field.
type form struct {
	title  string
	fields []formField
	kind   formKind
	focus  int
}

// newForm creates the form for kind with every field empty.
func newForm(kind formKind) *form {
	f := &form{kind: kind}
	switch kind {
	case formNewParty:
		f.title = "New party"
		f.add("Celebrant", "Name")
		f.add("Age", "0")
		f.add("Date", "e.g. 2024-06-01")
		f.add("Location", "")
		f.add("Budget", "0")
	case formGuest:
		f.title = "Add guest"
		f.add("Name", "")
		f.add("Age", "0")
	case formGift:
		f.title = "Add gift"
		f.add("Gift", "")
		f.add("Price", "0")
		f.add("From", "celebrant or guest #")
		f.add("To", "celebrant or guest #")
	case formTask:
		f.title = "Add task"
		f.add("Description", "")
		f.add("Deadline", "")
		f.add("Guest #", "")
	case formSave:
		f.title = "Save party"
		f.add("File", "party.json")
	case formLoad:
		f.title = "Load party"
		f.add("File", "party.json")
	}
	return f
}

func (f *form) add(label, placeholder string) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	f.fields = append(f.fields, formField{label: label, input: ti})
}

// value returns the trimmed content of field i.
func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// focusField moves the focus to field i.
func (f *form) focusField(i int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = i
	return f.fields[i].input.Focus()
}

func (f *form) last() bool {
	return f.focus == len(f.fields)-1
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % len(f.fields))
}

func (f *form) prev() tea.Cmd {
	return f.focusField((f.focus + len(f.fields) - 1) % len(f.fields))
}

// update passes msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// intValue parses field i; empty means 0.
func (f *form) intValue(i int) (int, error) {
	v := f.value(i)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: not a whole number: %q", strings.ToLower(f.fields[i].label), v)
	}
	return n, nil
}

// floatValue parses field i; empty means 0.
func (f *form) floatValue(i int) (float64, error) {
	v := f.value(i)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", strings.ToLower(f.fields[i].label), v)
	}
	return n, nil
}
