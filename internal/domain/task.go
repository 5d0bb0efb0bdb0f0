package domain

import "fmt"

// Task is a piece of party preparation assigned to a guest.
// Fields are ordered to minimize memory padding.
type Task struct {
	Responsible *Person // Guest in charge
	Description string  // What to do
	Deadline    string  // Free-form date text, never parsed
	Status      Status  // Completion state
}

// NewTask creates a task in the initial state.
func NewTask(description, deadline string, responsible *Person) *Task {
	return &Task{
		Description: description,
		Deadline:    deadline,
		Responsible: responsible,
		Status:      StatusNotDone,
	}
}

// MarkDone finishes the task. Marking a finished task again is a no-op.
func (t *Task) MarkDone() error {
	if t.Status == StatusDone {
		return nil
	}
	if !t.Status.CanTransitionTo(StatusDone) {
		return fmt.Errorf("cannot mark task in %q status as done: %w", t.Status, ErrInvalidTransition)
	}
	t.Status = StatusDone
	return nil
}

// ResponsibleName returns the name of the responsible person, or "" if unset.
func (t *Task) ResponsibleName() string {
	if t.Responsible == nil {
		return ""
	}
	return t.Responsible.Name
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (Deadline: %s, Responsible: %s, Status: %s)",
		t.Description, t.Deadline, t.ResponsibleName(), t.Status)
}
