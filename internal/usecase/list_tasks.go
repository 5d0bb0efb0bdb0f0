package usecase

import (
	"context"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the task list.
type ListTasksOutput struct {
	Tasks []*domain.Task // In insertion order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	parties domain.PartyRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(parties domain.PartyRepository) *ListTasks {
	return &ListTasks{parties: parties}
}

// Execute returns the task list.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}
	return &ListTasksOutput{Tasks: party.Tasks()}, nil
}
