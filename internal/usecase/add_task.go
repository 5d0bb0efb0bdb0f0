package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // What to do (required)
	Deadline    string // Free-form deadline
	Responsible int    // 1-based guest number
}

// AddTaskOutput contains the added task.
type AddTaskOutput struct {
	Task   *domain.Task
	Number int // 1-based position on the task list
}

// AddTask is the use case for adding a task.
type AddTask struct {
	parties domain.PartyRepository
	logger  domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(parties domain.PartyRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		parties: parties,
		logger:  logger,
	}
}

// Execute appends a task assigned to the referenced guest.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	responsible, err := party.Guest(in.Responsible - 1)
	if err != nil {
		return nil, fmt.Errorf("task responsible: %w", err)
	}

	task, err := party.AddTask(description, in.Deadline, responsible)
	if err != nil {
		return nil, err
	}

	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added %q for %s", description, responsible.Name))
	}

	return &AddTaskOutput{Task: task, Number: len(party.Tasks())}, nil
}
