package usecase

import (
	"context"
	"fmt"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// MarkTaskDoneInput contains the parameters for finishing a task.
type MarkTaskDoneInput struct {
	Number int // 1-based task number
}

// MarkTaskDoneOutput contains the finished task.
type MarkTaskDoneOutput struct {
	Task *domain.Task
}

// MarkTaskDone is the use case for finishing a task.
type MarkTaskDone struct {
	parties domain.PartyRepository
	logger  domain.Logger
}

// NewMarkTaskDone creates a new MarkTaskDone use case.
func NewMarkTaskDone(parties domain.PartyRepository, logger domain.Logger) *MarkTaskDone {
	return &MarkTaskDone{
		parties: parties,
		logger:  logger,
	}
}

// Execute marks the task as done. Finishing a finished task is a no-op.
func (uc *MarkTaskDone) Execute(_ context.Context, in MarkTaskDoneInput) (*MarkTaskDoneOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	if err := party.MarkDone(in.Number - 1); err != nil {
		return nil, err
	}
	task := party.Tasks()[in.Number-1]

	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("done: %q", task.Description))
	}

	return &MarkTaskDoneOutput{Task: task}, nil
}
