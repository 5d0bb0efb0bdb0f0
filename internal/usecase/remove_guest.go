package usecase

import (
	"context"
	"fmt"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// RemoveGuestInput contains the parameters for removing a guest.
type RemoveGuestInput struct {
	Number int // 1-based position on the guest list
}

// RemoveGuestOutput contains the result of removing a guest.
type RemoveGuestOutput struct {
	Guest *domain.Person
}

// RemoveGuest is the use case for removing a guest.
// Tasks and gifts referring to the guest are kept.
type RemoveGuest struct {
	parties domain.PartyRepository
	logger  domain.Logger
}

// NewRemoveGuest creates a new RemoveGuest use case.
func NewRemoveGuest(parties domain.PartyRepository, logger domain.Logger) *RemoveGuest {
	return &RemoveGuest{
		parties: parties,
		logger:  logger,
	}
}

// Execute removes the guest at the given position.
func (uc *RemoveGuest) Execute(_ context.Context, in RemoveGuestInput) (*RemoveGuestOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	guest, err := party.Guest(in.Number - 1)
	if err != nil {
		return nil, err
	}

	if !party.RemoveGuest(guest) {
		return nil, fmt.Errorf("%s: %w", guest.Name, domain.ErrGuestNotFound)
	}

	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("guest", fmt.Sprintf("removed %s", guest))
	}

	return &RemoveGuestOutput{Guest: guest}, nil
}
