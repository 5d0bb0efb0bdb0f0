package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// AddGuestInput contains the parameters for adding a guest.
type AddGuestInput struct {
	Name string // Guest name (required)
	Age  int    // Guest age
}

// AddGuestOutput contains the result of adding a guest.
type AddGuestOutput struct {
	Guest  *domain.Person
	Number int  // 1-based position on the guest list
	Added  bool // False if the person was already a guest
}

// AddGuest is the use case for adding a guest.
type AddGuest struct {
	parties domain.PartyRepository
	logger  domain.Logger
}

// NewAddGuest creates a new AddGuest use case.
func NewAddGuest(parties domain.PartyRepository, logger domain.Logger) *AddGuest {
	return &AddGuest{
		parties: parties,
		logger:  logger,
	}
}

// Execute adds a new person to the guest list.
func (uc *AddGuest) Execute(_ context.Context, in AddGuestInput) (*AddGuestOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	guest := domain.NewPerson(name, in.Age)
	if !party.AddGuest(guest) {
		return &AddGuestOutput{Guest: guest}, nil
	}

	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("guest", fmt.Sprintf("added %s", guest))
	}

	return &AddGuestOutput{Guest: guest, Number: len(party.Guests()), Added: true}, nil
}
