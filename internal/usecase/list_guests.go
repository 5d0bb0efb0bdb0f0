package usecase

import (
	"context"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// ListGuestsInput contains the parameters for listing guests.
type ListGuestsInput struct{}

// ListGuestsOutput contains the guest list.
type ListGuestsOutput struct {
	Celebrant *domain.Person
	Guests    []*domain.Person // In insertion order
}

// ListGuests is the use case for listing guests.
type ListGuests struct {
	parties domain.PartyRepository
}

// NewListGuests creates a new ListGuests use case.
func NewListGuests(parties domain.PartyRepository) *ListGuests {
	return &ListGuests{parties: parties}
}

// Execute returns the current guest list.
func (uc *ListGuests) Execute(_ context.Context, _ ListGuestsInput) (*ListGuestsOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}
	return &ListGuestsOutput{
		Celebrant: party.Celebrant,
		Guests:    party.Guests(),
	}, nil
}
