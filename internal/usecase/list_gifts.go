package usecase

import (
	"context"
	"fmt"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// ListGiftsInput contains the parameters for listing received gifts.
type ListGiftsInput struct {
	Person string // Person reference; empty means the celebrant
}

// ListGiftsOutput contains the gifts received by a person.
type ListGiftsOutput struct {
	Person *domain.Person
	Gifts  []domain.GiftLine // In receipt order
	Total  float64
}

// ListGifts is the use case for listing the gifts a person received.
type ListGifts struct {
	parties domain.PartyRepository
}

// NewListGifts creates a new ListGifts use case.
func NewListGifts(parties domain.PartyRepository) *ListGifts {
	return &ListGifts{parties: parties}
}

// Execute returns the gifts received by the referenced person.
func (uc *ListGifts) Execute(_ context.Context, in ListGiftsInput) (*ListGiftsOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	person, err := ResolvePerson(party, in.Person)
	if err != nil {
		return nil, fmt.Errorf("gift recipient: %w", err)
	}

	return &ListGiftsOutput{
		Person: person,
		Gifts:  person.ListGifts(),
		Total:  person.GiftTotal(),
	}, nil
}
