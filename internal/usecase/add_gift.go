package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// AddGiftInput contains the parameters for recording a gift.
// Giver and Recipient are person references: "celebrant" or a 1-based guest number.
type AddGiftInput struct {
	Name      string  // Gift name (required)
	Giver     string  // Person reference of the giver
	Recipient string  // Person reference of the recipient
	Price     float64 // Gift price
}

// AddGiftOutput contains the recorded gift.
type AddGiftOutput struct {
	Gift *domain.Gift
}

// AddGift is the use case for recording a gift.
type AddGift struct {
	parties domain.PartyRepository
	logger  domain.Logger
}

// NewAddGift creates a new AddGift use case.
func NewAddGift(parties domain.PartyRepository, logger domain.Logger) *AddGift {
	return &AddGift{
		parties: parties,
		logger:  logger,
	}
}

// Execute records the gift on the recipient.
func (uc *AddGift) Execute(_ context.Context, in AddGiftInput) (*AddGiftOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	giver, err := ResolvePerson(party, in.Giver)
	if err != nil {
		return nil, fmt.Errorf("gift giver: %w", err)
	}
	recipient, err := ResolvePerson(party, in.Recipient)
	if err != nil {
		return nil, fmt.Errorf("gift recipient: %w", err)
	}

	gift, err := party.AddGift(name, in.Price, giver, recipient)
	if err != nil {
		return nil, err
	}

	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("gift", fmt.Sprintf("%s gave %q (%.2f) to %s", giver.Name, name, in.Price, recipient.Name))
	}

	return &AddGiftOutput{Gift: gift}, nil
}
