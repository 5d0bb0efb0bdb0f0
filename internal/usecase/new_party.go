package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// NewPartyInput contains the parameters for starting a new party.
// Fields are ordered to minimize memory padding.
type NewPartyInput struct {
	Name     string  // Celebrant name (required)
	Date     string  // Party date, free-form
	Location string  // Party location
	Budget   float64 // Budget for gifts
	Age      int     // Celebrant age
	Force    bool    // Replace an existing party
}

// NewPartyOutput contains the result of starting a new party.
type NewPartyOutput struct {
	Party *domain.Party
}

// NewParty is the use case for starting a new party.
type NewParty struct {
	parties domain.PartyRepository
	logger  domain.Logger
}

// NewNewParty creates a new NewParty use case.
func NewNewParty(parties domain.PartyRepository, logger domain.Logger) *NewParty {
	return &NewParty{
		parties: parties,
		logger:  logger,
	}
}

// Execute creates the party and makes it the current session.
func (uc *NewParty) Execute(_ context.Context, in NewPartyInput) (*NewPartyOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	if !in.Force {
		exists, err := uc.parties.Exists()
		if err != nil {
			return nil, fmt.Errorf("check existing party: %w", err)
		}
		if exists {
			return nil, domain.ErrPartyExists
		}
	}

	party := domain.NewParty(domain.NewPerson(name, in.Age), in.Date, in.Location, in.Budget)
	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("party", fmt.Sprintf("created party for %s on %q at %q", party.Celebrant, in.Date, in.Location))
	}

	return &NewPartyOutput{Party: party}, nil
}
