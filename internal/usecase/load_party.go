package usecase

import (
	"context"
	"fmt"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// LoadPartyInput contains the parameters for loading a party document.
type LoadPartyInput struct {
	Path string // Document path
}

// LoadPartyOutput contains the result of loading a party document.
type LoadPartyOutput struct {
	Party   *domain.Party
	Dropped int // Tasks whose responsible guest could not be found
}

// LoadParty is the use case for replacing the session with a party document.
type LoadParty struct {
	parties   domain.PartyRepository
	documents domain.DocumentStore
	logger    domain.Logger
}

// NewLoadParty creates a new LoadParty use case.
func NewLoadParty(parties domain.PartyRepository, documents domain.DocumentStore, logger domain.Logger) *LoadParty {
	return &LoadParty{
		parties:   parties,
		documents: documents,
		logger:    logger,
	}
}

// Execute reads the document and stores the rebuilt party as the current session.
// Gifts are not part of documents, so the loaded party has none.
func (uc *LoadParty) Execute(_ context.Context, in LoadPartyInput) (*LoadPartyOutput, error) {
	doc, err := uc.documents.Read(in.Path)
	if err != nil {
		return nil, err
	}

	party, dropped := domain.Deserialize(doc)
	if err := saveParty(uc.parties, party); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("load", fmt.Sprintf("loaded %s: %d guests, %d tasks", in.Path, len(party.Guests()), len(party.Tasks())))
		if dropped > 0 {
			uc.logger.Warn("load", fmt.Sprintf("dropped %d tasks without a matching guest", dropped))
		}
	}

	return &LoadPartyOutput{Party: party, Dropped: dropped}, nil
}
