package usecase

import (
	"context"
	"fmt"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// SavePartyInput contains the parameters for saving a party document.
type SavePartyInput struct {
	Path string // Document path
}

// SavePartyOutput contains the result of saving a party document.
type SavePartyOutput struct {
	Document *domain.Document
}

// SaveParty is the use case for exporting the session to a party document.
type SaveParty struct {
	parties   domain.PartyRepository
	documents domain.DocumentStore
	logger    domain.Logger
}

// NewSaveParty creates a new SaveParty use case.
func NewSaveParty(parties domain.PartyRepository, documents domain.DocumentStore, logger domain.Logger) *SaveParty {
	return &SaveParty{
		parties:   parties,
		documents: documents,
		logger:    logger,
	}
}

// Execute writes the current party to the document at in.Path.
func (uc *SaveParty) Execute(_ context.Context, in SavePartyInput) (*SavePartyOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}

	doc := domain.Serialize(party)
	if err := uc.documents.Write(in.Path, doc); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("save", fmt.Sprintf("saved %s: %d guests, %d tasks", in.Path, len(doc.Guests), len(doc.Tasks)))
	}

	return &SavePartyOutput{Document: doc}, nil
}
