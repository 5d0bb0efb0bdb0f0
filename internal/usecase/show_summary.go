package usecase

import (
	"context"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// ShowSummaryInput contains the parameters for the party summary.
type ShowSummaryInput struct{}

// ShowSummaryOutput contains the party summary.
type ShowSummaryOutput struct {
	Summary domain.Summary
}

// ShowSummary is the use case for summarizing the party.
type ShowSummary struct {
	parties domain.PartyRepository
}

// NewShowSummary creates a new ShowSummary use case.
func NewShowSummary(parties domain.PartyRepository) *ShowSummary {
	return &ShowSummary{parties: parties}
}

// Execute builds the summary of the current party.
func (uc *ShowSummary) Execute(_ context.Context, _ ShowSummaryInput) (*ShowSummaryOutput, error) {
	party, err := loadParty(uc.parties)
	if err != nil {
		return nil, err
	}
	return &ShowSummaryOutput{Summary: party.Summary()}, nil
}
