// Package usecase contains the application use cases.
package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// loadParty returns the current session party.
func loadParty(parties domain.PartyRepository) (*domain.Party, error) {
	p, err := parties.Load()
	if errors.Is(err, domain.ErrNoParty) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("load party: %w", err)
	}
	return p, nil
}

// saveParty stores the session party.
func saveParty(parties domain.PartyRepository, p *domain.Party) error {
	if err := parties.Save(p); err != nil {
		return fmt.Errorf("save party: %w", err)
	}
	return nil
}

// CelebrantRef is the person reference naming the celebrant.
const CelebrantRef = "celebrant"

// ResolvePerson resolves a person reference against the party.
// "celebrant", "c" and "" name the celebrant; a number names the guest at that 1-based position.
func ResolvePerson(p *domain.Party, ref string) (*domain.Person, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	switch ref {
	case "", "c", CelebrantRef:
		return p.Celebrant, nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", ref, domain.ErrInvalidPersonRef)
	}
	return p.Guest(n - 1)
}
