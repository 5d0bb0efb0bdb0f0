// Package domain contains the party planning entities and the ports used to persist them.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Person is a party participant, either the celebrant or a guest.
// Two persons are the same participant only if their IDs match; names are not unique.
type Person struct {
	ID    string  // Generated identifier
	Name  string  // Display name
	Gifts []*Gift // Gifts received, in receipt order
	Age   int     // Age in years
}

// NewPerson creates a person with a freshly generated ID.
func NewPerson(name string, age int) *Person {
	return &Person{
		ID:   uuid.NewString(),
		Name: name,
		Age:  age,
	}
}

// AddGift records a received gift.
// Whether the gift really targets this person is the caller's concern.
func (p *Person) AddGift(g *Gift) {
	p.Gifts = append(p.Gifts, g)
}

// ListGifts returns the received gifts in receipt order.
// An empty result means the person received nothing yet.
func (p *Person) ListGifts() []GiftLine {
	lines := make([]GiftLine, 0, len(p.Gifts))
	for _, g := range p.Gifts {
		lines = append(lines, g.Line())
	}
	return lines
}

// GiftTotal returns the sum of prices of all received gifts.
func (p *Person) GiftTotal() float64 {
	var total float64
	for _, g := range p.Gifts {
		total += g.Price
	}
	return total
}

// Is reports whether other is the same participant.
func (p *Person) Is(other *Person) bool {
	if p == nil || other == nil {
		return false
	}
	return p.ID == other.ID
}

func (p *Person) String() string {
	return fmt.Sprintf("%s (%d years old)", p.Name, p.Age)
}
