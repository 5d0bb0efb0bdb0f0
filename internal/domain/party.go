package domain

import (
	"fmt"
	"slices"
)

// Party aggregates the celebrant, the guest list and the task list.
// Every operation validates before it mutates, so a failed call leaves the party unchanged.
type Party struct {
	Celebrant *Person
	Date      string
	Location  string
	guests    []*Person
	tasks     []*Task
	Budget    float64
}

// NewParty creates a party with no guests and no tasks.
func NewParty(celebrant *Person, date, location string, budget float64) *Party {
	return &Party{
		Celebrant: celebrant,
		Date:      date,
		Location:  location,
		Budget:    budget,
	}
}

// Guests returns the guest list in insertion order.
func (p *Party) Guests() []*Person {
	return slices.Clone(p.guests)
}

// Guest returns the guest at the 0-based index.
func (p *Party) Guest(index int) (*Person, error) {
	if index < 0 || index >= len(p.guests) {
		return nil, fmt.Errorf("guest #%d: %w", index+1, ErrGuestNotFound)
	}
	return p.guests[index], nil
}

// Tasks returns the task list in insertion order.
func (p *Party) Tasks() []*Task {
	return slices.Clone(p.tasks)
}

// HasGuest reports whether person is currently on the guest list.
func (p *Party) HasGuest(person *Person) bool {
	return p.guestIndex(person) >= 0
}

// Knows reports whether person is the celebrant or a current guest.
func (p *Party) Knows(person *Person) bool {
	return p.Celebrant.Is(person) || p.HasGuest(person)
}

func (p *Party) guestIndex(person *Person) int {
	return slices.IndexFunc(p.guests, person.Is)
}

// AddGuest appends person to the guest list.
// It returns false, leaving the list unchanged, if the person is already a guest.
func (p *Party) AddGuest(person *Person) bool {
	if p.HasGuest(person) {
		return false
	}
	p.guests = append(p.guests, person)
	return true
}

// RemoveGuest removes person from the guest list.
// It returns false if the person is not a guest.
// Tasks assigned to the person and gifts given or received by them are left as they are.
func (p *Party) RemoveGuest(person *Person) bool {
	idx := p.guestIndex(person)
	if idx < 0 {
		return false
	}
	p.guests = slices.Delete(p.guests, idx, idx+1)
	return true
}

// AddGift records a gift from giver to recipient and appends it to the recipient's gifts.
// Both must be the celebrant or a current guest.
func (p *Party) AddGift(name string, price float64, giver, recipient *Person) (*Gift, error) {
	if !p.Knows(giver) {
		return nil, fmt.Errorf("gift giver: %w", ErrUnknownPerson)
	}
	if !p.Knows(recipient) {
		return nil, fmt.Errorf("gift recipient: %w", ErrUnknownPerson)
	}
	gift := &Gift{
		Name:      name,
		Price:     price,
		Giver:     giver,
		Recipient: recipient,
	}
	recipient.AddGift(gift)
	return gift, nil
}

// TotalGiftCost sums the gifts received by the celebrant and the current guests.
// Gifts held by removed guests are not counted.
func (p *Party) TotalGiftCost() float64 {
	total := p.Celebrant.GiftTotal()
	for _, g := range p.guests {
		total += g.GiftTotal()
	}
	return total
}

// RemainingBudget is the budget minus the total gift cost. It may be negative.
func (p *Party) RemainingBudget() float64 {
	return p.Budget - p.TotalGiftCost()
}

// AddTask appends a task assigned to a current guest.
func (p *Party) AddTask(description, deadline string, responsible *Person) (*Task, error) {
	if !p.HasGuest(responsible) {
		return nil, fmt.Errorf("task responsible: %w", ErrUnknownPerson)
	}
	task := NewTask(description, deadline, responsible)
	p.tasks = append(p.tasks, task)
	return task, nil
}

// MarkDone finishes the task at the 0-based index.
func (p *Party) MarkDone(index int) error {
	if index < 0 || index >= len(p.tasks) {
		return fmt.Errorf("task #%d of %d: %w", index+1, len(p.tasks), ErrTaskIndexOutOfRange)
	}
	return p.tasks[index].MarkDone()
}
