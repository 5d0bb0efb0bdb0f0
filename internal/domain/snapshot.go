package domain

import "fmt"

// Snapshot is the lossless form of a party session, used by the session stores.
// Unlike Document it keeps person IDs and gifts, including those held by
// persons who are no longer guests but are still referenced.
type Snapshot struct {
	CelebrantID string         `json:"celebrantID"`
	Date        string         `json:"date"`
	Location    string         `json:"location"`
	People      []PersonRecord `json:"people"`
	GuestIDs    []string       `json:"guestIDs"`
	Tasks       []TaskRecord   `json:"tasks"`
	Budget      float64        `json:"budget"`
}

// PersonRecord stores a person and the gifts they received.
type PersonRecord struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Gifts []GiftRecord `json:"gifts,omitempty"`
	Age   int          `json:"age"`
}

// GiftRecord stores a received gift; the recipient is the owning PersonRecord.
type GiftRecord struct {
	Name    string  `json:"name"`
	GiverID string  `json:"giverID"`
	Price   float64 `json:"price"`
}

// TaskRecord stores a task with its responsible person by ID.
type TaskRecord struct {
	Description   string `json:"description"`
	Deadline      string `json:"deadline"`
	ResponsibleID string `json:"responsibleID"`
	Status        Status `json:"status"`
}

// TakeSnapshot captures the party and every person reachable from it.
// People are ordered by discovery: celebrant, guests, task owners, then gift givers.
func TakeSnapshot(p *Party) *Snapshot {
	s := &Snapshot{
		CelebrantID: p.Celebrant.ID,
		Date:        p.Date,
		Location:    p.Location,
		Budget:      p.Budget,
		GuestIDs:    make([]string, 0, len(p.guests)),
		Tasks:       make([]TaskRecord, 0, len(p.tasks)),
	}

	seen := make(map[string]bool)
	var queue []*Person
	visit := func(person *Person) {
		if person == nil || seen[person.ID] {
			return
		}
		seen[person.ID] = true
		queue = append(queue, person)
	}

	visit(p.Celebrant)
	for _, g := range p.guests {
		s.GuestIDs = append(s.GuestIDs, g.ID)
		visit(g)
	}
	for _, t := range p.tasks {
		s.Tasks = append(s.Tasks, TaskRecord{
			Description:   t.Description,
			Deadline:      t.Deadline,
			ResponsibleID: t.Responsible.ID,
			Status:        t.Status,
		})
		visit(t.Responsible)
	}

	for i := 0; i < len(queue); i++ {
		person := queue[i]
		rec := PersonRecord{ID: person.ID, Name: person.Name, Age: person.Age}
		for _, g := range person.Gifts {
			rec.Gifts = append(rec.Gifts, GiftRecord{Name: g.Name, GiverID: g.Giver.ID, Price: g.Price})
			visit(g.Giver)
		}
		s.People = append(s.People, rec)
	}

	return s
}

// Restore rebuilds the party captured by the snapshot.
func (s *Snapshot) Restore() (*Party, error) {
	people := make(map[string]*Person, len(s.People))
	for _, rec := range s.People {
		if _, dup := people[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate person %s: %w", rec.ID, ErrCorruptSession)
		}
		people[rec.ID] = &Person{ID: rec.ID, Name: rec.Name, Age: rec.Age}
	}

	lookup := func(id, role string) (*Person, error) {
		person, ok := people[id]
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", role, id, ErrCorruptSession)
		}
		return person, nil
	}

	for _, rec := range s.People {
		recipient := people[rec.ID]
		for _, g := range rec.Gifts {
			giver, err := lookup(g.GiverID, "gift giver")
			if err != nil {
				return nil, err
			}
			recipient.AddGift(&Gift{Name: g.Name, Price: g.Price, Giver: giver, Recipient: recipient})
		}
	}

	celebrant, err := lookup(s.CelebrantID, "celebrant")
	if err != nil {
		return nil, err
	}
	party := NewParty(celebrant, s.Date, s.Location, s.Budget)

	for _, id := range s.GuestIDs {
		guest, err := lookup(id, "guest")
		if err != nil {
			return nil, err
		}
		party.AddGuest(guest)
	}
	for _, rec := range s.Tasks {
		responsible, err := lookup(rec.ResponsibleID, "task responsible")
		if err != nil {
			return nil, err
		}
		party.tasks = append(party.tasks, &Task{
			Description: rec.Description,
			Deadline:    rec.Deadline,
			Responsible: responsible,
			Status:      rec.Status,
		})
	}

	return party, nil
}
