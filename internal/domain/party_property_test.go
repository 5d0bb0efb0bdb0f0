package domain

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func drawParty(rt *rapid.T) *Party {
	celebrant := NewPerson(rapid.StringMatching(`[A-Z][a-z]{0,8}`).Draw(rt, "celebrant"), rapid.IntRange(0, 99).Draw(rt, "celebrant_age"))
	budget := float64(rapid.IntRange(0, 100000).Draw(rt, "budget")) / 100
	p := NewParty(celebrant, rapid.StringMatching(`[0-9-]{0,10}`).Draw(rt, "date"), rapid.String().Draw(rt, "location"), budget)

	n := rapid.IntRange(0, 8).Draw(rt, "num_guests")
	for i := 0; i < n; i++ {
		name := rapid.SampledFrom([]string{"Bob", "Eve", "Ola", "Jan", "Ala"}).Draw(rt, "guest")
		p.AddGuest(NewPerson(name, rapid.IntRange(0, 99).Draw(rt, "guest_age")))
	}
	return p
}

func drawPrice(rt *rapid.T, label string) float64 {
	return float64(rapid.IntRange(0, 50000).Draw(rt, label)) / 100
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// TestProperty_ListGiftsCountsReceivedGifts verifies that a person's gift list
// grows by exactly one per successful AddGift naming them as recipient.
func TestProperty_ListGiftsCountsReceivedGifts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := drawParty(rt)
		known := append([]*Person{p.Celebrant}, p.Guests()...)
		stranger := NewPerson("Stranger", 40)
		candidates := append(known, stranger)

		received := make(map[string]int)
		ops := rapid.IntRange(0, 30).Draw(rt, "num_gifts")
		for i := 0; i < ops; i++ {
			giver := rapid.SampledFrom(candidates).Draw(rt, "giver")
			recipient := rapid.SampledFrom(candidates).Draw(rt, "recipient")
			if _, err := p.AddGift("gift", drawPrice(rt, "price"), giver, recipient); err == nil {
				received[recipient.ID]++
			}
		}

		for _, person := range candidates {
			if got := len(person.ListGifts()); got != received[person.ID] {
				rt.Fatalf("%s has %d gifts, want %d", person.Name, got, received[person.ID])
			}
		}
		if len(stranger.ListGifts()) != 0 {
			rt.Fatalf("stranger received gifts")
		}
	})
}

// TestProperty_AddGuestIdempotent verifies that adding the same person twice
// leaves the guest list unchanged and reports a conflict.
func TestProperty_AddGuestIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := drawParty(rt)
		person := NewPerson("Repeat", rapid.IntRange(0, 99).Draw(rt, "age"))

		if !p.AddGuest(person) {
			rt.Fatalf("first add reported conflict")
		}
		before := len(p.Guests())
		if p.AddGuest(person) {
			rt.Fatalf("second add did not report conflict")
		}
		if after := len(p.Guests()); after != before {
			rt.Fatalf("guest count changed from %d to %d", before, after)
		}
	})
}

// TestProperty_TotalGiftCost verifies that the total equals the sum over the
// celebrant and current guests, and that removing a guest lowers it by exactly
// that guest's received gifts.
func TestProperty_TotalGiftCost(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := drawParty(rt)
		known := append([]*Person{p.Celebrant}, p.Guests()...)

		ops := rapid.IntRange(0, 20).Draw(rt, "num_gifts")
		for i := 0; i < ops; i++ {
			giver := rapid.SampledFrom(known).Draw(rt, "giver")
			recipient := rapid.SampledFrom(known).Draw(rt, "recipient")
			if _, err := p.AddGift("gift", drawPrice(rt, "price"), giver, recipient); err != nil {
				rt.Fatalf("AddGift failed: %v", err)
			}
		}

		var want float64
		for _, person := range known {
			for _, g := range person.ListGifts() {
				want += g.Price
			}
		}
		if got := p.TotalGiftCost(); !almostEqual(got, want) {
			rt.Fatalf("TotalGiftCost() = %v, want %v", got, want)
		}
		if got := p.RemainingBudget(); !almostEqual(got, p.Budget-want) {
			rt.Fatalf("RemainingBudget() = %v, want %v", got, p.Budget-want)
		}

		guests := p.Guests()
		if len(guests) == 0 {
			return
		}
		removed := rapid.SampledFrom(guests).Draw(rt, "removed")
		before := p.TotalGiftCost()
		p.RemoveGuest(removed)
		after := p.TotalGiftCost()

		if after > before+1e-6 {
			rt.Fatalf("total grew after removal: %v -> %v", before, after)
		}
		if !almostEqual(before-after, removed.GiftTotal()) {
			rt.Fatalf("total dropped by %v, want %v", before-after, removed.GiftTotal())
		}
	})
}

// TestProperty_DocumentRoundTrip verifies that deserializing a serialized party
// reproduces everything the document carries.
func TestProperty_DocumentRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := drawParty(rt)
		guests := p.Guests()
		if len(guests) > 0 {
			n := rapid.IntRange(0, 6).Draw(rt, "num_tasks")
			for i := 0; i < n; i++ {
				guest := rapid.SampledFrom(guests).Draw(rt, "responsible")
				if _, err := p.AddTask(rapid.String().Draw(rt, "desc"), rapid.String().Draw(rt, "deadline"), guest); err != nil {
					rt.Fatalf("AddTask failed: %v", err)
				}
				if rapid.Bool().Draw(rt, "done") {
					if err := p.MarkDone(i); err != nil {
						rt.Fatalf("MarkDone failed: %v", err)
					}
				}
			}
			if rapid.Bool().Draw(rt, "remove_one") {
				p.RemoveGuest(rapid.SampledFrom(guests).Draw(rt, "removed"))
			}
		}

		reloaded, dropped := Deserialize(Serialize(p))

		if reloaded.Celebrant.Name != p.Celebrant.Name || reloaded.Celebrant.Age != p.Celebrant.Age {
			rt.Fatalf("celebrant = %v, want %v", reloaded.Celebrant, p.Celebrant)
		}
		if reloaded.Date != p.Date || reloaded.Location != p.Location || reloaded.Budget != p.Budget {
			rt.Fatalf("party header changed")
		}

		orig, got := p.Guests(), reloaded.Guests()
		if len(orig) != len(got) {
			rt.Fatalf("guest count = %d, want %d", len(got), len(orig))
		}
		for i := range orig {
			if orig[i].Name != got[i].Name || orig[i].Age != got[i].Age {
				rt.Fatalf("guest[%d] = %v, want %v", i, got[i], orig[i])
			}
		}

		var kept []*Task
		for _, task := range p.Tasks() {
			if reloaded.guestByName(task.ResponsibleName()) != nil {
				kept = append(kept, task)
			}
		}
		tasks := reloaded.Tasks()
		if len(tasks) != len(kept) {
			rt.Fatalf("task count = %d, want %d", len(tasks), len(kept))
		}
		if dropped != len(p.Tasks())-len(kept) {
			rt.Fatalf("dropped = %d, want %d", dropped, len(p.Tasks())-len(kept))
		}
		for i := range kept {
			if tasks[i].Description != kept[i].Description || tasks[i].Deadline != kept[i].Deadline || tasks[i].Status != kept[i].Status {
				rt.Fatalf("task[%d] = %v, want %v", i, tasks[i], kept[i])
			}
		}
	})
}

// TestProperty_MarkDone verifies that MarkDone only touches the addressed task
// and leaves every task unchanged on an out-of-range index.
func TestProperty_MarkDone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := drawParty(rt)
		guest := NewPerson("Helper", 30)
		p.AddGuest(guest)

		n := rapid.IntRange(1, 10).Draw(rt, "num_tasks")
		for i := 0; i < n; i++ {
			if _, err := p.AddTask("task", "soon", guest); err != nil {
				rt.Fatalf("AddTask failed: %v", err)
			}
			if rapid.Bool().Draw(rt, "done") {
				_ = p.MarkDone(i)
			}
		}

		before := make([]Status, n)
		for i, task := range p.Tasks() {
			before[i] = task.Status
		}

		idx := rapid.IntRange(-3, n+3).Draw(rt, "index")
		err := p.MarkDone(idx)

		inRange := idx >= 0 && idx < n
		if inRange && err != nil {
			rt.Fatalf("MarkDone(%d) failed: %v", idx, err)
		}
		if !inRange && err == nil {
			rt.Fatalf("MarkDone(%d) succeeded out of range", idx)
		}
		for i, task := range p.Tasks() {
			want := before[i]
			if inRange && i == idx {
				want = StatusDone
			}
			if task.Status != want {
				rt.Fatalf("task[%d].Status = %q, want %q", i, task.Status, want)
			}
		}
	})
}
