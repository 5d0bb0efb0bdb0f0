package domain

// Document is the party document: the exported, file-level form of a party.
// Field order is the on-disk order. Gifts and person IDs are not part of it.
type Document struct {
	Celebrant DocumentPerson   `json:"celebrant" yaml:"celebrant"`
	Date      string           `json:"date" yaml:"date"`
	Location  string           `json:"location" yaml:"location"`
	Budget    float64          `json:"budget" yaml:"budget"`
	Guests    []DocumentPerson `json:"guests" yaml:"guests"`
	Tasks     []DocumentTask   `json:"tasks" yaml:"tasks"`
}

// DocumentPerson is a participant entry of the party document.
type DocumentPerson struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

// DocumentTask is a task entry of the party document.
// The responsible guest is referenced by name.
type DocumentTask struct {
	Description     string `json:"description" yaml:"description"`
	Deadline        string `json:"deadline" yaml:"deadline"`
	ResponsibleName string `json:"responsible_name" yaml:"responsible_name"`
	Status          Status `json:"status" yaml:"status"`
}

// Serialize converts a party into its document form.
func Serialize(p *Party) *Document {
	doc := &Document{
		Celebrant: DocumentPerson{Name: p.Celebrant.Name, Age: p.Celebrant.Age},
		Date:      p.Date,
		Location:  p.Location,
		Budget:    p.Budget,
		Guests:    make([]DocumentPerson, 0, len(p.guests)),
		Tasks:     make([]DocumentTask, 0, len(p.tasks)),
	}
	for _, g := range p.guests {
		doc.Guests = append(doc.Guests, DocumentPerson{Name: g.Name, Age: g.Age})
	}
	for _, t := range p.tasks {
		doc.Tasks = append(doc.Tasks, DocumentTask{
			Description:     t.Description,
			Deadline:        t.Deadline,
			ResponsibleName: t.ResponsibleName(),
			Status:          t.Status,
		})
	}
	return doc
}

// Deserialize rebuilds a party from its document form.
// Every guest entry becomes a new person. A task is attached to the first guest
// whose name equals its responsible_name; tasks without such a guest are dropped
// and counted in dropped. Task status is taken as stored.
func Deserialize(doc *Document) (party *Party, dropped int) {
	celebrant := NewPerson(doc.Celebrant.Name, doc.Celebrant.Age)
	party = NewParty(celebrant, doc.Date, doc.Location, doc.Budget)

	for _, g := range doc.Guests {
		party.AddGuest(NewPerson(g.Name, g.Age))
	}

	for _, t := range doc.Tasks {
		responsible := party.guestByName(t.ResponsibleName)
		if responsible == nil {
			dropped++
			continue
		}
		task := NewTask(t.Description, t.Deadline, responsible)
		task.Status = t.Status
		party.tasks = append(party.tasks, task)
	}

	return party, dropped
}

// guestByName returns the first guest with exactly the given name.
func (p *Party) guestByName(name string) *Person {
	for _, g := range p.guests {
		if g.Name == name {
			return g
		}
	}
	return nil
}
