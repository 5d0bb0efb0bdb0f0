package domain

// Summary is the structured overview of a party.
// Rendering it as text is up to the caller.
type Summary struct {
	Celebrant       PersonInfo   `json:"celebrant"`
	Date            string       `json:"date"`
	Location        string       `json:"location"`
	Guests          []PersonInfo `json:"guests"`
	Tasks           []TaskInfo   `json:"tasks"`
	Budget          float64      `json:"budget"`
	TotalGiftCost   float64      `json:"totalGiftCost"`
	RemainingBudget float64      `json:"remainingBudget"`
}

// PersonInfo describes a participant.
type PersonInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// TaskInfo describes a task.
type TaskInfo struct {
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Responsible string `json:"responsible"`
	Status      Status `json:"status"`
}

// Info returns the description of the person.
func (p *Person) Info() PersonInfo {
	return PersonInfo{ID: p.ID, Name: p.Name, Age: p.Age}
}

// Info returns the description of the task.
func (t *Task) Info() TaskInfo {
	return TaskInfo{
		Description: t.Description,
		Deadline:    t.Deadline,
		Responsible: t.ResponsibleName(),
		Status:      t.Status,
	}
}

// Summary builds the overview of the party in its current state.
func (p *Party) Summary() Summary {
	guests := make([]PersonInfo, 0, len(p.guests))
	for _, g := range p.guests {
		guests = append(guests, g.Info())
	}
	tasks := make([]TaskInfo, 0, len(p.tasks))
	for _, t := range p.tasks {
		tasks = append(tasks, t.Info())
	}
	total := p.TotalGiftCost()
	return Summary{
		Celebrant:       p.Celebrant.Info(),
		Date:            p.Date,
		Location:        p.Location,
		Budget:          p.Budget,
		Guests:          guests,
		Tasks:           tasks,
		TotalGiftCost:   total,
		RemainingBudget: p.Budget - total,
	}
}
