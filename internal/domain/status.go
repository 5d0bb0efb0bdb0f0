package domain

// Status represents the completion state of a task.
// The values are written verbatim into party documents.
type Status string

const (
	StatusNotDone Status = "Not done" // Created, not finished yet
	StatusDone    Status = "Done"     // Finished
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusNotDone, StatusDone}
}

// transitions defines the allowed status transitions.
// Flow: Not done → Done (one way only)
var transitions = map[Status][]Status{
	StatusNotDone: {StatusDone},
	StatusDone:    {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsDone returns true if the task is finished.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// IsValid returns true if the status is a known value.
// Statuses loaded from documents are kept verbatim and may be unknown.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotDone, StatusDone:
		return true
	default:
		return false
	}
}
