package domain

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		to     Status
		expect bool
	}{
		{"not done -> done", StatusNotDone, StatusDone, true},
		{"not done -> not done", StatusNotDone, StatusNotDone, false},
		{"done -> not done", StatusDone, StatusNotDone, false},
		{"done -> done", StatusDone, StatusDone, false},
		{"unknown -> done", Status("Pending"), StatusDone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			if got != tt.expect {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "done", "In progress"} {
		if s.IsValid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestStatus_IsDone(t *testing.T) {
	if StatusNotDone.IsDone() {
		t.Error("Not done should not be done")
	}
	if !StatusDone.IsDone() {
		t.Error("Done should be done")
	}
}

func TestStatus_Literals(t *testing.T) {
	if string(StatusNotDone) != "Not done" {
		t.Errorf("StatusNotDone = %q", StatusNotDone)
	}
	if string(StatusDone) != "Done" {
		t.Errorf("StatusDone = %q", StatusDone)
	}
}
