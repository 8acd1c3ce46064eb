package entity

import "testing"

func TestRecordStatusIsValid(t *testing.T) {
	for _, s := range []RecordStatus{RecordStatusPending, RecordStatusConfirmed, RecordStatusCompleted, RecordStatusCancelled} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	for _, s := range []RecordStatus{"", "done", "Pending"} {
		if s.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

func TestRecordStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status RecordStatus
		want   bool
	}{
		{RecordStatusPending, false},
		{RecordStatusConfirmed, false},
		{RecordStatusCompleted, true},
		{RecordStatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("IsTerminal(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRecordStatusNextStatuses(t *testing.T) {
	next := RecordStatusPending.NextStatuses()
	if len(next) != 2 || next[0] != RecordStatusConfirmed || next[1] != RecordStatusCancelled {
		t.Errorf("NextStatuses(pending) = %v", next)
	}

	next = RecordStatusConfirmed.NextStatuses()
	if len(next) != 2 || next[0] != RecordStatusCompleted || next[1] != RecordStatusCancelled {
		t.Errorf("NextStatuses(confirmed) = %v", next)
	}

	if RecordStatusCompleted.NextStatuses() != nil {
		t.Error("NextStatuses(completed) should be nil")
	}
	if RecordStatusCancelled.NextStatuses() != nil {
		t.Error("NextStatuses(cancelled) should be nil")
	}
}
