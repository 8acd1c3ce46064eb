package entity

// RecordStatus is the shared lifecycle for appointments and laboratory tests.
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusConfirmed RecordStatus = "confirmed"
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

// IsValid reports whether s is one of the four declared statuses.
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusPending, RecordStatusConfirmed, RecordStatusCompleted, RecordStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the normal patient-facing lifecycle ends here.
// Staff status overrides ignore this on purpose (administrative correction).
func (s RecordStatus) IsTerminal() bool {
	return s == RecordStatusCompleted || s == RecordStatusCancelled
}

// NextStatuses returns the forward transitions of the normal lifecycle:
// pending -> {confirmed, cancelled}, confirmed -> {completed, cancelled}.
func (s RecordStatus) NextStatuses() []RecordStatus {
	switch s {
	case RecordStatusPending:
		return []RecordStatus{RecordStatusConfirmed, RecordStatusCancelled}
	case RecordStatusConfirmed:
		return []RecordStatus{RecordStatusCompleted, RecordStatusCancelled}
	}
	return nil
}
