package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusConfirmed  Status = "Confirmed"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "No Show"
)

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// InitialStatus is the only status a new appointment may have; the
// client-supplied value is ignored on creation.
func InitialStatus() Status {
	return StatusScheduled
}

// Status changes are deliberately unrestricted: any status may follow
// any other via the status-update operation.
