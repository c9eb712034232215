package models

// CompletionStatus is shared by customer requests and repairs. Transitions
// are deliberately unconstrained: any status may move to any other.
type CompletionStatus string

const (
	StatusPending    CompletionStatus = "Pending"
	StatusInProgress CompletionStatus = "InProgress"
	StatusDone       CompletionStatus = "Done"
)

// IsValid reports whether s is one of the known completion statuses.
func (s CompletionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Request is a customer request tied to a reservation, e.g. extra towels.
// It is cascade-deleted with its reservation.
type Request struct {
	BaseModel
	Description   string           `gorm:"type:text;not null"       json:"description"`
	Status        CompletionStatus `gorm:"type:text;default:'Pending'" json:"status"`
	ReservationID int              `gorm:"type:int;index;not null"  json:"reservationId"`
	Reservation   *Reservation     `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`
}
