package models

import "time"

// CheckInStatus tracks a reservation through its stay. The legal transitions
// form a small closed graph:
//
//	BeforeCheckIn -> CheckedIn -> CheckedOut
//	BeforeCheckIn -> NoShow
//
// CheckedOut and NoShow are terminal.
type CheckInStatus string

const (
	BeforeCheckIn CheckInStatus = "BeforeCheckIn"
	CheckedIn     CheckInStatus = "CheckedIn"
	CheckedOut    CheckInStatus = "CheckedOut"
	NoShow        CheckInStatus = "NoShow"
)

// CanTransition reports whether moving from s to next is legal. Every
// legal and illegal edge is enumerable here; callers decide which error a
// refused edge maps to.
func (s CheckInStatus) CanTransition(next CheckInStatus) bool {
	switch s {
	case BeforeCheckIn:
		return next == CheckedIn || next == NoShow
	case CheckedIn:
		return next == CheckedOut
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s CheckInStatus) IsTerminal() bool {
	return s == CheckedOut || s == NoShow
}

type Reservation struct {
	BaseModel
	NumPeople int `gorm:"type:int;not null" json:"numPeople"`
	CheckIn   time.Time `gorm:"type:date;not null" json:"checkIn"`
	CheckOut  time.Time `gorm:"type:date;not null" json:"checkOut"`

	// TotalPrice is the remaining balance in integer currency units. Partial
	// payments reduce it; an overpayment leaves it non-positive and is not
	// returned as change.
	TotalPrice int  `gorm:"type:int;not null"       json:"totalPrice"`
	Paid       bool `gorm:"type:bool;default:false" json:"paid"`

	CheckedIn CheckInStatus `gorm:"type:text;default:'BeforeCheckIn'" json:"checkedIn"`

	CustomerEmail string    `gorm:"type:text;index;not null"   json:"customerEmail"`
	Customer      *Customer `gorm:"foreignKey:CustomerEmail"   json:"customer,omitempty"`
}

// ReservedRoom links a reservation to the specific room it occupies. It is
// owned by the reservation: deleting the reservation deletes the link.
type ReservedRoom struct {
	BaseModel
	ReservationID int           `gorm:"type:int;index;not null" json:"reservationId"`
	Reservation   *Reservation  `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`
	RoomNumber    int           `gorm:"type:int;index;not null" json:"roomNumber"`
	SpecificRoom  *SpecificRoom `gorm:"foreignKey:RoomNumber;references:Number" json:"specificRoom,omitempty"`
}
