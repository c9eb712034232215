package models

import "time"

// Shift is a work shift for one employee. Date carries the calendar day;
// StartTime and EndTime carry only the time of day. For a fixed employee no
// two shifts on the same date may overlap, and no two shifts may share the
// exact (employee, date, start time) triple.
type Shift struct {
	BaseModel
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime     time.Time `gorm:"type:time;not null"       json:"startTime"`
	EndTime       time.Time `gorm:"type:time;not null"       json:"endTime"`
	EmployeeEmail string    `gorm:"type:text;index;not null" json:"employeeEmail"`
	Employee      *Employee `gorm:"foreignKey:EmployeeEmail" json:"employee,omitempty"`
}

// Overlaps reports whether the two shifts' time intervals intersect under
// half-open semantics: [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
// Touching endpoints do not overlap.
func (s *Shift) Overlaps(other *Shift) bool {
	return s.StartTime.Before(other.EndTime) && other.StartTime.Before(s.EndTime)
}
