package models

import "github.com/shopspring/decimal"

// Repair is a maintenance task assigned to an employee. Cost is recorded
// after the fact and may stay unset.
type Repair struct {
	BaseModel
	Description   string           `gorm:"type:text;not null"          json:"description"`
	Status        CompletionStatus `gorm:"type:text;default:'Pending'" json:"status"`
	Cost          *decimal.Decimal `gorm:"type:decimal(10,2)"          json:"cost,omitempty"`
	EmployeeEmail string           `gorm:"type:text;index;not null"    json:"employeeEmail"`
	Employee      *Employee        `gorm:"foreignKey:EmployeeEmail"    json:"employee,omitempty"`
}
