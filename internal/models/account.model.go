package models

import (
	"time"
	"unicode"
)

type Account struct {
	BaseModel
	Password    string    `gorm:"type:text;not null" json:"password"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	DateOfBirth time.Time `gorm:"type:date"          json:"dateOfBirth"`
}

// HasEmptyField reports whether any required account field is missing.
func (a *Account) HasEmptyField() bool {
	return a.Password == "" || a.Address == "" || a.DateOfBirth.IsZero()
}

// HasValidPassword enforces the password policy: at least 8 characters with
// at least one uppercase letter and one digit.
func (a *Account) HasValidPassword() bool {
	if len(a.Password) < 8 {
		return false
	}

	var hasUpper, hasDigit bool
	for _, r := range a.Password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}
