package models

import "time"

// Owner, Employee and Customer are the three user kinds. Each is keyed by its
// email address; the account link is optional until the user signs up.

type Owner struct {
	Email     string    `gorm:"type:text;primaryKey" json:"email"`
	Name      string    `gorm:"type:text;not null"   json:"name"`
	AccountID *int      `gorm:"type:int"             json:"accountId,omitempty"`
	Account   *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime"       json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"       json:"updatedAt"`
}

type Employee struct {
	Email     string    `gorm:"type:text;primaryKey" json:"email"`
	Name      string    `gorm:"type:text;not null"   json:"name"`
	Salary    int       `gorm:"type:int"             json:"salary"`
	AccountID *int      `gorm:"type:int"             json:"accountId,omitempty"`
	Account   *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime"       json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"       json:"updatedAt"`
}

type Customer struct {
	Email     string    `gorm:"type:text;primaryKey" json:"email"`
	Name      string    `gorm:"type:text;not null"   json:"name"`
	AccountID *int      `gorm:"type:int"             json:"accountId,omitempty"`
	Account   *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime"       json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"       json:"updatedAt"`
}
