package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleInvestor      Role = "Investor"
	RoleResearcher    Role = "Researcher"
)

// Valid reports whether the role is one of the known account classes.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleInvestor, RoleResearcher:
		return true
	}
	return false
}

// User represents a platform account
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // Hash is not exposed in JSON
	Email        string    `json:"email" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);default:'Researcher'"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName sets the table name for User model
func (User) TableName() string {
	return "users"
}
