// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role identifies the permission tier of a user account.
type Role string

const (
	// RoleMentor grants article authoring and editing permission.
	RoleMentor Role = "mentor"
	// RoleStudent is the default reader role.
	RoleStudent Role = "student"
)

// RoleChoices is the fixed set of roles accepted at sign-up.
var RoleChoices = []Role{RoleMentor, RoleStudent}

// ValidRole reports whether r is one of the accepted role choices.
func ValidRole(r Role) bool {
	for _, choice := range RoleChoices {
		if r == choice {
			return true
		}
	}
	return false
}

// User represents a registered account in the MentorHub application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:varchar(16);not null;default:'student'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Articles  []Article      `gorm:"foreignKey:UserID" json:"articles,omitempty"`
}

// IsMentor reports whether the user holds the mentor role.
func (u *User) IsMentor() bool {
	return u.Role == RoleMentor
}
