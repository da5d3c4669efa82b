package models

import (
	"time"
)

// User is an account that can own one team.
// A pending VerificationToken blocks login until the address is confirmed.
type User struct {
	BaseModel
	Email             string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash      string     `json:"-" gorm:"not null"`
	Name              *string    `json:"name,omitempty" gorm:"size:100"`
	Role              Role       `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	VerificationToken *string    `json:"-" gorm:"uniqueIndex;size:64"`
	EmailVerifiedAt   *time.Time `json:"emailVerifiedAt,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
