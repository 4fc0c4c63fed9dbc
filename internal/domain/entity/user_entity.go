package entity

import (
	"time"
)

// User is the aggregate root for the account domain
// Password holds a bcrypt hash by the time the entity reaches a repository
type User struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns "first last" when both names are set, a single name when
// only one is set, and falls back to the email address otherwise.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.LastName != "" {
		return u.LastName
	}
	return u.Email
}

// HasCompleteProfile reports whether both first and last name are set.
func (u *User) HasCompleteProfile() bool {
	return u.FirstName != "" && u.LastName != ""
}
