package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password always holds a bcrypt hash by the time the entity leaves the
// use case that constructed it; raw input never reaches persistence.
//
// ID is zero until the entity has been persisted exactly once.
type User struct {
	ID              int64
	Name            string
	Email           string
	Password        string
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser constructs an unsaved user with both timestamps set to now
// and the email unverified.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSaved reports whether the entity has been assigned a persistent identity.
func (u *User) IsSaved() bool {
	return u.ID != 0
}

// HasVerifiedEmail is true iff EmailVerifiedAt is set.
func (u *User) HasVerifiedEmail() bool {
	return u.EmailVerifiedAt != nil
}

// MarkEmailVerified records the verification timestamp. Idempotent.
func (u *User) MarkEmailVerified(at time.Time) {
	if u.EmailVerifiedAt != nil {
		return
	}
	u.EmailVerifiedAt = &at
	u.Touch()
}

// Touch refreshes UpdatedAt.
func (u *User) Touch() {
	u.UpdatedAt = time.Now()
}
