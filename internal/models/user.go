// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account on the prayer request board. The password column
// always holds a bcrypt hash, never cleartext, and is excluded from JSON.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	NomeCompleto string    `json:"nome_completo"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the name used when the user authors a comment.
func (u *User) DisplayName() string {
	if u.NomeCompleto != "" {
		return u.NomeCompleto
	}
	return u.Username
}
