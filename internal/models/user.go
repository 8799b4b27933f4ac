package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// RoleFromString maps a stored role name onto the closed enum.
// Anything outside the enum is rejected rather than compared as a raw string.
func RoleFromString(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

type Role struct {
	ID       uint     `gorm:"primaryKey"`
	RoleName UserRole `gorm:"type:varchar(20);uniqueIndex;not null"`
}

// User rows keep the email lowercased; the unique index is the authoritative
// uniqueness check, the application-level pre-check only improves the error message.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	RoleID       uint   `gorm:"not null"`
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
