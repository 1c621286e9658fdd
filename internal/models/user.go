package models

import "time"

// User mirrors the users table.
type User struct {
	UserID             string
	Name               string
	Username           string
	PasswordHash       string
	GoogleSubjectID    *string
	Email              *string
	RefreshTokenHash   *string
	RefreshTokenExpiry *time.Time
	AuditFields
	DeletedAt *time.Time
}
