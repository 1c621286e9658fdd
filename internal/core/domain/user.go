package domain

import "time"

// User represents a back-office user of the application.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	// GoogleSubjectID links the user to a Google account when the user
	// signed up via OAuth. Empty for password-only accounts.
	GoogleSubjectID string `json:"-"`
	Email           string `json:"email"`
	// Refresh token state. Only the SHA256 hash of the token is stored.
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	SubjectID string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}
