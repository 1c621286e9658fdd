package mapping

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/models"
)

// ToModelUser converts a domain user to its model representation.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		Name:               d.Name,
		Username:           d.Username,
		PasswordHash:       d.PasswordHash,
		GoogleSubjectID:    strPtr(d.GoogleSubjectID),
		Email:              strPtr(d.Email),
		RefreshTokenHash:   strPtr(d.RefreshTokenHash),
		RefreshTokenExpiry: d.RefreshTokenExpiry,
		AuditFields:        ToModelAuditFields(d.AuditFields),
		DeletedAt:          d.DeletedAt,
	}
}

// ToDomainUser converts a model user to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		Name:               m.Name,
		Username:           m.Username,
		PasswordHash:       m.PasswordHash,
		GoogleSubjectID:    strVal(m.GoogleSubjectID),
		Email:              strVal(m.Email),
		RefreshTokenHash:   strVal(m.RefreshTokenHash),
		RefreshTokenExpiry: m.RefreshTokenExpiry,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
		DeletedAt:          m.DeletedAt,
	}
}
