// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"
	"strings"

	"mentorhub/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// uniqueFieldMessages maps the field inferred from a violated constraint to
// the message reported for it, matching the advisory pre-check wording so a
// constraint race surfaces identically to a pre-check hit.
var uniqueFieldMessages = map[string]string{
	"username": "User with this Username already exists.",
	"email":    "User with this Email already exists.",
	"slug":     "Article with this Slug already exists.",
}

// translateUniqueViolation converts a unique-constraint failure into the same
// field-keyed validation error shape the validators produce. Any other error
// is returned unchanged.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		constraint := strings.ToLower(pgErr.ConstraintName)
		for field, message := range uniqueFieldMessages {
			if strings.Contains(constraint, field) {
				fieldErrs := models.FieldErrors{}
				fieldErrs.Add(field, message)
				return models.NewFieldValidationError(fieldErrs)
			}
		}
		return models.NewValidationError("A record with these values already exists")
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewValidationError("A record with these values already exists")
	}

	return err
}
