package repository

import (
	"errors"
	"fmt"
	"testing"

	"mentorhub/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		constraint    string
		expectedField string
	}{
		{"username constraint", "idx_users_username", "username"},
		{"email constraint", "idx_users_email", "email"},
		{"slug constraint", "idx_articles_slug", "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := translateUniqueViolation(&pgconn.PgError{
				Code:           pgUniqueViolation,
				ConstraintName: tt.constraint,
			})

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Len(t, appErr.Fields[tt.expectedField], 1)
		})
	}
}

func TestTranslateUniqueViolation_WrappedError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create failed: %w", &pgconn.PgError{
		Code:           pgUniqueViolation,
		ConstraintName: "idx_users_email",
	})

	err := translateUniqueViolation(wrapped)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"User with this Email already exists."}, map[string][]string(appErr.Fields)["email"])
}

func TestTranslateUniqueViolation_UnknownConstraint(t *testing.T) {
	t.Parallel()

	err := translateUniqueViolation(&pgconn.PgError{
		Code:           pgUniqueViolation,
		ConstraintName: "idx_widgets_serial",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, appErr.Fields)
}

func TestTranslateUniqueViolation_OtherErrorsPassThrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, translateUniqueViolation(nil))

	sentinel := errors.New("connection refused")
	assert.Same(t, sentinel, translateUniqueViolation(sentinel))

	other := &pgconn.PgError{Code: "23503", ConstraintName: "fk_articles_user"}
	assert.Same(t, error(other), translateUniqueViolation(other))
}
