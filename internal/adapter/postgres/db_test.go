package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"collabhub/internal/core/domain"
)

func TestMapErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.Kind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.KindConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, domain.KindNotFound},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, domain.KindTransient},
		{"deadlock", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40P01"}), domain.KindTransient},
		{"deadline", context.DeadlineExceeded, domain.KindTransient},
		{"domain error kept", domain.InvalidState("nope"), domain.KindInvalidState},
		{"syntax error", &pgconn.PgError{Code: "42601"}, ""},
		{"plain", errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr("op", tt.err)
			assert.Error(t, got)
			assert.Equal(t, tt.want, domain.KindOf(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
	assert.NoError(t, mapErr("op", nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(nil))
}
