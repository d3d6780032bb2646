package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	apperrors "marketplace-system/pkg/errors"
)

func TestClassifyQueryErrorDataException(t *testing.T) {
	// 22P02: invalid text representation, e.g. price[gte]=abc cast to numeric
	err := classifyQueryError("list query", "uploads", &pgconn.PgError{Code: "22P02"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidQueryParameter)
	assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestClassifyQueryErrorOtherDataException(t *testing.T) {
	// 22003: numeric value out of range is still the caller's value
	err := classifyQueryError("count query", "orders", &pgconn.PgError{Code: "22003"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidQueryParameter)
}

func TestClassifyQueryErrorInfrastructure(t *testing.T) {
	// 08006: connection failure is the store's problem, not the caller's
	err := classifyQueryError("list query", "uploads", &pgconn.PgError{Code: "08006"})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidQueryParameter)
}

func TestClassifyQueryErrorPlainError(t *testing.T) {
	err := classifyQueryError("rows", "missions", errors.New("connection reset"))
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestClassifyQueryErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "22P02"})
	err := classifyQueryError("list query", "uploads", wrapped)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQueryParameter)
}
