package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	boom := errors.New("boom")

	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, MapError(fmt.Errorf("wrapped: %w", sql.ErrNoRows)), ErrNotFound)
	assert.ErrorIs(t, MapError(&pq.Error{Code: "23505"}), ErrConflict)
	assert.Equal(t, boom, MapError(boom))

	other := &pq.Error{Code: "23503"}
	assert.Equal(t, error(other), MapError(other))
}
