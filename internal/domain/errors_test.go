package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineError_Unwrap(t *testing.T) {
	underlying := errors.New("device lost")
	err := NewEngineError("play", "command rejected", underlying)

	assert.Contains(t, err.Error(), "play")
	assert.Contains(t, err.Error(), "command rejected")
	assert.ErrorIs(t, err, underlying)
}

func TestRepositoryError_Unwrap(t *testing.T) {
	underlying := errors.New("disk full")
	err := NewRepositoryError("save", "favorites", "write failed", underlying)

	assert.Contains(t, err.Error(), "favorites")
	assert.Contains(t, err.Error(), "save")
	assert.ErrorIs(t, err, underlying)

	var repoErr *RepositoryError
	assert.ErrorAs(t, error(err), &repoErr)
	assert.Equal(t, "favorites", repoErr.Type)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "", "must not be empty")

	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "must not be empty")
}
