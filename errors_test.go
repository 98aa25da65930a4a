package adorn

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MatchesByCode(t *testing.T) {
	err := ErrWildcardNotAlone("after")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNoService)
}

func TestError_MatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrCircularDependency([]string{"a"}))

	assert.ErrorIs(t, wrapped, ErrCircularDependencySentinel)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError(CodeValidation, "bad meta", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "VALIDATION")
	assert.Contains(t, err.Error(), "boom")
}

func TestError_Context(t *testing.T) {
	err := ErrWildcardConflict("auth")

	name, ok := err.Context("middleware")
	require.True(t, ok)
	assert.Equal(t, "auth", name)

	_, ok = err.Context("missing")
	assert.False(t, ok)
}

func TestError_Message(t *testing.T) {
	err := ErrUnknownMiddleware([]string{"a", "b"})

	assert.Contains(t, err.Error(), "a, b")
	assert.ErrorIs(t, err, newError(CodeUnknownMiddleware, "", nil))
}
