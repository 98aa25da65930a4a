package adorn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMeta_EmptyPriorityEntry(t *testing.T) {
	err := validateMeta(Meta{Name: "m", Before: Priority{""}})
	assert.ErrorIs(t, err, ErrValidation)

	err = validateMeta(Meta{Name: "m", After: Priority{"x", ""}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateMeta_WellFormed(t *testing.T) {
	assert.NoError(t, validateMeta(Meta{Name: "m"}))
	assert.NoError(t, validateMeta(Meta{Name: "m", Before: Priority{"a", "b"}}))
	assert.NoError(t, validateMeta(Meta{Name: "m", After: Priority{Wildcard}}))
}

func TestWildcardPriority_None(t *testing.T) {
	kind, err := wildcardPriority(&Middleware{name: "m", before: []string{"a"}, after: []string{"b"}})
	require.NoError(t, err)
	assert.Equal(t, wildcardNone, kind)
}

func TestWildcardPriority_Before(t *testing.T) {
	kind, err := wildcardPriority(&Middleware{name: "m", before: []string{Wildcard}})
	require.NoError(t, err)
	assert.Equal(t, wildcardBefore, kind)
}

func TestWildcardPriority_After(t *testing.T) {
	kind, err := wildcardPriority(&Middleware{name: "m", after: []string{Wildcard}})
	require.NoError(t, err)
	assert.Equal(t, wildcardAfter, kind)
}

func TestWildcardPriority_NotAlone(t *testing.T) {
	_, err := wildcardPriority(&Middleware{name: "m", after: []string{Wildcard, "x"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = wildcardPriority(&Middleware{name: "m", before: []string{"x", Wildcard}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWildcardPriority_CombinedWithExplicit(t *testing.T) {
	_, err := wildcardPriority(&Middleware{name: "m", before: []string{Wildcard}, after: []string{"y"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = wildcardPriority(&Middleware{name: "m", before: []string{"y"}, after: []string{Wildcard}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWildcardPriority_BothWildcards(t *testing.T) {
	_, err := wildcardPriority(&Middleware{name: "m", before: []string{Wildcard}, after: []string{Wildcard}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWildcardPriority_Idempotent(t *testing.T) {
	m := &Middleware{name: "m", after: []string{Wildcard}}

	for i := 0; i < 3; i++ {
		kind, err := wildcardPriority(m)
		require.NoError(t, err)
		assert.Equal(t, wildcardAfter, kind)
	}
}
