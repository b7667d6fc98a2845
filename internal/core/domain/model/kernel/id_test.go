package kernel_test

import (
	"strings"
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create a new ID", func(t *testing.T) {
		id := kernel.NewID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.False(t, id.IsZero())
	})

	t.Run("should create unique IDs", func(t *testing.T) {
		id1 := kernel.NewID()
		id2 := kernel.NewID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestParseID(t *testing.T) {
	t.Run("should accept caller-supplied identifiers", func(t *testing.T) {
		testCases := []string{"D1", "P1", "driver-42", "550e8400-e29b-41d4-a716-446655440000"}

		for _, tc := range testCases {
			id, err := kernel.ParseID(tc)

			require.NoError(t, err)
			assert.Equal(t, tc, id.String())
			assert.NoError(t, id.Validate())
		}
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		id, err := kernel.ParseID("  D1 \n")

		require.NoError(t, err)
		assert.Equal(t, "D1", id.String())
	})

	t.Run("should return error for empty input", func(t *testing.T) {
		testCases := []string{"", "   ", "\t\n"}

		for _, tc := range testCases {
			_, err := kernel.ParseID(tc)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should return error for overly long input", func(t *testing.T) {
		_, err := kernel.ParseID(strings.Repeat("x", kernel.MaxIDLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept input at the length limit", func(t *testing.T) {
		id, err := kernel.ParseID(strings.Repeat("x", kernel.MaxIDLength))

		require.NoError(t, err)
		assert.NoError(t, id.Validate())
	})
}

func TestID_IsEqual(t *testing.T) {
	t.Run("should compare IDs by value", func(t *testing.T) {
		id1, err := kernel.ParseID("D1")
		require.NoError(t, err)
		id2, err := kernel.ParseID("D1")
		require.NoError(t, err)
		id3, err := kernel.ParseID("D2")
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(id3))
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("zero value ID is invalid", func(t *testing.T) {
		var id kernel.ID

		assert.True(t, id.IsZero())
		require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
	})

	t.Run("constructed ID is valid", func(t *testing.T) {
		id, err := kernel.ParseID("P1")
		require.NoError(t, err)

		assert.NoError(t, id.Validate())
	})
}
