package guard_test

import (
	"errors"
	"testing"

	"courier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Waybill struct {
		code  string
		guard guard.ConstructorGuard
	}

	errWaybillNotConstructed := errors.New("Waybill must be created via NewWaybill")

	newWaybill := func(code string) (Waybill, error) {
		if code == "" {
			return Waybill{}, errors.New("code is required")
		}
		return Waybill{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(w Waybill) error {
		return w.guard.Validate(errWaybillNotConstructed)
	}

	t.Run("constructed_object_passes_validation", func(t *testing.T) {
		w, err := newWaybill("WB-1001")
		require.NoError(t, err)
		require.NoError(t, validate(w))
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var w Waybill
		err := validate(w)
		require.Error(t, err)
		assert.Equal(t, errWaybillNotConstructed, err)
	})
}
