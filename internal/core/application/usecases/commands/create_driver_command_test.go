package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("creates command with valid parameters", func(t *testing.T) {
		id := mustID(t, "D1")

		cmd, err := commands.NewCreateDriverCommand(id, "Alice", "555-0101", driver.VehicleBike)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.DriverID().IsEqual(id))
		assert.Equal(t, "Alice", cmd.Name())
		assert.Equal(t, "555-0101", cmd.Phone())
		assert.Equal(t, driver.VehicleBike, cmd.VehicleType())
	})

	t.Run("returns error for invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name    string
			id      kernel.ID
			dName   string
			phone   string
			vehicle driver.VehicleType
			wantErr error
		}{
			{"zero ID", kernel.ID{}, "Alice", "555-0101", driver.VehicleBike, kernel.ErrIDIsNotConstructed},
			{"empty name", mustID(t, "D1"), "", "555-0101", driver.VehicleBike, commands.ErrNameIsRequired},
			{"empty phone", mustID(t, "D1"), "Alice", "", driver.VehicleBike, commands.ErrPhoneIsRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateDriverCommand(tc.id, tc.dName, tc.phone, tc.vehicle)
				require.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateDriverCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDriverCommandIsNotConstructed)
	})
}
