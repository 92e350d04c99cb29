//go:build unit

package vehicle_test

import (
	"testing"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func driverDefaults(t *testing.T) pricing.Profile {
	t.Helper()
	window, err := pricing.ParseNightWindow("20:00", "06:00")
	require.NoError(t, err)
	return pricing.Profile{
		PricePerKm:      1.8,
		MinimumTripFare: 10,
		Night: pricing.NightRate{
			Enabled:          true,
			Window:           window,
			SurchargePercent: 25,
		},
		Waiting: pricing.WaitingRate{
			PerQuarterHour: 7.5,
		},
	}
}

func TestResolveProfile(t *testing.T) {
	t.Run("empty overrides keep driver defaults", func(t *testing.T) {
		resolved, err := vehicle.ResolveProfile(driverDefaults(t), vehicle.Settings{})
		require.NoError(t, err)

		assert.Equal(t, driverDefaults(t), resolved)
	})

	t.Run("vehicle overrides win over defaults", func(t *testing.T) {
		start, err := pricing.NewTimeOfDay("21:00")
		require.NoError(t, err)

		overrides := vehicle.Settings{
			PricePerKm:            ptr(2.2),
			MinimumTripFare:       ptr(15.0),
			NightStart:            &start,
			NightSurchargePercent: ptr(50.0),
		}

		resolved, err := vehicle.ResolveProfile(driverDefaults(t), overrides)
		require.NoError(t, err)

		assert.Equal(t, 2.2, resolved.PricePerKm)
		assert.Equal(t, 15.0, resolved.MinimumTripFare)
		assert.Equal(t, "21:00", resolved.Night.Window.Start().String())
		assert.Equal(t, "06:00", resolved.Night.Window.End().String(), "unset boundary inherited")
		assert.Equal(t, 50.0, resolved.Night.SurchargePercent)
		assert.Equal(t, 7.5, resolved.Waiting.PerQuarterHour, "untouched sections inherited")
	})

	t.Run("invalid resolved profile is rejected", func(t *testing.T) {
		overrides := vehicle.Settings{PricePerKm: ptr(-1.0)}

		_, err := vehicle.ResolveProfile(driverDefaults(t), overrides)
		assert.ErrorIs(t, err, pricing.ErrNegativeRate)
	})
}

func TestNewVehicle(t *testing.T) {
	driverID := uuid.New()

	cases := []struct {
		name        string
		vehicleName string
		capacity    int
		errIs       error
	}{
		{name: "valid", vehicleName: "Mercedes Classe E", capacity: 4},
		{name: "empty name", vehicleName: "  ", capacity: 4, errIs: vehicle.ErrEmptyVehicleName},
		{name: "zero capacity", vehicleName: "Van", capacity: 0, errIs: vehicle.ErrInvalidCapacity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vehicle.NewVehicle(driverID, tc.vehicleName, "AB-123-CD", tc.capacity, vehicle.Settings{})
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.True(t, v.IsActive())
			assert.Equal(t, driverID, v.DriverID())
		})
	}
}
