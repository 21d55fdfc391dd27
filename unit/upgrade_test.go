package unit

import (
	"testing"

	"panzer/meta"

	"github.com/stretchr/testify/require"
)

func TestUpgrade(t *testing.T) {
	env := testEnv()

	t.Run("rejects a class change without touching the unit", func(t *testing.T) {
		u := mountedInfantry(env)
		u.SetCell(&testCell{row: 1, col: 1})
		u.Entrenchment = 2
		u.Transport.Fuel = 17
		before := *u
		transportBefore := *u.Transport

		require.False(t, u.Upgrade(panzerII, sdkfz251))
		require.Equal(t, before, *u)
		require.Equal(t, transportBefore, *u.Transport)
	})

	t.Run("rejects unknown equipment", func(t *testing.T) {
		u := New(env, panzerII)
		before := *u

		require.False(t, u.Upgrade(999, 0))
		require.Equal(t, before, *u)
	})

	t.Run("same class upgrade", func(t *testing.T) {
		u := New(env, panzerII)
		u.Entrenchment = 2

		require.True(t, u.Upgrade(panzerIII, 0))
		require.Equal(t, panzerIII, u.EquipmentID)
		require.Zero(t, u.Entrenchment)
		require.Nil(t, u.Transport, "Tanks are not transportable")
	})

	t.Run("non-transportable upgrade drops the transport", func(t *testing.T) {
		u := New(env, panzerII)
		u.SetTransport(opelTruck)

		require.True(t, u.Upgrade(panzerIII, opelTruck))
		require.Nil(t, u.Transport)
	})

	t.Run("transportable upgrade assigns a transport", func(t *testing.T) {
		u := New(env, infantry39)

		require.True(t, u.Upgrade(infantry43, opelTruck))
		require.Equal(t, infantry43, u.EquipmentID)
		require.NotNil(t, u.Transport)
		require.Equal(t, opelTruck, u.Transport.EquipmentID)
		require.Equal(t, 60, u.Transport.Fuel)
	})

	t.Run("transportable upgrade without transport id keeps the current one", func(t *testing.T) {
		u := New(env, infantry39)
		u.SetTransport(opelTruck)

		require.True(t, u.Upgrade(infantry43, 0))
		require.Equal(t, opelTruck, u.Transport.EquipmentID)
	})

	t.Run("non positive id upgrades only the transport", func(t *testing.T) {
		for _, id := range []int{0, -1} {
			u := New(env, infantry39)
			u.SetTransport(opelTruck)
			u.Transport.Fuel = 5

			require.True(t, u.Upgrade(id, sdkfz251))
			require.Equal(t, infantry39, u.EquipmentID)
			require.Equal(t, sdkfz251, u.Transport.EquipmentID)
			require.Equal(t, 5, u.Transport.Fuel, "Transport pools survive a type change")
		}
	})

	t.Run("deployed units spend their turn", func(t *testing.T) {
		u := New(env, panzerII)
		u.SetCell(&testCell{})

		require.True(t, u.Upgrade(panzerIII, 0))
		require.True(t, u.HasMoved)
		require.True(t, u.HasFired)
		require.True(t, u.HasResupplied)
	})

	t.Run("reserve units stay free to act", func(t *testing.T) {
		u := New(env, panzerII)

		require.True(t, u.Upgrade(panzerIII, 0))
		require.False(t, u.HasMoved)
		require.False(t, u.HasFired)
		require.False(t, u.HasResupplied)
	})

	t.Run("towed guns are transportable", func(t *testing.T) {
		u := New(env, flak88)

		require.True(t, u.Upgrade(0, opelTruck))
		require.NotNil(t, u.Transport)
	})
}

func TestTransportComposition(t *testing.T) {
	env := testEnv()

	t.Run("set transport creates then retypes", func(t *testing.T) {
		u := New(env, infantry39)
		u.SetTransport(opelTruck)
		require.Equal(t, 60, u.Transport.Fuel)

		u.Transport.Fuel = 9
		first := u.Transport
		u.SetTransport(sdkfz251)

		require.Same(t, first, u.Transport)
		require.Equal(t, sdkfz251, u.Transport.EquipmentID)
		require.Equal(t, 9, u.Transport.Fuel)
	})

	t.Run("mount and unmount", func(t *testing.T) {
		u := mountedInfantry(env)
		require.True(t, u.IsMounted)
		u.Unmount()
		require.False(t, u.IsMounted)
		u.Mount()
		require.True(t, u.IsMounted)
	})

	t.Run("embark leaves the unit alone", func(t *testing.T) {
		u := New(env, infantry39)
		before := *u
		u.Embark()
		require.Equal(t, before, *u)
	})

	t.Run("disembark clears the carrier", func(t *testing.T) {
		u := New(env, infantry39)
		u.Carrier = transportFly
		require.Equal(t, 10, u.MovesLeft())

		u.Disembark()
		require.Equal(t, meta.NoCarrier, u.Carrier)
		require.Equal(t, 3, u.MovesLeft())
	})
}
