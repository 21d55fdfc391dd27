package engine

import (
	"testing"

	"panzer/game"

	"github.com/stretchr/testify/require"
)

// drain collects every order the picker gives owner this turn.
func drain(e *Engine, p *RandomPicker, owner int) []game.Order {
	var orders []game.Order
	for {
		o, ok := p.NextOrder(e, owner)
		if !ok {
			return orders
		}
		orders = append(orders, o)
	}
}

func TestRandomPicker(t *testing.T) {
	t.Run("attacks an enemy in reach", func(t *testing.T) {
		e := newTestEngine()
		a := deployed(t, e, bigTank, 1, 2, 2)
		d := deployed(t, e, infantry, 2, 3, 3)

		orders := drain(e, NewRandomPicker(1), 1)

		require.Len(t, orders, 1)
		require.Equal(t, game.AttackAction, orders[0].Type)
		require.Equal(t, a.ID, orders[0].UnitID)
		require.Equal(t, d.ID, orders[0].TargetID)
		require.GreaterOrEqual(t, orders[0].DefenderLosses, 0)
		require.Less(t, orders[0].DefenderLosses, 4)
	})

	t.Run("mounts and closes in on a distant enemy", func(t *testing.T) {
		e := newTestEngine()
		u := deployed(t, e, infantry, 1, 0, 0)
		u.SetTransport(truck)
		deployed(t, e, tank, 2, 5, 3)

		orders := drain(e, NewRandomPicker(1), 1)

		require.Equal(t, []game.Order{
			{Type: game.MountAction, UnitID: u.ID},
			{Type: game.MoveAction, UnitID: u.ID, Row: 1, Col: 1, Cost: 1},
		}, orders)
	})

	t.Run("reinforces, resupplies and passes", func(t *testing.T) {
		e := newTestEngine()
		weak := deployed(t, e, tank, 1, 0, 0)
		weak.Hit(6)
		dry := deployed(t, e, tank, 1, 0, 2)
		dry.Ammo = 0
		reserve := deployed(t, e, tank, 1, 0, 4)
		e.lift(reserve)

		byUnit := map[int]game.Order{}
		for _, o := range drain(e, NewRandomPicker(3), 1) {
			byUnit[o.UnitID] = o
		}

		require.Len(t, byUnit, 2, "Reserve units get no orders")
		require.Equal(t, game.Order{Type: game.ReinforceAction, UnitID: weak.ID, Strength: 6}, byUnit[weak.ID])
		require.Equal(t, game.Order{Type: game.ResupplyAction, UnitID: dry.ID, Ammo: 2, Fuel: 3}, byUnit[dry.ID])

		lonely := newTestEngine()
		u := deployed(t, lonely, tank, 1, 0, 0)
		require.Equal(t, []game.Order{{Type: game.PassAction, UnitID: u.ID}}, drain(lonely, NewRandomPicker(3), 1))
	})

	t.Run("plans again on a new turn", func(t *testing.T) {
		e := newTestEngine()
		deployed(t, e, tank, 1, 0, 0)
		p := NewRandomPicker(5)

		require.Len(t, drain(e, p, 1), 1)
		_, ok := p.NextOrder(e, 1)
		require.False(t, ok, "A drained turn stays drained")

		e.Turn++
		require.Len(t, drain(e, p, 1), 1)
	})
}
