package engine

import (
	"fmt"

	"panzer/equipment"
	"panzer/game"
	"panzer/meta"
	"panzer/unit"
	"panzer/utils"

	"github.com/rs/zerolog/log"
)

// Engine drives the units of one game. Orders are applied one at a time; the
// engine and its units are not safe for concurrent use.
type Engine struct {
	Env   *unit.Env
	Map   *game.Map
	Units []*unit.Unit
	Turn  int

	nextID int
}

func LocalEngine(env *unit.Env, m *game.Map) *Engine {
	if env == nil || m == nil {
		panic("engine needs an env and a map")
	}
	return &Engine{
		Env:  env,
		Map:  m,
		Turn: 1,
	}
}

// Add puts u in the roster under owner and returns the id it was given.
// Units are added in reserve; use Deploy to place them.
func (e *Engine) Add(u *unit.Unit, owner int) int {
	u.ID = e.nextID
	e.nextID++
	u.Owner = owner
	if u.Flag == meta.Unassigned {
		u.Flag = owner
	}
	e.Units = append(e.Units, u)
	return u.ID
}

// Unit returns the unit with the given id.
func (e *Engine) Unit(id int) (*unit.Unit, bool) {
	i := utils.FindIndexFunc(e.Units, func(u *unit.Unit) bool { return u.ID == id })
	if i < 0 {
		return nil, false
	}
	return e.Units[i], true
}

// Live returns the units of owner that are not destroyed, in roster order.
func (e *Engine) Live(owner int) []*unit.Unit {
	var live []*unit.Unit
	for _, u := range e.Units {
		if u.Owner == owner && !u.Destroyed {
			live = append(live, u)
		}
	}
	return live
}

// Deploy places a reserve unit on an empty hex.
func (e *Engine) Deploy(id, row, col int) error {
	u, err := e.liveUnit(id)
	if err != nil {
		return err
	}
	if u.IsDeployed() {
		return fmt.Errorf("%w: unit %d is already deployed", ErrIllegalOrder, id)
	}
	hex, err := e.freeHex(row, col)
	if err != nil {
		return err
	}
	e.place(u, hex)
	return nil
}

// Remove takes u off the board and out of the roster.
func (e *Engine) Remove(u *unit.Unit) {
	e.lift(u)
	if i := utils.FindIndex(e.Units, u); i >= 0 {
		e.Units = append(e.Units[:i], e.Units[i+1:]...)
	}
}

// Apply validates order and applies it to the units it names.
func (e *Engine) Apply(order game.Order) error {
	u, err := e.liveUnit(order.UnitID)
	if err != nil {
		return err
	}

	switch order.Type {
	case game.MoveAction:
		err = e.move(u, order)
	case game.AttackAction:
		err = e.attack(u, order)
	case game.ResupplyAction:
		if err = e.checkIdle(u); err == nil {
			u.Resupply(order.Ammo, order.Fuel)
		}
	case game.ReinforceAction:
		if err = e.checkIdle(u); err == nil {
			if u.Strength >= meta.InitialStrength {
				return fmt.Errorf("%w: unit %d is at full strength", ErrIllegalOrder, u.ID)
			}
			u.Reinforce(order.Strength)
		}
	case game.UpgradeAction:
		err = e.upgrade(u, order)
	case game.MountAction:
		switch {
		case u.Transport == nil:
			err = fmt.Errorf("%w: unit %d has no transport", ErrIllegalOrder, u.ID)
		case u.HasMoved:
			err = fmt.Errorf("%w: unit %d has already moved", ErrIllegalOrder, u.ID)
		default:
			u.Mount()
		}
	case game.UnmountAction:
		if !u.IsMounted {
			err = fmt.Errorf("%w: unit %d is not mounted", ErrIllegalOrder, u.ID)
		} else {
			u.Unmount()
		}
	case game.DisembarkAction:
		if u.Carrier == meta.NoCarrier {
			err = fmt.Errorf("%w: unit %d is not on a carrier", ErrIllegalOrder, u.ID)
		} else {
			u.Disembark()
		}
	case game.PassAction:
	default:
		err = fmt.Errorf("%w: unknown action %d", ErrIllegalOrder, order.Type)
	}
	if err != nil {
		return err
	}

	log.Debug().Int("turn", e.Turn).Int("unit", u.ID).Stringer("action", order.Type).Msg("order applied")
	return nil
}

func (e *Engine) move(u *unit.Unit, order game.Order) error {
	if !u.IsDeployed() {
		return fmt.Errorf("%w: unit %d is not deployed", ErrIllegalOrder, u.ID)
	}
	if u.HasMoved {
		return fmt.Errorf("%w: unit %d has already moved", ErrIllegalOrder, u.ID)
	}
	if order.Cost <= 0 || order.Cost > u.MovesLeft() {
		return fmt.Errorf("%w: unit %d cannot spend %d of %d moves", ErrIllegalOrder, u.ID, order.Cost, u.MovesLeft())
	}
	if e.usesFuel(u) && unit.FuelCost(order.Cost) > u.FuelLeft() {
		return fmt.Errorf("%w: unit %d is out of fuel", ErrIllegalOrder, u.ID)
	}
	hex, err := e.freeHex(order.Row, order.Col)
	if err != nil {
		return err
	}

	u.Move(order.Cost)
	e.place(u, hex)
	return nil
}

// usesFuel mirrors the fuel decision Move makes for u.
func (e *Engine) usesFuel(u *unit.Unit) bool {
	if u.IsMounted && u.Transport != nil {
		return e.Env.Rules.UnitUsesFuel(u.Transport)
	}
	return u.Carrier == meta.NoCarrier && e.Env.Rules.UnitUsesFuel(u)
}

func (e *Engine) attack(u *unit.Unit, order game.Order) error {
	switch {
	case !u.IsDeployed():
		return fmt.Errorf("%w: unit %d is not deployed", ErrIllegalOrder, u.ID)
	case u.HasFired:
		return fmt.Errorf("%w: unit %d has already fired", ErrIllegalOrder, u.ID)
	case u.IsMounted:
		return fmt.Errorf("%w: unit %d cannot fire while mounted", ErrIllegalOrder, u.ID)
	case u.Ammo <= 0:
		return fmt.Errorf("%w: unit %d is out of ammo", ErrIllegalOrder, u.ID)
	}
	target, err := e.liveUnit(order.TargetID)
	if err != nil {
		return err
	}
	if target.Owner == u.Owner {
		return fmt.Errorf("%w: unit %d cannot attack friendly unit %d", ErrIllegalOrder, u.ID, target.ID)
	}
	if !target.IsDeployed() {
		return fmt.Errorf("%w: unit %d is not on the map", ErrIllegalOrder, target.ID)
	}

	u.Fire(true)
	if target.Ammo > 0 && !target.IsMounted {
		target.Fire(false)
	}
	target.Hit(order.DefenderLosses)
	u.Hit(order.AttackerLosses)

	for _, c := range []*unit.Unit{u, target} {
		if c.Destroyed {
			log.Info().Int("turn", e.Turn).Int("unit", c.ID).Int("owner", c.Owner).Msg("unit destroyed")
			e.lift(c)
		}
	}
	return nil
}

// upgrade refits u. Deployed units must not have acted yet this turn; units in
// reserve may upgrade any number of times.
func (e *Engine) upgrade(u *unit.Unit, order game.Order) error {
	if u.IsDeployed() {
		if err := e.checkIdle(u); err != nil {
			return err
		}
	}
	if order.TransportID > 0 {
		s, ok := e.Env.Catalog.Get(order.TransportID)
		if !ok || s.Class != equipment.LandTransport {
			return fmt.Errorf("%w: %d is not a transport", ErrIllegalOrder, order.TransportID)
		}
	}
	if !u.Upgrade(order.EquipmentID, order.TransportID) {
		return fmt.Errorf("%w: unit %d cannot upgrade to %d", ErrIllegalOrder, u.ID, order.EquipmentID)
	}
	return nil
}

func (e *Engine) checkIdle(u *unit.Unit) error {
	if u.HasMoved || u.HasFired || u.HasResupplied {
		return fmt.Errorf("%w: unit %d has already acted this turn", ErrIllegalOrder, u.ID)
	}
	return nil
}

// EndTurn closes the turn of every live unit of owner.
func (e *Engine) EndTurn(owner int) {
	for _, u := range e.Live(owner) {
		u.EndTurn()
	}
	log.Debug().Int("turn", e.Turn).Int("owner", owner).Msg("turn ended")
}

// Run plays up to turns full turns, each player giving orders through picker
// until it passes, then ending its turn. It stops early when at most one player
// has units left and returns that player, or meta.Unassigned when undecided.
func (e *Engine) Run(players []int, turns int, picker Picker) int {
	if len(players) < 2 {
		panic("need at least two players")
	}

	log.Info().Msgf("player %d is starting", players[0])

	for ; e.Turn <= turns; e.Turn++ {
		for _, owner := range players {
			for n := 0; n < MaxOrders; n++ {
				order, ok := picker.NextOrder(e, owner)
				if !ok {
					break
				}
				if err := e.Apply(order); err != nil {
					log.Debug().Err(err).Int("turn", e.Turn).Int("owner", owner).Msg("order refused")
				}
			}
			e.EndTurn(owner)
		}

		if winner, over := e.winner(players); over {
			log.Info().Int("turn", e.Turn).Int("winner", winner).Msg("game over")
			return winner
		}
	}

	log.Info().Msgf("stopped after %d turns with no winner", turns)
	return meta.Unassigned
}

func (e *Engine) winner(players []int) (int, bool) {
	alive := []int{}
	for _, p := range players {
		if len(e.Live(p)) > 0 {
			alive = append(alive, p)
		}
	}
	switch len(alive) {
	case 0:
		return meta.Unassigned, true
	case 1:
		return alive[0], true
	default:
		return meta.Unassigned, false
	}
}

func (e *Engine) liveUnit(id int) (*unit.Unit, error) {
	u, ok := e.Unit(id)
	if !ok {
		return nil, fmt.Errorf("%w: no unit %d", ErrIllegalOrder, id)
	}
	if u.Destroyed {
		return nil, fmt.Errorf("%w: unit %d is destroyed", ErrIllegalOrder, id)
	}
	return u, nil
}

func (e *Engine) freeHex(row, col int) (*game.Hex, error) {
	hex, ok := e.Map.HexAt(row, col)
	if !ok {
		return nil, fmt.Errorf("%w: hex %d,%d is off the map", ErrIllegalOrder, row, col)
	}
	if hex.Unit != game.NoUnit {
		return nil, fmt.Errorf("%w: hex %d,%d is occupied by unit %d", ErrIllegalOrder, row, col, hex.Unit)
	}
	return hex, nil
}

func (e *Engine) place(u *unit.Unit, hex *game.Hex) {
	e.lift(u)
	hex.Unit = u.ID
	u.SetCell(hex)
}

// lift takes u off its hex, if it has one.
func (e *Engine) lift(u *unit.Unit) {
	if row, col, ok := u.Pos(); ok {
		if hex, ok := e.Map.HexAt(row, col); ok && hex.Unit == u.ID {
			hex.Unit = game.NoUnit
		}
	}
	u.SetCell(nil)
}
