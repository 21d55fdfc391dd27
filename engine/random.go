package engine

import (
	"panzer/game"
	"panzer/meta"
	"panzer/unit"

	"golang.org/x/exp/rand"
)

// RandomPicker plays a player by closing on the nearest enemy with every
// unit and attacking once in reach. Combat losses are rolled at random.
type RandomPicker struct {
	rng *rand.Rand

	queue   []game.Order
	turn    int
	owner   int
	planned bool
}

func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) NextOrder(e *Engine, owner int) (game.Order, bool) {
	if !p.planned || p.turn != e.Turn || p.owner != owner {
		p.plan(e, owner)
	}
	if len(p.queue) == 0 {
		return game.Order{}, false
	}
	order := p.queue[0]
	p.queue = p.queue[1:]
	return order, true
}

// plan queues this turn's orders for owner from the board as it stands.
func (p *RandomPicker) plan(e *Engine, owner int) {
	p.turn, p.owner, p.planned = e.Turn, owner, true
	p.queue = p.queue[:0]

	units := e.Live(owner)
	p.rng.Shuffle(len(units), func(i, j int) {
		units[i], units[j] = units[j], units[i]
	})

	for _, u := range units {
		if !u.IsDeployed() {
			continue
		}
		if u.Strength < meta.InitialStrength/2 {
			p.queue = append(p.queue, game.Order{Type: game.ReinforceAction, UnitID: u.ID, Strength: meta.InitialStrength - u.Strength})
			continue
		}
		if u.Ammo <= 0 || (u.FuelLeft() <= 0 && u.Stats().Fuel > 0) {
			base := u.Equipment(true)
			p.queue = append(p.queue, game.Order{Type: game.ResupplyAction, UnitID: u.ID, Ammo: base.Ammo, Fuel: base.Fuel})
			continue
		}

		target, dist := nearestEnemy(e, u)
		if target == nil {
			p.queue = append(p.queue, game.Order{Type: game.PassAction, UnitID: u.ID})
			continue
		}
		if dist <= 1 {
			p.queue = append(p.queue, game.Order{
				Type:           game.AttackAction,
				UnitID:         u.ID,
				TargetID:       target.ID,
				DefenderLosses: p.rng.Intn(4),
				AttackerLosses: p.rng.Intn(3),
			})
			continue
		}
		if u.Transport != nil && !u.IsMounted && dist > 2 {
			p.queue = append(p.queue, game.Order{Type: game.MountAction, UnitID: u.ID})
		}
		p.queue = append(p.queue, stepToward(u, target))
	}
}

// stepToward moves u one hex closer to target.
func stepToward(u, target *unit.Unit) game.Order {
	row, col, _ := u.Pos()
	trow, tcol, _ := target.Pos()
	return game.Order{
		Type:   game.MoveAction,
		UnitID: u.ID,
		Row:    row + sign(trow-row),
		Col:    col + sign(tcol-col),
		Cost:   1,
	}
}

// nearestEnemy returns the closest deployed enemy of u and its distance in
// grid steps, or nil when there is none.
func nearestEnemy(e *Engine, u *unit.Unit) (*unit.Unit, int) {
	row, col, _ := u.Pos()
	var best *unit.Unit
	bestDist := 0
	for _, other := range e.Units {
		if other.Owner == u.Owner || other.Destroyed || !other.IsDeployed() {
			continue
		}
		orow, ocol, _ := other.Pos()
		d := max(abs(orow-row), abs(ocol-col))
		if best == nil || d < bestDist {
			best, bestDist = other, d
		}
	}
	return best, bestDist
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
