package unit

import (
	"panzer/meta"
	"panzer/player"

	"github.com/rs/zerolog/log"
)

// Cell is the board location a unit stands on.
type Cell interface {
	Position() (row, col int)
}

// Unit is one combat unit: its equipment, resource pools, per-turn flags and
// combat counters. A unit is not safe for concurrent use.
type Unit struct {
	ID          int
	EquipmentID int
	Owner       int
	Flag        int
	Player      *player.Player

	Strength     int
	MoveLeft     int // own movement points left this turn, see MovesLeft
	Ammo         int // own ammo, see AmmoLeft
	Fuel         int // own fuel, see FuelLeft
	Facing       int
	Hits         int // hits taken this turn
	Experience   int
	Entrenchment int

	Carrier   int // equipment id of the air/naval carrier, meta.NoCarrier when not embarked
	Transport *Transport

	HasMoved      bool
	HasFired      bool
	HasResupplied bool
	IsMounted     bool
	IsSurprised   bool // ran into a hidden enemy while moving
	IsCore        bool // campaign core unit
	Destroyed     bool
	TempSpotted   bool // visible this turn because it fired

	deployed bool
	cell     Cell
	env      *Env
}

// New creates a unit of the given equipment type. Ids missing from the catalog
// are replaced by meta.DefaultEquipmentID.
func New(env *Env, equipmentID int) *Unit {
	if _, ok := env.Catalog.Get(equipmentID); !ok {
		log.Debug().Int("equipment", equipmentID).Int("default", meta.DefaultEquipmentID).
			Msg("unknown equipment, using default")
		equipmentID = meta.DefaultEquipmentID
	}
	s := env.stats(equipmentID)
	return &Unit{
		ID:          meta.Unassigned,
		EquipmentID: equipmentID,
		Owner:       meta.Unassigned,
		Flag:        meta.Unassigned,
		Strength:    meta.InitialStrength,
		Facing:      meta.DefaultFacing,
		Carrier:     meta.NoCarrier,
		MoveLeft:    s.MovPoints,
		Ammo:        s.Ammo,
		Fuel:        s.Fuel,
		env:         env,
	}
}

// CopyFrom overwrites u with the state of other. The player and transport are
// copied into new values owned by u; the board cell is not copied.
func (u *Unit) CopyFrom(other *Unit) {
	if other == nil {
		return
	}
	u.ID = other.ID
	u.EquipmentID = other.EquipmentID
	u.Owner = other.Owner
	u.Flag = other.Flag
	u.Strength = other.Strength
	u.MoveLeft = other.MoveLeft
	u.Ammo = other.Ammo
	u.Fuel = other.Fuel
	u.Facing = other.Facing
	u.Hits = other.Hits
	u.Experience = other.Experience
	u.Entrenchment = other.Entrenchment
	u.Carrier = other.Carrier
	u.HasMoved = other.HasMoved
	u.HasFired = other.HasFired
	u.HasResupplied = other.HasResupplied
	u.IsMounted = other.IsMounted
	u.IsSurprised = other.IsSurprised
	u.IsCore = other.IsCore
	u.Destroyed = other.Destroyed
	u.TempSpotted = other.TempSpotted
	u.deployed = other.deployed
	if other.env != nil {
		u.env = other.env
	}
	u.Player = other.Player.Copy()
	u.Transport = nil
	if other.Transport != nil {
		u.Transport = NewTransport(u.env.Catalog, other.Transport.EquipmentID)
		u.Transport.CopyFrom(other.Transport)
	}
}

// Copy returns a deep copy of u that is not placed on the board.
func (u *Unit) Copy() *Unit {
	c := &Unit{env: u.env}
	c.CopyFrom(u)
	return c
}

// Cell returns the board cell the unit stands on, nil when it is off the map.
func (u *Unit) Cell() Cell {
	return u.cell
}

// SetCell places the unit on c, or takes it off the map when c is nil.
func (u *Unit) SetCell(c Cell) {
	u.cell = c
	u.deployed = c != nil
}

// Pos returns the board position of the unit, ok is false when it is not on the map.
func (u *Unit) Pos() (row, col int, ok bool) {
	if u.cell == nil {
		return 0, 0, false
	}
	row, col = u.cell.Position()
	return row, col, true
}

// IsDeployed reports whether the unit is on the map rather than in reserve.
func (u *Unit) IsDeployed() bool {
	return u.deployed
}
