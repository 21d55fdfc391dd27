package equipment

import "fmt"

// UnitClass groups equipment that shares combat doctrine. Upgrades never cross classes.
type UnitClass int

const (
	NoClass UnitClass = iota
	Infantry
	Tank
	Recon
	AntiTank
	Flak
	Fortification
	GroundTransport
	Artillery
	AirDefence
	Fighter
	TacticalBomber
	LevelBomber
	Submarine
	Destroyer
	CapitalShip
	AircraftCarrier
	LandTransport
	AirTransport
	NavalTransport
)

var classNames = []string{
	"none", "infantry", "tank", "recon", "anti-tank", "flak", "fortification",
	"ground-transport", "artillery", "air-defence", "fighter", "tactical-bomber",
	"level-bomber", "submarine", "destroyer", "capital-ship", "aircraft-carrier",
	"land-transport", "air-transport", "naval-transport",
}

func (c UnitClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classNames[c]
}

// ParseUnitClass maps a class name as written in catalog files to its value.
func ParseUnitClass(name string) (UnitClass, error) {
	for i, n := range classNames {
		if n == name {
			return UnitClass(i), nil
		}
	}
	return NoClass, fmt.Errorf("unknown unit class %q", name)
}

// MoveMethod is how a piece of equipment crosses terrain.
type MoveMethod int

const (
	Tracked MoveMethod = iota
	HalfTracked
	Wheeled
	Leg
	Towed
	Air
	DeepNaval
	Coastal
	AllTerrain
	Amphibious
	Naval
	Mountain
)

var moveMethodNames = []string{
	"tracked", "half-tracked", "wheeled", "leg", "towed", "air",
	"deep-naval", "coastal", "all-terrain", "amphibious", "naval", "mountain",
}

func (m MoveMethod) String() string {
	if m < 0 || int(m) >= len(moveMethodNames) {
		return fmt.Sprintf("movmethod(%d)", int(m))
	}
	return moveMethodNames[m]
}

// ParseMoveMethod maps a move method name to its value.
func ParseMoveMethod(name string) (MoveMethod, error) {
	for i, n := range moveMethodNames {
		if n == name {
			return MoveMethod(i), nil
		}
	}
	return Tracked, fmt.Errorf("unknown move method %q", name)
}

// Stats is the static, per-type description of one kind of equipment.
type Stats struct {
	ID         int
	Name       string
	Class      UnitClass
	MoveMethod MoveMethod
	MovPoints  int // movement allowance per turn
	Ammo       int // base ammo
	Fuel       int // base fuel, 0 for equipment that does not carry any
	Icon       string
}
