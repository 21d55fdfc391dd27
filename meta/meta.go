// meta/meta.go
package meta

// InitialStrength is the strength every new unit starts with.
const InitialStrength = 10

// DefaultFacing is the orientation a unit is created with.
const DefaultFacing = 2

// DefaultEquipmentID replaces equipment ids missing from the catalog at construction.
const DefaultEquipmentID = 1

// NoCarrier marks a unit that is not embarked on an air or naval carrier.
const NoCarrier = -1

// Unassigned is the id of a unit, owner or flag that has not been set yet.
const Unassigned = -1

// BlockedTerrainCost is the movement cost from which terrain costs are
// stop-move or no-enter sentinels rather than plain point costs.
const BlockedTerrainCost = 254
