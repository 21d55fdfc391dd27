package unit

import (
	"panzer/equipment"
	"panzer/game"
)

const (
	infantry39   = 1
	opelTruck    = 2
	panzerII     = 3
	sdkfz222     = 4
	panzerIII    = 5
	infantry43   = 6
	sdkfz251     = 7
	transportFly = 8
	flak88       = 9
)

func testCatalog() equipment.Table {
	return equipment.NewTable(
		equipment.Stats{ID: infantry39, Name: "Inf 39", Class: equipment.Infantry, MoveMethod: equipment.Leg, MovPoints: 3, Ammo: 8, Icon: "inf39.png"},
		equipment.Stats{ID: opelTruck, Name: "Opel 6700", Class: equipment.LandTransport, MoveMethod: equipment.Wheeled, MovPoints: 6, Fuel: 60, Icon: "opel.png"},
		equipment.Stats{ID: panzerII, Name: "PzIIC", Class: equipment.Tank, MoveMethod: equipment.Tracked, MovPoints: 5, Ammo: 10, Fuel: 50, Icon: "pz2.png"},
		equipment.Stats{ID: sdkfz222, Name: "Sdkfz 222", Class: equipment.Recon, MoveMethod: equipment.Wheeled, MovPoints: 6, Ammo: 6, Fuel: 40, Icon: "sdkfz222.png"},
		equipment.Stats{ID: panzerIII, Name: "PzIIIJ", Class: equipment.Tank, MoveMethod: equipment.Tracked, MovPoints: 6, Ammo: 12, Fuel: 60, Icon: "pz3.png"},
		equipment.Stats{ID: infantry43, Name: "Inf 43", Class: equipment.Infantry, MoveMethod: equipment.Leg, MovPoints: 3, Ammo: 10, Icon: "inf43.png"},
		equipment.Stats{ID: sdkfz251, Name: "Sdkfz 251", Class: equipment.LandTransport, MoveMethod: equipment.HalfTracked, MovPoints: 7, Fuel: 70, Icon: "sdkfz251.png"},
		equipment.Stats{ID: transportFly, Name: "Ju52", Class: equipment.AirTransport, MoveMethod: equipment.Air, MovPoints: 10, Fuel: 80, Icon: "ju52.png"},
		equipment.Stats{ID: flak88, Name: "88 Flak", Class: equipment.Flak, MoveMethod: equipment.Towed, MovPoints: 1, Ammo: 7, Icon: "flak88.png"},
	)
}

func testEnv() *Env {
	return NewEnv(testCatalog())
}

// fixedRules answers every question the same way.
type fixedRules struct {
	usesFuel      bool
	transportable bool
}

func (r fixedRules) UnitUsesFuel(game.Equipped) bool { return r.usesFuel }
func (r fixedRules) IsTransportable(int) bool { return r.transportable }

type testCell struct{ row, col int }

func (c *testCell) Position() (int, int) { return c.row, c.col }

// mountedInfantry is an infantry unit riding an Opel truck.
func mountedInfantry(env *Env) *Unit {
	u := New(env, infantry39)
	u.SetTransport(opelTruck)
	u.Mount()
	return u
}
