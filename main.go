package main

import (
	"fmt"
	"os"

	"panzer/config"
	"panzer/engine"
	"panzer/equipment"
	"panzer/game"
	"panzer/logging"
	"panzer/meta"
	"panzer/player"
	"panzer/unit"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"
)

// combat classes a generated side is drawn from
var combatClasses = []equipment.UnitClass{
	equipment.Infantry,
	equipment.Tank,
	equipment.Recon,
	equipment.AntiTank,
	equipment.Flak,
	equipment.Artillery,
}

func main() {
	fs := pflag.NewFlagSet("panzer", pflag.ExitOnError)
	configDir := fs.String("config-dir", "configs", "directory holding "+config.FileName)
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("catalog-source", "yaml", "equipment catalog source (yaml or sqlite)")
	fs.String("catalog", "configs/equipment.yaml", "equipment catalog path")
	fs.Int("turns", 20, "number of turns to play")
	fs.Uint64("seed", 1, "random seed of the skirmish")
	_ = fs.Parse(os.Args[1:])

	if err := run(fs, *configDir); err != nil {
		log.Error().Err(err).Msg("skirmish failed")
		os.Exit(1)
	}
}

func run(fs *pflag.FlagSet, configDir string) error {
	if err := config.BindFlags(fs); err != nil {
		return err
	}
	cfgErr := config.Load(configDir)
	if cfgErr != nil && !config.IsNotFound(cfgErr) {
		return cfgErr
	}
	if err := logging.Setup(config.GetString("logLevel"), config.GetBool("logPretty")); err != nil {
		return err
	}
	if cfgErr != nil {
		log.Warn().Str("dir", configDir).Msg("no config file found, using defaults")
	}

	catalog, err := equipment.Open(config.GetString("catalog.source"), config.GetString("catalog.path"))
	if err != nil {
		return err
	}
	scenario, err := config.LoadScenario()
	if err != nil {
		return err
	}

	winner, score := runSkirmish(catalog, scenario)
	if winner == meta.Unassigned {
		fmt.Printf("No winner after %d turns, side 1 score %.2f\n", scenario.Turns, score)
	} else {
		fmt.Printf("Winner: side %d, side 1 score %.2f\n", winner, score)
	}
	return nil
}

// runSkirmish plays one generated skirmish between two sides and returns the
// winner and the final evaluation from side 1's point of view.
func runSkirmish(catalog equipment.Table, s config.Scenario) (int, float64) {
	env := unit.NewEnv(catalog)
	e := engine.LocalEngine(env, game.NewMap(s.Rows, s.Cols))
	rng := rand.New(rand.NewSource(s.Seed))

	var pool []int
	for _, class := range combatClasses {
		pool = append(pool, catalog.OfClass(class)...)
	}
	if len(pool) == 0 {
		pool = []int{meta.DefaultEquipmentID}
	}
	transports := catalog.OfClass(equipment.LandTransport)

	sides := []*player.Player{player.NewPlayer(1, "Axis"), player.NewPlayer(2, "Allies")}
	for i, p := range sides {
		p.Side = i
		row := 0
		if i == 1 {
			row = s.Rows - 1
		}
		for n := 0; n < s.UnitsPerSide; n++ {
			u := unit.New(env, pool[rng.Intn(len(pool))])
			u.Player = p
			if len(transports) > 0 && env.Rules.IsTransportable(u.EquipmentID) {
				u.SetTransport(transports[rng.Intn(len(transports))])
			}
			id := e.Add(u, p.ID)
			if err := e.Deploy(id, row, n); err != nil {
				log.Warn().Err(err).Int("unit", id).Msg("unit left in reserve")
			}
		}
	}

	winner := e.Run([]int{sides[0].ID, sides[1].ID}, s.Turns, engine.NewRandomPicker(s.Seed))
	return winner, e.Evaluate(sides[0].ID)
}
