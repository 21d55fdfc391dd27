package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "panzer.cfg.json"

// Scenario holds the settings of a generated skirmish.
type Scenario struct {
	Turns        int
	Seed         uint64
	UnitsPerSide int
	Rows         int
	Cols         int
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logPretty", true)

	viper.SetDefault("catalog.source", "yaml")
	viper.SetDefault("catalog.path", "configs/equipment.yaml")

	viper.SetDefault("scenario.turns", 20)
	viper.SetDefault("scenario.seed", 1)
	viper.SetDefault("scenario.unitsPerSide", 4)
	viper.SetDefault("scenario.rows", 8)
	viper.SetDefault("scenario.cols", 8)

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// IsNotFound reports whether err only means there was no config file to read.
func IsNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

// BindFlags lets command-line flags override the matching config keys.
// Flags that are not defined on fs are skipped.
func BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"logLevel":       "log-level",
		"catalog.source": "catalog-source",
		"catalog.path":   "catalog",
		"scenario.turns": "turns",
		"scenario.seed":  "seed",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadScenario reads the scenario section. Each key is looked up on its own so
// defaults and bound flags fill in whatever the file leaves out.
func LoadScenario() (Scenario, error) {
	s := Scenario{
		Turns:        GetInt("scenario.turns"),
		Seed:         viper.GetUint64("scenario.seed"),
		UnitsPerSide: GetInt("scenario.unitsPerSide"),
		Rows:         GetInt("scenario.rows"),
		Cols:         GetInt("scenario.cols"),
	}
	if s.Turns < 1 {
		return Scenario{}, fmt.Errorf("invalid scenario config: %d turns", s.Turns)
	}
	if s.Rows < 2 || s.Cols < 1 {
		return Scenario{}, fmt.Errorf("invalid scenario config: map %dx%d is too small", s.Rows, s.Cols)
	}
	if s.UnitsPerSide > s.Cols {
		return Scenario{}, fmt.Errorf("invalid scenario config: %d units do not fit on %d columns", s.UnitsPerSide, s.Cols)
	}
	return s, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
