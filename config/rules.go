package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/wayfarer/engine/coin"
	"github.com/nathoo/wayfarer/engine/state"
	"github.com/nathoo/wayfarer/engine/world"
)

// Rules are the numeric balancing constants.
type Rules struct {
	StartingMoney  float64 `yaml:"starting_money" validate:"gte=0"`
	HPPerLevel     int     `yaml:"hp_per_level" validate:"gt=0"`
	AttackPerLevel int     `yaml:"attack_per_level" validate:"gte=0"`
	XPPerLevel     int     `yaml:"xp_per_level" validate:"gt=0"`
	SellRate       float64 `yaml:"sell_rate" validate:"gt=0,lte=1"`
	PlayerName     string  `yaml:"player_name" validate:"max=40"`
}

// DefaultRules are used when no rules file is configured. Keys missing from
// a rules file keep these values.
func DefaultRules() Rules {
	return Rules{
		StartingMoney:  20,
		HPPerLevel:     world.DefaultGrowth.HPPerLevel,
		AttackPerLevel: world.DefaultGrowth.AttackPerLevel,
		XPPerLevel:     world.DefaultGrowth.XPPerLevel,
		SellRate:       0.5,
	}
}

// LoadRules reads and validates a YAML rules file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes YAML over DefaultRules. Unknown keys are rejected.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}
	if err := Validate(rules); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Growth returns the leveling constants.
func (r Rules) Growth() world.Growth {
	return world.Growth{
		HPPerLevel:     r.HPPerLevel,
		AttackPerLevel: r.AttackPerLevel,
		XPPerLevel:     r.XPPerLevel,
	}
}

// Options converts the rules into world build options.
func (r Rules) Options() state.Options {
	return state.Options{
		Growth:        r.Growth(),
		StartingMoney: coin.FromFloat(r.StartingMoney),
		SellRate:      r.SellRate,
		PlayerName:    r.PlayerName,
	}
}
