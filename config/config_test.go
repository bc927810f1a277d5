package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/wayfarer/engine/coin"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvWorldDir, EnvRulesFile, EnvLogLevel, EnvLogFormat, EnvLogFile, EnvSeed, EnvFoldCase} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.WorldDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.FoldCase)
	assert.Equal(t, DefaultRules(), cfg.Rules)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWorldDir, "worlds/shire")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvFoldCase, "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "worlds/shire", cfg.WorldDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.FoldCase)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"seed", EnvSeed, "abc", "invalid WAYFARER_SEED"},
		{"fold", EnvFoldCase, "sometimes", "invalid WAYFARER_FOLD_CASE"},
		{"level", EnvLogLevel, "loud", "Config.LogLevel"},
		{"format", EnvLogFormat, "xml", "Config.LogFormat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_RulesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting_money: 35\nplayer_name: Sam\n"), 0o644))
	t.Setenv(EnvRulesFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 35.0, cfg.Rules.StartingMoney)
	assert.Equal(t, "Sam", cfg.Rules.PlayerName)
	assert.Equal(t, 20, cfg.Rules.XPPerLevel)
}

func TestLoad_MissingRulesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRulesFile, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]byte(`
starting_money: 12.5
hp_per_level: 15
attack_per_level: 3
xp_per_level: 30
sell_rate: 0.25
`))
	require.NoError(t, err)
	assert.Equal(t, 15, rules.HPPerLevel)

	opts := rules.Options()
	assert.Equal(t, coin.FromFloat(12.5), opts.StartingMoney)
	assert.Equal(t, 30, opts.Growth.XPPerLevel)
	assert.Equal(t, 3, opts.Growth.AttackPerLevel)
	assert.Equal(t, 0.25, opts.SellRate)
}

func TestParseRules_Empty(t *testing.T) {
	rules, err := ParseRules(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestParseRules_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "gold_multiplier: 2\n", "parsing rules"},
		{"zero xp", "xp_per_level: 0\n", "Rules.XPPerLevel: must be greater than 0"},
		{"rate above one", "sell_rate: 1.5\n", "Rules.SellRate: must be at most 1"},
		{"negative money", "starting_money: -1\n", "Rules.StartingMoney: must be at least 0"},
		{"bad yaml", "hp_per_level: [\n", "parsing rules"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidationError_ListsAllFields(t *testing.T) {
	err := Validate(Rules{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3, "hp_per_level, xp_per_level, sell_rate")
}
