package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   \t ", []string{}},
		{"LOOK", []string{"look"}},
		{"  Take   Sledge \n", []string{"take", "sledge"}},
		{"alias g\tgo", []string{"alias", "g", "go"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			assert.Len(t, got, len(tt.want))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSeedAliasesSplitsAlternatives(t *testing.T) {
	a := SeedAliases([]AliasSpec{
		{Keys: "get|take", Command: "take-item"},
		{Keys: "N", Command: "Move  North"},
		{Keys: "x||", Command: "look"},
	})

	assert.Equal(t, Aliases{
		"get":  "take-item",
		"take": "take-item",
		"n":    "move north",
		"x":    "look",
	}, a)
}

func TestDefaultAliases(t *testing.T) {
	a := SeedAliases(DefaultAliases)
	tests := map[string]string{
		"drop":  "drop-item",
		"get":   "take-item",
		"take":  "take-item",
		"i":     "inventory",
		"inv":   "inventory",
		"n":     "move north",
		"north": "move north",
		"w":     "move west",
		"s":     "move south",
		"e":     "move east",
		"u":     "move up",
		"d":     "move down",
		"down":  "move down",
		"alias": "alias-command",
	}
	for key, want := range tests {
		assert.Equal(t, want, a[key], "alias %q", key)
	}
}

func TestAliasesExpand(t *testing.T) {
	a := Aliases{"n": "move north", "take": "take-item"}

	assert.Equal(t, []string{"move", "north"}, a.Expand([]string{"n"}))
	assert.Equal(t, []string{"take-item", "all"}, a.Expand([]string{"take", "all"}))
	assert.Equal(t, []string{"look", "n"}, a.Expand([]string{"look", "n"}), "only the first token expands")
	assert.Empty(t, a.Expand(nil))
}

func TestAliasesExpandDoesNotRecurse(t *testing.T) {
	a := Aliases{"g": "go", "go": "move"}
	assert.Equal(t, []string{"go", "north"}, a.Expand([]string{"g", "north"}))
}
