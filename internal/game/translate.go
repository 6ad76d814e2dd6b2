package game

import "strings"

// AliasSpec seeds the alias table. Keys may list alternatives separated by
// "|", all of which expand to Command.
type AliasSpec struct {
	Keys    string
	Command string
}

// DefaultAliases is the table every new world starts with.
var DefaultAliases = []AliasSpec{
	{Keys: "drop", Command: "drop-item"},
	{Keys: "get|take", Command: "take-item"},
	{Keys: "i|inv", Command: "inventory"},
	{Keys: "go", Command: "move"},
	{Keys: "n|north", Command: "move north"},
	{Keys: "w|west", Command: "move west"},
	{Keys: "s|south", Command: "move south"},
	{Keys: "e|east", Command: "move east"},
	{Keys: "u|up", Command: "move up"},
	{Keys: "d|down", Command: "move down"},
	{Keys: "alias", Command: "alias-command"},
}

// Aliases maps a typed token to the command words it stands for.
type Aliases map[string]string

// SeedAliases builds a table from specs. Later specs win on clashing keys.
func SeedAliases(specs []AliasSpec) Aliases {
	a := make(Aliases)
	for _, spec := range specs {
		command := strings.Join(Tokenize(spec.Command), " ")
		for _, key := range strings.Split(spec.Keys, "|") {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			a[key] = command
		}
	}
	return a
}

func (a Aliases) Clone() Aliases {
	out := make(Aliases, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Expand replaces the first token with its alias expansion, if it has one.
// Expansion is a single level: the substituted words are not looked up again.
func (a Aliases) Expand(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}
	command, ok := a[tokens[0]]
	if !ok {
		return tokens
	}
	expanded := Tokenize(command)
	return append(expanded, tokens[1:]...)
}

// Tokenize lower-cases raw and splits it on runs of whitespace.
func Tokenize(raw string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
}
