package game

import (
	"strings"
)

// Describe narrates the player's room: position, ground and exits.
func (e *Engine) Describe(w World) string {
	parts := []string{"You are at " + w.Position.String() + "."}

	ground := w.Ground()
	if ground.Size() == 0 {
		parts = append(parts, "There is nothing on the ground.")
	} else {
		parts = append(parts, sentence("You see "+e.vocab.List(ground)))
	}

	exits := w.Exits()
	if len(exits) == 0 {
		parts = append(parts, "There are no exits.")
	} else {
		names := make([]string, len(exits))
		for i, d := range exits {
			names[i] = string(d)
		}
		parts = append(parts, "Exits: "+strings.Join(names, ", ")+".")
	}
	return strings.Join(parts, " ")
}

// sentence ends s with a full stop unless it already has closing punctuation.
func sentence(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
