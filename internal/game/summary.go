package game

// Summary is a JSON-friendly snapshot of a World.
type Summary struct {
	Position  [3]int   `json:"position" jsonschema:"Current room coordinate as x, y, z"`
	Exits     []string `json:"exits" jsonschema:"Directions leading into existing rooms"`
	Ground    []string `json:"ground" jsonschema:"Item tags lying in the current room"`
	Inventory []string `json:"inventory" jsonschema:"Item tags carried by the player"`
	Equipped  string   `json:"equipped,omitempty" jsonschema:"Item tag currently equipped"`
	Rooms     int      `json:"rooms" jsonschema:"Number of rooms in the maze"`
}

// Summarize snapshots w, listing items in the engine's narration order.
func (e *Engine) Summarize(w World) Summary {
	summary := Summary{
		Position:  [3]int{w.Position.X, w.Position.Y, w.Position.Z},
		Exits:     []string{},
		Ground:    tags(e.vocab.Sorted(w.Ground())),
		Inventory: tags(e.vocab.Sorted(w.Inventory)),
		Equipped:  string(w.Equipped),
		Rooms:     len(w.Maze),
	}
	for _, d := range w.Exits() {
		summary.Exits = append(summary.Exits, string(d))
	}
	return summary
}

func tags(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(it)
	}
	return out
}
