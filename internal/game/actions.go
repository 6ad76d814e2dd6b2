package game

import (
	"fmt"
	"strings"
)

const allItems = "all"

func actions() map[string]action {
	return map[string]action{
		"look":          {maxArgs: 0, run: cmdLook},
		"inventory":     {maxArgs: 0, run: cmdInventory},
		"dig":           {prompt: "Dig where?", maxArgs: 1, run: cmdDig},
		"move":          {prompt: "Move where?", maxArgs: 1, run: cmdMove},
		"equip":         {prompt: "Equip what?", maxArgs: 1, run: cmdEquip},
		"drop-item":     {prompt: "Drop what?", maxArgs: 1, run: cmdDrop},
		"take-item":     {prompt: "Take what?", maxArgs: 1, run: cmdTake},
		"alias-command": {prompt: "Alias what?", maxArgs: -1, run: cmdAlias},
	}
}

func cmdLook(e *Engine, w World, _ []string) (World, string) {
	return w, e.Describe(w)
}

func cmdInventory(e *Engine, w World, _ []string) (World, string) {
	if w.Inventory.Size() == 0 {
		return w, "You are not carrying anything"
	}
	return w, sentence("You are carrying " + e.vocab.List(w.Inventory))
}

func cmdDig(e *Engine, w World, args []string) (World, string) {
	d, ok := ParseDirection(args[0])
	if !ok {
		return w, "Where?!"
	}
	if HasExit(w.Position, w.Maze, d) {
		return w, "There is already a room!"
	}
	if w.Equipped != Sledge {
		return w, "You need to equip a sledge in order to dig!"
	}

	found := e.picker.Pick(e.vocab.Diggable)
	next := w.Clone()
	next.Maze[w.Position.Add(d)] = NewItemSet(found)
	e.log.Debug("room dug", "at", w.Position.Add(d).String(), "item", string(found))
	return next, fmt.Sprintf("You dig a new room %sward.", d)
}

func cmdMove(e *Engine, w World, args []string) (World, string) {
	d, ok := ParseDirection(args[0])
	if !ok {
		return w, "Where?!"
	}
	if d == Up && !w.Ground().Has(Ladder) {
		return w, "You cannot go up if there's no ladder in the room."
	}
	if !HasExit(w.Position, w.Maze, d) {
		return w, "There's no exit in that direction!"
	}

	next := w
	next.Position = w.Position.Add(d)
	return next, e.Describe(next)
}

func cmdEquip(_ *Engine, w World, args []string) (World, string) {
	it := Item(args[0])
	if !w.Inventory.Has(it) {
		return w, "You haven't such an item"
	}
	next := w
	next.Equipped = it
	return next, "Equipped!"
}

func cmdDrop(_ *Engine, w World, args []string) (World, string) {
	next := w.Clone()
	if args[0] == allItems {
		next.Maze[w.Position] = union(w.Ground(), w.Inventory)
		next.Inventory = NewItemSet()
		next.Equipped = ""
		return next, "Everything dropped!"
	}

	it := Item(args[0])
	if !w.Inventory.Has(it) {
		return w, "You haven't such an item"
	}
	next.Maze[w.Position] = with(w.Ground(), it)
	next.Inventory = without(w.Inventory, it)
	if w.Equipped == it {
		next.Equipped = ""
	}
	return next, "Item dropped!"
}

func cmdTake(_ *Engine, w World, args []string) (World, string) {
	next := w.Clone()
	if args[0] == allItems {
		next.Inventory = union(w.Inventory, w.Ground())
		next.Maze[w.Position] = NewItemSet()
		return next, "Everything taken!"
	}

	it := Item(args[0])
	if !w.Ground().Has(it) {
		return w, "There is not such item on the ground!"
	}
	next.Inventory = with(w.Inventory, it)
	next.Maze[w.Position] = without(w.Ground(), it)
	return next, "Item taken!"
}

// cmdAlias stores the command expanded once through the current table, so
// aliases of aliases resolve without recursive lookups at play time.
func cmdAlias(_ *Engine, w World, args []string) (World, string) {
	if len(args) == 1 {
		return w, fmt.Sprintf("Alias '%s' to what?", args[0])
	}
	key, command := args[0], args[1:]

	next := w.Clone()
	next.Aliases[key] = strings.Join(w.Aliases.Expand(command), " ")
	return next, "Alias created for the command " + strings.Join(command, " ")
}
