package game

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedPicker(it Item) ItemPicker {
	return PickerFunc(func([]Item) Item { return it })
}

func newTestEngine(found Item) *Engine {
	return NewEngine(WithPicker(fixedPicker(found)))
}

// play runs each line in turn and returns the final outcome.
func play(t *testing.T, e *Engine, w World, lines ...string) Outcome {
	t.Helper()
	out := Outcome{World: w}
	for _, line := range lines {
		require.False(t, out.Done, "session ended before %q", line)
		out = e.Play(out.World, line)
	}
	return out
}

func TestDispatchEmptyInput(t *testing.T) {
	e := newTestEngine(Gold)
	w := NewWorld(DefaultSetup())

	for _, line := range []string{"", "   ", "\t\n"} {
		out, err := e.Dispatch(w, line)
		require.NoError(t, err)
		assert.Equal(t, "Hm?!", out.Narration)
		assert.False(t, out.Done)
		assert.Equal(t, w, out.World)
	}
}

func TestDispatchExit(t *testing.T) {
	e := newTestEngine(Gold)
	w := NewWorld(DefaultSetup())

	t.Run("literal exit", func(t *testing.T) {
		out, err := e.Dispatch(w, "  EXIT now")
		require.NoError(t, err)
		assert.True(t, out.Done)
		assert.Equal(t, "See you next time!", out.Narration)
	})

	t.Run("alias to exit", func(t *testing.T) {
		out := play(t, e, w, "alias q exit")
		out = e.Play(out.World, "q")
		assert.True(t, out.Done)
		assert.Equal(t, "See you next time!", out.Narration)
	})
}

func TestDispatchUnknownCommand(t *testing.T) {
	e := newTestEngine(Gold)
	w := NewWorld(DefaultSetup())

	out, err := e.Dispatch(w, "foobar")
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, w, out.World)

	out = e.Play(w, "foobar")
	assert.Equal(t, "What do you mean?", out.Narration)
	assert.False(t, out.Done)
	assert.Equal(t, w, out.World)

	// The session carries on.
	out = e.Play(out.World, "look")
	assert.Contains(t, out.Narration, "You are at (0, 0, 0).")
}

func TestDispatchInvalidArguments(t *testing.T) {
	e := newTestEngine(Gold)
	w := NewWorld(DefaultSetup())

	lines := []string{
		"look around",
		"inventory please",
		"i now",
		"dig north now",
		"move north quickly",
		"n n",
		"equip sledge hard",
		"take sledge gold",
		"drop all now",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := e.Dispatch(w, line)
			require.ErrorIs(t, err, ErrInvalidArguments)

			out := e.Play(w, line)
			assert.Equal(t, "Invalid arguments", out.Narration)
			assert.Equal(t, w, out.World)
		})
	}
}

func TestDispatchPrompts(t *testing.T) {
	e := newTestEngine(Gold)
	w := NewWorld(DefaultSetup())

	tests := map[string]string{
		"dig":   "Dig where?",
		"move":  "Move where?",
		"go":    "Move where?",
		"equip": "Equip what?",
		"drop":  "Drop what?",
		"take":  "Take what?",
		"get":   "Take what?",
		"alias": "Alias what?",
	}
	for line, want := range tests {
		out, err := e.Dispatch(w, line)
		require.NoError(t, err)
		assert.Equal(t, want, out.Narration, "prompt for %q", line)
		assert.Equal(t, w, out.World)
	}
}

func TestDispatchCanonicalNames(t *testing.T) {
	e := newTestEngine(Gold)
	w := NewWorld(DefaultSetup())

	out, err := e.Dispatch(w, "take-item sledge")
	require.NoError(t, err)
	assert.Equal(t, "Item taken!", out.Narration)
}

func TestAliasRoundTrip(t *testing.T) {
	e := newTestEngine(Gold)
	start := play(t, e, NewWorld(DefaultSetup()), "take sledge", "equip sledge", "dig north").World

	viaAlias := play(t, e, start, "alias g go", "g north")
	direct := play(t, e, start, "move north")

	assert.Equal(t, direct.Narration, viaAlias.Narration)
	assert.Equal(t, direct.World.Position, viaAlias.World.Position)
	assert.Equal(t, "move", viaAlias.World.Aliases["g"])
}

func TestPlayNeverMutatesInput(t *testing.T) {
	e := newTestEngine(Ladder)
	w := NewWorld(DefaultSetup())

	for _, line := range []string{"take all", "equip sledge", "dig north", "dig east", "drop all", "alias x look"} {
		before := e.Summarize(w)
		aliasesBefore := w.Aliases.Clone()

		next := e.Play(w, line).World
		assert.Equal(t, before, e.Summarize(w), "after %q", line)
		assert.Equal(t, aliasesBefore, w.Aliases, "after %q", line)
		w = next
	}
	assert.Equal(t, 4, len(w.Maze))
	assert.Equal(t, "look", w.Aliases["x"])
}

func TestEngineLogs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine(WithPicker(fixedPicker(Gold)), WithLogger(log))

	e.Play(NewWorld(DefaultSetup()), "take sledge")
	assert.Contains(t, buf.String(), "take-item")
}

func TestRandomPickerStaysInVocabulary(t *testing.T) {
	p := NewRandomPicker(42)
	choices := DefaultVocabulary().Diggable
	seen := map[Item]bool{}
	for i := 0; i < 200; i++ {
		it := p.Pick(choices)
		assert.Contains(t, choices, it)
		seen[it] = true
	}
	assert.Len(t, seen, len(choices), "200 uniform picks should hit every item")
}
