package game

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/samber/oops"
)

var (
	// ErrUnknownCommand means the first word names no action.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArguments means the action was given too many words.
	ErrInvalidArguments = errors.New("invalid arguments")
)

const exitCommand = "exit"

// Outcome is the result of one turn.
type Outcome struct {
	World     World
	Narration string
	// Done is set when the player asked to leave. World is then the last state.
	Done bool
}

// ItemPicker chooses the item a new room is dug out with.
type ItemPicker interface {
	Pick(items []Item) Item
}

// PickerFunc adapts a function to ItemPicker.
type PickerFunc func(items []Item) Item

// Pick calls f(items).
func (f PickerFunc) Pick(items []Item) Item { return f(items) }

// RandomPicker picks uniformly. It is not safe for concurrent use.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a picker whose choices are fixed by seed.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one of items. items must not be empty.
func (p *RandomPicker) Pick(items []Item) Item {
	return items[p.rng.Intn(len(items))]
}

// handler runs an action with at least one argument.
type handler func(e *Engine, w World, args []string) (World, string)

type action struct {
	// prompt is answered when the action gets no arguments. Actions without
	// a prompt run their handler instead.
	prompt string
	// maxArgs < 0 means no upper bound.
	maxArgs int
	run     handler
}

func (a action) accepts(n int) bool {
	return a.maxArgs < 0 || n <= a.maxArgs
}

// Engine turns command lines into new worlds. It holds only read-only
// tables plus the item picker, so one Engine serves one session at a time.
type Engine struct {
	vocab   Vocabulary
	picker  ItemPicker
	actions map[string]action
	log     *slog.Logger
}

type Option func(*Engine)

func WithVocabulary(v Vocabulary) Option {
	return func(e *Engine) { e.vocab = v }
}

func WithPicker(p ItemPicker) Option {
	return func(e *Engine) { e.picker = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine builds an engine with the default vocabulary and a random picker
// seeded with 1 unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		vocab:   DefaultVocabulary(),
		picker:  NewRandomPicker(1),
		actions: actions(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Vocabulary returns the item table the engine narrates with.
func (e *Engine) Vocabulary() Vocabulary {
	return e.vocab
}

// Dispatch runs one command line against w. Unknown commands and bad
// argument counts come back as errors wrapping ErrUnknownCommand and
// ErrInvalidArguments, with Outcome.World still equal to w.
func (e *Engine) Dispatch(w World, line string) (Outcome, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Outcome{World: w, Narration: "Hm?!"}, nil
	}
	if tokens[0] == exitCommand {
		return Outcome{World: w, Narration: "See you next time!", Done: true}, nil
	}

	expanded := w.Aliases.Expand(tokens)
	if len(expanded) == 0 {
		return Outcome{World: w, Narration: "Hm?!"}, nil
	}
	name, args := expanded[0], expanded[1:]
	if name == exitCommand {
		return Outcome{World: w, Narration: "See you next time!", Done: true}, nil
	}

	a, ok := e.actions[name]
	if !ok {
		return Outcome{World: w}, oops.Wrapf(ErrUnknownCommand, "command %q", name)
	}
	e.log.Debug("dispatch", "command", name, "args", len(args))

	if len(args) == 0 && a.prompt != "" {
		return Outcome{World: w, Narration: a.prompt}, nil
	}
	if !a.accepts(len(args)) {
		return Outcome{World: w}, oops.Wrapf(ErrInvalidArguments, "%s takes at most %d arguments, got %d", name, a.maxArgs, len(args))
	}

	next, narration := a.run(e, w, args)
	return Outcome{World: next, Narration: narration}, nil
}

// Play is Dispatch with the boundary errors turned into narration. The
// session always survives a turn.
func (e *Engine) Play(w World, line string) Outcome {
	out, err := e.Dispatch(w, line)
	switch {
	case err == nil:
		return out
	case errors.Is(err, ErrInvalidArguments):
		out.Narration = "Invalid arguments"
	default:
		out.Narration = "What do you mean?"
	}
	e.log.Debug("turn rejected", "error", err)
	out.World = w
	return out
}
