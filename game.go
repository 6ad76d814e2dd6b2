package main

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"log/slog"
	"os"

	"digger/internal/config"
	"digger/internal/game"
)

const MaxHistory = 10

// Session is one player's run: the engine, the current world and the
// terminal it talks to.
type Session struct {
	engine *game.Engine
	world  game.World

	Out        io.Writer
	In         io.Reader
	reader     *bufio.Reader
	IsHeadless bool
	IsPlaying  bool

	History      [MaxHistory + 1]string
	HistoryCount int
}

// NewSession starts a game in the configured world. A nil seed picks one at
// random.
func NewSession(w config.World, seed *int64, out io.Writer) *Session {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = newSeed()
	}
	slog.Debug("new session", "seed", s, "rooms", len(w.Setup.Rooms))

	return &Session{
		engine: game.NewEngine(
			game.WithVocabulary(w.Vocabulary),
			game.WithPicker(game.NewRandomPicker(s)),
			game.WithLogger(slog.Default().With("component", "engine")),
		),
		world:     game.NewWorld(w.Setup),
		Out:       out,
		In:        os.Stdin,
		IsPlaying: true,
	}
}

// Execute plays one line and returns its narration.
func (s *Session) Execute(line string) string {
	out := s.engine.Play(s.world, line)
	s.world = out.World
	if out.Done {
		s.IsPlaying = false
	}
	return out.Narration
}

// Look describes the current room without taking a turn.
func (s *Session) Look() string {
	return s.engine.Describe(s.world)
}

func (s *Session) Summary() game.Summary {
	return s.engine.Summarize(s.world)
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		slog.Warn("crypto seed unavailable, falling back to 1", "error", err)
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
