package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/ini.v1"

	"digger/internal/game"
)

const roomSectionPrefix = "Room "

// World is everything the world file can configure.
type World struct {
	Setup      game.Setup
	Vocabulary game.Vocabulary
}

// DefaultWorld is used when no world file exists.
func DefaultWorld() World {
	return World{Setup: game.DefaultSetup(), Vocabulary: game.DefaultVocabulary()}
}

// LoadWorld reads an ini world file. A missing file is not an error: the
// built-in world is used instead.
func LoadWorld(path string) (World, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("world file not found, using built-in world", "path", path)
		return DefaultWorld(), nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return World{}, oops.Wrapf(err, "load world file %s", path)
	}
	w, err := parseWorld(cfg)
	if err != nil {
		return World{}, oops.Wrapf(err, "world file %s", path)
	}
	return w, nil
}

// ParseWorld reads a world from ini text. Sections that are absent keep
// their defaults.
func ParseWorld(data []byte) (World, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return World{}, oops.Wrapf(err, "parse world")
	}
	return parseWorld(cfg)
}

func parseWorld(cfg *ini.File) (World, error) {
	w := DefaultWorld()

	if cfg.HasSection("Items") {
		sec := cfg.Section("Items")
		w.Vocabulary.Order = nil
		w.Vocabulary.Phrases = make(map[game.Item]string)
		for _, key := range sec.Keys() {
			it := game.Item(strings.ToLower(key.Name()))
			w.Vocabulary.Order = append(w.Vocabulary.Order, it)
			w.Vocabulary.Phrases[it] = key.String()
		}
	}

	if cfg.HasSection("Dig") {
		w.Vocabulary.Diggable = nil
		for _, name := range cfg.Section("Dig").Key("Items").Strings(",") {
			w.Vocabulary.Diggable = append(w.Vocabulary.Diggable, game.Item(strings.ToLower(name)))
		}
	}

	if cfg.HasSection("Start") {
		w.Setup.Start = coordinate(cfg.Section("Start"))
	}

	var rooms []game.RoomSeed
	for _, sec := range cfg.Sections() {
		if !strings.HasPrefix(sec.Name(), roomSectionPrefix) {
			continue
		}
		room := game.RoomSeed{At: coordinate(sec)}
		for _, name := range sec.Key("Ground").Strings(",") {
			room.Ground = append(room.Ground, game.Item(strings.ToLower(name)))
		}
		rooms = append(rooms, room)
	}
	if len(rooms) > 0 {
		w.Setup.Rooms = rooms
	}

	if cfg.HasSection("Aliases") {
		w.Setup.Aliases = []game.AliasSpec{}
		for _, key := range cfg.Section("Aliases").Keys() {
			if strings.TrimSpace(key.String()) == "" {
				return World{}, oops.Errorf("alias %q has no command", key.Name())
			}
			w.Setup.Aliases = append(w.Setup.Aliases, game.AliasSpec{Keys: key.Name(), Command: key.String()})
		}
	}

	if err := w.Validate(); err != nil {
		return World{}, err
	}
	return w, nil
}

func coordinate(sec *ini.Section) game.Coordinate {
	return game.Coordinate{
		X: sec.Key("X").MustInt(0),
		Y: sec.Key("Y").MustInt(0),
		Z: sec.Key("Z").MustInt(0),
	}
}

// Validate rejects item tags the narration table cannot describe.
func (w World) Validate() error {
	if err := w.Vocabulary.Validate(); err != nil {
		return err
	}
	for _, room := range w.Setup.Rooms {
		for _, it := range room.Ground {
			if _, ok := w.Vocabulary.Phrases[it]; !ok {
				return oops.Errorf("room %s holds item %q with no phrase", room.At, it)
			}
		}
	}
	return nil
}
