package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/oops"
	"github.com/zyedidia/generic/mapset"
)

// ItemSet is a set of item tags. Sets held by a World are never modified
// in place; handlers build new ones.
type ItemSet = mapset.Set[Item]

// NewItemSet returns a set holding items.
func NewItemSet(items ...Item) ItemSet {
	s := mapset.New[Item]()
	for _, it := range items {
		s.Put(it)
	}
	return s
}

func union(a, b ItemSet) ItemSet {
	s := mapset.New[Item]()
	a.Each(func(it Item) { s.Put(it) })
	b.Each(func(it Item) { s.Put(it) })
	return s
}

func with(s ItemSet, it Item) ItemSet {
	return union(s, NewItemSet(it))
}

func without(s ItemSet, drop Item) ItemSet {
	out := mapset.New[Item]()
	s.Each(func(it Item) {
		if it != drop {
			out.Put(it)
		}
	})
	return out
}

// Vocabulary holds everything the engine knows about item tags: how each
// one is narrated and which ones can turn up in a freshly dug room.
type Vocabulary struct {
	// Order is the narration order. Tags missing from it go last, sorted.
	Order    []Item
	Phrases  map[Item]string
	Diggable []Item
}

// DefaultVocabulary is the built-in item table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Order: []Item{Sledge, Gold, Ladder, LotsOfGold},
		Phrases: map[Item]string{
			Sledge:     "a sledge",
			Gold:       "some gold coins",
			Ladder:     "a ladder lying down",
			LotsOfGold: "LOTS of gold!",
		},
		Diggable: []Item{Gold, Sledge, Ladder},
	}
}

// Validate checks that every diggable tag can be narrated.
func (v Vocabulary) Validate() error {
	if len(v.Diggable) == 0 {
		return oops.Errorf("no diggable items configured")
	}
	for _, it := range v.Diggable {
		if _, ok := v.Phrases[it]; !ok {
			return oops.Errorf("diggable item %q has no phrase", it)
		}
	}
	return nil
}

// Phrase returns the narration for a single tag. A tag without a phrase is
// a broken item table, not bad input.
func (v Vocabulary) Phrase(it Item) string {
	p, ok := v.Phrases[it]
	if !ok {
		panic(fmt.Sprintf("game: no phrase for item %q", it))
	}
	return p
}

// Sorted returns the members of s in narration order.
func (v Vocabulary) Sorted(s ItemSet) []Item {
	rank := make(map[Item]int, len(v.Order))
	for i, it := range v.Order {
		rank[it] = i
	}
	items := make([]Item, 0, s.Size())
	s.Each(func(it Item) { items = append(items, it) })
	sort.Slice(items, func(i, j int) bool {
		ri, iok := rank[items[i]]
		rj, jok := rank[items[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return items[i] < items[j]
		}
	})
	return items
}

// List renders s as "a, b and c".
func (v Vocabulary) List(s ItemSet) string {
	items := v.Sorted(s)
	phrases := make([]string, len(items))
	for i, it := range items {
		phrases[i] = v.Phrase(it)
	}
	return joinAnd(phrases)
}

func joinAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], ", ") + " and " + parts[last]
}
