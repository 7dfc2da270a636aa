// Package frequency accumulates normalized words into occurrence counts and
// produces the sorted view used for reporting.
package frequency

import (
	"fmt"
	"sort"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/stream"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/tokenizer"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

// TieBreak orders words that share a count.
type TieBreak int

const (
	// TieBreakWord orders equal counts by byte-wise word comparison.
	TieBreakWord TieBreak = iota
	// TieBreakFirstSeen orders equal counts by first appearance in the input.
	TieBreakFirstSeen
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakWord:
		return "word"
	case TieBreakFirstSeen:
		return "first-seen"
	default:
		return fmt.Sprintf("TieBreak(%d)", t)
	}
}

func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "word", "":
		return TieBreakWord, nil
	case "first-seen":
		return TieBreakFirstSeen, nil
	default:
		return TieBreakWord, fmt.Errorf("unknown tie-break: %s", s)
	}
}

var _ types.Counter = (*Store)(nil)

// Store maps words to occurrence counts. It is not safe for concurrent use.
type Store struct {
	counts   map[string]int
	order    []string
	tieBreak TieBreak
	sorted   []types.WordCount
	stats    types.Stats
}

func NewStore(tieBreak TieBreak) *Store {
	return &Store{
		counts:   make(map[string]int),
		order:    make([]string, 0),
		tieBreak: tieBreak,
	}
}

// Record adds one occurrence of word. Empty words are ignored.
func (s *Store) Record(word string) {
	if word == "" {
		return
	}

	if _, ok := s.counts[word]; !ok {
		s.order = append(s.order, word)
	}
	s.counts[word]++
	s.stats.CountedWords++
	s.sorted = nil
}

// Read drains in and records every word that survives the filter. The stream
// flags are cleared for the duration of the read and restored afterwards.
func (s *Store) Read(in *stream.Input) {
	defer stream.Preserve(in)()

	tok := tokenizer.NewTokenizer(in)
	for {
		word, ok := tok.Next()
		if !ok {
			break
		}
		s.Record(word)
	}

	s.stats.TotalTokens += tok.Tokens
	s.stats.Discarded += tok.Discarded
}

// Count returns the occurrences recorded for word.
func (s *Store) Count(word string) int {
	return s.counts[word]
}

func (s *Store) Len() int {
	return len(s.counts)
}

func (s *Store) TieBreak() TieBreak {
	return s.tieBreak
}

func (s *Store) GetStats() types.Stats {
	stats := s.stats
	stats.UniqueWords = len(s.counts)
	return stats
}

// Sorted returns the words by count descending. The view is rebuilt only after
// the store changed; callers receive their own copy.
func (s *Store) Sorted() []types.WordCount {
	if s.sorted == nil {
		s.sorted = s.sort()
	}

	view := make([]types.WordCount, len(s.sorted))
	copy(view, s.sorted)
	return view
}

func (s *Store) sort() []types.WordCount {
	entries := make([]types.WordCount, 0, len(s.order))
	for _, word := range s.order {
		entries = append(entries, types.WordCount{Word: word, Count: s.counts[word]})
	}

	switch s.tieBreak {
	case TieBreakFirstSeen:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	default:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Word < entries[j].Word
		})
	}

	return entries
}
