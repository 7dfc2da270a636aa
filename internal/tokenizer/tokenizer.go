package tokenizer

import (
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/stream"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

var _ types.Tokenizer = (*Tokenizer)(nil)

// Tokenizer pulls normalized words out of an input stream and keeps count of
// what it read and what the filter threw away.
type Tokenizer struct {
	input     *stream.Input
	Tokens    int
	Discarded int
}

func NewTokenizer(input *stream.Input) *Tokenizer {
	return &Tokenizer{
		input: input,
	}
}

// Next returns the next normalized word, skipping discarded tokens. It reports
// false once the stream stops yielding tokens.
func (t *Tokenizer) Next() (string, bool) {
	for {
		raw, ok := t.input.Next()
		if !ok {
			return "", false
		}
		t.Tokens++

		if word, ok := Filter(raw); ok {
			return word, true
		}
		t.Discarded++
	}
}

// Tokenize drains the stream and returns every normalized word in order.
func (t *Tokenizer) Tokenize() []string {
	words := make([]string, 0)
	for {
		word, ok := t.Next()
		if !ok {
			return words
		}
		words = append(words, word)
	}
}
