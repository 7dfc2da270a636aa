// Package analyzer provides a public API for word-frequency analysis.
//
// This package provides functions to:
//   - Decode input text from UTF-8, CP437, CP850 or ISO-8859-1
//   - Tokenize and normalize whitespace-delimited words
//   - Accumulate occurrence counts across one or more reads
//   - Render the counts as a sorted report (box table, go-pretty styles, JSON)
//
// Example usage:
//
//	import "github.com/HukumaM/analyzer-frequency-of-occurrence/pkg/analyzer"
//
//	a := analyzer.New()
//	a.Read(os.Stdin)
//	if err := a.Write(os.Stdout); err != nil {
//		log.Fatal(err)
//	}
package analyzer

import (
	"io"
	"log/slog"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/exporter"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/frequency"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/stream"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/tokenizer"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

// Type aliases for public API
type (
	// WordCount is one report row: a normalized word and its occurrences
	WordCount = types.WordCount

	// Stats summarizes what the read phases consumed
	Stats = types.Stats

	// Format selects a report renderer
	Format = exporter.Format

	// TieBreak orders words with equal counts
	TieBreak = frequency.TieBreak

	// Input is a word stream with state flags
	Input = stream.Input

	// Output is a writer with state flags
	Output = stream.Output

	// State is a set of stream condition flags
	State = stream.State
)

// Report format constants
const (
	FormatBox      = exporter.FormatBox
	FormatLight    = exporter.FormatLight
	FormatMarkdown = exporter.FormatMarkdown
	FormatCSV      = exporter.FormatCSV
	FormatHTML     = exporter.FormatHTML
	FormatJSON     = exporter.FormatJSON
)

// Tie-break constants
const (
	TieBreakWord      = frequency.TieBreakWord
	TieBreakFirstSeen = frequency.TieBreakFirstSeen
)

// Stream state constants
const (
	StateGood = stream.Good
	StateBad  = stream.Bad
	StateEOF  = stream.EOF
	StateFail = stream.Fail
)

// NewInput wraps r so its state flags survive across reads.
func NewInput(r io.Reader) *Input { return stream.NewInput(r) }

// NewOutput wraps w so its state flags survive across writes.
func NewOutput(w io.Writer) *Output { return stream.NewOutput(w) }

// Filter normalizes a raw token; false means the token is discarded.
func Filter(raw string) (string, bool) { return tokenizer.Filter(raw) }

// Analyzer owns one frequency store and its report settings.
type Analyzer struct {
	store     *frequency.Store
	logger    *slog.Logger
	format    Format
	top       int
	withStats bool
}

type Option func(*options)

type options struct {
	logger    *slog.Logger
	format    Format
	tieBreak  TieBreak
	top       int
	withStats bool
}

// WithLogger sets the logger receiving phase summaries at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFormat sets the report format used by Write.
func WithFormat(format Format) Option {
	return func(o *options) { o.format = format }
}

// WithTieBreak sets how words with equal counts are ordered.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(o *options) { o.tieBreak = tieBreak }
}

// WithTop limits the report to the n most frequent words. Zero means no limit.
func WithTop(n int) Option {
	return func(o *options) { o.top = n }
}

// WithStats appends read statistics to text reports.
func WithStats(enabled bool) Option {
	return func(o *options) { o.withStats = enabled }
}

func New(opts ...Option) *Analyzer {
	o := options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		format:   FormatBox,
		tieBreak: TieBreakWord,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Analyzer{
		store:     frequency.NewStore(o.tieBreak),
		logger:    o.logger,
		format:    o.format,
		top:       o.top,
		withStats: o.withStats,
	}
}

// Read consumes r and adds its words to the store. Repeated calls accumulate.
// When r is an *Input its state flags are the same after the call as before.
func (a *Analyzer) Read(r io.Reader) {
	in := stream.NewInput(r)
	before := a.store.GetStats()

	a.store.Read(in)

	after := a.store.GetStats()
	a.logger.Debug("read phase complete",
		"tokens", after.TotalTokens-before.TotalTokens,
		"discarded", after.Discarded-before.Discarded,
		"unique_words", after.UniqueWords,
		"state", in.RDState())
	if err := in.Err(); err != nil {
		a.logger.Warn("input stream error", "error", err)
	}
}

// Write renders the report to w. The store is left untouched, so repeated
// calls produce identical output. When w is an *Output its state flags are the
// same after the call as before.
func (a *Analyzer) Write(w io.Writer) error {
	out := stream.NewOutput(w)
	defer stream.Preserve(out)()

	words := a.store.Sorted()
	report := exporter.Report{
		Words:     words,
		Stats:     a.store.GetStats(),
		Top:       a.top,
		WithStats: a.withStats,
	}

	err := exporter.Export(report, a.format, out)
	if out.Fail() {
		err = out.Err()
	}
	if err != nil {
		a.logger.Warn("write phase failed", "format", a.format, "error", err)
		return err
	}

	a.logger.Debug("write phase complete", "format", a.format, "words", len(words))
	return nil
}

// Count returns how many times word has been recorded.
func (a *Analyzer) Count(word string) int { return a.store.Count(word) }

// Len returns the number of distinct words.
func (a *Analyzer) Len() int { return a.store.Len() }

// Sorted returns the report rows by count descending.
func (a *Analyzer) Sorted() []WordCount { return a.store.Sorted() }

// GetStats returns counters accumulated over every Read.
func (a *Analyzer) GetStats() Stats { return a.store.GetStats() }
