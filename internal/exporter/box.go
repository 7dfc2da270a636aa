package exporter

import (
	"io"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

// Box table borders. The third line closes on ┘ rather than ┤ and rows are
// framed with ASCII pipes; both are part of the established report format.
const (
	boxTop    = "┌───────────┬────────────────┬────────────────────┐\n"
	boxHeader = "│   index   │    frequency   │        word        │\n"
	boxRule   = "├───────────┼────────────────┼────────────────────┘\n"
	boxBottom = "└───────────┴────────────────┴────────────────────┘\n"
)

// ExportWordsToBox writes the frequency report as the fixed-width box table.
func ExportWordsToBox(words []types.WordCount, writer io.Writer) error {
	ew := &errWriter{w: writer}
	ew.print(boxTop, boxHeader, boxRule)

	for i, w := range words {
		ew.printf("| %-10d| %-15d| %-20s\n", i+1, w.Count, w.Word)
	}

	ew.print(boxBottom)
	return ew.err
}
