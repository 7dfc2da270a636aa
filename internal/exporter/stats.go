package exporter

import (
	"io"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

func ExportStats(stats types.Stats, writer io.Writer) error {
	ew := &errWriter{w: writer}
	ew.print("\n=== Word Statistics ===\n\n")
	ew.printf("  %-15s: %8d\n", "Total tokens", stats.TotalTokens)
	ew.printf("  %-15s: %8d", "Discarded", stats.Discarded)
	if stats.TotalTokens > 0 {
		percentage := float64(stats.Discarded) / float64(stats.TotalTokens) * 100
		ew.printf(" (%.1f%%)", percentage)
	}
	ew.print("\n")
	ew.printf("  %-15s: %8d\n", "Counted words", stats.CountedWords)
	ew.printf("  %-15s: %8d\n", "Unique words", stats.UniqueWords)
	return ew.err
}
