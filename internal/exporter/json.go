package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

type JSONRow struct {
	Index int    `json:"index"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type ReportJSONOutput struct {
	Words []JSONRow   `json:"words"`
	Stats types.Stats `json:"stats"`
}

func ExportWordsToJSON(words []types.WordCount, stats types.Stats, writer io.Writer) error {
	output := ReportJSONOutput{
		Words: make([]JSONRow, 0, len(words)),
		Stats: stats,
	}
	for i, w := range words {
		output.Words = append(output.Words, JSONRow{Index: i + 1, Word: w.Word, Count: w.Count})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	return nil
}
