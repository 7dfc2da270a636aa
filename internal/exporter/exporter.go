// Package exporter renders frequency reports.
package exporter

import (
	"fmt"
	"io"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

type Format string

const (
	FormatBox      Format = "box"
	FormatLight    Format = "light"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists every supported report format, default first.
var Formats = []Format{FormatBox, FormatLight, FormatMarkdown, FormatCSV, FormatHTML, FormatJSON}

func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatBox, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return FormatBox, fmt.Errorf("unsupported format: %s", s)
}

// Report is everything a renderer needs.
type Report struct {
	Words []types.WordCount
	Stats types.Stats
	// Top limits the rendered rows; 0 renders all of them.
	Top int
	// WithStats appends the statistics block to text formats.
	WithStats bool
}

func (r Report) rows() []types.WordCount {
	if r.Top > 0 && r.Top < len(r.Words) {
		return r.Words[:r.Top]
	}
	return r.Words
}

// Export writes r to writer in the given format.
func Export(r Report, format Format, writer io.Writer) error {
	var err error

	switch format {
	case FormatBox, "":
		err = ExportWordsToBox(r.rows(), writer)
	case FormatJSON:
		// stats are always part of the JSON document
		return ExportWordsToJSON(r.rows(), r.Stats, writer)
	case FormatLight, FormatMarkdown, FormatCSV, FormatHTML:
		err = ExportWordsToPretty(r.rows(), format, writer)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if r.WithStats {
		return ExportStats(r.Stats, writer)
	}
	return nil
}
