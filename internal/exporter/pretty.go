package exporter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/types"
)

// ExportWordsToPretty renders the report with go-pretty. Supported formats are
// "light", "markdown", "csv" and "html".
func ExportWordsToPretty(words []types.WordCount, format Format, writer io.Writer) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"index", "frequency", "word"})

	for i, w := range words {
		t.AppendRow(table.Row{i + 1, w.Count, w.Word})
	}

	var out string
	switch format {
	case FormatLight:
		out = t.Render()
	case FormatMarkdown:
		out = t.RenderMarkdown()
	case FormatCSV:
		out = t.RenderCSV()
	case FormatHTML:
		out = t.RenderHTML()
	default:
		return fmt.Errorf("unsupported pretty format: %s", format)
	}

	_, err := fmt.Fprintln(writer, out)
	return err
}
