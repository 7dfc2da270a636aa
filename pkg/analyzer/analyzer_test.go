package analyzer

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/testutil"
)

const (
	header = "┌───────────┬────────────────┬────────────────────┐\n" +
		"│   index   │    frequency   │        word        │\n" +
		"├───────────┼────────────────┼────────────────────┘\n"
	footer = "└───────────┴────────────────┴────────────────────┘\n"
)

func newTestAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	return New(append([]Option{WithLogger(testutil.NewTestLogger(t))}, opts...)...)
}

func rows(t *testing.T, report string) []string {
	t.Helper()
	require.True(t, strings.HasPrefix(report, header), "missing header in %q", report)
	require.True(t, strings.HasSuffix(report, footer), "missing footer in %q", report)

	body := strings.TrimSuffix(strings.TrimPrefix(report, header), footer)
	if body == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}

func TestReadAndWrite(t *testing.T) {
	a := newTestAnalyzer(t)
	a.Read(strings.NewReader("The the THE cat sat."))

	assert.Equal(t, 3, a.Count("the"))
	assert.Equal(t, 1, a.Count("cat"))
	assert.Equal(t, 1, a.Count("sat"))
	assert.Equal(t, 3, a.Len())

	var buf bytes.Buffer
	require.NoError(t, a.Write(&buf))

	lines := rows(t, buf.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "| 1         | 3              | the                 ", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "| 2         | 1              | "))
	assert.True(t, strings.HasPrefix(lines[2], "| 3         | 1              | "))
	assert.ElementsMatch(t, []string{"cat", "sat"}, []string{
		strings.TrimSpace(lines[1][strings.LastIndex(lines[1], "| ")+2:]),
		strings.TrimSpace(lines[2][strings.LastIndex(lines[2], "| ")+2:]),
	})
}

func TestWriteIsRepeatable(t *testing.T) {
	a := newTestAnalyzer(t)
	a.Read(strings.NewReader("b a c b a b"))

	var first, second bytes.Buffer
	require.NoError(t, a.Write(&first))
	require.NoError(t, a.Write(&second))

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 3, a.Count("b"))
}

func TestWriteEmpty(t *testing.T) {
	a := newTestAnalyzer(t)
	a.Read(strings.NewReader(""))

	var buf bytes.Buffer
	require.NoError(t, a.Write(&buf))

	assert.Equal(t, header+footer, buf.String())
}

func TestReadExhaustedInputKeepsState(t *testing.T) {
	a := newTestAnalyzer(t)
	in := NewInput(strings.NewReader("one two\n"))

	a.Read(in)
	require.Equal(t, 2, a.Len())
	assert.Equal(t, StateGood, in.RDState())

	in.SetState(StateEOF | StateFail)
	a.Read(in)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, StateEOF|StateFail, in.RDState())
}

func TestReadErrorFlaggedInput(t *testing.T) {
	a := newTestAnalyzer(t)
	in := NewInput(strings.NewReader(""))
	in.SetState(StateBad)

	a.Read(in)

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, StateBad, in.RDState())
}

func TestWriteToFlaggedOutput(t *testing.T) {
	a := newTestAnalyzer(t)
	a.Read(strings.NewReader("word"))

	var buf bytes.Buffer
	out := NewOutput(&buf)
	out.SetState(StateFail)

	require.NoError(t, a.Write(out))
	assert.Contains(t, buf.String(), "word")
	assert.Equal(t, StateFail, out.RDState())
}

func TestWriteError(t *testing.T) {
	a := newTestAnalyzer(t)
	a.Read(strings.NewReader("word"))

	boom := errors.New("broken pipe")
	err := a.Write(testutil.FailingWriter{Err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestOptions(t *testing.T) {
	a := newTestAnalyzer(t,
		WithFormat(FormatJSON),
		WithTop(1),
		WithTieBreak(TieBreakFirstSeen),
	)
	a.Read(strings.NewReader("zeta alpha zeta alpha omega"))

	var buf bytes.Buffer
	require.NoError(t, a.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, `"word": "zeta"`)
	assert.NotContains(t, out, `"word": "alpha"`)
	assert.Contains(t, out, `"unique_words": 3`)
}

func TestWithStats(t *testing.T) {
	a := newTestAnalyzer(t, WithStats(true))
	a.Read(strings.NewReader("a b -- c"))

	var buf bytes.Buffer
	require.NoError(t, a.Write(&buf))

	assert.Contains(t, buf.String(), "=== Word Statistics ===")
	assert.Equal(t, Stats{TotalTokens: 4, Discarded: 1, CountedWords: 3, UniqueWords: 3}, a.GetStats())
}

func TestFilter(t *testing.T) {
	w, ok := Filter("Hello,")
	assert.True(t, ok)
	assert.Equal(t, "hello", w)

	_, ok = Filter("'''")
	assert.False(t, ok)
}

func TestNewDecoder(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		input    []byte
		expected string
	}{
		{name: "UTF-8 passthrough", encoding: "utf8", input: []byte("héllo"), expected: "héllo"},
		{name: "UTF-8 BOM stripped", encoding: "utf8", input: []byte("\xEF\xBB\xBFword"), expected: "word"},
		{name: "Default is UTF-8", encoding: "", input: []byte("plain"), expected: "plain"},
		{name: "CP437", encoding: "cp437", input: []byte{0x82, 't', 0x82}, expected: "été"},
		{name: "ISO-8859-1", encoding: "iso-8859-1", input: []byte{'c', 'a', 'f', 0xE9}, expected: "café"},
		{name: "CP850", encoding: "cp850", input: []byte{0x85}, expected: "à"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewDecoder(bytes.NewReader(tt.input), tt.encoding)
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}

	_, err := NewDecoder(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestDecodedInputIsCounted(t *testing.T) {
	r, err := NewDecoder(bytes.NewReader([]byte("\xEF\xBB\xBFHello hello")), "utf8")
	require.NoError(t, err)

	a := newTestAnalyzer(t)
	a.Read(r)

	assert.Equal(t, 2, a.Count("hello"))
}
