package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/exporter"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/frequency"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", map[string]interface{}{"cin": true, "cout": true})
	require.NoError(t, err)

	assert.Equal(t, ModeCin|ModeCout, cfg.Mode)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultEncoding, cfg.Encoding)
	assert.Equal(t, exporter.FormatBox, cfg.ReportFormat())
	assert.Equal(t, frequency.TieBreakWord, cfg.ReportTieBreak())
	assert.False(t, cfg.Strict)
}

func TestLoadFiles(t *testing.T) {
	cfg, err := Load("", map[string]interface{}{"ifstream": "in.txt", "ofstream": "out.log"})
	require.NoError(t, err)

	assert.Equal(t, ModeIfstream|ModeOfstream, cfg.Mode)
	assert.Equal(t, "in.txt", cfg.PathIn)
	assert.Equal(t, "out.log", cfg.PathOut)
	assert.Equal(t, "ifstream|ofstream", cfg.Mode.String())
}

func TestLoadConfigFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cin: true
cout: true
format: markdown
top: 10
tie_break: first-seen
`), 0o600))

	t.Setenv("ANALYZER_FORMAT", "csv")
	t.Setenv("ANALYZER_STATS", "true")

	cfg, err := Load(path, map[string]interface{}{"top": 3})
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Format, "environment overrides the file")
	assert.Equal(t, 3, cfg.Top, "flags override the file")
	assert.True(t, cfg.Stats)
	assert.Equal(t, frequency.TieBreakFirstSeen, cfg.ReportTieBreak())
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), map[string]interface{}{"cin": true, "cout": true})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]interface{}
	}{
		{name: "No input", flags: map[string]interface{}{"cout": true}},
		{name: "No output", flags: map[string]interface{}{"cin": true}},
		{name: "Both inputs", flags: map[string]interface{}{"cin": true, "ifstream": "a", "cout": true}},
		{name: "Both outputs", flags: map[string]interface{}{"cin": true, "cout": true, "ofstream": "b"}},
		{name: "Empty input path", flags: map[string]interface{}{"ifstream": "", "cout": true}},
		{name: "Unknown format", flags: map[string]interface{}{"cin": true, "cout": true, "format": "yaml"}},
		{name: "Unknown encoding", flags: map[string]interface{}{"cin": true, "cout": true, "encoding": "ebcdic"}},
		{name: "Unknown tie-break", flags: map[string]interface{}{"cin": true, "cout": true, "tie_break": "random"}},
		{name: "Negative top", flags: map[string]interface{}{"cin": true, "cout": true, "top": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", tt.flags)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", Mode(0).String())
	assert.Equal(t, "cin|cout", (ModeCin | ModeCout).String())
	assert.True(t, (ModeCin | ModeOfstream).Has(ModeOfstream))
	assert.False(t, ModeCin.Has(ModeCout))
}
