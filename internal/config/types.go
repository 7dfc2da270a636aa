// Package config loads and validates the analyzer's run configuration.
package config

import "strings"

// Mode says which streams a run reads from and writes to.
type Mode uint8

const (
	ModeIfstream Mode = 1 << iota
	ModeCin
	ModeOfstream
	ModeCout
)

func (m Mode) Has(flag Mode) bool {
	return m&flag != 0
}

func (m Mode) String() string {
	var names []string
	if m.Has(ModeIfstream) {
		names = append(names, "ifstream")
	}
	if m.Has(ModeCin) {
		names = append(names, "cin")
	}
	if m.Has(ModeOfstream) {
		names = append(names, "ofstream")
	}
	if m.Has(ModeCout) {
		names = append(names, "cout")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Config is the validated configuration of one run.
type Config struct {
	Mode     Mode   `koanf:"-"`
	Cin      bool   `koanf:"cin"`
	PathIn   string `koanf:"ifstream"`
	Cout     bool   `koanf:"cout"`
	PathOut  string `koanf:"ofstream"`
	Format   string `koanf:"format"`
	Encoding string `koanf:"encoding"`
	Top      int    `koanf:"top"`
	Stats    bool   `koanf:"stats"`
	TieBreak string `koanf:"tie_break"`
	// Strict turns a stream open failure into a failing exit status.
	Strict  bool `koanf:"strict"`
	Verbose bool `koanf:"verbose"`
}

// Default values
const (
	DefaultFormat   = "box"
	DefaultEncoding = "utf8"
	DefaultTieBreak = "word"
)

// EnvPrefix prefixes environment overrides, e.g. ANALYZER_FORMAT=json.
const EnvPrefix = "ANALYZER_"
