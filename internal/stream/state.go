// Package stream wraps io.Reader and io.Writer with sticky state flags so the
// analyzer phases can save, clear and restore a stream's condition around a
// read or write.
package stream

import (
	"errors"
	"strings"
)

// ErrState is returned when writing to an Output that is not in the good state.
var ErrState = errors.New("stream: not in good state")

// State is a set of stream condition flags. The zero value is Good.
type State uint8

const Good State = 0

const (
	Bad State = 1 << iota
	EOF
	Fail
)

func (s State) String() string {
	if s == Good {
		return "good"
	}

	var names []string
	if s&Bad != 0 {
		names = append(names, "bad")
	}
	if s&EOF != 0 {
		names = append(names, "eof")
	}
	if s&Fail != 0 {
		names = append(names, "fail")
	}
	return strings.Join(names, "|")
}

// Stateful is implemented by streams that carry condition flags.
type Stateful interface {
	RDState() State
	Clear()
	SetState(State)
}

// Preserve snapshots the flags of s and clears them. The returned function puts
// the snapshot back exactly, discarding any flags raised in between:
//
//	defer stream.Preserve(in)()
func Preserve(s Stateful) (restore func()) {
	saved := s.RDState()
	s.Clear()

	return func() {
		s.Clear()
		s.SetState(saved)
	}
}

// flags is embedded by Input and Output.
type flags struct {
	state State
}

func (f *flags) RDState() State { return f.state }

func (f *flags) Clear() { f.state = Good }

func (f *flags) SetState(s State) { f.state |= s }

func (f *flags) Good() bool { return f.state == Good }

func (f *flags) EOF() bool { return f.state&EOF != 0 }

// Fail reports whether the last operation failed, including unrecoverable errors.
func (f *flags) Fail() bool { return f.state&(Fail|Bad) != 0 }

func (f *flags) Bad() bool { return f.state&Bad != 0 }
