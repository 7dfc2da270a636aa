package stream

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Input reads whitespace-delimited words from an io.Reader.
type Input struct {
	flags
	r   *bufio.Reader
	err error
}

func NewInput(r io.Reader) *Input {
	if in, ok := r.(*Input); ok {
		return in
	}
	return &Input{r: bufio.NewReader(r)}
}

// Read reads raw bytes from the current position, so an *Input can be handed
// to anything taking an io.Reader. Failures raise the same flags as Next.
func (in *Input) Read(p []byte) (int, error) {
	n, err := in.r.Read(p)
	if err != nil {
		in.fail(err, n == 0)
	}
	return n, err
}

// Err returns the last non-EOF error of the underlying reader.
func (in *Input) Err() error { return in.err }

// IsSpace reports whether c is a separator in the C locale.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Next skips leading whitespace and returns the following run of non-whitespace
// bytes. Nothing is extracted unless the stream is good. Reaching the end before
// any byte of a word sets EOF and Fail. Reaching it right after a word sets EOF
// only, so that word is still returned.
func (in *Input) Next() (string, bool) {
	if !in.Good() {
		return "", false
	}

	var c byte
	var err error
	for {
		c, err = in.r.ReadByte()
		if err != nil {
			in.fail(err, true)
			return "", false
		}
		if !IsSpace(c) {
			break
		}
	}

	var word strings.Builder
	word.WriteByte(c)

	for {
		c, err = in.r.ReadByte()
		if err != nil {
			in.fail(err, false)
			return word.String(), true
		}
		if IsSpace(c) {
			_ = in.r.UnreadByte()
			return word.String(), true
		}
		word.WriteByte(c)
	}
}

func (in *Input) fail(err error, empty bool) {
	if errors.Is(err, io.EOF) {
		in.SetState(EOF)
		if empty {
			in.SetState(Fail)
		}
		return
	}

	in.err = err
	in.SetState(Bad)
	if empty {
		in.SetState(Fail)
	}
}
