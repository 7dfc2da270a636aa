package stream

import "io"

// Output forwards writes to an io.Writer until the first failure.
type Output struct {
	flags
	w   io.Writer
	err error
}

func NewOutput(w io.Writer) *Output {
	if out, ok := w.(*Output); ok {
		return out
	}
	return &Output{w: w}
}

// Err returns the last error of the underlying writer.
func (o *Output) Err() error { return o.err }

func (o *Output) Write(p []byte) (int, error) {
	if !o.Good() {
		if o.err != nil {
			return 0, o.err
		}
		return 0, ErrState
	}

	n, err := o.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		o.err = err
		o.SetState(Bad | Fail)
	}
	return n, err
}
