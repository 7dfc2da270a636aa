package analyzer

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encodings lists the accepted source encodings, default first.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// NewDecoder returns a reader yielding UTF-8 from r.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// For "utf8" a leading BOM is stripped and every other byte passes through
// unchanged, so the byte-wise filter sees the input as it was written.
func NewDecoder(r io.Reader, sourceEncoding string) (io.Reader, error) {
	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "utf8", "":
		return transform.NewReader(r, unicode.BOMOverride(transform.Nop)), nil
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	return transform.NewReader(r, decoder), nil
}
