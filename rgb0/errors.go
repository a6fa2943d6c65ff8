package rgb0

import "fmt"

// FormatError reports malformed capture bytes found while decoding.
// It is terminal for the decode call; no partial capture is returned.
type FormatError struct {
	Offset int    // byte offset where the problem was found
	Field  string // header or table field involved, when known
	Reason string
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("rgb0: %s (field %s, offset %d)", e.Reason, e.Field, e.Offset)
	}
	return fmt.Sprintf("rgb0: %s (offset %d)", e.Reason, e.Offset)
}

// ValidationError reports caller-supplied frame data the encoder
// cannot serialize. Frame and Port are -1 when the problem is not tied
// to a particular one.
type ValidationError struct {
	Frame  int
	Port   int
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Frame >= 0 && e.Port >= 0:
		return fmt.Sprintf("rgb0: frame %d port %d: %s", e.Frame, e.Port, e.Reason)
	case e.Frame >= 0:
		return fmt.Sprintf("rgb0: frame %d: %s", e.Frame, e.Reason)
	default:
		return fmt.Sprintf("rgb0: %s", e.Reason)
	}
}
