package archive

import "fmt"

// IOError reports a read that ran past the end of the buffer or a write the
// buffer rejected. It is fatal to the current session.
type IOError struct {
	Op     string // operation that failed, e.g. "read uint32"
	Offset int64  // cursor position when the operation started
	Want   int    // bytes the operation needed
	Have   int    // bytes that were available
}

func (e *IOError) Error() string {
	return fmt.Sprintf("archive: %s at offset %d: need %d bytes, have %d", e.Op, e.Offset, e.Want, e.Have)
}

// FormatError reports structurally invalid data, such as a negative array
// count. It indicates corrupt or unsupported input and is fatal.
type FormatError struct {
	Offset int64
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("archive: invalid data at offset %d: %s", e.Offset, e.Msg)
}
