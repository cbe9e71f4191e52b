package registry

import "fmt"

// MissingFieldError reports an encode attempted under a version whose gate
// requires a field the record does not carry. It is recoverable: the caller
// may populate the field and retry the encode.
type MissingFieldError struct {
	Record  string // record type, e.g. "PackageData"
	Field   string // field the gate requires
	Version fmt.Stringer
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("registry: %s.%s is required when writing at version %s but is absent",
		e.Record, e.Field, e.Version)
}
