// Package registry implements the versioned record codecs for the Unreal
// asset-registry cache format.
//
// Every structured record in the format has evolved through incompatible
// revisions: which fields exist on the wire is decided field-by-field by
// comparing the session's version axes (see pkg/uversion) against per-field
// thresholds. The same gating logic drives both directions, so a record
// decoded under a context and re-encoded under that context round-trips to
// an identical byte stream.
//
// # Decode
//
// Fields are read strictly in declaration order. Before an optional field,
// the relevant version axis is compared >= against the field's threshold; if
// the gate fails the field is left Absent and decoding moves on — nothing is
// skipped, because a stream of that revision never contained the field.
// Nested gates (ue5_version inside the file-version group) are one compound
// gate, not two independent checks.
//
// # Encode
//
// Encoding mirrors decode field order exactly. Each codec first runs an
// assemble-and-check pass over the whole record: every field whose gate
// holds must be Present, or the encode fails with *MissingFieldError naming
// the field and the version that requires it, before a single byte is
// written. Fields whose gate does not hold are never written, even when a
// value is populated in memory — downgrade writes are intentionally lossy.
// The one documented exception: an Absent build-dependency list under a
// holding gate is written as an empty array instead of failing.
//
// # Errors
//
// Structural failures surface as *archive.IOError / *archive.FormatError
// with byte offsets; encode-time gate violations surface as
// *MissingFieldError and are recoverable (populate the field and retry).
// Nothing here panics and nothing is retried internally.
package registry
