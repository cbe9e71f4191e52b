// Package archive provides the primitive binary cursor used by every record
// codec in this module.
//
// Unreal container formats are little-endian streams of fixed-width
// primitives, 16-byte GUIDs, length-prefixed strings and i32-counted
// homogeneous arrays. Reader and Writer expose exactly those shapes and
// nothing else; which primitives appear, and in what order, is decided by the
// record codecs in pkg/registry against a version context.
//
// # Cursor discipline
//
// A Reader or Writer is an exclusive, forward-only cursor. Every read
// consumes exactly the width of the requested value and advances the cursor;
// there is no seeking and no peeking. On failure the cursor is left at the
// position where the failing operation began, but callers are expected to
// discard the archive — no partial state is observable outside it.
//
// # Error Handling
//
// A read past the end of the buffer fails with *IOError carrying the
// operation name, the byte offset and the missing byte count. Structurally
// invalid input, such as a negative array or blob count, fails with
// *FormatError. Both are fatal to the session and are never retried here;
// retry policy belongs to the caller.
//
// # Thread Safety
//
// Archives are single-session objects. Independent sessions over independent
// buffers may run concurrently; a single Reader or Writer must not be shared.
package archive
