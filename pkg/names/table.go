// Package names implements the interned name references used throughout
// Unreal container formats in place of inline strings.
//
// A Name is a pool index plus an instance number; the Table that issued the
// index is the only thing that can turn it back into a string. Tables are
// append-only within a session and owned by exactly one session — decoding
// many files in parallel means one table per file, never a shared one.
package names

import (
	"fmt"
	"strconv"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
)

// Name is an interned string reference: an index into the owning table's
// pool plus an instance number. Equality is structural — two names are the
// same name only if both index and number match, even when they render to
// the same display string.
type Name struct {
	Index  uint32
	Number uint32
}

// ReadName reads the wire form: u32 pool index then u32 instance number.
func ReadName(r *archive.Reader) (Name, error) {
	idx, err := r.ReadUint32()
	if err != nil {
		return Name{}, err
	}
	num, err := r.ReadUint32()
	if err != nil {
		return Name{}, err
	}
	return Name{Index: idx, Number: num}, nil
}

// WriteName writes the wire form.
func WriteName(w *archive.Writer, n Name) error {
	if err := w.WriteUint32(n.Index); err != nil {
		return err
	}
	return w.WriteUint32(n.Number)
}

// Table is a per-session string interner. Interning the same string twice
// yields the same pool index; the pool only ever grows. Not safe for
// concurrent mutation.
type Table struct {
	pool   []string
	lookup map[string]uint32
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{lookup: make(map[string]uint32)}
}

// Intern returns the name for s, allocating a new pool slot only when s has
// not been seen in this session. The returned name has instance number 0;
// numbered instances are the caller's convention.
func (t *Table) Intern(s string) Name {
	if idx, ok := t.lookup[s]; ok {
		return Name{Index: idx}
	}
	idx := uint32(len(t.pool))
	t.pool = append(t.pool, s)
	t.lookup[s] = idx
	return Name{Index: idx}
}

// Resolve returns the base string for a name issued by this table. A name
// whose index this session never issued is an error, not a panic — it
// usually means the name came from a different session's pool.
func (t *Table) Resolve(n Name) (string, error) {
	if int(n.Index) >= len(t.pool) {
		return "", fmt.Errorf("names: index %d out of range (pool has %d entries)", n.Index, len(t.pool))
	}
	return t.pool[n.Index], nil
}

// Display renders a name for humans: the base string, with the engine's
// numeric-suffix convention applied when the instance number is set.
func (t *Table) Display(n Name) (string, error) {
	base, err := t.Resolve(n)
	if err != nil {
		return "", err
	}
	if n.Number == 0 {
		return base, nil
	}
	return base + "_" + strconv.FormatUint(uint64(n.Number-1), 10), nil
}

// Len returns the number of pooled strings.
func (t *Table) Len() int {
	return len(t.pool)
}
