package registry

import "github.com/stephenlacy/unrealmodding/pkg/archive"

// CustomVersion is one entry of a record's custom-version manifest: a
// feature GUID plus the revision of that feature the owning package was last
// saved with. The manifest is a copy captured at save time — it need not
// match the current session's own custom-version table.
type CustomVersion struct {
	GUID    archive.GUID
	Version int32
}

// DecodeCustomVersion reads the GUID then the i32 revision.
func DecodeCustomVersion(r *archive.Reader) (CustomVersion, error) {
	g, err := r.ReadGUID()
	if err != nil {
		return CustomVersion{}, err
	}
	v, err := r.ReadInt32()
	if err != nil {
		return CustomVersion{}, err
	}
	return CustomVersion{GUID: g, Version: v}, nil
}

// Encode writes the GUID then the revision.
func (c CustomVersion) Encode(w *archive.Writer) error {
	if err := w.WriteGUID(c.GUID); err != nil {
		return err
	}
	return w.WriteInt32(c.Version)
}
