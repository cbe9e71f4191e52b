package registry

import "strconv"

// PackageIndex is a signed reference into the owning container's import or
// export table: negative values index the import table, positive values the
// export table, zero is null. Resolving an index to an object is the
// container's job, never the codec's.
type PackageIndex int32

// IsNull reports a reference to nothing.
func (i PackageIndex) IsNull() bool {
	return i == 0
}

// IsImport reports a reference into the import table.
func (i PackageIndex) IsImport() bool {
	return i < 0
}

// IsExport reports a reference into the export table.
func (i PackageIndex) IsExport() bool {
	return i > 0
}

// ImportSlot returns the zero-based import-table position. Only meaningful
// when IsImport holds.
func (i PackageIndex) ImportSlot() int {
	return int(-i - 1)
}

// ExportSlot returns the zero-based export-table position. Only meaningful
// when IsExport holds.
func (i PackageIndex) ExportSlot() int {
	return int(i - 1)
}

func (i PackageIndex) String() string {
	switch {
	case i.IsImport():
		return "import:" + strconv.Itoa(i.ImportSlot())
	case i.IsExport():
		return "export:" + strconv.Itoa(i.ExportSlot())
	default:
		return "null"
	}
}
