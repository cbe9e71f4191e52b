package registry

import (
	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/names"
	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// Field-presence bits of the AssetIdentifier wire form.
const (
	identHasPackageName uint8 = 1 << iota
	identHasPrimaryAssetType
	identHasObjectName
	identHasValueName
)

// AssetIdentifier names an asset, or a part of one, inside the registry's
// dependency graph. Unlike PackageData its optional fields are not gated on
// versions: a leading presence byte says which of the four name fields
// follow, so the record is self-describing and identical across revisions.
type AssetIdentifier struct {
	PackageName      Optional[names.Name]
	PrimaryAssetType Optional[names.Name]
	ObjectName       Optional[names.Name]
	ValueName        Optional[names.Name]
}

// DecodeAssetIdentifier reads the presence byte, then each flagged name in
// bit order.
func DecodeAssetIdentifier(r *archive.Reader, ctx *uversion.Context, tbl *names.Table) (AssetIdentifier, error) {
	var ai AssetIdentifier

	bits, err := r.ReadUint8()
	if err != nil {
		return ai, err
	}

	read := func(field string) (Optional[names.Name], error) {
		n, err := readCheckedName(r, tbl, field)
		if err != nil {
			return None[names.Name](), err
		}
		return Some(n), nil
	}

	if bits&identHasPackageName != 0 {
		if ai.PackageName, err = read("AssetIdentifier.package_name"); err != nil {
			return ai, err
		}
	}
	if bits&identHasPrimaryAssetType != 0 {
		if ai.PrimaryAssetType, err = read("AssetIdentifier.primary_asset_type"); err != nil {
			return ai, err
		}
	}
	if bits&identHasObjectName != 0 {
		if ai.ObjectName, err = read("AssetIdentifier.object_name"); err != nil {
			return ai, err
		}
	}
	if bits&identHasValueName != 0 {
		if ai.ValueName, err = read("AssetIdentifier.value_name"); err != nil {
			return ai, err
		}
	}

	return ai, nil
}

// Encode derives the presence byte from the populated fields and writes the
// flagged names in bit order. There is nothing to gate-check: presence on
// the wire follows presence in memory.
func (ai AssetIdentifier) Encode(w *archive.Writer, _ *uversion.Context) error {
	var bits uint8
	if ai.PackageName.IsSome() {
		bits |= identHasPackageName
	}
	if ai.PrimaryAssetType.IsSome() {
		bits |= identHasPrimaryAssetType
	}
	if ai.ObjectName.IsSome() {
		bits |= identHasObjectName
	}
	if ai.ValueName.IsSome() {
		bits |= identHasValueName
	}
	if err := w.WriteUint8(bits); err != nil {
		return err
	}

	for _, f := range []Optional[names.Name]{ai.PackageName, ai.PrimaryAssetType, ai.ObjectName, ai.ValueName} {
		if n, ok := f.Get(); ok {
			if err := names.WriteName(w, n); err != nil {
				return err
			}
		}
	}
	return nil
}
