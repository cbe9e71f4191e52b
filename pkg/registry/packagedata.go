package registry

import (
	"fmt"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/names"
	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// PackageData is the per-package metadata record of the asset-registry
// cache. Beyond the three always-present fields, every field is gated on a
// version threshold; see the field table in the package documentation.
type PackageData struct {
	PackageName names.Name
	DiskSize    int64
	PackageGUID archive.GUID

	// Present when registry version >= AddedCookedMD5Hash.
	CookedHash Optional[MD5Hash]

	// The file-version group, present when registry version >=
	// WorkspaceDomain. UE5Version is nested one revision deeper: it exists
	// only when the stream also reaches PackageFileSummaryVersionChange.
	FileVersion         Optional[int32]
	UE5Version          Optional[int32]
	FileVersionLicensee Optional[int32]
	Flags               Optional[uint32]
	CustomVersions      Optional[[]CustomVersion]

	// Present when registry version >= PackageImportedClasses.
	ImportedClasses Optional[[]names.Name]

	// Present when the UE5 object version >= PackageBuildDependencies.
	BuildDependencies Optional[[]names.Name]
}

// DecodePackageData reads one record. Fields below their gate are left
// Absent; no bytes are skipped for them because streams of that revision
// never contained them. Every decoded name must resolve against tbl.
func DecodePackageData(r *archive.Reader, ctx *uversion.Context, tbl *names.Table) (PackageData, error) {
	var pd PackageData

	name, err := readCheckedName(r, tbl, "PackageData.package_name")
	if err != nil {
		return pd, err
	}
	pd.PackageName = name

	if pd.DiskSize, err = r.ReadInt64(); err != nil {
		return pd, err
	}
	if pd.PackageGUID, err = r.ReadGUID(); err != nil {
		return pd, err
	}

	if ctx.Registry() >= uversion.RegistryAddedCookedMD5Hash {
		h, err := DecodeMD5Hash(r)
		if err != nil {
			return pd, err
		}
		pd.CookedHash = Some(h)
	}

	if ctx.Registry() >= uversion.RegistryWorkspaceDomain {
		fv, err := r.ReadInt32()
		if err != nil {
			return pd, err
		}
		pd.FileVersion = Some(fv)

		if ctx.Registry() >= uversion.RegistryPackageFileSummaryVersionChange {
			v5, err := r.ReadInt32()
			if err != nil {
				return pd, err
			}
			pd.UE5Version = Some(v5)
		}

		lic, err := r.ReadInt32()
		if err != nil {
			return pd, err
		}
		pd.FileVersionLicensee = Some(lic)

		flags, err := r.ReadUint32()
		if err != nil {
			return pd, err
		}
		pd.Flags = Some(flags)

		cvs, err := archive.ReadArray(r, DecodeCustomVersion)
		if err != nil {
			return pd, err
		}
		pd.CustomVersions = Some(cvs)
	}

	if ctx.Registry() >= uversion.RegistryPackageImportedClasses {
		classes, err := archive.ReadArray(r, func(r *archive.Reader) (names.Name, error) {
			return readCheckedName(r, tbl, "PackageData.imported_classes")
		})
		if err != nil {
			return pd, err
		}
		pd.ImportedClasses = Some(classes)
	}

	if ctx.ObjectUE5() >= uversion.UE5PackageBuildDependencies {
		deps, err := archive.ReadArray(r, func(r *archive.Reader) (names.Name, error) {
			return readCheckedName(r, tbl, "PackageData.package_build_dependencies")
		})
		if err != nil {
			return pd, err
		}
		pd.BuildDependencies = Some(deps)
	}

	return pd, nil
}

// Encode writes the record for the given context. The whole record is
// checked against the context's gates before the first byte is written;
// fields below their gate are dropped even when populated, which makes a
// downgrade write intentionally lossy.
func (pd PackageData) Encode(w *archive.Writer, ctx *uversion.Context) error {
	if err := pd.check(ctx); err != nil {
		return err
	}

	if err := names.WriteName(w, pd.PackageName); err != nil {
		return err
	}
	if err := w.WriteInt64(pd.DiskSize); err != nil {
		return err
	}
	if err := w.WriteGUID(pd.PackageGUID); err != nil {
		return err
	}

	if ctx.Registry() >= uversion.RegistryAddedCookedMD5Hash {
		if err := pd.CookedHash.OrZero().Encode(w); err != nil {
			return err
		}
	}

	if ctx.Registry() >= uversion.RegistryWorkspaceDomain {
		if err := w.WriteInt32(pd.FileVersion.OrZero()); err != nil {
			return err
		}
		if ctx.Registry() >= uversion.RegistryPackageFileSummaryVersionChange {
			if err := w.WriteInt32(pd.UE5Version.OrZero()); err != nil {
				return err
			}
		}
		if err := w.WriteInt32(pd.FileVersionLicensee.OrZero()); err != nil {
			return err
		}
		if err := w.WriteUint32(pd.Flags.OrZero()); err != nil {
			return err
		}
		cvs, _ := pd.CustomVersions.Get()
		if err := archive.WriteArray(w, cvs, func(w *archive.Writer, cv CustomVersion) error {
			return cv.Encode(w)
		}); err != nil {
			return err
		}
	}

	if ctx.Registry() >= uversion.RegistryPackageImportedClasses {
		classes, _ := pd.ImportedClasses.Get()
		if err := archive.WriteArray(w, classes, writeNameElem); err != nil {
			return err
		}
	}

	if ctx.ObjectUE5() >= uversion.UE5PackageBuildDependencies {
		// Lenient by design: an absent list under a holding gate becomes an
		// empty array on the wire instead of a MissingFieldError. This
		// applies to the build-dependency list only.
		deps, _ := pd.BuildDependencies.Get()
		if err := archive.WriteArray(w, deps, writeNameElem); err != nil {
			return err
		}
	}

	return nil
}

// check is the assemble-and-check pass: it verifies that every field whose
// gate holds is present, without touching the writer.
func (pd PackageData) check(ctx *uversion.Context) error {
	if ctx.Registry() >= uversion.RegistryAddedCookedMD5Hash && !pd.CookedHash.IsSome() {
		return missing("cooked_hash", uversion.RegistryAddedCookedMD5Hash)
	}
	if ctx.Registry() >= uversion.RegistryWorkspaceDomain {
		if !pd.FileVersion.IsSome() {
			return missing("file_version", uversion.RegistryWorkspaceDomain)
		}
		if !pd.FileVersionLicensee.IsSome() {
			return missing("file_version_licensee", uversion.RegistryWorkspaceDomain)
		}
		if !pd.Flags.IsSome() {
			return missing("flags", uversion.RegistryWorkspaceDomain)
		}
		if !pd.CustomVersions.IsSome() {
			return missing("custom_versions", uversion.RegistryWorkspaceDomain)
		}
	}
	if ctx.Registry() >= uversion.RegistryPackageFileSummaryVersionChange && !pd.UE5Version.IsSome() {
		return missing("ue5_version", uversion.RegistryPackageFileSummaryVersionChange)
	}
	if ctx.Registry() >= uversion.RegistryPackageImportedClasses && !pd.ImportedClasses.IsSome() {
		return missing("imported_classes", uversion.RegistryPackageImportedClasses)
	}
	// BuildDependencies is deliberately exempt; see Encode.
	return nil
}

func missing(field string, v uversion.RegistryVersion) error {
	return &MissingFieldError{Record: "PackageData", Field: field, Version: v}
}

func readCheckedName(r *archive.Reader, tbl *names.Table, field string) (names.Name, error) {
	start := r.Offset()
	n, err := names.ReadName(r)
	if err != nil {
		return names.Name{}, err
	}
	if _, err := tbl.Resolve(n); err != nil {
		return names.Name{}, &archive.FormatError{
			Offset: start,
			Msg:    fmt.Sprintf("%s: %v", field, err),
		}
	}
	return n, nil
}

func writeNameElem(w *archive.Writer, n names.Name) error {
	return names.WriteName(w, n)
}
