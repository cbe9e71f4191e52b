package uversion

import "strconv"

// RegistryVersion enumerates successive revisions of the asset-registry
// serialization format. Variants are ordinally comparable; a record field
// gated on a version V is on the wire exactly when the stream's registry
// version is >= V.
type RegistryVersion int32

const (
	// RegistryPreVersioning marks streams from before the registry carried a
	// version number at all.
	RegistryPreVersioning RegistryVersion = iota
	RegistryHardSoftDependencies
	RegistryAddAssetRegistryState
	RegistryChangedAssetData
	RegistryRemovedMD5Hash
	RegistryAddedHardManage
	// RegistryAddedCookedMD5Hash added the cooked package content hash.
	RegistryAddedCookedMD5Hash
	RegistryAddedDependencyFlags
	RegistryFixedTags
	// RegistryWorkspaceDomain added the file version pair, flags and the
	// per-package custom-version manifest.
	RegistryWorkspaceDomain
	// RegistryPackageImportedClasses added the imported-class name list.
	RegistryPackageImportedClasses
	// RegistryPackageFileSummaryVersionChange split the file version into a
	// UE4/UE5 pair.
	RegistryPackageFileSummaryVersionChange
	RegistryObjectResourceOptionalVersion
	RegistryAddedChunkHashes
	RegistryClassPaths
	RegistryRemoveAssetPathFNames
	RegistryAddedHeader

	// RegistryLatest is the newest revision this module understands.
	RegistryLatest = RegistryAddedHeader
)

var registryVersionNames = map[RegistryVersion]string{
	RegistryPreVersioning:                   "PreVersioning",
	RegistryHardSoftDependencies:            "HardSoftDependencies",
	RegistryAddAssetRegistryState:           "AddAssetRegistryState",
	RegistryChangedAssetData:                "ChangedAssetData",
	RegistryRemovedMD5Hash:                  "RemovedMD5Hash",
	RegistryAddedHardManage:                 "AddedHardManage",
	RegistryAddedCookedMD5Hash:              "AddedCookedMD5Hash",
	RegistryAddedDependencyFlags:            "AddedDependencyFlags",
	RegistryFixedTags:                       "FixedTags",
	RegistryWorkspaceDomain:                 "WorkspaceDomain",
	RegistryPackageImportedClasses:          "PackageImportedClasses",
	RegistryPackageFileSummaryVersionChange: "PackageFileSummaryVersionChange",
	RegistryObjectResourceOptionalVersion:   "ObjectResourceOptionalVersion",
	RegistryAddedChunkHashes:                "AddedChunkHashes",
	RegistryClassPaths:                      "ClassPaths",
	RegistryRemoveAssetPathFNames:           "RemoveAssetPathFNames",
	RegistryAddedHeader:                     "AddedHeader",
}

func (v RegistryVersion) String() string {
	if s, ok := registryVersionNames[v]; ok {
		return s
	}
	return "RegistryVersion(" + strconv.Itoa(int(v)) + ")"
}

// ObjectVersion is the UE4 object serialization version. The full history
// has hundreds of entries; the codecs in this module only need it as an
// ordered value, so it is carried as a plain number.
type ObjectVersion int32

// ObjectVersionUE5 is the UE5 object serialization version, numbered from
// 1000 so it can never collide with ObjectVersion.
type ObjectVersionUE5 int32

const (
	// UE5VersionInvalid means the stream predates UE5 numbering.
	UE5VersionInvalid ObjectVersionUE5 = 0

	UE5InitialVersion                  ObjectVersionUE5 = 1000
	UE5NamesReferencedFromExportData   ObjectVersionUE5 = 1001
	UE5PayloadTOC                      ObjectVersionUE5 = 1002
	UE5OptionalResources               ObjectVersionUE5 = 1003
	UE5LargeWorldCoordinates           ObjectVersionUE5 = 1004
	UE5RemoveObjectExportPackageGUID   ObjectVersionUE5 = 1005
	UE5TrackObjectExportIsInherited    ObjectVersionUE5 = 1006
	UE5RemoveAssetPathFNames           ObjectVersionUE5 = 1007
	UE5AddSoftObjectPathList           ObjectVersionUE5 = 1008
	UE5DataResources                   ObjectVersionUE5 = 1009
	UE5ScriptSerializationOffset       ObjectVersionUE5 = 1010
	UE5PropertyTagExtension            ObjectVersionUE5 = 1011
	UE5PropertyTagCompleteTypeName     ObjectVersionUE5 = 1012
	// UE5PackageBuildDependencies added the package build-dependency name
	// list to the registry package record.
	UE5PackageBuildDependencies ObjectVersionUE5 = 1013
)

var ue5VersionNames = map[ObjectVersionUE5]string{
	UE5VersionInvalid:                "Invalid",
	UE5InitialVersion:                "InitialVersion",
	UE5NamesReferencedFromExportData: "NamesReferencedFromExportData",
	UE5PayloadTOC:                    "PayloadTOC",
	UE5OptionalResources:             "OptionalResources",
	UE5LargeWorldCoordinates:         "LargeWorldCoordinates",
	UE5RemoveObjectExportPackageGUID: "RemoveObjectExportPackageGUID",
	UE5TrackObjectExportIsInherited:  "TrackObjectExportIsInherited",
	UE5RemoveAssetPathFNames:         "RemoveAssetPathFNames",
	UE5AddSoftObjectPathList:         "AddSoftObjectPathList",
	UE5DataResources:                 "DataResources",
	UE5ScriptSerializationOffset:     "ScriptSerializationOffset",
	UE5PropertyTagExtension:          "PropertyTagExtension",
	UE5PropertyTagCompleteTypeName:   "PropertyTagCompleteTypeName",
	UE5PackageBuildDependencies:      "PackageBuildDependencies",
}

func (v ObjectVersionUE5) String() string {
	if s, ok := ue5VersionNames[v]; ok {
		return s
	}
	return "ObjectVersionUE5(" + strconv.Itoa(int(v)) + ")"
}

