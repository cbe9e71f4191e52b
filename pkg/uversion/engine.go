package uversion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
)

// EngineVersion identifies an engine release whose serialization versions
// this module knows how to reproduce.
type EngineVersion int

const (
	EngineUnknown EngineVersion = iota
	UE4_0
	UE4_1
	UE4_2
	UE4_3
	UE4_4
	UE4_5
	UE4_6
	UE4_7
	UE4_8
	UE4_9
	UE4_10
	UE4_11
	UE4_12
	UE4_13
	UE4_14
	UE4_15
	UE4_16
	UE4_17
	UE4_18
	UE4_19
	UE4_20
	UE4_21
	UE4_22
	UE4_23
	UE4_24
	UE4_25
	UE4_26
	UE4_27
	UE5_0
	UE5_1
	UE5_2
	UE5_3
	UE5_4
	UE5_5
)

var engineVersionNames = map[EngineVersion]string{
	UE4_0: "4.0", UE4_1: "4.1", UE4_2: "4.2", UE4_3: "4.3", UE4_4: "4.4",
	UE4_5: "4.5", UE4_6: "4.6", UE4_7: "4.7", UE4_8: "4.8", UE4_9: "4.9",
	UE4_10: "4.10", UE4_11: "4.11", UE4_12: "4.12", UE4_13: "4.13",
	UE4_14: "4.14", UE4_15: "4.15", UE4_16: "4.16", UE4_17: "4.17",
	UE4_18: "4.18", UE4_19: "4.19", UE4_20: "4.20", UE4_21: "4.21",
	UE4_22: "4.22", UE4_23: "4.23", UE4_24: "4.24", UE4_25: "4.25",
	UE4_26: "4.26", UE4_27: "4.27",
	UE5_0: "5.0", UE5_1: "5.1", UE5_2: "5.2", UE5_3: "5.3", UE5_4: "5.4",
	UE5_5: "5.5",
}

func (v EngineVersion) String() string {
	if s, ok := engineVersionNames[v]; ok {
		return s
	}
	return "unknown"
}

// ParseEngineVersion accepts the dotted form ("5.4") as well as the
// VER_UE5_4 spelling used by engine tooling.
func ParseEngineVersion(s string) (EngineVersion, error) {
	norm := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "VER_UE")
	norm = strings.ReplaceAll(norm, "_", ".")
	for v, name := range engineVersionNames {
		if name == norm {
			return v, nil
		}
	}
	return EngineUnknown, &UnsupportedVersionError{Release: s}
}

// SupportedVersions returns every known engine release in ascending order.
func SupportedVersions() []EngineVersion {
	out := make([]EngineVersion, 0, len(releases))
	for v := range releases {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UnsupportedVersionError is returned when a release identifier has no entry
// in the resolution table. It is surfaced before any I/O begins.
type UnsupportedVersionError struct {
	Release any // EngineVersion or the raw string that failed to parse
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("uversion: unsupported engine release %v", e.Release)
}

// release is one row of the hard-coded engine history.
type release struct {
	registry RegistryVersion
	object   ObjectVersion
	ue5      ObjectVersionUE5
	custom   map[archive.GUID]int32
}

// Feature GUIDs of the engine's well-known custom-version streams. GUIDs are
// opaque: they are carried into the custom-version table verbatim and only
// ever compared byte-for-byte.
var (
	GUIDCoreObjectVersion             = guid(0x375EC13C, 0x06E448FB, 0xB50084F0, 0x262A717E)
	GUIDEditorObjectVersion           = guid(0xE4B068ED, 0xF49442E9, 0xA231DA0B, 0x2E46BB41)
	GUIDReleaseObjectVersion          = guid(0x9C54D522, 0xA8264FBE, 0x94210746, 0x61B482D0)
	GUIDFortniteMainObjectVersion     = guid(0x601D1886, 0xAC644F84, 0xAA16D3DE, 0x0DEAC7D6)
	GUIDUE5ReleaseStreamObjectVersion = guid(0xD89B5E42, 0x24BD4D46, 0x8412ACA8, 0xDF641779)
)

// guid packs four 32-bit words in the engine's on-disk order.
func guid(a, b, c, d uint32) archive.GUID {
	var g archive.GUID
	put := func(off int, v uint32) {
		g[off] = byte(v)
		g[off+1] = byte(v >> 8)
		g[off+2] = byte(v >> 16)
		g[off+3] = byte(v >> 24)
	}
	put(0, a)
	put(4, b)
	put(8, c)
	put(12, d)
	return g
}

func customs(core, editor, rel, fortnite, ue5 int32) map[archive.GUID]int32 {
	m := map[archive.GUID]int32{
		GUIDCoreObjectVersion:         core,
		GUIDEditorObjectVersion:       editor,
		GUIDReleaseObjectVersion:      rel,
		GUIDFortniteMainObjectVersion: fortnite,
	}
	if ue5 >= 0 {
		m[GUIDUE5ReleaseStreamObjectVersion] = ue5
	}
	return m
}

// releases maps each supported engine release to the serialization versions
// that release wrote. Rows follow the published engine history; old rows
// never change once a release has shipped.
var releases = map[EngineVersion]release{
	UE4_0:  {RegistryPreVersioning, 342, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_1:  {RegistryPreVersioning, 352, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_2:  {RegistryPreVersioning, 363, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_3:  {RegistryPreVersioning, 382, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_4:  {RegistryPreVersioning, 385, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_5:  {RegistryPreVersioning, 401, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_6:  {RegistryPreVersioning, 413, UE5VersionInvalid, customs(0, 0, 0, 0, -1)},
	UE4_7:  {RegistryPreVersioning, 434, UE5VersionInvalid, customs(0, 0, 1, 0, -1)},
	UE4_8:  {RegistryPreVersioning, 451, UE5VersionInvalid, customs(0, 2, 3, 0, -1)},
	UE4_9:  {RegistryPreVersioning, 482, UE5VersionInvalid, customs(0, 2, 3, 0, -1)},
	UE4_10: {RegistryHardSoftDependencies, 482, UE5VersionInvalid, customs(0, 2, 3, 0, -1)},
	UE4_11: {RegistryAddAssetRegistryState, 498, UE5VersionInvalid, customs(0, 8, 4, 0, -1)},
	UE4_12: {RegistryChangedAssetData, 504, UE5VersionInvalid, customs(1, 14, 5, 0, -1)},
	UE4_13: {RegistryChangedAssetData, 505, UE5VersionInvalid, customs(1, 17, 7, 0, -1)},
	UE4_14: {RegistryRemovedMD5Hash, 508, UE5VersionInvalid, customs(1, 20, 10, 0, -1)},
	UE4_15: {RegistryAddedHardManage, 510, UE5VersionInvalid, customs(2, 24, 12, 0, -1)},
	UE4_16: {RegistryAddedCookedMD5Hash, 513, UE5VersionInvalid, customs(2, 27, 14, 0, -1)},
	UE4_17: {RegistryAddedCookedMD5Hash, 513, UE5VersionInvalid, customs(2, 29, 16, 0, -1)},
	UE4_18: {RegistryAddedCookedMD5Hash, 514, UE5VersionInvalid, customs(2, 30, 18, 0, -1)},
	UE4_19: {RegistryAddedDependencyFlags, 516, UE5VersionInvalid, customs(2, 32, 21, 1, -1)},
	UE4_20: {RegistryFixedTags, 516, UE5VersionInvalid, customs(2, 34, 23, 6, -1)},
	UE4_21: {RegistryFixedTags, 517, UE5VersionInvalid, customs(2, 36, 27, 10, -1)},
	UE4_22: {RegistryFixedTags, 517, UE5VersionInvalid, customs(3, 37, 29, 13, -1)},
	UE4_23: {RegistryFixedTags, 517, UE5VersionInvalid, customs(3, 38, 30, 17, -1)},
	UE4_24: {RegistryFixedTags, 518, UE5VersionInvalid, customs(3, 38, 32, 24, -1)},
	UE4_25: {RegistryFixedTags, 518, UE5VersionInvalid, customs(3, 38, 34, 27, -1)},
	UE4_26: {RegistryFixedTags, 522, UE5VersionInvalid, customs(3, 38, 37, 39, -1)},
	UE4_27: {RegistryFixedTags, 522, UE5VersionInvalid, customs(3, 38, 41, 45, -1)},
	UE5_0:  {RegistryObjectResourceOptionalVersion, 522, UE5LargeWorldCoordinates, customs(3, 38, 43, 56, 3)},
	UE5_1:  {RegistryRemoveAssetPathFNames, 522, UE5AddSoftObjectPathList, customs(4, 40, 46, 61, 8)},
	UE5_2:  {RegistryAddedHeader, 522, UE5DataResources, customs(4, 40, 49, 77, 10)},
	UE5_3:  {RegistryAddedHeader, 522, UE5DataResources, customs(4, 40, 51, 83, 12)},
	UE5_4:  {RegistryAddedHeader, 522, UE5PropertyTagCompleteTypeName, customs(4, 40, 51, 101, 13)},
	UE5_5:  {RegistryAddedHeader, 522, UE5PackageBuildDependencies, customs(4, 40, 51, 103, 15)},
}

// Resolve produces the version context an engine release would write with.
// Resolution is pure table lookup; an unknown release fails with
// *UnsupportedVersionError before any I/O happens.
func Resolve(ev EngineVersion) (*Context, error) {
	rel, ok := releases[ev]
	if !ok {
		return nil, &UnsupportedVersionError{Release: ev}
	}
	return NewContext(rel.registry, rel.object, rel.ue5, rel.custom), nil
}
