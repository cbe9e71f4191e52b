package uversion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
)

func TestResolveKnownReleases(t *testing.T) {
	tests := []struct {
		engine   EngineVersion
		registry RegistryVersion
		object   ObjectVersion
		ue5      ObjectVersionUE5
	}{
		{UE4_16, RegistryAddedCookedMD5Hash, 513, UE5VersionInvalid},
		{UE4_27, RegistryFixedTags, 522, UE5VersionInvalid},
		{UE5_0, RegistryObjectResourceOptionalVersion, 522, UE5LargeWorldCoordinates},
		{UE5_4, RegistryAddedHeader, 522, UE5PropertyTagCompleteTypeName},
		{UE5_5, RegistryAddedHeader, 522, UE5PackageBuildDependencies},
	}

	for _, tc := range tests {
		t.Run(tc.engine.String(), func(t *testing.T) {
			ctx, err := Resolve(tc.engine)
			require.NoError(t, err)
			assert.Equal(t, tc.registry, ctx.Registry())
			assert.Equal(t, tc.object, ctx.Object())
			assert.Equal(t, tc.ue5, ctx.ObjectUE5())
		})
	}
}

func TestResolveUnknownRelease(t *testing.T) {
	_, err := Resolve(EngineUnknown)
	require.Error(t, err)

	var unsupported *UnsupportedVersionError
	assert.True(t, errors.As(err, &unsupported))
}

func TestVersionAxesAreMonotonic(t *testing.T) {
	all := SupportedVersions()
	require.NotEmpty(t, all)

	prev, err := Resolve(all[0])
	require.NoError(t, err)
	for _, ev := range all[1:] {
		ctx, err := Resolve(ev)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ctx.Registry(), prev.Registry(), "registry version regressed at %s", ev)
		assert.GreaterOrEqual(t, ctx.Object(), prev.Object(), "object version regressed at %s", ev)
		assert.GreaterOrEqual(t, ctx.ObjectUE5(), prev.ObjectUE5(), "ue5 version regressed at %s", ev)
		prev = ctx
	}
}

func TestUE5AxisOnlyOnUE5Releases(t *testing.T) {
	for _, ev := range SupportedVersions() {
		ctx, err := Resolve(ev)
		require.NoError(t, err)
		if ctx.Registry() >= RegistryObjectResourceOptionalVersion {
			assert.GreaterOrEqual(t, ctx.ObjectUE5(), UE5InitialVersion, "UE5 release %s missing ue5 version", ev)
		} else {
			assert.Equal(t, UE5VersionInvalid, ctx.ObjectUE5(), "pre-UE5 release %s carries a ue5 version", ev)
		}
	}
}

func TestCustomVersionLookup(t *testing.T) {
	ctx, err := Resolve(UE5_4)
	require.NoError(t, err)

	v, ok := ctx.CustomVersion(GUIDUE5ReleaseStreamObjectVersion)
	require.True(t, ok)
	assert.Equal(t, int32(13), v)

	_, ok = ctx.CustomVersion(archive.GUID{0xFF})
	assert.False(t, ok)
}

func TestUE5StreamAbsentBeforeUE5(t *testing.T) {
	ctx, err := Resolve(UE4_27)
	require.NoError(t, err)

	_, ok := ctx.CustomVersion(GUIDUE5ReleaseStreamObjectVersion)
	assert.False(t, ok)
}

func TestContextCopiesCustomMap(t *testing.T) {
	custom := map[archive.GUID]int32{GUIDCoreObjectVersion: 4}
	ctx := NewContext(RegistryLatest, 522, UE5PackageBuildDependencies, custom)

	custom[GUIDCoreObjectVersion] = 99
	v, ok := ctx.CustomVersion(GUIDCoreObjectVersion)
	require.True(t, ok)
	assert.Equal(t, int32(4), v)
}

func TestParseEngineVersion(t *testing.T) {
	tests := []struct {
		in   string
		want EngineVersion
	}{
		{"5.4", UE5_4},
		{"VER_UE5_4", UE5_4},
		{"ver_ue4_27", UE4_27},
		{" 4.16 ", UE4_16},
	}
	for _, tc := range tests {
		got, err := ParseEngineVersion(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseEngineVersion("3.5")
	var unsupported *UnsupportedVersionError
	assert.True(t, errors.As(err, &unsupported))
}

func TestFeatureGUIDsAreDistinct(t *testing.T) {
	guids := []archive.GUID{
		GUIDCoreObjectVersion,
		GUIDEditorObjectVersion,
		GUIDReleaseObjectVersion,
		GUIDFortniteMainObjectVersion,
		GUIDUE5ReleaseStreamObjectVersion,
	}
	seen := make(map[archive.GUID]bool)
	for _, g := range guids {
		assert.False(t, seen[g])
		seen[g] = true
	}
}
