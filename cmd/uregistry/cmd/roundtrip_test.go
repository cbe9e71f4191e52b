package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/names"
	"github.com/stephenlacy/unrealmodding/pkg/registry"
	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// writeFixture encodes a record and the matching name pool into tmpDir.
func writeFixture(t *testing.T, tmpDir string) (recordPath, namesPath string) {
	t.Helper()

	pool := []string{"/Game/Maps/Town", "/Script/Engine.World"}
	tbl := names.NewTable()
	for _, s := range pool {
		tbl.Intern(s)
	}

	ctx, err := uversion.Resolve(uversion.UE5_4)
	require.NoError(t, err)

	pd := registry.PackageData{
		PackageName:         names.Name{Index: 0},
		DiskSize:            4096,
		CookedHash:          registry.Some(registry.MD5Hash{0x01}),
		FileVersion:         registry.Some(int32(522)),
		UE5Version:          registry.Some(int32(1012)),
		FileVersionLicensee: registry.Some(int32(0)),
		Flags:               registry.Some(uint32(0)),
		CustomVersions:      registry.Some([]registry.CustomVersion{}),
		ImportedClasses:     registry.Some([]names.Name{{Index: 1}}),
	}

	w := archive.NewWriter()
	require.NoError(t, pd.Encode(w, ctx))

	recordPath = filepath.Join(tmpDir, "package.bin")
	require.NoError(t, os.WriteFile(recordPath, w.Bytes(), 0644))

	namesPath = filepath.Join(tmpDir, "pool.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte(pool[0]+"\n"+pool[1]+"\n"), 0644))
	return recordPath, namesPath
}

func TestRoundtripCommand(t *testing.T) {
	tmpDir := t.TempDir()
	recordPath, namesPath := writeFixture(t, tmpDir)

	rootCmd.SetArgs([]string{"roundtrip", "--engine", "5.4", "--names", namesPath, recordPath})
	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestRoundtripCommandWrongEngine(t *testing.T) {
	tmpDir := t.TempDir()
	recordPath, namesPath := writeFixture(t, tmpDir)

	// A 4.14 context reads only the unconditional prefix, so the re-encoded
	// record is shorter than the input but still matches what was consumed;
	// an unknown release must fail outright.
	rootCmd.SetArgs([]string{"roundtrip", "--engine", "3.9", "--names", namesPath, recordPath})
	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	tmpDir := t.TempDir()
	recordPath, namesPath := writeFixture(t, tmpDir)

	rootCmd.SetArgs([]string{"inspect", "--engine", "5.4", "--names", namesPath, recordPath})
	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestVersionsCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"versions"})
	err := rootCmd.Execute()
	assert.NoError(t, err)
}
