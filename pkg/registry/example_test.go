package registry_test

import (
	"fmt"
	"log"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/names"
	"github.com/stephenlacy/unrealmodding/pkg/registry"
	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// ExamplePackageData demonstrates encoding a package record for one engine
// release and decoding it back.
func ExamplePackageData() {
	// One session owns one name table and one version context.
	tbl := names.NewTable()
	ctx, err := uversion.Resolve(uversion.UE5_4)
	if err != nil {
		log.Fatal(err)
	}

	pd := registry.PackageData{
		PackageName:         tbl.Intern("/Game/Weapons/BP_Pickup_Rifle"),
		DiskSize:            183220,
		CookedHash:          registry.Some(registry.MD5Hash{}),
		FileVersion:         registry.Some(int32(522)),
		UE5Version:          registry.Some(int32(1012)),
		FileVersionLicensee: registry.Some(int32(0)),
		Flags:               registry.Some(uint32(0)),
		CustomVersions:      registry.Some([]registry.CustomVersion{}),
		ImportedClasses:     registry.Some([]names.Name{tbl.Intern("/Script/Engine.Blueprint")}),
	}

	w := archive.NewWriter()
	if err := pd.Encode(w, ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("encoded %d bytes\n", len(w.Bytes()))

	decoded, err := registry.DecodePackageData(archive.NewReader(w.Bytes()), ctx, tbl)
	if err != nil {
		log.Fatal(err)
	}

	name, _ := tbl.Display(decoded.PackageName)
	ue5, _ := decoded.UE5Version.Get()
	fmt.Printf("package: %s\n", name)
	fmt.Printf("ue5 file version: %d\n", ue5)

	// Output:
	// encoded 80 bytes
	// package: /Game/Weapons/BP_Pickup_Rifle
	// ue5 file version: 1012
}
