package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/names"
	"github.com/stephenlacy/unrealmodding/pkg/registry"
	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode a package-data record and print its fields",
	Long: `Decode a serialized package-data record and print its fields. The record
references names by pool index, so the name pool must be supplied with
--names: a text file, one string per line, interned in order.

Example:
  uregistry inspect --engine 5.4 --names pool.txt package.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := contextFromFlags(cmd)
		if err != nil {
			return err
		}

		namesPath, _ := cmd.Flags().GetString("names")
		tbl, err := loadNamePool(namesPath)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		reader := archive.NewReader(data)
		pd, err := registry.DecodePackageData(reader, ctx, tbl)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		log.Debug().Int64("bytes", reader.Offset()).Msg("record decoded")
		if reader.Remaining() > 0 {
			log.Warn().Int("trailing", reader.Remaining()).Msg("unread bytes after record")
		}

		return printPackageData(pd, tbl)
	},
}

func init() {
	inspectCmd.Flags().StringP("names", "n", "", "Name pool file, one string per line (required)")
	_ = inspectCmd.MarkFlagRequired("names")
	rootCmd.AddCommand(inspectCmd)
}

// contextFromFlags resolves the version context from --engine, falling back
// to the configured default release.
func contextFromFlags(cmd *cobra.Command) (*uversion.Context, error) {
	engine, _ := cmd.Flags().GetString("engine")
	if engine == "" {
		engine = cfg.DefaultEngine
	}
	ev, err := uversion.ParseEngineVersion(engine)
	if err != nil {
		return nil, err
	}
	return uversion.Resolve(ev)
}

// loadNamePool interns the pool file's lines in order so wire indices line
// up with the pool the record was saved against.
func loadNamePool(path string) (*names.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl := names.NewTable()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		tbl.Intern(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tbl, nil
}

func printPackageData(pd registry.PackageData, tbl *names.Table) error {
	display := func(n names.Name) string {
		s, err := tbl.Display(n)
		if err != nil {
			return fmt.Sprintf("name(%d,%d)", n.Index, n.Number)
		}
		return s
	}

	if cfg.Output == "json" {
		out := map[string]any{
			"package_name": display(pd.PackageName),
			"disk_size":    pd.DiskSize,
			"package_guid": fmt.Sprintf("%x", pd.PackageGUID),
		}
		if h, ok := pd.CookedHash.Get(); ok {
			out["cooked_hash"] = h.String()
		}
		if v, ok := pd.FileVersion.Get(); ok {
			out["file_version"] = v
		}
		if v, ok := pd.UE5Version.Get(); ok {
			out["ue5_version"] = v
		}
		if v, ok := pd.FileVersionLicensee.Get(); ok {
			out["file_version_licensee"] = v
		}
		if v, ok := pd.Flags.Get(); ok {
			out["flags"] = v
		}
		if cvs, ok := pd.CustomVersions.Get(); ok {
			entries := make([]map[string]any, 0, len(cvs))
			for _, cv := range cvs {
				entries = append(entries, map[string]any{
					"guid":    fmt.Sprintf("%x", cv.GUID),
					"version": cv.Version,
				})
			}
			out["custom_versions"] = entries
		}
		if classes, ok := pd.ImportedClasses.Get(); ok {
			strs := make([]string, 0, len(classes))
			for _, n := range classes {
				strs = append(strs, display(n))
			}
			out["imported_classes"] = strs
		}
		if deps, ok := pd.BuildDependencies.Get(); ok {
			strs := make([]string, 0, len(deps))
			for _, n := range deps {
				strs = append(strs, display(n))
			}
			out["package_build_dependencies"] = strs
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("package_name:  %s\n", display(pd.PackageName))
	fmt.Printf("disk_size:     %d\n", pd.DiskSize)
	fmt.Printf("package_guid:  %x\n", pd.PackageGUID)
	if h, ok := pd.CookedHash.Get(); ok {
		fmt.Printf("cooked_hash:   %s\n", h)
	}
	if v, ok := pd.FileVersion.Get(); ok {
		fmt.Printf("file_version:  %d\n", v)
	}
	if v, ok := pd.UE5Version.Get(); ok {
		fmt.Printf("ue5_version:   %d\n", v)
	}
	if v, ok := pd.FileVersionLicensee.Get(); ok {
		fmt.Printf("licensee:      %d\n", v)
	}
	if v, ok := pd.Flags.Get(); ok {
		fmt.Printf("flags:         0x%08x\n", v)
	}
	if cvs, ok := pd.CustomVersions.Get(); ok {
		fmt.Printf("custom_versions (%d):\n", len(cvs))
		for _, cv := range cvs {
			fmt.Printf("  %x = %d\n", cv.GUID, cv.Version)
		}
	}
	if classes, ok := pd.ImportedClasses.Get(); ok {
		fmt.Printf("imported_classes (%d):\n", len(classes))
		for _, n := range classes {
			fmt.Printf("  %s\n", display(n))
		}
	}
	if deps, ok := pd.BuildDependencies.Get(); ok {
		fmt.Printf("package_build_dependencies (%d):\n", len(deps))
		for _, n := range deps {
			fmt.Printf("  %s\n", display(n))
		}
	}
	return nil
}
