package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/registry"
)

// roundtripCmd represents the roundtrip command
var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <file>",
	Short: "Decode and re-encode a record, verifying the bytes are identical",
	Long: `Decode a serialized package-data record, re-encode it under the same
version context, and compare the result byte-for-byte against the input.
A divergence means either corrupt input or a codec asymmetry.

Example:
  uregistry roundtrip --engine 5.4 --names pool.txt package.bin`,
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
		consumed := data[:reader.Offset()]

		writer := archive.NewWriter()
		if err := pd.Encode(writer, ctx); err != nil {
			return fmt.Errorf("re-encoding %s: %w", args[0], err)
		}

		encoded := writer.Bytes()
		if bytes.Equal(consumed, encoded) {
			fmt.Printf("ok: %d bytes round-trip identically\n", len(encoded))
			return nil
		}

		offset := len(consumed)
		for i := 0; i < len(consumed) && i < len(encoded); i++ {
			if consumed[i] != encoded[i] {
				offset = i
				break
			}
		}
		return fmt.Errorf("round-trip diverges at offset %d (read %d bytes, wrote %d)",
			offset, len(consumed), len(encoded))
	},
}

func init() {
	roundtripCmd.Flags().StringP("names", "n", "", "Name pool file, one string per line (required)")
	_ = roundtripCmd.MarkFlagRequired("names")
	rootCmd.AddCommand(roundtripCmd)
}
