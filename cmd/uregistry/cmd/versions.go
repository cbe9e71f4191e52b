package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// versionsCmd represents the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List supported engine releases and their serialization versions",
	Long: `List every engine release uregistry can reproduce, together with the
registry format version, object version and UE5 object version that release
writes.

Example:
  uregistry versions`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-8s %-34s %-8s %s\n", "ENGINE", "REGISTRY", "OBJECT", "OBJECT_UE5")
		for _, ev := range uversion.SupportedVersions() {
			ctx, err := uversion.Resolve(ev)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %-34s %-8d %s\n", ev, ctx.Registry(), ctx.Object(), ctx.ObjectUE5())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}
