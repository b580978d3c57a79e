package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Print(styles.NewAboutRenderer(styles.NewTheme()).Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
