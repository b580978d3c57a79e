package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

var (
	actionsCategory  string
	actionsSupported bool
)

var actionsCmd = &cobra.Command{
	Use:   "actions [query]",
	Short: "List the action catalog with device support",
	Long: `List every action a key map can perform and whether the device profile
supports it at all. A query fuzzy-matches action ids and orders results
by match quality.

Examples:
  keymapper actions                      # Full catalog grouped by category
  keymapper actions flash                # Fuzzy search
  keymapper actions --category volume    # One category
  keymapper actions --supported          # Hide unsupported actions`,
	Args: cobra.MaximumNArgs(1),
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
	actionsCmd.Flags().StringVarP(&actionsCategory, "category", "c", "", "only list one category")
	actionsCmd.Flags().BoolVarP(&actionsSupported, "supported", "s", false, "hide actions the device cannot perform")
}

func runActions(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.ListActionsInput{
		Category:      entity.ActionCategory(strings.ToLower(actionsCategory)),
		SupportedOnly: actionsSupported,
	}
	if len(args) == 1 {
		input.Query = args[0]
	}

	listings := app.ListActionsUC.Execute(app.Ctx(), input)

	renderer := styles.NewActionsRenderer(app.Theme)
	fmt.Println(renderer.Render(listings, input.Query == ""))
	return nil
}
