package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/cli/styles"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger <uid>",
	Short: "Show how a key map's trigger is displayed",
	Long: `Print the trigger screen of a key map: the key list with click types,
devices and connectors, the mode and click type selectors, and the
trigger errors on the current device profile.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrigger,
}

func init() {
	rootCmd.AddCommand(triggerCmd)
}

func runTrigger(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Ctx()
	vm, configUC := app.NewTriggerViewModel()
	if err := configUC.LoadKeyMap(ctx, args[0]); err != nil {
		return err
	}
	state, err := vm.TriggerState(ctx)
	if err != nil {
		return err
	}

	renderer := styles.NewTriggerRenderer(app.Theme, app.Strings)
	fmt.Println(renderer.RenderState(args[0], state, -1))
	return nil
}
