package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
)

var configKeysJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the files in use, list configuration keys, and change values.`,
	RunE:  runConfigStatus,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List configuration keys with their effective values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigKeys,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Validate and write one configuration value.

Examples:
  keymapper config set record.countdown_seconds 10
  keymapper config set display.show_device_descriptors true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSetCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
}

// runConfigStatus shows which files the session reads.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderConfigInfo(styles.ConfigPaths{
		Config:  app.Config.GetConfigFile(),
		KeyMaps: app.KeyMapsFile,
		Profile: app.ProfileFile,
	}))
	return nil
}

func runConfigKeys(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.GetConfigSchemaInput{}
	if len(args) == 1 {
		input.Section = args[0]
	}
	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys, app.Config.Values()))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	if err := app.Config.Set(app.Ctx(), args[0], args[1]); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderSet(args[0], app.Config.Values()[args[0]]))
	return nil
}
