package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/infrastructure/config"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/keymapfile"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <config|keymaps>",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of the config file or of the key map document, for editor completion and validation.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "keymaps"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	switch args[0] {
	case "config":
		data, err = config.GenerateSchema()
	case "keymaps":
		data, err = keymapfile.GenerateSchema()
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
