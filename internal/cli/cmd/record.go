package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/cli/model"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

var recordDevice string

var recordCmd = &cobra.Command{
	Use:   "record [uid]",
	Short: "Edit a key map's trigger interactively",
	Long: `Open the trigger editor for the key map with uid, or for a new key map
when no uid is given.

Press r to start a recording countdown. While it runs, every key you press
in the terminal is captured as if it was pressed on the phone (+ and - stand
in for the volume keys). Use --device to record keys from an input device
of the profile instead.

Saving writes the key map back to the key map document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVarP(&recordDevice, "device", "d", "", "descriptor of the input device keys are recorded from")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "record"))
	defer cancel()

	vm, configUC := app.NewTriggerViewModel()
	title := "New key map"
	if len(args) == 1 {
		if err := configUC.LoadKeyMap(ctx, args[0]); err != nil {
			return err
		}
		title = args[0]
	} else {
		title += " " + configUC.LoadNewKeyMap().UID
	}
	km, _ := configUC.KeyMap()
	ctx = logging.WithKeyMapUID(ctx, km.UID)

	if err := app.Watch(ctx); err != nil {
		return err
	}

	m := model.NewTriggerModel(ctx, app.Theme, model.TriggerModelConfig{
		ViewModel:  vm,
		Editor:     configUC,
		Capture:    app.Device.KeyCapture(),
		Strings:    app.Strings,
		Title:      title,
		Descriptor: recordDevice,
		Save: func(ctx context.Context) error {
			if err := configUC.Save(ctx); err != nil {
				return err
			}
			return app.SaveKeyMaps(ctx)
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
