package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

var checkStrict bool

// errKeyMapsNeedAttention makes --strict runs exit non-zero.
var errKeyMapsNeedAttention = errors.New("some key maps need attention")

var checkCmd = &cobra.Command{
	Use:   "check [uid...]",
	Short: "Report action and trigger errors of key maps",
	Long: `Evaluate key maps against the device profile.

Every action is checked for the first condition that would stop it from
running (missing permission, app, keyboard, flashlight, Shizuku...), and
every trigger for the problems that would stop it from being detected.

Without arguments every key map in the document is checked.

Examples:
  keymapper check                       # Check every key map
  keymapper check volume-flash          # Check one key map
  keymapper check --strict              # Exit 1 if anything needs attention
  keymapper check --profile pixel.yaml  # Check against another device`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with an error if any key map needs attention")
}

func runCheck(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewCheckRenderer(app.Theme, app.Strings)

	reports, err := app.CheckUC.Execute(logging.WithComponent(app.Ctx(), "check"), args...)
	if err != nil {
		return err
	}
	fmt.Println(renderer.Render(reports))

	if checkStrict && !allOK(reports) {
		return errKeyMapsNeedAttention
	}
	return nil
}

func allOK(reports []usecase.KeyMapReport) bool {
	for _, r := range reports {
		if !r.OK() {
			return false
		}
	}
	return true
}
