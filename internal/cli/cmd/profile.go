package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/device"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the device profile capabilities are answered from",
	Long: `Show the device profile in use: Android version, chosen keyboard,
granted permissions, accessibility and Shizuku state, and the connected
input devices.

The profile comes from --profile, then device.profile in the config
file, then the built-in profile.`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var profileExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the built-in profile as a starting point",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(device.DefaultProfileYAML())
		return err
	},
}

func init() {
	profileCmd.AddCommand(profileExportCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Print(styles.NewProfileRenderer(app.Theme).Render(profileView(app.Device.Profile(), app.ProfileFile)))
	return nil
}

func profileView(p device.Profile, path string) styles.ProfileView {
	view := styles.ProfileView{
		Name:          p.Name,
		Source:        firstNonEmpty(path, "built-in"),
		Sdk:           p.Sdk,
		Accessibility: string(p.Accessibility),
		Shizuku:       "not installed",
	}
	switch {
	case p.Shizuku.Started:
		view.Shizuku = "started"
	case p.Shizuku.Installed:
		view.Shizuku = "installed"
	}
	for _, ime := range p.InputMethods {
		if ime.IsChosen {
			view.Keyboard = ime.Label
		}
	}
	for _, perm := range p.Granted {
		view.Granted = append(view.Granted, string(perm))
	}
	for _, d := range p.InputDevices {
		label := d.Name
		if d.IsExternal {
			label += " (external, " + d.Descriptor + ")"
		}
		view.InputDevices = append(view.InputDevices, label)
	}
	return view
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
