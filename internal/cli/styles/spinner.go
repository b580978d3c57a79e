package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
)

// NewRecordingSpinner creates the spinner shown while a recording session listens.
func NewRecordingSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Style = theme.Recording.UnsetBold()
	s.Spinner = spinner.Pulse
	return s
}
