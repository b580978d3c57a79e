package port

import (
	"context"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// KeyCaptureAdapter captures physical key presses through the accessibility service.
type KeyCaptureAdapter interface {
	// StartCapture begins forwarding key presses on the returned channel until StopCapture.
	// It fails with entity.AccessibilityServiceCrashed or entity.AccessibilityServiceDisabled
	// when the service cannot be reached.
	StartCapture(ctx context.Context) (<-chan entity.RecordedKey, error)
	StopCapture(ctx context.Context) error
}
