package port

import (
	"context"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// TriggerPreferences are the user settings the trigger screen depends on.
type TriggerPreferences interface {
	ShowDeviceDescriptors() bool
	NeverShowDndError() bool
	// SetNeverShowDndError persists the user's choice to hide the DND access error.
	SetNeverShowDndError(never bool) error
	RecordCountdownSeconds() int
	Updates(ctx context.Context) <-chan struct{}
}

// ConfigSchemaProvider lists the settings keys with their types and defaults.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
