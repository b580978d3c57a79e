// Package port defines interfaces for external dependencies.
package port

import (
	"context"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// Update subscriptions: every call returns a new channel that receives a value
// when the underlying facts change and is closed once ctx is done. Sends never
// block; a subscriber that is busy misses intermediate changes.

// PermissionAdapter reports which permissions the user granted.
type PermissionAdapter interface {
	IsGranted(ctx context.Context, permission entity.Permission) bool
	Updates(ctx context.Context) <-chan struct{}
}

// InputMethodAdapter reports the installed input methods, including which are enabled and chosen.
type InputMethodAdapter interface {
	InputMethods(ctx context.Context) ([]entity.ImeInfo, error)
	InputMethodsUpdates(ctx context.Context) <-chan struct{}
	ChosenImeUpdates(ctx context.Context) <-chan struct{}
}

// PackageManagerAdapter answers questions about installed apps.
type PackageManagerAdapter interface {
	// AppInfo returns a zero AppInfo for packages that are not installed.
	AppInfo(ctx context.Context, packageName string) (entity.AppInfo, error)
	IsVoiceAssistantInstalled(ctx context.Context) bool
}

// CameraAdapter reports flash hardware.
type CameraAdapter interface {
	HasFlash(ctx context.Context, lens entity.CameraLens) bool
}

// SoundAdapter lists the sound files imported into the app.
type SoundAdapter interface {
	SoundUIDs(ctx context.Context) ([]string, error)
	Updates(ctx context.Context) <-chan struct{}
}

// ShizukuAdapter reports the state of the Shizuku privileged bridge.
type ShizukuAdapter interface {
	IsInstalled(ctx context.Context) bool
	IsStarted(ctx context.Context) bool
	InstalledUpdates(ctx context.Context) <-chan struct{}
	StartedUpdates(ctx context.Context) <-chan struct{}
}

// SystemAdapter reports the OS version and system features.
type SystemAdapter interface {
	SdkInt(ctx context.Context) int
	HasSystemFeature(ctx context.Context, feature entity.SystemFeature) bool
}

// DevicesAdapter lists connected input devices.
type DevicesAdapter interface {
	ConnectedInputDevices(ctx context.Context) ([]entity.InputDevice, error)
	Updates(ctx context.Context) <-chan struct{}
}
