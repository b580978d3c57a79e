package usecase

import (
	"context"
	"fmt"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// DisplayKeyMapUseCase answers what the key map screen needs beyond the key map itself.
type DisplayKeyMapUseCase struct {
	permissions  port.PermissionAdapter
	inputMethods port.InputMethodAdapter
	system       port.SystemAdapter
	devices      port.DevicesAdapter
	prefs        port.TriggerPreferences
}

// NewDisplayKeyMapUseCase creates a new DisplayKeyMapUseCase.
func NewDisplayKeyMapUseCase(
	ports CapabilityPorts,
	devices port.DevicesAdapter,
	prefs port.TriggerPreferences,
) *DisplayKeyMapUseCase {
	return &DisplayKeyMapUseCase{
		permissions:  ports.Permissions,
		inputMethods: ports.InputMethods,
		system:       ports.System,
		devices:      devices,
		prefs:        prefs,
	}
}

// GetTriggerErrors lists the conditions that stop the trigger of km from being detected.
func (uc *DisplayKeyMapUseCase) GetTriggerErrors(ctx context.Context, km entity.KeyMap) ([]entity.KeyMapTriggerError, error) {
	log := logging.FromContext(ctx)
	trigger := km.Trigger
	sdk := uc.system.SdkInt(ctx)

	var errs []entity.KeyMapTriggerError

	if sdk >= entity.SdkMarshmallow &&
		containsKey(trigger, entity.IsVolumeKeyCode) &&
		!uc.permissions.IsGranted(ctx, entity.PermissionAccessNotificationPolicy) &&
		!uc.prefs.NeverShowDndError() {
		errs = append(errs, entity.TriggerErrorDndAccessDenied)
	}

	if trigger.ScreenOffTrigger && !uc.permissions.IsGranted(ctx, entity.PermissionRoot) {
		errs = append(errs, entity.TriggerErrorScreenOffRootDenied)
	}

	if sdk >= entity.SdkOreo && containsKey(trigger, func(code int) bool {
		return entity.IsVolumeKeyCode(code) || entity.IsHeadsetKeyCode(code)
	}) {
		imes, err := uc.inputMethods.InputMethods(ctx)
		if err != nil {
			return nil, fmt.Errorf("list input methods: %w", err)
		}
		if !compatibleImeChosen(imes) {
			errs = append(errs, entity.TriggerErrorCantDetectInPhoneCall)
		}
	}

	if hasExternalKey(trigger) {
		connected, err := uc.devices.ConnectedInputDevices(ctx)
		if err != nil {
			return nil, fmt.Errorf("list input devices: %w", err)
		}
		if !externalDevicesConnected(trigger, connected) {
			errs = append(errs, entity.TriggerErrorDeviceNotConnected)
		}
	}

	if len(errs) > 0 {
		log.Debug().
			Str("keymap_uid", km.UID).
			Interface("errors", errs).
			Msg("trigger has errors")
	}
	return errs, nil
}

// ShowDeviceDescriptors reports whether device names are disambiguated with their descriptor.
func (uc *DisplayKeyMapUseCase) ShowDeviceDescriptors() bool {
	return uc.prefs.ShowDeviceDescriptors()
}

// NeverShowDndTriggerErrorAgain hides DND_ACCESS_DENIED for good.
func (uc *DisplayKeyMapUseCase) NeverShowDndTriggerErrorAgain(ctx context.Context) error {
	if err := uc.prefs.SetNeverShowDndError(true); err != nil {
		return fmt.Errorf("save dnd error preference: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("dnd trigger error hidden")
	return nil
}

// Invalidations signals whenever GetTriggerErrors may return something new.
// The channel is closed once ctx is done.
func (uc *DisplayKeyMapUseCase) Invalidations(ctx context.Context) <-chan struct{} {
	return mergeSignals(ctx,
		uc.permissions.Updates(ctx),
		uc.inputMethods.ChosenImeUpdates(ctx),
		uc.devices.Updates(ctx),
		uc.prefs.Updates(ctx),
	)
}

func containsKey(trigger entity.Trigger, match func(keyCode int) bool) bool {
	for _, k := range trigger.Keys {
		if match(k.KeyCode) {
			return true
		}
	}
	return false
}

func compatibleImeChosen(imes []entity.ImeInfo) bool {
	for _, ime := range imes {
		if ime.IsChosen && ime.IsCompatible() {
			return true
		}
	}
	return false
}

func hasExternalKey(trigger entity.Trigger) bool {
	for _, k := range trigger.Keys {
		if k.Device.IsExternal() {
			return true
		}
	}
	return false
}

func externalDevicesConnected(trigger entity.Trigger, connected []entity.InputDevice) bool {
	descriptors := make(map[string]bool, len(connected))
	for _, d := range connected {
		descriptors[d.Descriptor] = true
	}
	for _, k := range trigger.Keys {
		if k.Device.IsExternal() && !descriptors[k.Device.Descriptor] {
			return false
		}
	}
	return true
}
