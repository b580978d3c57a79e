package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// ErrInvalidKeyMap wraps every key map validation failure.
var ErrInvalidKeyMap = errors.New("invalid key map")

// CheckKeyMap returns an ErrInvalidKeyMap error listing every problem, or nil.
func CheckKeyMap(keyMap entity.KeyMap) error {
	errs := ValidateKeyMap(keyMap)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidKeyMap, strings.Join(errs, "; "))
}

func ValidateKeyMap(keyMap entity.KeyMap) []string {
	var errs []string
	if strings.TrimSpace(keyMap.UID) == "" {
		errs = append(errs, "key map uid cannot be empty")
	}
	errs = append(errs, ValidateTrigger(keyMap.Trigger)...)
	errs = append(errs, ValidateActions(keyMap.Actions)...)
	return errs
}

func ValidateTrigger(trigger entity.Trigger) []string {
	var errs []string

	seen := make(map[string]bool, len(trigger.Keys))
	for i, key := range trigger.Keys {
		switch {
		case key.UID == "":
			errs = append(errs, fmt.Sprintf("trigger key %d has no uid", i))
		case seen[key.UID]:
			errs = append(errs, fmt.Sprintf("trigger key uid %q is used more than once", key.UID))
		}
		seen[key.UID] = true

		if key.KeyCode <= entity.KeyCodeUnknown {
			errs = append(errs, fmt.Sprintf("trigger key %d has invalid key code %d", i, key.KeyCode))
		}
		if !key.ClickType.Valid() {
			errs = append(errs, fmt.Sprintf("trigger key %d has invalid click type %q", i, key.ClickType))
		}
		errs = append(errs, validateDevice(i, key.Device)...)
	}

	count := len(trigger.Keys)
	switch {
	case trigger.Mode.IsUndefined():
		if count > 1 {
			errs = append(errs, "a trigger with more than one key must be parallel or sequence")
		}
	case trigger.Mode.IsParallel():
		if count <= 1 {
			errs = append(errs, "a parallel trigger needs more than one key")
		}
		if trigger.Mode.ClickType != entity.ClickTypeShortPress && trigger.Mode.ClickType != entity.ClickTypeLongPress {
			errs = append(errs, fmt.Sprintf("parallel trigger click type %q must be short or long press", trigger.Mode.ClickType))
		}
		for i := range trigger.Keys {
			for j := i + 1; j < count; j++ {
				if trigger.Keys[i].SameKey(trigger.Keys[j]) && trigger.Keys[i].Device == trigger.Keys[j].Device {
					errs = append(errs, fmt.Sprintf("a parallel trigger cannot contain %s twice",
						entity.KeyCodeToString(trigger.Keys[i].KeyCode)))
				}
			}
		}
	case trigger.Mode.IsSequence():
		if count <= 1 {
			errs = append(errs, "a sequence trigger needs more than one key")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown trigger mode %q", trigger.Mode.Kind))
	}

	return errs
}

func validateDevice(i int, device entity.TriggerKeyDevice) []string {
	switch device.Kind {
	case entity.TriggerKeyDeviceAny, entity.TriggerKeyDeviceInternal:
		return nil
	case entity.TriggerKeyDeviceExternal:
		if strings.TrimSpace(device.Descriptor) == "" {
			return []string{fmt.Sprintf("trigger key %d targets an external device without a descriptor", i)}
		}
		return nil
	default:
		return []string{fmt.Sprintf("trigger key %d has unknown device %q", i, device.Kind)}
	}
}

func ValidateActions(actions []entity.KeyMapAction) []string {
	var errs []string
	seen := make(map[string]bool, len(actions))
	for i, action := range actions {
		switch {
		case action.UID == "":
			errs = append(errs, fmt.Sprintf("action %d has no uid", i))
		case seen[action.UID]:
			errs = append(errs, fmt.Sprintf("action uid %q is used more than once", action.UID))
		}
		seen[action.UID] = true

		if action.Data == nil {
			errs = append(errs, fmt.Sprintf("action %d has no data", i))
			continue
		}
		if _, ok := entity.LookupActionInfo(action.Data.ID()); !ok {
			errs = append(errs, fmt.Sprintf("action %d has unknown id %q", i, action.Data.ID()))
		}
	}
	return errs
}
