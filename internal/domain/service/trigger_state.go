package service

import (
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// LinkType is the connector drawn after a trigger key.
type LinkType string

const (
	LinkHidden LinkType = "HIDDEN"
	LinkPlus   LinkType = "PLUS"
	LinkArrow  LinkType = "ARROW"
)

// TriggerLabels are the user-facing strings trigger items are built from.
type TriggerLabels struct {
	Separator   string
	LongPress   string
	DoublePress string
	ThisDevice  string
	AnyDevice   string
	DontRemap   string
}

// DefaultTriggerLabels are the English labels.
func DefaultTriggerLabels() TriggerLabels {
	return TriggerLabels{
		Separator:   " · ",
		LongPress:   "Long press",
		DoublePress: "Double press",
		ThisDevice:  "This device",
		AnyDevice:   "Any device",
		DontRemap:   "Don't remap",
	}
}

// TriggerDisplayOptions tune how trigger keys are described.
type TriggerDisplayOptions struct {
	Labels                TriggerLabels
	ShowDeviceDescriptors bool
}

// TriggerKeyItem is one rendered row of the trigger key list.
type TriggerKeyItem struct {
	UID         string
	KeyCode     int
	Description string
	ExtraInfo   string
	LinkType    LinkType
	ClickType   entity.ClickType
}

// TriggerState is everything the trigger screen shows.
type TriggerState struct {
	Keys                 []TriggerKeyItem
	RecordState          entity.RecordTriggerState
	Errors               []entity.KeyMapTriggerError
	Mode                 entity.TriggerMode
	IsModeButtonsEnabled bool
	// ClickType is nil when there is no single click type for the whole trigger.
	ClickType           *entity.ClickType
	AvailableClickTypes []entity.ClickType
}

// TriggerKeyOptions is the option sheet state of one trigger key.
type TriggerKeyOptions struct {
	UID                  string
	IsDoNotRemapChecked  bool
	ClickType            entity.ClickType
	ShowClickTypeButtons bool
}

// DeriveTriggerState builds the trigger screen state.
func DeriveTriggerState(
	trigger entity.Trigger,
	recordState entity.RecordTriggerState,
	errs []entity.KeyMapTriggerError,
	opts TriggerDisplayOptions,
) TriggerState {
	keys := make([]TriggerKeyItem, len(trigger.Keys))
	for i, key := range trigger.Keys {
		keys[i] = TriggerKeyItem{
			UID:         key.UID,
			KeyCode:     key.KeyCode,
			Description: describeKey(key, opts.Labels),
			ExtraInfo:   keyExtraInfo(key, opts),
			LinkType:    linkType(i, len(trigger.Keys), trigger.Mode),
			ClickType:   key.ClickType,
		}
	}

	return TriggerState{
		Keys:                 keys,
		RecordState:          recordState,
		Errors:               append([]entity.KeyMapTriggerError(nil), errs...),
		Mode:                 trigger.Mode,
		IsModeButtonsEnabled: len(trigger.Keys) > 1,
		ClickType:            ResolveClickType(trigger),
		AvailableClickTypes:  AvailableClickTypes(trigger.Mode),
	}
}

// ResolveClickType returns the click type shown for the whole trigger.
func ResolveClickType(trigger entity.Trigger) *entity.ClickType {
	switch {
	case trigger.Mode.IsParallel():
		ct := trigger.Mode.ClickType
		return &ct
	case trigger.Mode.IsSequence():
		return nil
	case len(trigger.Keys) > 0:
		ct := trigger.Keys[0].ClickType
		return &ct
	default:
		return nil
	}
}

// AvailableClickTypes returns the trigger-level click types the user may pick.
func AvailableClickTypes(mode entity.TriggerMode) []entity.ClickType {
	switch {
	case mode.IsParallel():
		return []entity.ClickType{entity.ClickTypeShortPress, entity.ClickTypeLongPress}
	case mode.IsSequence():
		return []entity.ClickType{}
	default:
		return []entity.ClickType{entity.ClickTypeShortPress, entity.ClickTypeLongPress, entity.ClickTypeDoublePress}
	}
}

// DeriveTriggerKeyOptions builds the option sheet of the key with uid.
func DeriveTriggerKeyOptions(trigger entity.Trigger, uid string) (TriggerKeyOptions, error) {
	i := trigger.KeyIndex(uid)
	if i < 0 {
		return TriggerKeyOptions{}, entity.ErrTriggerKeyNotFound
	}
	key := trigger.Keys[i]
	return TriggerKeyOptions{
		UID:                  key.UID,
		IsDoNotRemapChecked:  !key.ConsumeKeyEvent,
		ClickType:            key.ClickType,
		ShowClickTypeButtons: trigger.Mode.IsSequence(),
	}, nil
}

// DeviceName returns the display name of a trigger key device.
func DeviceName(device entity.TriggerKeyDevice, opts TriggerDisplayOptions) string {
	switch device.Kind {
	case entity.TriggerKeyDeviceInternal:
		return opts.Labels.ThisDevice
	case entity.TriggerKeyDeviceExternal:
		name := device.Name
		if name == "" {
			name = device.Descriptor
		}
		if opts.ShowDeviceDescriptors {
			return appendDescriptor(name, device.Descriptor)
		}
		return name
	default:
		return opts.Labels.AnyDevice
	}
}

func linkType(i, count int, mode entity.TriggerMode) LinkType {
	if i == count-1 {
		return LinkHidden
	}
	switch {
	case mode.IsParallel():
		return LinkPlus
	case mode.IsSequence():
		return LinkArrow
	default:
		return LinkHidden
	}
}

func describeKey(key entity.TriggerKey, labels TriggerLabels) string {
	name := entity.KeyCodeToString(key.KeyCode)
	switch key.ClickType {
	case entity.ClickTypeLongPress:
		return name + labels.Separator + labels.LongPress
	case entity.ClickTypeDoublePress:
		return name + labels.Separator + labels.DoublePress
	default:
		return name
	}
}

func keyExtraInfo(key entity.TriggerKey, opts TriggerDisplayOptions) string {
	info := DeviceName(key.Device, opts)
	if !key.ConsumeKeyEvent {
		info += opts.Labels.Separator + opts.Labels.DontRemap
	}
	return info
}

func appendDescriptor(name, descriptor string) string {
	if len(descriptor) > 4 {
		descriptor = descriptor[:4]
	}
	if descriptor == "" {
		return name
	}
	return name + " (" + descriptor + ")"
}
