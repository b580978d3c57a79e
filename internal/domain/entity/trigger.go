package entity

import "errors"

// ClickType is how a trigger key must be pressed.
type ClickType string

const (
	ClickTypeShortPress  ClickType = "SHORT_PRESS"
	ClickTypeLongPress   ClickType = "LONG_PRESS"
	ClickTypeDoublePress ClickType = "DOUBLE_PRESS"
)

// Valid reports whether c is one of the known click types.
func (c ClickType) Valid() bool {
	switch c {
	case ClickTypeShortPress, ClickTypeLongPress, ClickTypeDoublePress:
		return true
	}
	return false
}

// TriggerModeKind is the trigger-wide ordering semantics.
type TriggerModeKind string

const (
	TriggerModeUndefined TriggerModeKind = "UNDEFINED"
	TriggerModeParallel  TriggerModeKind = "PARALLEL"
	TriggerModeSequence  TriggerModeKind = "SEQUENCE"
)

// TriggerMode is Undefined, Sequence, or Parallel with one click type shared by all keys.
// ClickType is only set for Parallel.
type TriggerMode struct {
	Kind      TriggerModeKind
	ClickType ClickType
}

// UndefinedMode is the mode of a trigger with at most one key.
func UndefinedMode() TriggerMode {
	return TriggerMode{Kind: TriggerModeUndefined}
}

// SequenceMode is the mode where keys are pressed one after another.
func SequenceMode() TriggerMode {
	return TriggerMode{Kind: TriggerModeSequence}
}

// ParallelMode is the mode where keys are held together and share clickType.
func ParallelMode(clickType ClickType) TriggerMode {
	return TriggerMode{Kind: TriggerModeParallel, ClickType: clickType}
}

func (m TriggerMode) IsParallel() bool { return m.Kind == TriggerModeParallel }
func (m TriggerMode) IsSequence() bool { return m.Kind == TriggerModeSequence }
func (m TriggerMode) IsUndefined() bool { return m.Kind == TriggerModeUndefined || m.Kind == "" }

// TriggerKeyDeviceKind selects which input devices a trigger key listens to.
type TriggerKeyDeviceKind string

const (
	TriggerKeyDeviceAny      TriggerKeyDeviceKind = "ANY"
	TriggerKeyDeviceInternal TriggerKeyDeviceKind = "INTERNAL"
	TriggerKeyDeviceExternal TriggerKeyDeviceKind = "EXTERNAL"
)

// TriggerKeyDevice is the device constraint of a trigger key.
// Descriptor and Name are only set for External.
type TriggerKeyDevice struct {
	Kind       TriggerKeyDeviceKind `yaml:"kind"`
	Descriptor string               `yaml:"descriptor,omitempty"`
	Name       string               `yaml:"name,omitempty"`
}

// AnyDevice matches the key from every device.
func AnyDevice() TriggerKeyDevice {
	return TriggerKeyDevice{Kind: TriggerKeyDeviceAny}
}

// InternalDevice matches only keys built into the phone.
func InternalDevice() TriggerKeyDevice {
	return TriggerKeyDevice{Kind: TriggerKeyDeviceInternal}
}

// ExternalDevice matches only keys from the device with descriptor.
func ExternalDevice(descriptor, name string) TriggerKeyDevice {
	return TriggerKeyDevice{Kind: TriggerKeyDeviceExternal, Descriptor: descriptor, Name: name}
}

func (d TriggerKeyDevice) IsExternal() bool { return d.Kind == TriggerKeyDeviceExternal }

// TriggerKey is one physical key of a trigger.
type TriggerKey struct {
	UID             string
	KeyCode         int
	ClickType       ClickType
	ConsumeKeyEvent bool
	Device          TriggerKeyDevice
}

// SameKey reports whether k and other describe the same physical key.
// External keys only match when the descriptors match too.
func (k TriggerKey) SameKey(other TriggerKey) bool {
	if k.KeyCode != other.KeyCode {
		return false
	}
	if k.Device.IsExternal() && other.Device.IsExternal() {
		return k.Device.Descriptor == other.Device.Descriptor
	}
	return true
}

// Trigger is the ordered key list and mode of a key map.
type Trigger struct {
	Keys             []TriggerKey
	Mode             TriggerMode
	ScreenOffTrigger bool
}

// Clone returns a deep copy of the trigger.
func (t Trigger) Clone() Trigger {
	keys := make([]TriggerKey, len(t.Keys))
	copy(keys, t.Keys)
	t.Keys = keys
	return t
}

// KeyIndex returns the index of the key with uid, or -1.
func (t Trigger) KeyIndex(uid string) int {
	for i, k := range t.Keys {
		if k.UID == uid {
			return i
		}
	}
	return -1
}

// KeyMap binds a trigger to an ordered action list.
type KeyMap struct {
	UID       string
	Trigger   Trigger
	Actions   []KeyMapAction
	IsEnabled bool
}

// Clone returns a deep copy of the key map. Action payloads are shared.
func (m KeyMap) Clone() KeyMap {
	m.Trigger = m.Trigger.Clone()
	actions := make([]KeyMapAction, len(m.Actions))
	copy(actions, m.Actions)
	m.Actions = actions
	return m
}

// ActionData returns the action payloads in order.
func (m KeyMap) ActionData() []Action {
	data := make([]Action, len(m.Actions))
	for i, a := range m.Actions {
		data[i] = a.Data
	}
	return data
}

var ErrTriggerKeyNotFound = errors.New("trigger key not found")
