package keymapfile

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/validation"
)

// ErrInvalidDocument wraps every problem found while converting a document.
var ErrInvalidDocument = errors.New("invalid key map document")

// ToKeyMaps converts the document into validated key maps.
// Missing trigger key and action uids are generated.
func (d Document) ToKeyMaps() ([]entity.KeyMap, error) {
	var problems []error
	keyMaps := make([]entity.KeyMap, 0, len(d.KeyMaps))
	seen := make(map[string]bool, len(d.KeyMaps))

	for i, doc := range d.KeyMaps {
		km, err := doc.ToKeyMap()
		if err != nil {
			problems = append(problems, fmt.Errorf("keymaps[%d]: %w", i, err))
			continue
		}
		if seen[km.UID] {
			problems = append(problems, fmt.Errorf("keymaps[%d]: uid %q is used more than once", i, km.UID))
			continue
		}
		seen[km.UID] = true
		keyMaps = append(keyMaps, km)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(problems...))
	}
	return keyMaps, nil
}

// ToKeyMap converts one key map.
func (d KeyMapDoc) ToKeyMap() (entity.KeyMap, error) {
	trigger, err := d.Trigger.toTrigger()
	if err != nil {
		return entity.KeyMap{}, err
	}

	actions := make([]entity.KeyMapAction, 0, len(d.Actions))
	for i, a := range d.Actions {
		data, err := a.ToAction()
		if err != nil {
			return entity.KeyMap{}, fmt.Errorf("actions[%d]: %w", i, err)
		}
		actions = append(actions, entity.KeyMapAction{UID: uidOrNew(a.UID), Data: data})
	}

	km := entity.KeyMap{
		UID:       strings.TrimSpace(d.UID),
		Trigger:   trigger,
		Actions:   actions,
		IsEnabled: d.Enabled == nil || *d.Enabled,
	}
	if err := validation.CheckKeyMap(km); err != nil {
		return entity.KeyMap{}, err
	}
	return km, nil
}

func (d TriggerDoc) toTrigger() (entity.Trigger, error) {
	var mode entity.TriggerMode
	switch d.Mode {
	case "", entity.TriggerModeUndefined:
		mode = entity.UndefinedMode()
	case entity.TriggerModeSequence:
		mode = entity.SequenceMode()
	case entity.TriggerModeParallel:
		ct := d.ClickType
		if ct == "" {
			ct = entity.ClickTypeShortPress
		}
		mode = entity.ParallelMode(ct)
	default:
		return entity.Trigger{}, fmt.Errorf("unknown trigger mode %q", d.Mode)
	}

	keys := make([]entity.TriggerKey, 0, len(d.Keys))
	for i, k := range d.Keys {
		code, ok := entity.ParseKeyCode(k.Key)
		if !ok {
			return entity.Trigger{}, fmt.Errorf("keys[%d]: unknown key %q", i, k.Key)
		}
		clickType := k.ClickType
		switch {
		case mode.IsParallel():
			clickType = mode.ClickType
		case clickType == "":
			clickType = entity.ClickTypeShortPress
		}
		keys = append(keys, entity.TriggerKey{
			UID:             uidOrNew(k.UID),
			KeyCode:         code,
			ClickType:       clickType,
			ConsumeKeyEvent: !k.PassThrough,
			Device:          k.Device.toDevice(),
		})
	}

	return entity.Trigger{Keys: keys, Mode: mode, ScreenOffTrigger: d.ScreenOff}, nil
}

func (d DeviceDoc) toDevice() entity.TriggerKeyDevice {
	switch d.Kind {
	case "", entity.TriggerKeyDeviceInternal:
		return entity.InternalDevice()
	case entity.TriggerKeyDeviceExternal:
		return entity.ExternalDevice(d.Descriptor, d.Name)
	default:
		return entity.TriggerKeyDevice{Kind: d.Kind}
	}
}

// ToAction builds the action variant selected by Type.
func (a ActionDoc) ToAction() (entity.Action, error) {
	switch a.Type {
	case entity.ActionIDApp:
		return entity.AppAction{PackageName: a.Package}, nil
	case entity.ActionIDAppShortcut:
		return entity.AppShortcutAction{PackageName: a.Package, ShortcutTitle: a.ShortcutTitle, URI: a.URI}, nil
	case entity.ActionIDKeyEvent:
		code, ok := entity.ParseKeyCode(a.KeyCode)
		if !ok {
			return nil, fmt.Errorf("unknown key code %q", a.KeyCode)
		}
		action := entity.InputKeyEventAction{KeyCode: code, MetaState: a.MetaState, UseShell: a.UseShell}
		if a.Device != nil {
			action.Device = &entity.KeyEventDevice{Descriptor: a.Device.Descriptor, Name: a.Device.Name}
		}
		return action, nil
	case entity.ActionIDSound:
		return entity.SoundAction{SoundUID: a.Sound, SoundDescription: a.SoundDescription}, nil
	case entity.ActionIDVolumeUp, entity.ActionIDVolumeDown, entity.ActionIDVolumeMute,
		entity.ActionIDVolumeUnmute, entity.ActionIDVolumeToggleMute:
		return entity.NewVolumeAction(a.Type, a.Stream, a.ShowVolumeUI)
	case entity.ActionIDChangeRingerMode:
		return entity.SetRingerModeAction{RingerMode: a.RingerMode}, nil
	case entity.ActionIDToggleFlashlight, entity.ActionIDEnableFlashlight, entity.ActionIDDisableFlashlight:
		return entity.NewFlashlightAction(a.Type, a.Lens)
	case entity.ActionIDSwitchKeyboard:
		return entity.SwitchKeyboardAction{ImeID: a.ImeID, SavedImeName: a.ImeName}, nil
	case entity.ActionIDToggleDndMode, entity.ActionIDEnableDndMode:
		return entity.NewDoNotDisturbAction(a.Type, a.DndMode)
	case entity.ActionIDCycleRotations:
		orientations := make([]entity.Orientation, 0, len(a.Orientations))
		for _, o := range a.Orientations {
			switch entity.Orientation(o) {
			case entity.Orientation0, entity.Orientation90, entity.Orientation180, entity.Orientation270:
				orientations = append(orientations, entity.Orientation(o))
			default:
				return nil, fmt.Errorf("orientation %d is not a multiple of 90 below 360", o)
			}
		}
		return entity.CycleRotationsAction{Orientations: orientations}, nil
	case entity.ActionIDPauseMediaPackage, entity.ActionIDPlayMediaPackage, entity.ActionIDPlayPauseMediaPackage,
		entity.ActionIDNextTrackPackage, entity.ActionIDPreviousTrackPackage,
		entity.ActionIDFastForwardPackage, entity.ActionIDRewindPackage:
		return entity.NewControlMediaForAppAction(a.Type, a.Package)
	case entity.ActionIDIntent:
		return entity.IntentAction{Description: a.Description, Target: a.Target, URI: a.URI}, nil
	case entity.ActionIDTapScreen:
		return entity.TapScreenAction{X: a.X, Y: a.Y, Description: a.Description}, nil
	case entity.ActionIDPhoneCall:
		return entity.PhoneCallAction{Number: a.Number}, nil
	case entity.ActionIDURL:
		return entity.URLAction{URL: a.URL}, nil
	case entity.ActionIDText:
		return entity.TextAction{Text: a.Text}, nil
	}

	if entity.IsSystemAction(a.Type) {
		return entity.NewSystemAction(a.Type)
	}
	return nil, fmt.Errorf("unknown action type %q", a.Type)
}

// FromKeyMaps builds a document holding keyMaps in order.
func FromKeyMaps(keyMaps []entity.KeyMap) Document {
	doc := Document{KeyMaps: make([]KeyMapDoc, 0, len(keyMaps))}
	for _, km := range keyMaps {
		doc.KeyMaps = append(doc.KeyMaps, FromKeyMap(km))
	}
	return doc
}

// FromKeyMap converts one key map.
func FromKeyMap(km entity.KeyMap) KeyMapDoc {
	doc := KeyMapDoc{
		UID: km.UID,
		Trigger: TriggerDoc{
			Mode:      km.Trigger.Mode.Kind,
			ClickType: km.Trigger.Mode.ClickType,
			ScreenOff: km.Trigger.ScreenOffTrigger,
		},
	}
	if doc.Trigger.Mode == "" {
		doc.Trigger.Mode = entity.TriggerModeUndefined
	}
	if !km.IsEnabled {
		disabled := false
		doc.Enabled = &disabled
	}

	for _, k := range km.Trigger.Keys {
		key := TriggerKeyDoc{
			UID:         k.UID,
			Key:         keyName(k.KeyCode),
			PassThrough: !k.ConsumeKeyEvent,
			Device:      DeviceDoc{Kind: k.Device.Kind, Descriptor: k.Device.Descriptor, Name: k.Device.Name},
		}
		if !km.Trigger.Mode.IsParallel() {
			key.ClickType = k.ClickType
		}
		if k.Device.Kind == entity.TriggerKeyDeviceInternal {
			key.Device = DeviceDoc{}
		}
		doc.Trigger.Keys = append(doc.Trigger.Keys, key)
	}

	for _, a := range km.Actions {
		ad := fromAction(a.Data)
		ad.UID = a.UID
		doc.Actions = append(doc.Actions, ad)
	}
	return doc
}

func fromAction(action entity.Action) ActionDoc {
	doc := ActionDoc{Type: action.ID()}
	switch a := action.(type) {
	case entity.AppAction:
		doc.Package = a.PackageName
	case entity.AppShortcutAction:
		doc.Package, doc.ShortcutTitle, doc.URI = a.PackageName, a.ShortcutTitle, a.URI
	case entity.InputKeyEventAction:
		doc.KeyCode, doc.MetaState, doc.UseShell = keyName(a.KeyCode), a.MetaState, a.UseShell
		if a.Device != nil {
			doc.Device = &DeviceDoc{Descriptor: a.Device.Descriptor, Name: a.Device.Name}
		}
	case entity.SoundAction:
		doc.Sound, doc.SoundDescription = a.SoundUID, a.SoundDescription
	case entity.VolumeAction:
		doc.Stream, doc.ShowVolumeUI = a.Stream, a.ShowVolumeUI
	case entity.SetRingerModeAction:
		doc.RingerMode = a.RingerMode
	case entity.FlashlightAction:
		doc.Lens = a.Lens
	case entity.SwitchKeyboardAction:
		doc.ImeID, doc.ImeName = a.ImeID, a.SavedImeName
	case entity.DoNotDisturbAction:
		doc.DndMode = a.Mode
	case entity.CycleRotationsAction:
		for _, o := range a.Orientations {
			doc.Orientations = append(doc.Orientations, int(o))
		}
	case entity.ControlMediaForAppAction:
		doc.Package = a.PackageName
	case entity.IntentAction:
		doc.Description, doc.Target, doc.URI = a.Description, a.Target, a.URI
	case entity.TapScreenAction:
		doc.X, doc.Y, doc.Description = a.X, a.Y, a.Description
	case entity.PhoneCallAction:
		doc.Number = a.Number
	case entity.URLAction:
		doc.URL = a.URL
	case entity.TextAction:
		doc.Text = a.Text
	}
	return doc
}

// keyName drops the KEYCODE_ prefix of known key codes and falls back to the number.
func keyName(code int) string {
	name := entity.KeyCodeToString(code)
	if short, ok := strings.CutPrefix(name, "KEYCODE_"); ok {
		return short
	}
	return strconv.Itoa(code)
}

func uidOrNew(uid string) string {
	if uid = strings.TrimSpace(uid); uid != "" {
		return uid
	}
	return uuid.NewString()
}

// KnownActionTypes lists every action type a document may use.
func KnownActionTypes() []entity.ActionID {
	ids := entity.AllActionIDs()
	slices.Sort(ids)
	return ids
}
