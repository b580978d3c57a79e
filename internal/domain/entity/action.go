package entity

import "fmt"

// Action is one entry of the closed action catalog.
// Every variant reports its stable kind tag through ID; payload fields are not
// validated here, only when errors are evaluated against a device.
type Action interface {
	ID() ActionID
}

// KeyMapAction is an action placed in a key map's ordered action list.
// The UID identifies the entry so equal payloads at different positions stay distinct.
type KeyMapAction struct {
	UID  string
	Data Action
}

// CameraLens selects which flashlight to operate.
type CameraLens string

const (
	CameraLensFront CameraLens = "FRONT"
	CameraLensBack  CameraLens = "BACK"
)

// VolumeStream is the audio stream a volume action targets.
type VolumeStream string

const (
	VolumeStreamDefault       VolumeStream = "DEFAULT"
	VolumeStreamMusic         VolumeStream = "MUSIC"
	VolumeStreamRing          VolumeStream = "RING"
	VolumeStreamAlarm         VolumeStream = "ALARM"
	VolumeStreamNotification  VolumeStream = "NOTIFICATION"
	VolumeStreamSystem        VolumeStream = "SYSTEM"
	VolumeStreamVoiceCall     VolumeStream = "VOICE_CALL"
	VolumeStreamDTMF          VolumeStream = "DTMF"
	VolumeStreamAccessibility VolumeStream = "ACCESSIBILITY"
)

// RingerMode is the target of a set-ringer-mode action.
type RingerMode string

const (
	RingerModeNormal  RingerMode = "NORMAL"
	RingerModeVibrate RingerMode = "VIBRATE"
	RingerModeSilent  RingerMode = "SILENT"
)

// DndMode is the do-not-disturb level an action switches to.
type DndMode string

const (
	DndModeAlarms   DndMode = "ALARMS"
	DndModePriority DndMode = "PRIORITY"
	DndModeNone     DndMode = "NONE"
)

// Orientation is a screen rotation in degrees.
type Orientation int

const (
	Orientation0   Orientation = 0
	Orientation90  Orientation = 90
	Orientation180 Orientation = 180
	Orientation270 Orientation = 270
)

// IntentTarget is the component type an intent action is sent to.
type IntentTarget string

const (
	IntentTargetActivity          IntentTarget = "ACTIVITY"
	IntentTargetBroadcastReceiver IntentTarget = "BROADCAST_RECEIVER"
	IntentTargetService           IntentTarget = "SERVICE"
)

// AppAction launches an app.
type AppAction struct {
	PackageName string
}

func (AppAction) ID() ActionID { return ActionIDApp }

// AppShortcutAction launches a shortcut published by an app.
// PackageName is empty for shortcuts whose owner is unknown.
type AppShortcutAction struct {
	PackageName   string
	ShortcutTitle string
	URI           string
}

func (AppShortcutAction) ID() ActionID { return ActionIDAppShortcut }

// KeyEventDevice names the input device an injected key event claims to come from.
type KeyEventDevice struct {
	Descriptor string
	Name       string
}

// InputKeyEventAction injects a key event, through the keyboard, Shizuku or a root shell.
type InputKeyEventAction struct {
	KeyCode   int
	MetaState int
	UseShell  bool
	Device    *KeyEventDevice
}

func (InputKeyEventAction) ID() ActionID { return ActionIDKeyEvent }

// SoundAction plays a sound file that was imported into the app.
type SoundAction struct {
	SoundUID         string
	SoundDescription string
}

func (SoundAction) ID() ActionID { return ActionIDSound }

// VolumeAction changes the volume of a stream.
type VolumeAction struct {
	Kind         ActionID
	Stream       VolumeStream
	ShowVolumeUI bool
}

func (a VolumeAction) ID() ActionID { return a.Kind }

// SetRingerModeAction switches to a fixed ringer mode.
type SetRingerModeAction struct {
	RingerMode RingerMode
}

func (SetRingerModeAction) ID() ActionID { return ActionIDChangeRingerMode }

// FlashlightAction toggles, enables or disables the flash of one lens.
type FlashlightAction struct {
	Kind ActionID
	Lens CameraLens
}

func (a FlashlightAction) ID() ActionID { return a.Kind }

// SwitchKeyboardAction makes the given input method the chosen one.
type SwitchKeyboardAction struct {
	ImeID        string
	SavedImeName string
}

func (SwitchKeyboardAction) ID() ActionID { return ActionIDSwitchKeyboard }

// DoNotDisturbAction toggles or enables a do-not-disturb mode.
// Disabling DND has no payload and is a SystemAction.
type DoNotDisturbAction struct {
	Kind ActionID
	Mode DndMode
}

func (a DoNotDisturbAction) ID() ActionID { return a.Kind }

// CycleRotationsAction cycles the screen through the listed orientations.
type CycleRotationsAction struct {
	Orientations []Orientation
}

func (CycleRotationsAction) ID() ActionID { return ActionIDCycleRotations }

// ControlMediaForAppAction sends a media command to one app's session.
type ControlMediaForAppAction struct {
	Kind        ActionID
	PackageName string
}

func (a ControlMediaForAppAction) ID() ActionID { return a.Kind }

// IntentAction dispatches an intent described by its URI.
type IntentAction struct {
	Description string
	Target      IntentTarget
	URI         string
}

func (IntentAction) ID() ActionID { return ActionIDIntent }

// TapScreenAction taps the screen at a coordinate.
type TapScreenAction struct {
	X           int
	Y           int
	Description string
}

func (TapScreenAction) ID() ActionID { return ActionIDTapScreen }

// PhoneCallAction calls a number.
type PhoneCallAction struct {
	Number string
}

func (PhoneCallAction) ID() ActionID { return ActionIDPhoneCall }

// URLAction opens a URL.
type URLAction struct {
	URL string
}

func (URLAction) ID() ActionID { return ActionIDURL }

// TextAction types text into the focused field.
type TextAction struct {
	Text string
}

func (TextAction) ID() ActionID { return ActionIDText }

// SystemAction is any parameterless action such as going home or locking the device.
type SystemAction struct {
	Kind ActionID
}

func (a SystemAction) ID() ActionID { return a.Kind }

var (
	volumeKinds = map[ActionID]bool{
		ActionIDVolumeUp: true, ActionIDVolumeDown: true, ActionIDVolumeMute: true,
		ActionIDVolumeUnmute: true, ActionIDVolumeToggleMute: true,
	}
	flashlightKinds = map[ActionID]bool{
		ActionIDToggleFlashlight: true, ActionIDEnableFlashlight: true, ActionIDDisableFlashlight: true,
	}
	dndKinds = map[ActionID]bool{
		ActionIDToggleDndMode: true, ActionIDEnableDndMode: true,
	}
	mediaForAppKinds = map[ActionID]bool{
		ActionIDPauseMediaPackage: true, ActionIDPlayMediaPackage: true, ActionIDPlayPauseMediaPackage: true,
		ActionIDNextTrackPackage: true, ActionIDPreviousTrackPackage: true,
		ActionIDFastForwardPackage: true, ActionIDRewindPackage: true,
	}
)

// NewSystemAction returns the parameterless action for id.
func NewSystemAction(id ActionID) (SystemAction, error) {
	if !IsSystemAction(id) {
		return SystemAction{}, fmt.Errorf("action %s requires a payload", id)
	}
	return SystemAction{Kind: id}, nil
}

// NewVolumeAction returns a volume action for one of the volume kinds.
func NewVolumeAction(id ActionID, stream VolumeStream, showUI bool) (VolumeAction, error) {
	if !volumeKinds[id] {
		return VolumeAction{}, fmt.Errorf("action %s is not a volume action", id)
	}
	if stream == "" {
		stream = VolumeStreamDefault
	}
	return VolumeAction{Kind: id, Stream: stream, ShowVolumeUI: showUI}, nil
}

// NewFlashlightAction returns a flashlight action for one of the flashlight kinds.
func NewFlashlightAction(id ActionID, lens CameraLens) (FlashlightAction, error) {
	if !flashlightKinds[id] {
		return FlashlightAction{}, fmt.Errorf("action %s is not a flashlight action", id)
	}
	if lens == "" {
		lens = CameraLensBack
	}
	return FlashlightAction{Kind: id, Lens: lens}, nil
}

// NewDoNotDisturbAction returns a toggle or enable DND action.
func NewDoNotDisturbAction(id ActionID, mode DndMode) (DoNotDisturbAction, error) {
	if !dndKinds[id] {
		return DoNotDisturbAction{}, fmt.Errorf("action %s is not a do not disturb action", id)
	}
	return DoNotDisturbAction{Kind: id, Mode: mode}, nil
}

// NewControlMediaForAppAction returns a per-app media control action.
func NewControlMediaForAppAction(id ActionID, packageName string) (ControlMediaForAppAction, error) {
	if !mediaForAppKinds[id] {
		return ControlMediaForAppAction{}, fmt.Errorf("action %s is not a per-app media action", id)
	}
	return ControlMediaForAppAction{Kind: id, PackageName: packageName}, nil
}
