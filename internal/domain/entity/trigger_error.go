package entity

// KeyMapTriggerError is a condition that stops a trigger from being detected.
type KeyMapTriggerError string

const (
	TriggerErrorDndAccessDenied       KeyMapTriggerError = "DND_ACCESS_DENIED"
	TriggerErrorScreenOffRootDenied   KeyMapTriggerError = "SCREEN_OFF_ROOT_DENIED"
	TriggerErrorCantDetectInPhoneCall KeyMapTriggerError = "CANT_DETECT_IN_PHONE_CALL"
	TriggerErrorDeviceNotConnected    KeyMapTriggerError = "DEVICE_NOT_CONNECTED"
)

// InputDevice is an input device currently connected to the phone.
type InputDevice struct {
	Descriptor string `yaml:"descriptor"`
	Name       string `yaml:"name"`
	IsExternal bool   `yaml:"external"`
}
