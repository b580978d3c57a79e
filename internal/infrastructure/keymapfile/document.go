// Package keymapfile reads and writes key maps as YAML documents.
package keymapfile

import (
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// Document is the top level of a key map file.
type Document struct {
	KeyMaps []KeyMapDoc `yaml:"keymaps" json:"keymaps" jsonschema:"description=Key maps in this file"`
}

// KeyMapDoc is one key map.
type KeyMapDoc struct {
	UID     string      `yaml:"uid" json:"uid" jsonschema:"required,description=Unique id of the key map"`
	Enabled *bool       `yaml:"enabled,omitempty" json:"enabled,omitempty" jsonschema:"description=Defaults to true"`
	Trigger TriggerDoc  `yaml:"trigger" json:"trigger"`
	Actions []ActionDoc `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// TriggerDoc is the trigger of a key map.
type TriggerDoc struct {
	Mode      entity.TriggerModeKind `yaml:"mode,omitempty" json:"mode,omitempty" jsonschema:"enum=UNDEFINED,enum=PARALLEL,enum=SEQUENCE"`
	ClickType entity.ClickType       `yaml:"click_type,omitempty" json:"click_type,omitempty" jsonschema:"enum=SHORT_PRESS,enum=LONG_PRESS,description=Shared click type of a parallel trigger"`
	ScreenOff bool                   `yaml:"screen_off,omitempty" json:"screen_off,omitempty"`
	Keys      []TriggerKeyDoc        `yaml:"keys,omitempty" json:"keys,omitempty"`
}

// TriggerKeyDoc is one trigger key. Key accepts a KEYCODE name or a number.
type TriggerKeyDoc struct {
	UID       string           `yaml:"uid,omitempty" json:"uid,omitempty"`
	Key       string           `yaml:"key" json:"key" jsonschema:"required,example=VOLUME_UP"`
	ClickType entity.ClickType `yaml:"click_type,omitempty" json:"click_type,omitempty" jsonschema:"enum=SHORT_PRESS,enum=LONG_PRESS,enum=DOUBLE_PRESS"`
	// PassThrough keeps the default behaviour of the key.
	PassThrough bool      `yaml:"pass_through,omitempty" json:"pass_through,omitempty"`
	Device      DeviceDoc `yaml:"device,omitempty" json:"device,omitempty"`
}

// DeviceDoc is the device constraint of a trigger key. The zero value means this device.
type DeviceDoc struct {
	Kind       entity.TriggerKeyDeviceKind `yaml:"kind,omitempty" json:"kind,omitempty" jsonschema:"enum=ANY,enum=INTERNAL,enum=EXTERNAL"`
	Descriptor string                      `yaml:"descriptor,omitempty" json:"descriptor,omitempty"`
	Name       string                      `yaml:"name,omitempty" json:"name,omitempty"`
}

// ActionDoc is the flattened form of every action variant. Type selects which
// fields are read.
type ActionDoc struct {
	UID  string          `yaml:"uid,omitempty" json:"uid,omitempty"`
	Type entity.ActionID `yaml:"type" json:"type" jsonschema:"required"`

	Package       string `yaml:"package,omitempty" json:"package,omitempty"`
	ShortcutTitle string `yaml:"shortcut_title,omitempty" json:"shortcut_title,omitempty"`
	URI           string `yaml:"uri,omitempty" json:"uri,omitempty"`

	KeyCode   string     `yaml:"key_code,omitempty" json:"key_code,omitempty"`
	MetaState int        `yaml:"meta_state,omitempty" json:"meta_state,omitempty"`
	UseShell  bool       `yaml:"use_shell,omitempty" json:"use_shell,omitempty"`
	Device    *DeviceDoc `yaml:"device,omitempty" json:"device,omitempty"`

	Sound            string `yaml:"sound,omitempty" json:"sound,omitempty"`
	SoundDescription string `yaml:"sound_description,omitempty" json:"sound_description,omitempty"`

	Stream       entity.VolumeStream `yaml:"stream,omitempty" json:"stream,omitempty"`
	ShowVolumeUI bool                `yaml:"show_volume_ui,omitempty" json:"show_volume_ui,omitempty"`
	RingerMode   entity.RingerMode   `yaml:"ringer_mode,omitempty" json:"ringer_mode,omitempty"`
	Lens         entity.CameraLens   `yaml:"lens,omitempty" json:"lens,omitempty" jsonschema:"enum=FRONT,enum=BACK"`
	DndMode      entity.DndMode      `yaml:"dnd_mode,omitempty" json:"dnd_mode,omitempty"`
	Orientations []int               `yaml:"orientations,omitempty" json:"orientations,omitempty"`

	ImeID   string `yaml:"ime_id,omitempty" json:"ime_id,omitempty"`
	ImeName string `yaml:"ime_name,omitempty" json:"ime_name,omitempty"`

	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Target      entity.IntentTarget `yaml:"target,omitempty" json:"target,omitempty"`
	X           int                 `yaml:"x,omitempty" json:"x,omitempty"`
	Y           int                 `yaml:"y,omitempty" json:"y,omitempty"`
	Number      string              `yaml:"number,omitempty" json:"number,omitempty"`
	URL         string              `yaml:"url,omitempty" json:"url,omitempty"`
	Text        string              `yaml:"text,omitempty" json:"text,omitempty"`
}
