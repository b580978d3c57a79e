package device

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// Device is a simulated Android device whose state comes from a Profile.
// Each port is served by a small view returned from the accessor of the same name.
type Device struct {
	mu      sync.RWMutex
	profile Profile

	notify  *notifier
	capture *KeyCapture
}

// New creates a Device in the state described by p.
func New(p Profile) *Device {
	d := &Device{
		profile: p.clone(),
		notify:  newNotifier(),
	}
	d.capture = newKeyCapture(d)
	return d
}

// Profile returns a copy of the current state.
func (d *Device) Profile() Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profile.clone()
}

// Replace swaps in a new state and signals the topics whose facts changed.
func (d *Device) Replace(p Profile) {
	d.update(func(cur *Profile) {
		*cur = p.clone()
	})
}

// Grant grants a permission.
func (d *Device) Grant(perm entity.Permission) {
	d.update(func(p *Profile) {
		if !slices.Contains(p.Granted, perm) {
			p.Granted = append(p.Granted, perm)
		}
	})
}

// Revoke revokes a permission.
func (d *Device) Revoke(perm entity.Permission) {
	d.update(func(p *Profile) {
		p.Granted = slices.DeleteFunc(p.Granted, func(g entity.Permission) bool { return g == perm })
	})
}

// ChooseInputMethod makes the enabled input method with id the chosen one.
// It reports false when no enabled input method has that id.
func (d *Device) ChooseInputMethod(id string) bool {
	found := false
	d.update(func(p *Profile) {
		i := slices.IndexFunc(p.InputMethods, func(ime entity.ImeInfo) bool {
			return ime.ID == id && ime.IsEnabled
		})
		if i < 0 {
			return
		}
		found = true
		for j := range p.InputMethods {
			p.InputMethods[j].IsChosen = j == i
		}
	})
	return found
}

// SetShizukuStarted starts or stops the Shizuku service. Starting implies installed.
func (d *Device) SetShizukuStarted(started bool) {
	d.update(func(p *Profile) {
		p.Shizuku.Started = started
		if started {
			p.Shizuku.Installed = true
		}
	})
}

// ConnectInputDevice adds or replaces the input device with the same descriptor.
func (d *Device) ConnectInputDevice(dev entity.InputDevice) {
	d.update(func(p *Profile) {
		p.InputDevices = slices.DeleteFunc(p.InputDevices, func(c entity.InputDevice) bool {
			return c.Descriptor == dev.Descriptor
		})
		p.InputDevices = append(p.InputDevices, dev)
	})
}

// DisconnectInputDevice removes the input device with descriptor.
func (d *Device) DisconnectInputDevice(descriptor string) {
	d.update(func(p *Profile) {
		p.InputDevices = slices.DeleteFunc(p.InputDevices, func(c entity.InputDevice) bool {
			return c.Descriptor == descriptor
		})
	})
}

// SetAccessibility changes the state of the key capturing service.
func (d *Device) SetAccessibility(state AccessibilityState) {
	d.update(func(p *Profile) {
		p.Accessibility = state
	})
	if state != AccessibilityEnabled {
		d.capture.stop()
	}
}

func (d *Device) update(fn func(p *Profile)) {
	d.mu.Lock()
	before := d.profile.clone()
	fn(&d.profile)
	changed := changedTopics(before, d.profile)
	d.mu.Unlock()

	if len(changed) > 0 {
		d.notify.publish(changed...)
	}
}

func changedTopics(a, b Profile) []topic {
	var topics []topic
	if !slices.Equal(a.Granted, b.Granted) {
		topics = append(topics, topicPermissions)
	}
	if !slices.Equal(a.InputMethods, b.InputMethods) {
		topics = append(topics, topicInputMethods)
	}
	if chosenIme(a.InputMethods) != chosenIme(b.InputMethods) {
		topics = append(topics, topicChosenIme)
	}
	if !slices.Equal(a.Sounds, b.Sounds) {
		topics = append(topics, topicSounds)
	}
	if a.Shizuku.Installed != b.Shizuku.Installed {
		topics = append(topics, topicShizukuInstalled)
	}
	if a.Shizuku.Started != b.Shizuku.Started {
		topics = append(topics, topicShizukuStarted)
	}
	if !slices.Equal(a.InputDevices, b.InputDevices) {
		topics = append(topics, topicInputDevices)
	}
	return topics
}

func chosenIme(imes []entity.ImeInfo) string {
	for _, ime := range imes {
		if ime.IsChosen {
			return ime.ID
		}
	}
	return ""
}

// Permissions serves port.PermissionAdapter.
func (d *Device) Permissions() port.PermissionAdapter { return permissionAdapter{d} }

// InputMethods serves port.InputMethodAdapter.
func (d *Device) InputMethods() port.InputMethodAdapter { return inputMethodAdapter{d} }

// Packages serves port.PackageManagerAdapter.
func (d *Device) Packages() port.PackageManagerAdapter { return packageAdapter{d} }

// Camera serves port.CameraAdapter.
func (d *Device) Camera() port.CameraAdapter { return cameraAdapter{d} }

// Sounds serves port.SoundAdapter.
func (d *Device) Sounds() port.SoundAdapter { return soundAdapter{d} }

// Shizuku serves port.ShizukuAdapter.
func (d *Device) Shizuku() port.ShizukuAdapter { return shizukuAdapter{d} }

// System serves port.SystemAdapter.
func (d *Device) System() port.SystemAdapter { return systemAdapter{d} }

// InputDevices serves port.DevicesAdapter.
func (d *Device) InputDevices() port.DevicesAdapter { return devicesAdapter{d} }

// KeyCapture serves port.KeyCaptureAdapter.
func (d *Device) KeyCapture() *KeyCapture { return d.capture }

func (d *Device) read(fn func(p *Profile)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(&d.profile)
}

type permissionAdapter struct{ d *Device }

func (a permissionAdapter) IsGranted(_ context.Context, perm entity.Permission) (granted bool) {
	a.d.read(func(p *Profile) { granted = slices.Contains(p.Granted, perm) })
	return granted
}

func (a permissionAdapter) Updates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicPermissions)
}

type inputMethodAdapter struct{ d *Device }

func (a inputMethodAdapter) InputMethods(context.Context) (imes []entity.ImeInfo, err error) {
	a.d.read(func(p *Profile) { imes = slices.Clone(p.InputMethods) })
	return imes, nil
}

func (a inputMethodAdapter) InputMethodsUpdates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicInputMethods)
}

func (a inputMethodAdapter) ChosenImeUpdates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicChosenIme)
}

type packageAdapter struct{ d *Device }

func (a packageAdapter) AppInfo(_ context.Context, packageName string) (info entity.AppInfo, err error) {
	a.d.read(func(p *Profile) { info = p.Apps[packageName] })
	return info, nil
}

func (a packageAdapter) IsVoiceAssistantInstalled(context.Context) (installed bool) {
	a.d.read(func(p *Profile) { installed = p.VoiceAssistant })
	return installed
}

type cameraAdapter struct{ d *Device }

func (a cameraAdapter) HasFlash(_ context.Context, lens entity.CameraLens) (has bool) {
	a.d.read(func(p *Profile) { has = slices.Contains(p.Flash, lens) })
	return has
}

type soundAdapter struct{ d *Device }

func (a soundAdapter) SoundUIDs(context.Context) (uids []string, err error) {
	a.d.read(func(p *Profile) { uids = slices.Clone(p.Sounds) })
	return uids, nil
}

func (a soundAdapter) Updates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicSounds)
}

type shizukuAdapter struct{ d *Device }

func (a shizukuAdapter) IsInstalled(context.Context) (installed bool) {
	a.d.read(func(p *Profile) { installed = p.Shizuku.Installed })
	return installed
}

func (a shizukuAdapter) IsStarted(context.Context) (started bool) {
	a.d.read(func(p *Profile) { started = p.Shizuku.Started })
	return started
}

func (a shizukuAdapter) InstalledUpdates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicShizukuInstalled)
}

func (a shizukuAdapter) StartedUpdates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicShizukuStarted)
}

type systemAdapter struct{ d *Device }

func (a systemAdapter) SdkInt(context.Context) (sdk int) {
	a.d.read(func(p *Profile) { sdk = p.Sdk })
	return sdk
}

func (a systemAdapter) HasSystemFeature(_ context.Context, feature entity.SystemFeature) (has bool) {
	a.d.read(func(p *Profile) { has = slices.Contains(p.Features, feature) })
	return has
}

type devicesAdapter struct{ d *Device }

func (a devicesAdapter) ConnectedInputDevices(context.Context) (devices []entity.InputDevice, err error) {
	a.d.read(func(p *Profile) { devices = slices.Clone(p.InputDevices) })
	return devices, nil
}

func (a devicesAdapter) Updates(ctx context.Context) <-chan struct{} {
	return a.d.notify.subscribe(ctx, topicInputDevices)
}

// Apps returns the installed packages the profile knows about.
func (d *Device) Apps() map[string]entity.AppInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.profile.Apps)
}
