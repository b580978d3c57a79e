package device

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

const captureBuffer = 16

var (
	// ErrNotCapturing is returned by Press outside a capture session.
	ErrNotCapturing = errors.New("key capture is not running")
	// ErrCaptureBusy is returned by Press when the session cannot keep up.
	ErrCaptureBusy = errors.New("key capture buffer is full")
)

var _ port.KeyCaptureAdapter = (*KeyCapture)(nil)

// KeyCapture stands in for the accessibility service: keys fed to Press are
// delivered to the running capture session.
type KeyCapture struct {
	device *Device

	mu   sync.Mutex
	keys chan entity.RecordedKey
}

func newKeyCapture(d *Device) *KeyCapture {
	return &KeyCapture{device: d}
}

// StartCapture opens a capture session, replacing any running one.
func (c *KeyCapture) StartCapture(ctx context.Context) (<-chan entity.RecordedKey, error) {
	switch c.device.Profile().Accessibility {
	case AccessibilityDisabled:
		return nil, entity.AccessibilityServiceDisabled()
	case AccessibilityCrashed:
		return nil, entity.AccessibilityServiceCrashed()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys != nil {
		close(c.keys)
	}
	c.keys = make(chan entity.RecordedKey, captureBuffer)

	logging.FromContext(ctx).Debug().Str("component", "key_capture").Msg("capture started")
	return c.keys, nil
}

// StopCapture closes the running session, if any.
func (c *KeyCapture) StopCapture(ctx context.Context) error {
	c.stop()
	logging.FromContext(ctx).Debug().Str("component", "key_capture").Msg("capture stopped")
	return nil
}

// Capturing reports whether a session is open.
func (c *KeyCapture) Capturing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keys != nil
}

// Press delivers a key press from the input device with descriptor.
// An empty descriptor or one of a built-in device records an internal key.
func (c *KeyCapture) Press(keyCode int, descriptor string) error {
	key := entity.RecordedKey{KeyCode: keyCode, Device: c.resolve(descriptor)}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys == nil {
		return ErrNotCapturing
	}
	select {
	case c.keys <- key:
		return nil
	default:
		return fmt.Errorf("%w: dropped %s", ErrCaptureBusy, entity.KeyCodeToString(keyCode))
	}
}

func (c *KeyCapture) resolve(descriptor string) entity.TriggerKeyDevice {
	if descriptor == "" {
		return entity.InternalDevice()
	}
	devices := c.device.Profile().InputDevices
	i := slices.IndexFunc(devices, func(d entity.InputDevice) bool { return d.Descriptor == descriptor })
	if i < 0 || !devices[i].IsExternal {
		return entity.InternalDevice()
	}
	return entity.ExternalDevice(devices[i].Descriptor, devices[i].Name)
}

func (c *KeyCapture) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys != nil {
		close(c.keys)
		c.keys = nil
	}
}
