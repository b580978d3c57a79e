package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keymapper-dev/keymapper/internal/application/port/mocks"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type displayFixture struct {
	uc      *usecase.DisplayKeyMapUseCase
	caps    *capabilityMocks
	devices *mocks.MockDevicesAdapter
	prefs   *mocks.MockTriggerPreferences
}

func newDisplayKeyMap(t *testing.T, d device, connected []entity.InputDevice, neverShowDnd bool) displayFixture {
	caps := newCapabilityMocks(t, d)
	devices := mocks.NewMockDevicesAdapter(t)
	devices.EXPECT().ConnectedInputDevices(mock.Anything).Return(connected, nil).Maybe()
	prefs := mocks.NewMockTriggerPreferences(t)
	prefs.EXPECT().NeverShowDndError().Return(neverShowDnd).Maybe()

	return displayFixture{
		uc:      usecase.NewDisplayKeyMapUseCase(caps.ports(), devices, prefs),
		caps:    caps,
		devices: devices,
		prefs:   prefs,
	}
}

func keyMapWithKeys(keys ...entity.TriggerKey) entity.KeyMap {
	mode := entity.UndefinedMode()
	if len(keys) > 1 {
		mode = entity.ParallelMode(entity.ClickTypeShortPress)
	}
	return entity.KeyMap{UID: "km", Trigger: entity.Trigger{Keys: keys, Mode: mode}}
}

func triggerKey(uid string, code int, device entity.TriggerKeyDevice) entity.TriggerKey {
	return entity.TriggerKey{UID: uid, KeyCode: code, ClickType: entity.ClickTypeShortPress, ConsumeKeyEvent: true, Device: device}
}

func TestDisplayKeyMapUseCase_GetTriggerErrors(t *testing.T) {
	volumeUp := triggerKey("k1", entity.KeyCodeVolumeUp, entity.AnyDevice())
	headset := triggerKey("k2", entity.KeyCodeHeadsetHook, entity.AnyDevice())
	home := triggerKey("k3", 3, entity.AnyDevice())

	tests := []struct {
		name         string
		device       device
		neverShowDnd bool
		keyMap       entity.KeyMap
		expected     []entity.KeyMapTriggerError
	}{
		{
			name:     "volume key without dnd access",
			device:   device{sdk: 24, imes: []entity.ImeInfo{keyMapperKeyboard(true)}},
			keyMap:   keyMapWithKeys(volumeUp),
			expected: []entity.KeyMapTriggerError{entity.TriggerErrorDndAccessDenied},
		},
		{
			name:     "dnd error before marshmallow",
			device:   device{sdk: 22},
			keyMap:   keyMapWithKeys(volumeUp),
			expected: nil,
		},
		{
			name:         "dnd error hidden by the user",
			device:       device{sdk: 24},
			neverShowDnd: true,
			keyMap:       keyMapWithKeys(volumeUp),
			expected:     nil,
		},
		{
			name: "dnd access granted",
			device: device{
				sdk:     24,
				granted: []entity.Permission{entity.PermissionAccessNotificationPolicy},
			},
			keyMap:   keyMapWithKeys(volumeUp),
			expected: nil,
		},
		{
			name:   "screen off trigger without root",
			device: device{sdk: 24},
			keyMap: func() entity.KeyMap {
				km := keyMapWithKeys(home)
				km.Trigger.ScreenOffTrigger = true
				return km
			}(),
			expected: []entity.KeyMapTriggerError{entity.TriggerErrorScreenOffRootDenied},
		},
		{
			name:     "headset key in phone call without compatible keyboard",
			device:   device{sdk: 29, imes: []entity.ImeInfo{gboard(true), keyMapperKeyboard(false)}},
			keyMap:   keyMapWithKeys(headset),
			expected: []entity.KeyMapTriggerError{entity.TriggerErrorCantDetectInPhoneCall},
		},
		{
			name:     "headset key with compatible keyboard chosen",
			device:   device{sdk: 29, imes: []entity.ImeInfo{keyMapperKeyboard(true)}},
			keyMap:   keyMapWithKeys(headset),
			expected: nil,
		},
		{
			name:     "headset key before oreo",
			device:   device{sdk: 25, imes: []entity.ImeInfo{gboard(true)}},
			keyMap:   keyMapWithKeys(headset),
			expected: nil,
		},
		{
			name:   "volume key reports every error",
			device: device{sdk: 29, imes: []entity.ImeInfo{gboard(true)}},
			keyMap: func() entity.KeyMap {
				km := keyMapWithKeys(volumeUp)
				km.Trigger.ScreenOffTrigger = true
				return km
			}(),
			expected: []entity.KeyMapTriggerError{
				entity.TriggerErrorDndAccessDenied,
				entity.TriggerErrorScreenOffRootDenied,
				entity.TriggerErrorCantDetectInPhoneCall,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDisplayKeyMap(t, tt.device, nil, tt.neverShowDnd)

			errs, err := f.uc.GetTriggerErrors(testContext(), tt.keyMap)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, errs)
		})
	}
}

func TestDisplayKeyMapUseCase_DeviceNotConnected(t *testing.T) {
	connected := []entity.InputDevice{{Descriptor: "k380", Name: "Keyboard K380", IsExternal: true}}
	km := keyMapWithKeys(
		triggerKey("k1", 29, entity.ExternalDevice("k380", "Keyboard K380")),
		triggerKey("k2", 30, entity.ExternalDevice("gamepad", "Gamepad")),
	)

	f := newDisplayKeyMap(t, device{sdk: 30}, connected, false)

	errs, err := f.uc.GetTriggerErrors(testContext(), km)
	require.NoError(t, err)
	assert.Equal(t, []entity.KeyMapTriggerError{entity.TriggerErrorDeviceNotConnected}, errs)

	km.Trigger.Keys = km.Trigger.Keys[:1]
	km.Trigger.Mode = entity.UndefinedMode()
	errs, err = f.uc.GetTriggerErrors(testContext(), km)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestDisplayKeyMapUseCase_InternalKeysSkipDeviceLookup(t *testing.T) {
	f := newDisplayKeyMap(t, device{sdk: 30}, nil, false)

	_, err := f.uc.GetTriggerErrors(testContext(), keyMapWithKeys(triggerKey("k1", 29, entity.InternalDevice())))

	require.NoError(t, err)
	f.devices.AssertNotCalled(t, "ConnectedInputDevices", mock.Anything)
}

func TestDisplayKeyMapUseCase_InputMethodFailure(t *testing.T) {
	f := newDisplayKeyMap(t, device{sdk: 30}, nil, true)
	failing := errors.New("ime service gone")
	f.caps.inputMethods.ExpectedCalls = nil
	f.caps.inputMethods.EXPECT().InputMethods(mock.Anything).Return(nil, failing)

	_, err := f.uc.GetTriggerErrors(testContext(), keyMapWithKeys(triggerKey("k1", entity.KeyCodeVolumeDown, entity.AnyDevice())))

	assert.ErrorIs(t, err, failing)
}

func TestDisplayKeyMapUseCase_Preferences(t *testing.T) {
	f := newDisplayKeyMap(t, device{sdk: 30}, nil, false)
	f.prefs.EXPECT().ShowDeviceDescriptors().Return(true)
	f.prefs.EXPECT().SetNeverShowDndError(true).Return(nil)

	assert.True(t, f.uc.ShowDeviceDescriptors())
	assert.NoError(t, f.uc.NeverShowDndTriggerErrorAgain(testContext()))
}

func TestDisplayKeyMapUseCase_Invalidations(t *testing.T) {
	f := newDisplayKeyMap(t, device{sdk: 30}, nil, false)
	deviceSend, deviceUpdates := signal()
	f.caps.permissions.EXPECT().Updates(mock.Anything).Return(nil)
	f.caps.inputMethods.EXPECT().ChosenImeUpdates(mock.Anything).Return(nil)
	f.devices.EXPECT().Updates(mock.Anything).Return(deviceUpdates)
	f.prefs.EXPECT().Updates(mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	invalidations := f.uc.Invalidations(ctx)
	deviceSend <- struct{}{}

	select {
	case <-invalidations:
	case <-time.After(time.Second):
		t.Fatal("expected an invalidation after a device change")
	}
}
