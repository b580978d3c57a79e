package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/application/port/mocks"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	repomocks "github.com/keymapper-dev/keymapper/internal/domain/repository/mocks"
	"github.com/keymapper-dev/keymapper/internal/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type viewModelFixture struct {
	vm      *usecase.TriggerViewModel
	config  *usecase.ConfigKeyMapUseCase
	record  *usecase.RecordTriggerUseCase
	caps    *capabilityMocks
	capture *mocks.MockKeyCaptureAdapter
	devices *mocks.MockDevicesAdapter
	prefs   *mocks.MockTriggerPreferences
	keys    chan entity.RecordedKey
}

var testStrings = map[port.StringKey]string{
	port.StringClickTypeLongPress:   "Long press",
	port.StringClickTypeDoublePress: "Double press",
	port.StringMiddleDot:            "·",
	port.StringThisDevice:           "This device",
	port.StringAnyDevice:            "Any device",
	port.StringDontRemap:            "Don't override",
}

func newViewModel(t *testing.T, d device, connected []entity.InputDevice) viewModelFixture {
	caps := newCapabilityMocks(t, d)
	caps.permissions.EXPECT().Updates(mock.Anything).Return(nil).Maybe()
	caps.inputMethods.EXPECT().ChosenImeUpdates(mock.Anything).Return(nil).Maybe()

	devices := mocks.NewMockDevicesAdapter(t)
	devices.EXPECT().ConnectedInputDevices(mock.Anything).Return(connected, nil).Maybe()
	devices.EXPECT().Updates(mock.Anything).Return(nil).Maybe()

	prefs := mocks.NewMockTriggerPreferences(t)
	prefs.EXPECT().ShowDeviceDescriptors().Return(false).Maybe()
	prefs.EXPECT().NeverShowDndError().Return(false).Maybe()
	prefs.EXPECT().RecordCountdownSeconds().Return(0).Maybe()
	prefs.EXPECT().Updates(mock.Anything).Return(nil).Maybe()

	keys := make(chan entity.RecordedKey)
	capture := mocks.NewMockKeyCaptureAdapter(t)
	capture.EXPECT().StartCapture(mock.Anything).Return((<-chan entity.RecordedKey)(keys), nil).Maybe()
	capture.EXPECT().StopCapture(mock.Anything).Return(nil).Maybe()

	resources := mocks.NewMockResourceProvider(t)
	resources.EXPECT().GetString(mock.Anything).
		RunAndReturn(func(key port.StringKey) string { return testStrings[key] }).Maybe()

	n := 0
	config := usecase.NewConfigKeyMapUseCase(repomocks.NewMockKeyMapRepository(t), devices).
		WithUIDGenerator(func() string {
			n++
			return fmt.Sprintf("uid-%d", n)
		})
	display := usecase.NewDisplayKeyMapUseCase(caps.ports(), devices, prefs)
	ticks := newManualTicker()
	record := usecase.NewRecordTriggerUseCase(capture, prefs).WithTicker(ticks.start)

	return viewModelFixture{
		vm:      usecase.NewTriggerViewModel(config, display, record, resources),
		config:  config,
		record:  record,
		caps:    caps,
		capture: capture,
		devices: devices,
		prefs:   prefs,
		keys:    keys,
	}
}

func waitForTriggerState(t *testing.T, states <-chan service.TriggerState, match func(service.TriggerState) bool) service.TriggerState {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case state, ok := <-states:
			require.True(t, ok, "state channel closed")
			if match(state) {
				return state
			}
		case <-timeout:
			t.Fatal("timed out waiting for trigger state")
			return service.TriggerState{}
		}
	}
}

func TestTriggerLabels(t *testing.T) {
	resources := mocks.NewMockResourceProvider(t)
	resources.EXPECT().GetString(mock.Anything).
		RunAndReturn(func(key port.StringKey) string { return testStrings[key] })

	labels := usecase.TriggerLabels(resources)

	assert.Equal(t, " · ", labels.Separator)
	assert.Equal(t, "Long press", labels.LongPress)
	assert.Equal(t, "Any device", labels.AnyDevice)
}

func TestTriggerViewModel_TriggerStateNeedsKeyMap(t *testing.T) {
	f := newViewModel(t, device{sdk: 30}, nil)

	_, err := f.vm.TriggerState(testContext())

	assert.ErrorIs(t, err, usecase.ErrNoKeyMapLoaded)
}

func TestTriggerViewModel_TriggerStateIncludesErrors(t *testing.T) {
	f := newViewModel(t, device{sdk: 24}, nil)
	f.config.LoadNewKeyMap()
	require.NoError(t, f.config.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

	state, err := f.vm.TriggerState(testContext())

	require.NoError(t, err)
	require.Len(t, state.Keys, 1)
	assert.Equal(t, entity.KeyCodeVolumeUp, state.Keys[0].KeyCode)
	assert.Equal(t, []entity.KeyMapTriggerError{entity.TriggerErrorDndAccessDenied}, state.Errors)
	assert.Equal(t, entity.RecordStopped(), state.RecordState)
	assert.False(t, state.IsModeButtonsEnabled)
}

func TestTriggerViewModel_WatchAddsRecordedKeys(t *testing.T) {
	f := newViewModel(t, device{sdk: 30}, nil)
	f.config.LoadNewKeyMap()

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	states := f.vm.Watch(ctx)
	waitForTriggerState(t, states, func(s service.TriggerState) bool { return len(s.Keys) == 0 })

	require.NoError(t, f.vm.OnRecordTriggerClick(ctx))
	waitForTriggerState(t, states, func(s service.TriggerState) bool { return s.RecordState.IsCountingDown() })

	f.keys <- entity.RecordedKey{KeyCode: entity.KeyCodeVolumeDown, Device: entity.InternalDevice()}
	state := waitForTriggerState(t, states, func(s service.TriggerState) bool { return len(s.Keys) == 1 })
	assert.Equal(t, entity.KeyCodeVolumeDown, state.Keys[0].KeyCode)

	require.NoError(t, f.vm.OnRecordTriggerClick(ctx))
	waitForTriggerState(t, states, func(s service.TriggerState) bool { return !s.RecordState.IsCountingDown() })

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-states:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestTriggerViewModel_RecordSnackbar(t *testing.T) {
	tests := []struct {
		name     string
		err      *entity.ActionError
		expected usecase.Snackbar
	}{
		{name: "service crashed", err: entity.AccessibilityServiceCrashed(), expected: usecase.SnackbarAccessibilityServiceCrashed},
		{name: "service disabled", err: entity.AccessibilityServiceDisabled(), expected: usecase.SnackbarAccessibilityServiceDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newViewModel(t, device{sdk: 30}, nil)
			f.capture.ExpectedCalls = nil
			f.capture.EXPECT().StartCapture(mock.Anything).Return(nil, tt.err)

			require.NoError(t, f.vm.OnRecordTriggerClick(testContext()))

			assert.Equal(t, tt.expected, f.vm.Snackbar())
			assert.Equal(t, tt.expected, f.vm.OnSnackbarClick())
			assert.Equal(t, usecase.SnackbarNone, f.vm.Snackbar())
		})
	}
}

func TestTriggerViewModel_ClickTypeAndMode(t *testing.T) {
	f := newViewModel(t, device{sdk: 30}, nil)
	f.config.LoadNewKeyMap()
	require.NoError(t, f.config.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
	require.NoError(t, f.config.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))

	require.NoError(t, f.vm.OnSelectClickType(entity.ClickTypeLongPress))
	trigger := currentTrigger(t, f.config)
	assert.Equal(t, entity.ParallelMode(entity.ClickTypeLongPress), trigger.Mode)

	require.NoError(t, f.vm.OnSelectSequenceTriggerMode())
	assert.True(t, currentTrigger(t, f.config).Mode.IsSequence())

	require.NoError(t, f.vm.OnSelectParallelTriggerMode())
	assert.True(t, currentTrigger(t, f.config).Mode.IsParallel())

	require.NoError(t, f.vm.OnMoveTriggerKey(0, 1))
	assert.Equal(t, []int{entity.KeyCodeVolumeDown, entity.KeyCodeVolumeUp}, keyCodes(currentTrigger(t, f.config)))

	assert.Error(t, f.vm.OnSelectClickType(entity.ClickType("TRIPLE_PRESS")))
}

func TestTriggerViewModel_KeyOptions(t *testing.T) {
	f := newViewModel(t, device{sdk: 30}, nil)
	f.config.LoadNewKeyMap()
	require.NoError(t, f.config.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
	uid := currentTrigger(t, f.config).Keys[0].UID

	assert.ErrorIs(t, f.vm.OnDoNotRemapKeyCheckedChange(true), usecase.ErrNoTriggerKeySelected)
	_, err := f.vm.TriggerKeyOptions()
	assert.ErrorIs(t, err, usecase.ErrNoTriggerKeySelected)

	f.vm.OnLaunchTriggerKeyOptions(uid)
	require.NoError(t, f.vm.OnDoNotRemapKeyCheckedChange(true))
	require.NoError(t, f.vm.OnSelectKeyClickType(entity.ClickTypeDoublePress))

	opts, err := f.vm.TriggerKeyOptions()
	require.NoError(t, err)
	assert.Equal(t, uid, opts.UID)
	assert.True(t, opts.IsDoNotRemapChecked)
	assert.Equal(t, entity.ClickTypeDoublePress, opts.ClickType)
	assert.False(t, currentTrigger(t, f.config).Keys[0].ConsumeKeyEvent)

	require.NoError(t, f.vm.OnRemoveTriggerKeyClick(uid))
	assert.Empty(t, currentTrigger(t, f.config).Keys)
}

func TestTriggerViewModel_ChooseTriggerKeyDevice(t *testing.T) {
	connected := []entity.InputDevice{
		{Descriptor: "k380", Name: "Keyboard K380", IsExternal: true},
		{Descriptor: "gpio", Name: "gpio-keys"},
	}
	f := newViewModel(t, device{sdk: 30}, connected)
	f.config.LoadNewKeyMap()
	require.NoError(t, f.config.AddTriggerKey(29, entity.InternalDevice()))
	uid := currentTrigger(t, f.config).Keys[0].UID

	require.NoError(t, f.vm.OnChooseTriggerKeyDeviceClick(testContext(), uid))
	dialog := f.vm.Dialog()
	assert.Equal(t, usecase.DialogChooseTriggerKeyDevice, dialog.Kind)
	assert.Equal(t, uid, dialog.KeyUID)
	assert.Equal(t, entity.InternalDevice(), dialog.SelectedDevice)
	assert.Equal(t, []entity.TriggerKeyDevice{
		entity.InternalDevice(),
		entity.AnyDevice(),
		entity.ExternalDevice("k380", "Keyboard K380"),
	}, dialog.Devices)

	f.vm.OnSelectTriggerKeyDevice(entity.ExternalDevice("k380", "Keyboard K380"))
	fix, err := f.vm.OnConfirmDialog()
	require.NoError(t, err)
	assert.Nil(t, fix)

	assert.Equal(t, entity.ExternalDevice("k380", "Keyboard K380"), currentTrigger(t, f.config).Keys[0].Device)
	assert.Equal(t, usecase.DialogNone, f.vm.Dialog().Kind)

	assert.ErrorIs(t, f.vm.OnChooseTriggerKeyDeviceClick(testContext(), "missing"), entity.ErrTriggerKeyNotFound)
}

func TestTriggerViewModel_FixTriggerError(t *testing.T) {
	f := newViewModel(t, device{sdk: 30}, nil)

	assert.Equal(t, entity.PermissionDenied(entity.PermissionRoot),
		f.vm.OnFixTriggerErrorClick(entity.TriggerErrorScreenOffRootDenied))
	assert.Equal(t, entity.NoCompatibleImeChosen(),
		f.vm.OnFixTriggerErrorClick(entity.TriggerErrorCantDetectInPhoneCall))
	assert.Nil(t, f.vm.OnFixTriggerErrorClick(entity.TriggerErrorDeviceNotConnected))
	assert.Equal(t, usecase.DialogNone, f.vm.Dialog().Kind)

	assert.Nil(t, f.vm.OnFixTriggerErrorClick(entity.TriggerErrorDndAccessDenied))
	assert.Equal(t, usecase.DialogDndAccessExplanation, f.vm.Dialog().Kind)

	fix, err := f.vm.OnConfirmDialog()
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied(entity.PermissionAccessNotificationPolicy), fix)
	assert.Equal(t, usecase.DialogNone, f.vm.Dialog().Kind)
}

func TestTriggerViewModel_NeverShowDndAccessError(t *testing.T) {
	f := newViewModel(t, device{sdk: 30}, nil)
	f.prefs.EXPECT().SetNeverShowDndError(true).Return(nil)

	f.vm.OnFixTriggerErrorClick(entity.TriggerErrorDndAccessDenied)
	require.NoError(t, f.vm.OnNeverShowDndAccessErrorClick(testContext()))

	assert.Equal(t, usecase.DialogNone, f.vm.Dialog().Kind)
}
