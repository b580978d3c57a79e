package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/service"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// ErrNoTriggerKeySelected is returned by key option handlers before a key's options were opened.
var ErrNoTriggerKeySelected = errors.New("no trigger key selected")

// Snackbar is a transient message offering a fix.
type Snackbar string

const (
	SnackbarNone                         Snackbar = ""
	SnackbarAccessibilityServiceCrashed  Snackbar = "ACCESSIBILITY_SERVICE_CRASHED"
	SnackbarAccessibilityServiceDisabled Snackbar = "ACCESSIBILITY_SERVICE_DISABLED"
)

// DialogKind identifies the dialog shown over the trigger screen.
type DialogKind string

const (
	DialogNone                   DialogKind = ""
	DialogDndAccessExplanation   DialogKind = "DND_ACCESS_EXPLANATION"
	DialogChooseTriggerKeyDevice DialogKind = "CHOOSE_TRIGGER_KEY_DEVICE"
)

// Dialog is the open dialog. The device fields are only set for DialogChooseTriggerKeyDevice.
type Dialog struct {
	Kind           DialogKind
	KeyUID         string
	Devices        []entity.TriggerKeyDevice
	SelectedDevice entity.TriggerKeyDevice
}

// TriggerLabels resolves the trigger list strings through resources.
func TriggerLabels(resources port.ResourceProvider) service.TriggerLabels {
	return service.TriggerLabels{
		Separator:   " " + resources.GetString(port.StringMiddleDot) + " ",
		LongPress:   resources.GetString(port.StringClickTypeLongPress),
		DoublePress: resources.GetString(port.StringClickTypeDoublePress),
		ThisDevice:  resources.GetString(port.StringThisDevice),
		AnyDevice:   resources.GetString(port.StringAnyDevice),
		DontRemap:   resources.GetString(port.StringDontRemap),
	}
}

// TriggerViewModel drives the trigger configuration screen.
type TriggerViewModel struct {
	config  *ConfigKeyMapUseCase
	display *DisplayKeyMapUseCase
	record  *RecordTriggerUseCase
	labels  service.TriggerLabels

	mu            sync.Mutex
	snackbar      Snackbar
	dialog        Dialog
	editingKeyUID string
}

// NewTriggerViewModel creates a new TriggerViewModel.
func NewTriggerViewModel(
	config *ConfigKeyMapUseCase,
	display *DisplayKeyMapUseCase,
	record *RecordTriggerUseCase,
	resources port.ResourceProvider,
) *TriggerViewModel {
	return &TriggerViewModel{
		config:  config,
		display: display,
		record:  record,
		labels:  TriggerLabels(resources),
	}
}

// TriggerState derives the screen state from the current key map.
func (vm *TriggerViewModel) TriggerState(ctx context.Context) (service.TriggerState, error) {
	km, ok := vm.config.KeyMap()
	if !ok {
		return service.TriggerState{}, ErrNoKeyMapLoaded
	}
	return vm.derive(ctx, km, vm.record.CurrentState())
}

// Watch returns a channel receiving the screen state whenever the key map, the
// recording state or a trigger error input changes. Keys recorded meanwhile are
// added to the trigger. Only the latest state is kept for slow readers; the
// channel is closed once ctx is done.
func (vm *TriggerViewModel) Watch(ctx context.Context) <-chan service.TriggerState {
	log := logging.FromContext(ctx)
	out := make(chan service.TriggerState, 1)

	keyMaps := vm.config.Subscribe(ctx)
	recordStates := vm.record.States(ctx)
	recorded := vm.record.RecordedKeys(ctx)
	invalidations := vm.display.Invalidations(ctx)

	go func() {
		defer close(out)

		var current *entity.KeyMap
		recordState := entity.RecordStopped()

		for {
			select {
			case <-ctx.Done():
				return
			case km, ok := <-keyMaps:
				if !ok {
					return
				}
				current = &km
			case state, ok := <-recordStates:
				if !ok {
					return
				}
				recordState = state
			case _, ok := <-invalidations:
				if !ok {
					invalidations = nil
					continue
				}
			case key, ok := <-recorded:
				if !ok {
					return
				}
				if err := vm.config.AddTriggerKey(key.KeyCode, key.Device); err != nil {
					log.Warn().Err(err).Int("key_code", key.KeyCode).Msg("failed to add recorded key")
				}
				continue
			}

			if current == nil {
				continue
			}

			state, err := vm.derive(ctx, *current, recordState)
			if err != nil {
				log.Error().Err(err).Msg("failed to derive trigger state")
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- state
		}
	}()

	return out
}

func (vm *TriggerViewModel) derive(ctx context.Context, km entity.KeyMap, recordState entity.RecordTriggerState) (service.TriggerState, error) {
	errs, err := vm.display.GetTriggerErrors(ctx, km)
	if err != nil {
		return service.TriggerState{}, fmt.Errorf("get trigger errors: %w", err)
	}
	return service.DeriveTriggerState(km.Trigger, recordState, errs, service.TriggerDisplayOptions{
		Labels:                vm.labels,
		ShowDeviceDescriptors: vm.display.ShowDeviceDescriptors(),
	}), nil
}

// OnRecordTriggerClick starts recording, or stops the running session.
// Capture failures become a snackbar rather than an error.
func (vm *TriggerViewModel) OnRecordTriggerClick(ctx context.Context) error {
	var err error
	if vm.record.CurrentState().IsCountingDown() {
		vm.record.StopRecording()
	} else {
		err = vm.record.StartRecording(ctx)
	}

	snackbar := SnackbarNone
	var actionErr *entity.ActionError
	if errors.As(err, &actionErr) {
		switch actionErr.Kind {
		case entity.ErrKindAccessibilityServiceCrashed:
			snackbar, err = SnackbarAccessibilityServiceCrashed, nil
		case entity.ErrKindAccessibilityServiceDisabled:
			snackbar, err = SnackbarAccessibilityServiceDisabled, nil
		}
	}

	vm.mu.Lock()
	vm.snackbar = snackbar
	vm.mu.Unlock()
	return err
}

// Snackbar returns the snackbar to show.
func (vm *TriggerViewModel) Snackbar() Snackbar {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.snackbar
}

// OnSnackbarClick dismisses the snackbar and returns the one that was clicked.
func (vm *TriggerViewModel) OnSnackbarClick() Snackbar {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	clicked := vm.snackbar
	vm.snackbar = SnackbarNone
	return clicked
}

// OnSelectClickType applies a trigger-wide click type.
func (vm *TriggerViewModel) OnSelectClickType(clickType entity.ClickType) error {
	switch clickType {
	case entity.ClickTypeShortPress:
		return vm.config.SetTriggerShortPress()
	case entity.ClickTypeLongPress:
		return vm.config.SetTriggerLongPress()
	case entity.ClickTypeDoublePress:
		return vm.config.SetTriggerDoublePress()
	default:
		return fmt.Errorf("unknown click type %q", clickType)
	}
}

func (vm *TriggerViewModel) OnSelectParallelTriggerMode() error {
	return vm.config.SetParallelTriggerMode()
}

func (vm *TriggerViewModel) OnSelectSequenceTriggerMode() error {
	return vm.config.SetSequenceTriggerMode()
}

func (vm *TriggerViewModel) OnMoveTriggerKey(from, to int) error {
	return vm.config.MoveTriggerKey(from, to)
}

func (vm *TriggerViewModel) OnRemoveTriggerKeyClick(uid string) error {
	return vm.config.RemoveTriggerKey(uid)
}

// OnLaunchTriggerKeyOptions selects the key whose options are edited.
func (vm *TriggerViewModel) OnLaunchTriggerKeyOptions(uid string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.editingKeyUID = uid
}

// TriggerKeyOptions returns the option sheet state of the selected key.
func (vm *TriggerViewModel) TriggerKeyOptions() (service.TriggerKeyOptions, error) {
	uid, err := vm.selectedKey()
	if err != nil {
		return service.TriggerKeyOptions{}, err
	}
	km, ok := vm.config.KeyMap()
	if !ok {
		return service.TriggerKeyOptions{}, ErrNoKeyMapLoaded
	}
	return service.DeriveTriggerKeyOptions(km.Trigger, uid)
}

func (vm *TriggerViewModel) OnDoNotRemapKeyCheckedChange(checked bool) error {
	uid, err := vm.selectedKey()
	if err != nil {
		return err
	}
	return vm.config.SetTriggerKeyConsumeKeyEvent(uid, !checked)
}

func (vm *TriggerViewModel) OnSelectKeyClickType(clickType entity.ClickType) error {
	uid, err := vm.selectedKey()
	if err != nil {
		return err
	}
	return vm.config.SetTriggerKeyClickType(uid, clickType)
}

func (vm *TriggerViewModel) selectedKey() (string, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.editingKeyUID == "" {
		return "", ErrNoTriggerKeySelected
	}
	return vm.editingKeyUID, nil
}

// Dialog returns the open dialog.
func (vm *TriggerViewModel) Dialog() Dialog {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.dialog
}

// OnChooseTriggerKeyDeviceClick opens the device picker for the key with uid.
func (vm *TriggerViewModel) OnChooseTriggerKeyDeviceClick(ctx context.Context, uid string) error {
	km, ok := vm.config.KeyMap()
	if !ok {
		return ErrNoKeyMapLoaded
	}
	i := km.Trigger.KeyIndex(uid)
	if i < 0 {
		return fmt.Errorf("%w: %s", entity.ErrTriggerKeyNotFound, uid)
	}

	devices, err := vm.config.GetAvailableTriggerKeyDevices(ctx)
	if err != nil {
		return err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.dialog = Dialog{
		Kind:           DialogChooseTriggerKeyDevice,
		KeyUID:         uid,
		Devices:        devices,
		SelectedDevice: km.Trigger.Keys[i].Device,
	}
	return nil
}

// OnSelectTriggerKeyDevice changes the selection of an open device picker.
func (vm *TriggerViewModel) OnSelectTriggerKeyDevice(device entity.TriggerKeyDevice) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.dialog.Kind == DialogChooseTriggerKeyDevice {
		vm.dialog.SelectedDevice = device
	}
}

// OnConfirmDialog closes the dialog and applies it. For the DND explanation it
// returns the error the user should be sent to fix.
func (vm *TriggerViewModel) OnConfirmDialog() (*entity.ActionError, error) {
	vm.mu.Lock()
	dialog := vm.dialog
	vm.dialog = Dialog{}
	vm.mu.Unlock()

	switch dialog.Kind {
	case DialogChooseTriggerKeyDevice:
		return nil, vm.config.SetTriggerKeyDevice(dialog.KeyUID, dialog.SelectedDevice)
	case DialogDndAccessExplanation:
		return entity.PermissionDenied(entity.PermissionAccessNotificationPolicy), nil
	default:
		return nil, nil
	}
}

func (vm *TriggerViewModel) OnDismissDialog() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.dialog = Dialog{}
}

// OnNeverShowDndAccessErrorClick hides the DND error for good and closes the dialog.
func (vm *TriggerViewModel) OnNeverShowDndAccessErrorClick(ctx context.Context) error {
	if err := vm.display.NeverShowDndTriggerErrorAgain(ctx); err != nil {
		return err
	}
	vm.OnDismissDialog()
	return nil
}

// OnFixTriggerErrorClick returns the error the user must resolve to clear a
// trigger error. The DND error first opens an explanation dialog and returns nil.
func (vm *TriggerViewModel) OnFixTriggerErrorClick(triggerErr entity.KeyMapTriggerError) *entity.ActionError {
	switch triggerErr {
	case entity.TriggerErrorDndAccessDenied:
		vm.mu.Lock()
		vm.dialog = Dialog{Kind: DialogDndAccessExplanation}
		vm.mu.Unlock()
		return nil
	case entity.TriggerErrorScreenOffRootDenied:
		return entity.PermissionDenied(entity.PermissionRoot)
	case entity.TriggerErrorCantDetectInPhoneCall:
		return entity.NoCompatibleImeChosen()
	default:
		return nil
	}
}
