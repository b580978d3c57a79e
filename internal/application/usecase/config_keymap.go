package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/repository"
	"github.com/keymapper-dev/keymapper/internal/domain/validation"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

var (
	// ErrNoKeyMapLoaded is returned by mutations before LoadNewKeyMap or LoadKeyMap.
	ErrNoKeyMapLoaded = errors.New("no key map loaded")
	// ErrActionNotFound is returned when no action has the requested uid.
	ErrActionNotFound = errors.New("action not found")
	// ErrIndexOutOfRange is returned by moves with an index outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUndefinedModeNeedsOneKey is returned when clearing the mode of a multi-key trigger.
	ErrUndefinedModeNeedsOneKey = errors.New("only a trigger with at most one key can have an undefined mode")
)

// ConfigKeyMapUseCase edits one key map in memory.
// All methods are safe for concurrent use.
type ConfigKeyMapUseCase struct {
	repo    repository.KeyMapRepository
	devices port.DevicesAdapter
	newUID  func() string

	mu          sync.Mutex
	keyMap      *entity.KeyMap
	subscribers map[chan entity.KeyMap]struct{}
}

// NewConfigKeyMapUseCase creates a new ConfigKeyMapUseCase.
func NewConfigKeyMapUseCase(repo repository.KeyMapRepository, devices port.DevicesAdapter) *ConfigKeyMapUseCase {
	return &ConfigKeyMapUseCase{
		repo:        repo,
		devices:     devices,
		newUID:      uuid.NewString,
		subscribers: make(map[chan entity.KeyMap]struct{}),
	}
}

// WithUIDGenerator replaces the uuid generator, for deterministic tests.
func (uc *ConfigKeyMapUseCase) WithUIDGenerator(gen func() string) *ConfigKeyMapUseCase {
	uc.newUID = gen
	return uc
}

// LoadNewKeyMap starts editing an empty, enabled key map.
func (uc *ConfigKeyMapUseCase) LoadNewKeyMap() entity.KeyMap {
	km := entity.KeyMap{
		UID:       uc.newUID(),
		Trigger:   entity.Trigger{Mode: entity.UndefinedMode()},
		IsEnabled: true,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.commit(km)
	return km.Clone()
}

// LoadKeyMap starts editing the stored key map with uid.
func (uc *ConfigKeyMapUseCase) LoadKeyMap(ctx context.Context, uid string) error {
	km, err := uc.repo.Get(ctx, uid)
	if err != nil {
		return fmt.Errorf("load key map %s: %w", uid, err)
	}

	logging.FromContext(ctx).Debug().
		Str("keymap_uid", uid).
		Int("trigger_keys", len(km.Trigger.Keys)).
		Int("actions", len(km.Actions)).
		Msg("loaded key map")

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.commit(km.Clone())
	return nil
}

// Save validates and stores the key map being edited.
func (uc *ConfigKeyMapUseCase) Save(ctx context.Context) error {
	km, ok := uc.KeyMap()
	if !ok {
		return ErrNoKeyMapLoaded
	}
	if err := validation.CheckKeyMap(km); err != nil {
		return err
	}
	if err := uc.repo.Save(ctx, &km); err != nil {
		return fmt.Errorf("save key map %s: %w", km.UID, err)
	}

	logging.FromContext(ctx).Info().Str("keymap_uid", km.UID).Msg("saved key map")
	return nil
}

// KeyMap returns a copy of the key map being edited.
func (uc *ConfigKeyMapUseCase) KeyMap() (entity.KeyMap, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.keyMap == nil {
		return entity.KeyMap{}, false
	}
	return uc.keyMap.Clone(), true
}

// Subscribe returns a channel receiving the key map after every change, starting
// with the current one if loaded. Only the latest value is kept for slow readers.
// The channel is closed once ctx is done.
func (uc *ConfigKeyMapUseCase) Subscribe(ctx context.Context) <-chan entity.KeyMap {
	ch := make(chan entity.KeyMap, 1)

	uc.mu.Lock()
	uc.subscribers[ch] = struct{}{}
	if uc.keyMap != nil {
		ch <- uc.keyMap.Clone()
	}
	uc.mu.Unlock()

	go func() {
		<-ctx.Done()
		uc.mu.Lock()
		delete(uc.subscribers, ch)
		close(ch)
		uc.mu.Unlock()
	}()

	return ch
}

// AddTriggerKey appends a key to the trigger.
//
// Modifier keys are not consumed so they keep working in other apps. Adding a
// key that is already in the trigger turns it into a sequence, and adding the
// second key turns an undefined trigger into a parallel one.
func (uc *ConfigKeyMapUseCase) AddTriggerKey(keyCode int, device entity.TriggerKeyDevice) error {
	return uc.edit(func(km *entity.KeyMap) error {
		trigger := &km.Trigger

		clickType := entity.ClickTypeShortPress
		if trigger.Mode.IsParallel() {
			clickType = trigger.Mode.ClickType
		}

		key := entity.TriggerKey{
			UID:             uc.newUID(),
			KeyCode:         keyCode,
			ClickType:       clickType,
			ConsumeKeyEvent: !entity.IsModifierKeyCode(keyCode),
			Device:          device,
		}

		containsKey := false
		if !trigger.Mode.IsSequence() {
			for _, existing := range trigger.Keys {
				if existing.SameKey(key) {
					containsKey = true
					break
				}
			}
		}

		trigger.Keys = append(trigger.Keys, key)

		switch {
		case containsKey:
			trigger.Mode = entity.SequenceMode()
		case len(trigger.Keys) <= 1:
			trigger.Mode = entity.UndefinedMode()
		case len(trigger.Keys) == 2:
			trigger.Mode = entity.ParallelMode(key.ClickType)
		}
		return nil
	})
}

// RemoveTriggerKey removes the key with uid.
func (uc *ConfigKeyMapUseCase) RemoveTriggerKey(uid string) error {
	return uc.edit(func(km *entity.KeyMap) error {
		i := km.Trigger.KeyIndex(uid)
		if i < 0 {
			return fmt.Errorf("%w: %s", entity.ErrTriggerKeyNotFound, uid)
		}
		km.Trigger.Keys = append(km.Trigger.Keys[:i], km.Trigger.Keys[i+1:]...)
		if len(km.Trigger.Keys) <= 1 {
			km.Trigger.Mode = entity.UndefinedMode()
		}
		return nil
	})
}

// MoveTriggerKey moves the key at from so it ends up at index to.
func (uc *ConfigKeyMapUseCase) MoveTriggerKey(from, to int) error {
	return uc.edit(func(km *entity.KeyMap) error {
		keys, err := move(km.Trigger.Keys, from, to)
		if err != nil {
			return err
		}
		km.Trigger.Keys = keys
		return nil
	})
}

// SetParallelTriggerMode makes every key short press and drops repeated keys.
func (uc *ConfigKeyMapUseCase) SetParallelTriggerMode() error {
	return uc.edit(func(km *entity.KeyMap) error {
		trigger := &km.Trigger
		if trigger.Mode.IsParallel() {
			return nil
		}
		if len(trigger.Keys) <= 1 {
			trigger.Mode = entity.UndefinedMode()
			return nil
		}

		keys := make([]entity.TriggerKey, 0, len(trigger.Keys))
		for _, key := range trigger.Keys {
			duplicate := false
			for _, kept := range keys {
				if kept.KeyCode == key.KeyCode && kept.Device == key.Device {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}
			key.ClickType = entity.ClickTypeShortPress
			keys = append(keys, key)
		}
		trigger.Keys = keys

		if len(keys) <= 1 {
			trigger.Mode = entity.UndefinedMode()
		} else {
			trigger.Mode = entity.ParallelMode(entity.ClickTypeShortPress)
		}
		return nil
	})
}

// SetSequenceTriggerMode makes the keys fire one after another.
func (uc *ConfigKeyMapUseCase) SetSequenceTriggerMode() error {
	return uc.edit(func(km *entity.KeyMap) error {
		switch {
		case km.Trigger.Mode.IsSequence():
		case len(km.Trigger.Keys) <= 1:
			km.Trigger.Mode = entity.UndefinedMode()
		default:
			km.Trigger.Mode = entity.SequenceMode()
		}
		return nil
	})
}

// SetUndefinedTriggerMode clears the mode of a trigger with at most one key.
func (uc *ConfigKeyMapUseCase) SetUndefinedTriggerMode() error {
	return uc.edit(func(km *entity.KeyMap) error {
		if km.Trigger.Mode.IsUndefined() {
			return nil
		}
		if len(km.Trigger.Keys) > 1 {
			return ErrUndefinedModeNeedsOneKey
		}
		km.Trigger.Mode = entity.UndefinedMode()
		return nil
	})
}

// SetTriggerShortPress makes every key a short press. Sequences are left alone.
func (uc *ConfigKeyMapUseCase) SetTriggerShortPress() error {
	return uc.setTriggerClickType(entity.ClickTypeShortPress)
}

// SetTriggerLongPress makes every key a long press. Sequences are left alone.
func (uc *ConfigKeyMapUseCase) SetTriggerLongPress() error {
	return uc.setTriggerClickType(entity.ClickTypeLongPress)
}

// SetTriggerDoublePress makes the key a double press. Only single-key triggers can be double pressed.
func (uc *ConfigKeyMapUseCase) SetTriggerDoublePress() error {
	return uc.edit(func(km *entity.KeyMap) error {
		if !km.Trigger.Mode.IsUndefined() {
			return nil
		}
		for i := range km.Trigger.Keys {
			km.Trigger.Keys[i].ClickType = entity.ClickTypeDoublePress
		}
		km.Trigger.Mode = entity.UndefinedMode()
		return nil
	})
}

func (uc *ConfigKeyMapUseCase) setTriggerClickType(clickType entity.ClickType) error {
	return uc.edit(func(km *entity.KeyMap) error {
		if km.Trigger.Mode.IsSequence() {
			return nil
		}
		for i := range km.Trigger.Keys {
			km.Trigger.Keys[i].ClickType = clickType
		}
		if len(km.Trigger.Keys) <= 1 {
			km.Trigger.Mode = entity.UndefinedMode()
		} else {
			km.Trigger.Mode = entity.ParallelMode(clickType)
		}
		return nil
	})
}

// SetTriggerKeyClickType changes the click type of one key.
func (uc *ConfigKeyMapUseCase) SetTriggerKeyClickType(uid string, clickType entity.ClickType) error {
	return uc.editKey(uid, func(key *entity.TriggerKey) {
		key.ClickType = clickType
	})
}

// SetTriggerKeyConsumeKeyEvent sets whether the key still does its normal job.
func (uc *ConfigKeyMapUseCase) SetTriggerKeyConsumeKeyEvent(uid string, consume bool) error {
	return uc.editKey(uid, func(key *entity.TriggerKey) {
		key.ConsumeKeyEvent = consume
	})
}

// SetTriggerKeyDevice restricts which device the key must come from.
func (uc *ConfigKeyMapUseCase) SetTriggerKeyDevice(uid string, device entity.TriggerKeyDevice) error {
	return uc.editKey(uid, func(key *entity.TriggerKey) {
		key.Device = device
	})
}

// SetScreenOffTrigger sets whether the trigger is detected with the screen off.
func (uc *ConfigKeyMapUseCase) SetScreenOffTrigger(enabled bool) error {
	return uc.edit(func(km *entity.KeyMap) error {
		km.Trigger.ScreenOffTrigger = enabled
		return nil
	})
}

// SetEnabled enables or disables the whole key map.
func (uc *ConfigKeyMapUseCase) SetEnabled(enabled bool) error {
	return uc.edit(func(km *entity.KeyMap) error {
		km.IsEnabled = enabled
		return nil
	})
}

// SetActions replaces the action list.
func (uc *ConfigKeyMapUseCase) SetActions(actions []entity.KeyMapAction) error {
	return uc.edit(func(km *entity.KeyMap) error {
		km.Actions = append([]entity.KeyMapAction(nil), actions...)
		return nil
	})
}

// AddAction appends action and returns the uid it was given.
func (uc *ConfigKeyMapUseCase) AddAction(action entity.Action) (string, error) {
	uid := uc.newUID()
	err := uc.edit(func(km *entity.KeyMap) error {
		km.Actions = append(km.Actions, entity.KeyMapAction{UID: uid, Data: action})
		return nil
	})
	if err != nil {
		return "", err
	}
	return uid, nil
}

// RemoveAction removes the action with uid.
func (uc *ConfigKeyMapUseCase) RemoveAction(uid string) error {
	return uc.edit(func(km *entity.KeyMap) error {
		for i, a := range km.Actions {
			if a.UID == uid {
				km.Actions = append(km.Actions[:i], km.Actions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrActionNotFound, uid)
	})
}

// MoveAction moves the action at from so it ends up at index to.
func (uc *ConfigKeyMapUseCase) MoveAction(from, to int) error {
	return uc.edit(func(km *entity.KeyMap) error {
		actions, err := move(km.Actions, from, to)
		if err != nil {
			return err
		}
		km.Actions = actions
		return nil
	})
}

// GetAvailableTriggerKeyDevices lists the device constraints a key can take:
// this device, any device, then every connected external device.
func (uc *ConfigKeyMapUseCase) GetAvailableTriggerKeyDevices(ctx context.Context) ([]entity.TriggerKeyDevice, error) {
	connected, err := uc.devices.ConnectedInputDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	devices := []entity.TriggerKeyDevice{entity.InternalDevice(), entity.AnyDevice()}
	for _, d := range connected {
		if d.IsExternal {
			devices = append(devices, entity.ExternalDevice(d.Descriptor, d.Name))
		}
	}
	return devices, nil
}

func (uc *ConfigKeyMapUseCase) editKey(uid string, fn func(key *entity.TriggerKey)) error {
	return uc.edit(func(km *entity.KeyMap) error {
		i := km.Trigger.KeyIndex(uid)
		if i < 0 {
			return fmt.Errorf("%w: %s", entity.ErrTriggerKeyNotFound, uid)
		}
		fn(&km.Trigger.Keys[i])
		return nil
	})
}

// edit applies fn to a copy of the key map and commits it if the result is valid.
func (uc *ConfigKeyMapUseCase) edit(fn func(km *entity.KeyMap) error) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.keyMap == nil {
		return ErrNoKeyMapLoaded
	}

	km := uc.keyMap.Clone()
	if err := fn(&km); err != nil {
		return err
	}
	if err := validation.CheckKeyMap(km); err != nil {
		return err
	}

	uc.commit(km)
	return nil
}

// commit stores km and publishes it. Callers hold uc.mu.
func (uc *ConfigKeyMapUseCase) commit(km entity.KeyMap) {
	uc.keyMap = &km
	for ch := range uc.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- km.Clone()
	}
}

func move[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: move %d to %d in %d items", ErrIndexOutOfRange, from, to, len(items))
	}
	item := items[from]
	out := append(items[:from:from], items[from+1:]...)
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out, nil
}
