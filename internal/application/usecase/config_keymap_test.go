package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/keymapper-dev/keymapper/internal/application/port/mocks"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/repository"
	repomocks "github.com/keymapper-dev/keymapper/internal/domain/repository/mocks"
	"github.com/keymapper-dev/keymapper/internal/domain/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfigKeyMap(t *testing.T) (*usecase.ConfigKeyMapUseCase, *repomocks.MockKeyMapRepository, *mocks.MockDevicesAdapter) {
	repo := repomocks.NewMockKeyMapRepository(t)
	devices := mocks.NewMockDevicesAdapter(t)

	n := 0
	uc := usecase.NewConfigKeyMapUseCase(repo, devices).WithUIDGenerator(func() string {
		n++
		return fmt.Sprintf("uid-%d", n)
	})
	return uc, repo, devices
}

func currentTrigger(t *testing.T, uc *usecase.ConfigKeyMapUseCase) entity.Trigger {
	km, ok := uc.KeyMap()
	require.True(t, ok)
	return km.Trigger
}

func keyCodes(trigger entity.Trigger) []int {
	codes := make([]int, len(trigger.Keys))
	for i, k := range trigger.Keys {
		codes[i] = k.KeyCode
	}
	return codes
}

func TestConfigKeyMapUseCase_MutationsNeedLoadedKeyMap(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)

	err := uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice())
	assert.ErrorIs(t, err, usecase.ErrNoKeyMapLoaded)
	assert.ErrorIs(t, uc.Save(testContext()), usecase.ErrNoKeyMapLoaded)

	_, ok := uc.KeyMap()
	assert.False(t, ok)
}

func TestConfigKeyMapUseCase_AddTriggerKey(t *testing.T) {
	t.Run("first key leaves the mode undefined", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

		trigger := currentTrigger(t, uc)
		require.Len(t, trigger.Keys, 1)
		assert.True(t, trigger.Mode.IsUndefined())
		assert.Equal(t, entity.ClickTypeShortPress, trigger.Keys[0].ClickType)
		assert.True(t, trigger.Keys[0].ConsumeKeyEvent)
		assert.Equal(t, "uid-2", trigger.Keys[0].UID)
	})

	t.Run("second distinct key makes it parallel", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))

		trigger := currentTrigger(t, uc)
		assert.Equal(t, entity.ParallelMode(entity.ClickTypeShortPress), trigger.Mode)
	})

	t.Run("repeated key makes it a sequence", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

		trigger := currentTrigger(t, uc)
		assert.True(t, trigger.Mode.IsSequence())
		assert.Equal(t, []int{entity.KeyCodeVolumeUp, entity.KeyCodeVolumeUp}, keyCodes(trigger))
	})

	t.Run("same code from different external devices is not repeated", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.ExternalDevice("pad-1", "Pad")))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.ExternalDevice("pad-2", "Pad")))

		assert.True(t, currentTrigger(t, uc).Mode.IsParallel())
	})

	t.Run("third key keeps parallel click type", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))
		require.NoError(t, uc.SetTriggerLongPress())
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeHeadsetHook, entity.AnyDevice()))

		trigger := currentTrigger(t, uc)
		assert.Equal(t, entity.ParallelMode(entity.ClickTypeLongPress), trigger.Mode)
		assert.Equal(t, entity.ClickTypeLongPress, trigger.Keys[2].ClickType)
	})

	t.Run("modifier keys are not consumed", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeCtrlLeft, entity.AnyDevice()))

		assert.False(t, currentTrigger(t, uc).Keys[0].ConsumeKeyEvent)
	})
}

func TestConfigKeyMapUseCase_RemoveTriggerKey(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()
	require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
	require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))

	first := currentTrigger(t, uc).Keys[0].UID
	require.NoError(t, uc.RemoveTriggerKey(first))

	trigger := currentTrigger(t, uc)
	assert.Equal(t, []int{entity.KeyCodeVolumeDown}, keyCodes(trigger))
	assert.True(t, trigger.Mode.IsUndefined())

	assert.ErrorIs(t, uc.RemoveTriggerKey("missing"), entity.ErrTriggerKeyNotFound)
}

func TestConfigKeyMapUseCase_MoveTriggerKey(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()
	for _, code := range []int{entity.KeyCodeVolumeUp, entity.KeyCodeVolumeDown, entity.KeyCodeHeadsetHook} {
		require.NoError(t, uc.AddTriggerKey(code, entity.AnyDevice()))
	}

	require.NoError(t, uc.MoveTriggerKey(0, 2))
	assert.Equal(t,
		[]int{entity.KeyCodeVolumeDown, entity.KeyCodeHeadsetHook, entity.KeyCodeVolumeUp},
		keyCodes(currentTrigger(t, uc)))

	require.NoError(t, uc.MoveTriggerKey(2, 0))
	assert.Equal(t,
		[]int{entity.KeyCodeVolumeUp, entity.KeyCodeVolumeDown, entity.KeyCodeHeadsetHook},
		keyCodes(currentTrigger(t, uc)))

	assert.ErrorIs(t, uc.MoveTriggerKey(0, 3), usecase.ErrIndexOutOfRange)
}

func TestConfigKeyMapUseCase_TriggerModes(t *testing.T) {
	t.Run("parallel drops repeated keys and resets click types", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))
		third := currentTrigger(t, uc).Keys[2].UID
		require.NoError(t, uc.SetTriggerKeyClickType(third, entity.ClickTypeLongPress))

		require.NoError(t, uc.SetParallelTriggerMode())

		trigger := currentTrigger(t, uc)
		assert.Equal(t, entity.ParallelMode(entity.ClickTypeShortPress), trigger.Mode)
		assert.Equal(t, []int{entity.KeyCodeVolumeUp, entity.KeyCodeVolumeDown}, keyCodes(trigger))
		for _, k := range trigger.Keys {
			assert.Equal(t, entity.ClickTypeShortPress, k.ClickType)
		}
	})

	t.Run("parallel collapsing to one key is undefined", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

		require.NoError(t, uc.SetParallelTriggerMode())

		trigger := currentTrigger(t, uc)
		assert.Len(t, trigger.Keys, 1)
		assert.True(t, trigger.Mode.IsUndefined())
	})

	t.Run("sequence needs two keys", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

		require.NoError(t, uc.SetSequenceTriggerMode())
		assert.True(t, currentTrigger(t, uc).Mode.IsUndefined())

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))
		require.NoError(t, uc.SetSequenceTriggerMode())
		assert.True(t, currentTrigger(t, uc).Mode.IsSequence())
	})

	t.Run("undefined is rejected with several keys", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))

		assert.ErrorIs(t, uc.SetUndefinedTriggerMode(), usecase.ErrUndefinedModeNeedsOneKey)
		assert.True(t, currentTrigger(t, uc).Mode.IsParallel())
	})
}

func TestConfigKeyMapUseCase_TriggerClickTypes(t *testing.T) {
	t.Run("long press on a single key stays undefined", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

		require.NoError(t, uc.SetTriggerLongPress())

		trigger := currentTrigger(t, uc)
		assert.True(t, trigger.Mode.IsUndefined())
		assert.Equal(t, entity.ClickTypeLongPress, trigger.Keys[0].ClickType)
	})

	t.Run("click type changes leave sequences alone", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
		before := currentTrigger(t, uc)

		require.NoError(t, uc.SetTriggerLongPress())
		require.NoError(t, uc.SetTriggerDoublePress())

		assert.Equal(t, before, currentTrigger(t, uc))
	})

	t.Run("double press only for undefined triggers", func(t *testing.T) {
		uc, _, _ := newConfigKeyMap(t)
		uc.LoadNewKeyMap()
		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))

		require.NoError(t, uc.SetTriggerDoublePress())
		assert.Equal(t, entity.ClickTypeDoublePress, currentTrigger(t, uc).Keys[0].ClickType)

		require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))
		require.NoError(t, uc.SetTriggerShortPress())
		require.NoError(t, uc.SetTriggerDoublePress())

		for _, k := range currentTrigger(t, uc).Keys {
			assert.Equal(t, entity.ClickTypeShortPress, k.ClickType)
		}
	})
}

func TestConfigKeyMapUseCase_InvalidEditIsRejected(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()
	require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.ExternalDevice("pad-1", "Pad")))
	uid := currentTrigger(t, uc).Keys[0].UID

	err := uc.SetTriggerKeyDevice(uid, entity.ExternalDevice("", "Pad"))

	assert.ErrorIs(t, err, validation.ErrInvalidKeyMap)
	assert.Equal(t, "pad-1", currentTrigger(t, uc).Keys[0].Device.Descriptor)
}

func TestConfigKeyMapUseCase_KeyOptions(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()
	require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
	uid := currentTrigger(t, uc).Keys[0].UID

	require.NoError(t, uc.SetTriggerKeyConsumeKeyEvent(uid, false))
	require.NoError(t, uc.SetTriggerKeyDevice(uid, entity.InternalDevice()))
	require.NoError(t, uc.SetScreenOffTrigger(true))
	require.NoError(t, uc.SetEnabled(false))

	km, ok := uc.KeyMap()
	require.True(t, ok)
	assert.False(t, km.Trigger.Keys[0].ConsumeKeyEvent)
	assert.Equal(t, entity.InternalDevice(), km.Trigger.Keys[0].Device)
	assert.True(t, km.Trigger.ScreenOffTrigger)
	assert.False(t, km.IsEnabled)

	assert.ErrorIs(t, uc.SetTriggerKeyConsumeKeyEvent("missing", true), entity.ErrTriggerKeyNotFound)
}

func TestConfigKeyMapUseCase_Actions(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()

	home, err := uc.AddAction(entity.SystemAction{Kind: entity.ActionIDGoHome})
	require.NoError(t, err)
	back, err := uc.AddAction(entity.SystemAction{Kind: entity.ActionIDGoBack})
	require.NoError(t, err)
	assert.NotEqual(t, home, back)

	require.NoError(t, uc.MoveAction(1, 0))
	km, _ := uc.KeyMap()
	require.Len(t, km.Actions, 2)
	assert.Equal(t, back, km.Actions[0].UID)

	require.NoError(t, uc.RemoveAction(back))
	assert.ErrorIs(t, uc.RemoveAction(back), usecase.ErrActionNotFound)

	require.NoError(t, uc.SetActions([]entity.KeyMapAction{{UID: "a", Data: entity.URLAction{URL: "https://example.com"}}}))
	km, _ = uc.KeyMap()
	assert.Equal(t, entity.URLAction{URL: "https://example.com"}, km.Actions[0].Data)

	_, err = uc.AddAction(entity.SystemAction{Kind: "NOT_AN_ACTION"})
	assert.ErrorIs(t, err, validation.ErrInvalidKeyMap)
}

func TestConfigKeyMapUseCase_LoadAndSave(t *testing.T) {
	ctx := testContext()
	uc, repo, _ := newConfigKeyMap(t)

	stored := &entity.KeyMap{
		UID: "stored",
		Trigger: entity.Trigger{
			Keys: []entity.TriggerKey{{UID: "k1", KeyCode: entity.KeyCodeVolumeUp, ClickType: entity.ClickTypeShortPress, Device: entity.AnyDevice()}},
			Mode: entity.UndefinedMode(),
		},
		IsEnabled: true,
	}
	repo.EXPECT().Get(mock.Anything, "stored").Return(stored, nil)
	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, repository.ErrKeyMapNotFound)
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.KeyMap")).
		Run(func(_ context.Context, km *entity.KeyMap) {
			assert.Equal(t, "stored", km.UID)
			assert.True(t, km.Trigger.ScreenOffTrigger)
		}).
		Return(nil)

	require.NoError(t, uc.LoadKeyMap(ctx, "stored"))
	require.NoError(t, uc.SetScreenOffTrigger(true))
	require.NoError(t, uc.Save(ctx))

	assert.False(t, stored.Trigger.ScreenOffTrigger, "stored key map must not be edited in place")
	assert.ErrorIs(t, uc.LoadKeyMap(ctx, "gone"), repository.ErrKeyMapNotFound)
}

func TestConfigKeyMapUseCase_SaveFailure(t *testing.T) {
	uc, repo, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()

	failing := errors.New("disk full")
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(failing)

	assert.ErrorIs(t, uc.Save(testContext()), failing)
}

func TestConfigKeyMapUseCase_Subscribe(t *testing.T) {
	uc, _, _ := newConfigKeyMap(t)
	uc.LoadNewKeyMap()

	ctx, cancel := context.WithCancel(context.Background())
	updates := uc.Subscribe(ctx)

	initial := <-updates
	assert.Empty(t, initial.Trigger.Keys)

	require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeUp, entity.AnyDevice()))
	require.NoError(t, uc.AddTriggerKey(entity.KeyCodeVolumeDown, entity.AnyDevice()))

	latest := <-updates
	assert.Len(t, latest.Trigger.Keys, 2, "slow readers only see the latest key map")

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestConfigKeyMapUseCase_GetAvailableTriggerKeyDevices(t *testing.T) {
	uc, _, devices := newConfigKeyMap(t)
	devices.EXPECT().ConnectedInputDevices(mock.Anything).Return([]entity.InputDevice{
		{Descriptor: "builtin", Name: "gpio-keys", IsExternal: false},
		{Descriptor: "abcd1234", Name: "Keyboard K380", IsExternal: true},
	}, nil)

	result, err := uc.GetAvailableTriggerKeyDevices(testContext())

	require.NoError(t, err)
	assert.Equal(t, []entity.TriggerKeyDevice{
		entity.InternalDevice(),
		entity.AnyDevice(),
		entity.ExternalDevice("abcd1234", "Keyboard K380"),
	}, result)
}
