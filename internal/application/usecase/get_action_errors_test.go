package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func keyEventAction(uid string) entity.KeyMapAction {
	return entity.KeyMapAction{UID: uid, Data: entity.InputKeyEventAction{KeyCode: entity.KeyCodeMediaPlayPause}}
}

func TestGetActionErrorsUseCase_Execute_Shizuku(t *testing.T) {
	tests := []struct {
		name     string
		device   device
		expected *entity.ActionError
	}{
		{
			name: "installed but not started with gboard chosen",
			device: device{
				sdk:              30,
				imes:             []entity.ImeInfo{gboard(true), keyMapperKeyboard(false)},
				shizukuInstalled: true,
			},
			expected: entity.ShizukuNotStarted(),
		},
		{
			name: "installed with compatible keyboard chosen",
			device: device{
				sdk:              30,
				imes:             []entity.ImeInfo{gboard(false), keyMapperKeyboard(true)},
				shizukuInstalled: true,
			},
			expected: nil,
		},
		{
			name: "started without permission",
			device: device{
				sdk:              30,
				imes:             []entity.ImeInfo{gboard(true)},
				shizukuInstalled: true,
				shizukuStarted:   true,
			},
			expected: entity.PermissionDenied(entity.PermissionShizuku),
		},
		{
			name: "not installed falls back to keyboard",
			device: device{
				sdk:  30,
				imes: []entity.ImeInfo{gboard(true)},
			},
			expected: entity.NoCompatibleImeEnabled(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			m := newCapabilityMocks(t, tt.device)
			uc := usecase.NewGetActionErrorsUseCase(m.ports())

			result, err := uc.Execute(ctx, []entity.KeyMapAction{keyEventAction("a1")})

			require.NoError(t, err)
			require.Contains(t, result, "a1")
			assert.Equal(t, tt.expected, result["a1"])
		})
	}
}

func TestGetActionErrorsUseCase_Execute_EmptyList(t *testing.T) {
	m := newCapabilityMocks(t, device{sdk: 30})
	uc := usecase.NewGetActionErrorsUseCase(m.ports())

	result, err := uc.Execute(testContext(), nil)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetActionErrorsUseCase_Execute_EntryPerUID(t *testing.T) {
	m := newCapabilityMocks(t, device{
		sdk:  30,
		apps: map[string]entity.AppInfo{"com.spotify.music": {Installed: true, Enabled: false}},
	})
	uc := usecase.NewGetActionErrorsUseCase(m.ports())

	actions := []entity.KeyMapAction{
		{UID: "home-1", Data: entity.SystemAction{Kind: entity.ActionIDGoHome}},
		{UID: "home-2", Data: entity.SystemAction{Kind: entity.ActionIDGoHome}},
		{UID: "spotify", Data: entity.AppAction{PackageName: "com.spotify.music"}},
		{UID: "missing", Data: entity.AppAction{PackageName: "com.example.gone"}},
	}

	result, err := uc.Execute(testContext(), actions)

	require.NoError(t, err)
	require.Len(t, result, 4)
	assert.Nil(t, result["home-1"])
	assert.Nil(t, result["home-2"])
	assert.Equal(t, entity.AppDisabled("com.spotify.music"), result["spotify"])
	assert.Equal(t, entity.AppNotFound("com.example.gone"), result["missing"])
	m.packages.AssertCalled(t, "AppInfo", mock.Anything, "com.spotify.music")
	m.packages.AssertCalled(t, "AppInfo", mock.Anything, "com.example.gone")
}

func TestGetActionErrorsUseCase_Execute_SwitchKeyboardSimulatesChoice(t *testing.T) {
	km := keyMapperKeyboard(false)
	m := newCapabilityMocks(t, device{
		sdk:     30,
		granted: []entity.Permission{entity.PermissionWriteSecureSettings},
		imes:    []entity.ImeInfo{gboard(true), km},
	})
	uc := usecase.NewGetActionErrorsUseCase(m.ports())

	actions := []entity.KeyMapAction{
		keyEventAction("before"),
		{UID: "switch", Data: entity.SwitchKeyboardAction{ImeID: km.ID, SavedImeName: km.Label}},
		keyEventAction("after"),
	}

	result, err := uc.Execute(testContext(), actions)

	require.NoError(t, err)
	assert.Equal(t, entity.NoCompatibleImeChosen(), result["before"])
	assert.Nil(t, result["switch"])
	assert.Nil(t, result["after"])
}

func TestGetActionErrorsUseCase_Execute_AdapterFailure(t *testing.T) {
	m := newCapabilityMocks(t, device{sdk: 30})
	failing := errors.New("sound store unavailable")
	m.sounds.ExpectedCalls = nil
	m.sounds.EXPECT().SoundUIDs(mock.Anything).Return(nil, failing)

	uc := usecase.NewGetActionErrorsUseCase(m.ports())

	_, err := uc.Execute(testContext(), []entity.KeyMapAction{keyEventAction("a1")})

	require.Error(t, err)
	assert.ErrorIs(t, err, failing)
}

func TestGetActionErrorsUseCase_IsActionSupported(t *testing.T) {
	m := newCapabilityMocks(t, device{sdk: 22, features: []entity.SystemFeature{entity.SystemFeatureNfc}})
	uc := usecase.NewGetActionErrorsUseCase(m.ports())
	ctx := testContext()

	assert.Equal(t, entity.SdkVersionTooLow(entity.SdkMarshmallow), uc.IsActionSupported(ctx, entity.ActionIDToggleFlashlight))
	assert.Nil(t, uc.IsActionSupported(ctx, entity.ActionIDEnableNfc))
	assert.Equal(t, entity.SdkVersionTooLow(entity.SdkNougat), uc.IsActionSupported(ctx, entity.ActionIDToggleSplitScreen))
}

func TestGetActionErrorsUseCase_Invalidations(t *testing.T) {
	m := newCapabilityMocks(t, device{sdk: 30})
	permSend, permUpdates := signal()
	m.permissions.EXPECT().Updates(mock.Anything).Return(permUpdates)
	m.inputMethods.EXPECT().InputMethodsUpdates(mock.Anything).Return(nil)
	m.inputMethods.EXPECT().ChosenImeUpdates(mock.Anything).Return(nil)
	m.sounds.EXPECT().Updates(mock.Anything).Return(nil)
	m.shizuku.EXPECT().StartedUpdates(mock.Anything).Return(nil)
	m.shizuku.EXPECT().InstalledUpdates(mock.Anything).Return(nil)

	uc := usecase.NewGetActionErrorsUseCase(m.ports())

	ctx, cancel := context.WithCancel(testContext())
	invalidations := uc.Invalidations(ctx)

	permSend <- struct{}{}
	select {
	case <-invalidations:
	case <-time.After(time.Second):
		t.Fatal("expected an invalidation after a permission change")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-invalidations:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestCachedActionErrors_MemoisesUntilInvalidated(t *testing.T) {
	m := newCapabilityMocks(t, device{sdk: 30, imes: []entity.ImeInfo{keyMapperKeyboard(true)}})
	shizukuSend, shizukuUpdates := signal()
	m.permissions.EXPECT().Updates(mock.Anything).Return(nil)
	m.inputMethods.EXPECT().InputMethodsUpdates(mock.Anything).Return(nil)
	m.inputMethods.EXPECT().ChosenImeUpdates(mock.Anything).Return(nil)
	m.sounds.EXPECT().Updates(mock.Anything).Return(nil)
	m.shizuku.EXPECT().StartedUpdates(mock.Anything).Return(shizukuUpdates)
	m.shizuku.EXPECT().InstalledUpdates(mock.Anything).Return(nil)

	cached := usecase.NewCachedActionErrors(
		usecase.NewGetActionErrorsUseCase(m.ports()),
		cache.NewLRU[string, map[string]*entity.ActionError](8),
	)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	invalidated := make(chan struct{}, 1)
	cached.Start(ctx, func() { invalidated <- struct{}{} })

	actions := []entity.KeyMapAction{keyEventAction("a1")}
	for i := 0; i < 3; i++ {
		result, err := cached.Execute(ctx, actions)
		require.NoError(t, err)
		assert.Nil(t, result["a1"])
	}
	assert.EqualValues(t, 1, m.imeQueries.Load())

	_, err := cached.Execute(ctx, []entity.KeyMapAction{keyEventAction("a2")})
	require.NoError(t, err)
	assert.EqualValues(t, 2, m.imeQueries.Load())

	shizukuSend <- struct{}{}
	select {
	case <-invalidated:
	case <-time.After(time.Second):
		t.Fatal("expected the memo to be cleared")
	}

	_, err = cached.Execute(ctx, actions)
	require.NoError(t, err)
	assert.EqualValues(t, 3, m.imeQueries.Load())
}
