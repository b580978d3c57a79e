package usecase_test

import (
	"context"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/keymapper-dev/keymapper/internal/application/port/mocks"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/logging"
	"github.com/stretchr/testify/mock"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// device describes the platform state the capability mocks report.
type device struct {
	sdk              int
	granted          []entity.Permission
	imes             []entity.ImeInfo
	apps             map[string]entity.AppInfo
	flash            []entity.CameraLens
	sounds           []string
	features         []entity.SystemFeature
	shizukuInstalled bool
	shizukuStarted   bool
	voiceAssistant   bool
}

type capabilityMocks struct {
	permissions  *mocks.MockPermissionAdapter
	inputMethods *mocks.MockInputMethodAdapter
	packages     *mocks.MockPackageManagerAdapter
	camera       *mocks.MockCameraAdapter
	sounds       *mocks.MockSoundAdapter
	shizuku      *mocks.MockShizukuAdapter
	system       *mocks.MockSystemAdapter

	imeQueries atomic.Int32
}

func (m *capabilityMocks) ports() usecase.CapabilityPorts {
	return usecase.CapabilityPorts{
		Permissions:  m.permissions,
		InputMethods: m.inputMethods,
		Packages:     m.packages,
		Camera:       m.camera,
		Sounds:       m.sounds,
		Shizuku:      m.shizuku,
		System:       m.system,
	}
}

// newCapabilityMocks returns mocks answering every query from d.
// All expectations are optional so tests only assert what they care about.
func newCapabilityMocks(t *testing.T, d device) *capabilityMocks {
	m := &capabilityMocks{
		permissions:  mocks.NewMockPermissionAdapter(t),
		inputMethods: mocks.NewMockInputMethodAdapter(t),
		packages:     mocks.NewMockPackageManagerAdapter(t),
		camera:       mocks.NewMockCameraAdapter(t),
		sounds:       mocks.NewMockSoundAdapter(t),
		shizuku:      mocks.NewMockShizukuAdapter(t),
		system:       mocks.NewMockSystemAdapter(t),
	}

	m.permissions.EXPECT().IsGranted(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p entity.Permission) bool {
			return slices.Contains(d.granted, p)
		}).Maybe()
	m.inputMethods.EXPECT().InputMethods(mock.Anything).
		RunAndReturn(func(context.Context) ([]entity.ImeInfo, error) {
			m.imeQueries.Add(1)
			return d.imes, nil
		}).Maybe()
	m.packages.EXPECT().AppInfo(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, pkg string) (entity.AppInfo, error) {
			return d.apps[pkg], nil
		}).Maybe()
	m.packages.EXPECT().IsVoiceAssistantInstalled(mock.Anything).Return(d.voiceAssistant).Maybe()
	m.camera.EXPECT().HasFlash(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, lens entity.CameraLens) bool {
			return slices.Contains(d.flash, lens)
		}).Maybe()
	m.sounds.EXPECT().SoundUIDs(mock.Anything).Return(d.sounds, nil).Maybe()
	m.shizuku.EXPECT().IsInstalled(mock.Anything).Return(d.shizukuInstalled).Maybe()
	m.shizuku.EXPECT().IsStarted(mock.Anything).Return(d.shizukuStarted).Maybe()
	m.system.EXPECT().SdkInt(mock.Anything).Return(d.sdk).Maybe()
	m.system.EXPECT().HasSystemFeature(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f entity.SystemFeature) bool {
			return slices.Contains(d.features, f)
		}).Maybe()

	return m
}

func keyMapperKeyboard(chosen bool) entity.ImeInfo {
	return entity.ImeInfo{
		ID:          "io.github.sds100.keymapper.inputmethod.latin/.ImeService",
		PackageName: "io.github.sds100.keymapper.inputmethod.latin",
		Label:       "Key Mapper GUI Keyboard",
		IsEnabled:   true,
		IsChosen:    chosen,
	}
}

func gboard(chosen bool) entity.ImeInfo {
	return entity.ImeInfo{
		ID:          "com.google.android.inputmethod.latin/.LatinIME",
		PackageName: "com.google.android.inputmethod.latin",
		Label:       "Gboard",
		IsEnabled:   true,
		IsChosen:    chosen,
	}
}

// signal returns a receive-only channel that tests can send on.
func signal() (chan struct{}, <-chan struct{}) {
	ch := make(chan struct{}, 1)
	return ch, ch
}
