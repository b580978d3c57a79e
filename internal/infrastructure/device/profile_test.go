package device_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := device.DefaultProfile()

	assert.Equal(t, 33, p.Sdk)
	assert.Equal(t, device.AccessibilityEnabled, p.Accessibility)
	assert.Contains(t, p.Granted, entity.PermissionCamera)
	assert.Contains(t, p.Flash, entity.CameraLensBack)
	require.Len(t, p.InputMethods, 2)
	assert.True(t, p.InputMethods[0].IsChosen)
	assert.True(t, p.InputMethods[1].IsCompatible())
}

func TestParseProfile_DefaultsAccessibility(t *testing.T) {
	p, err := device.ParseProfile(strings.NewReader("sdk: 23\n"))

	require.NoError(t, err)
	assert.Equal(t, 23, p.Sdk)
	assert.Equal(t, device.AccessibilityEnabled, p.Accessibility)
}

func TestParseProfile_RejectsUnknownFields(t *testing.T) {
	_, err := device.ParseProfile(strings.NewReader("sdk: 30\nbattery: 80\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "battery")
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "missing sdk",
			yaml:    "name: empty\n",
			wantMsg: "sdk must be positive",
		},
		{
			name:    "unknown permission",
			yaml:    "sdk: 30\ngranted: [TELEPATHY]\n",
			wantMsg: `unknown permission "TELEPATHY"`,
		},
		{
			name:    "unknown lens",
			yaml:    "sdk: 30\nflash: [SIDE]\n",
			wantMsg: `unknown camera lens "SIDE"`,
		},
		{
			name: "chosen ime not enabled",
			yaml: `sdk: 30
input_methods:
  - id: a/.Ime
    package: a
    enabled: false
    chosen: true
`,
			wantMsg: "chosen but not enabled",
		},
		{
			name: "two chosen imes",
			yaml: `sdk: 30
input_methods:
  - {id: a/.Ime, package: a, enabled: true, chosen: true}
  - {id: b/.Ime, package: b, enabled: true, chosen: true}
`,
			wantMsg: "2 input methods are chosen",
		},
		{
			name:    "unknown accessibility state",
			yaml:    "sdk: 30\naccessibility: sleeping\n",
			wantMsg: `unknown accessibility state "sleeping"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := device.ParseProfile(strings.NewReader(tt.yaml))

			require.ErrorIs(t, err, device.ErrInvalidProfile)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	t.Run("empty path uses the built-in profile", func(t *testing.T) {
		p, err := device.LoadProfile("")

		require.NoError(t, err)
		assert.Equal(t, device.DefaultProfile(), p)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "old.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: old phone\nsdk: 22\naccessibility: crashed\n"), 0o600))

		p, err := device.LoadProfile(path)

		require.NoError(t, err)
		assert.Equal(t, "old phone", p.Name)
		assert.Equal(t, device.AccessibilityCrashed, p.Accessibility)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := device.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("error names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sdk: 0\n"), 0o600))

		_, err := device.LoadProfile(path)

		require.ErrorIs(t, err, device.ErrInvalidProfile)
		assert.Contains(t, err.Error(), path)
	})
}
