package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

func TestActionsRenderer_Render(t *testing.T) {
	r := styles.NewActionsRenderer(styles.NewTheme())
	listings := []usecase.ActionListing{
		{ID: entity.ActionIDApp, Category: entity.CategoryApps},
		{
			ID:          entity.ActionIDToggleFlashlight,
			Category:    entity.CategoryCameraSound,
			Permissions: []entity.Permission{entity.PermissionCamera},
		},
		{
			ID:          entity.ActionIDKeyEvent,
			Category:    entity.CategoryInput,
			CanUseIme:   true,
			Unsupported: entity.NoCompatibleImeEnabled(),
		},
	}

	out := r.Render(listings, true)

	assert.Contains(t, out, string(entity.CategoryApps))
	assert.Contains(t, out, string(entity.CategoryInput))
	assert.Contains(t, out, "needs "+string(entity.PermissionCamera))
	assert.Contains(t, out, "ime")
	assert.Contains(t, out, "no compatible keyboard is enabled")
}

func TestActionsRenderer_RenderUngrouped(t *testing.T) {
	r := styles.NewActionsRenderer(styles.NewTheme())

	out := r.Render([]usecase.ActionListing{
		{ID: entity.ActionIDGoHome, Category: entity.CategoryNavigation, MatchedIndexes: []int{0, 3}},
	}, false)

	assert.Contains(t, out, "GO_HOME")
	assert.NotContains(t, out, string(entity.CategoryNavigation))
}

func TestActionsRenderer_RenderEmpty(t *testing.T) {
	r := styles.NewActionsRenderer(styles.NewTheme())

	assert.Contains(t, r.Render(nil, false), "No matching actions.")
}
