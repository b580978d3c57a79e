package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/domain/build"
)

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{
		Version:   "v1.2.0",
		Commit:    "abc1234",
		GoVersion: "go1.25.0",
	})

	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, build.RepoURL())
	assert.NotContains(t, out, "Built", "empty build date is skipped")
	assert.NotContains(t, out, "dev build")
}

func TestAboutRenderer_DevBuild(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{Version: "dev"})

	assert.Contains(t, out, "dev build")
}
