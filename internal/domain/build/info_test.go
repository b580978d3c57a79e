package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keymapper-dev/keymapper/internal/domain/build"
)

func TestInfo_String(t *testing.T) {
	dev := build.Info{Version: "dev", Commit: "unknown", GoVersion: "go1.25.0"}
	release := build.Info{Version: "v1.2.0", Commit: "abc1234", BuildDate: "2026-10-01", GoVersion: "go1.25.0"}

	assert.True(t, dev.IsDev())
	assert.Equal(t, "dev (go1.25.0)", dev.String())
	assert.False(t, release.IsDev())
	assert.Equal(t, "v1.2.0 (commit abc1234, built 2026-10-01, go1.25.0)", release.String())
}
