// Package build describes the binary being run.
package build

import "fmt"

const repoURL = "https://github.com/keymapper-dev/keymapper"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsDev reports whether the binary was built without release ldflags.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

// String is the one-line version shown by --version.
func (i Info) String() string {
	if i.IsDev() {
		return fmt.Sprintf("dev (%s)", i.GoVersion)
	}
	return fmt.Sprintf("%s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// Contributors returns the names shown by the about command.
func Contributors() []string {
	return []string{"keymapper contributors"}
}

// RepoURL returns the project's home page.
func RepoURL() string {
	return repoURL
}
