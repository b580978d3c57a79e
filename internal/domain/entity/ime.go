package entity

// ImeInfo describes an installed input method.
type ImeInfo struct {
	ID          string `yaml:"id"`
	PackageName string `yaml:"package"`
	Label       string `yaml:"label"`
	IsEnabled   bool   `yaml:"enabled"`
	IsChosen    bool   `yaml:"chosen"`
}

// KeyMapperImePackages are the packages of keyboards that can inject key events for Key Mapper.
var KeyMapperImePackages = []string{
	"io.github.sds100.keymapper.inputmethod.latin",
	"io.github.sds100.keymapper.inputmethod",
	"io.github.sds100.keymapper",
	"io.github.sds100.keymapper.debug",
	"io.github.sds100.keymapper.ci",
}

// IsCompatibleImePackage reports whether packageName belongs to a Key Mapper keyboard.
func IsCompatibleImePackage(packageName string) bool {
	for _, pkg := range KeyMapperImePackages {
		if pkg == packageName {
			return true
		}
	}
	return false
}

// IsCompatible reports whether the input method can be used to inject key events.
func (i ImeInfo) IsCompatible() bool {
	return IsCompatibleImePackage(i.PackageName)
}
