package entity

// AppInfo is what the package manager knows about one app.
type AppInfo struct {
	Installed bool `yaml:"installed"`
	Enabled   bool `yaml:"enabled"`
}

// CapabilitySnapshot is the point-in-time platform state one evaluation reads.
// Build it with NewCapabilitySnapshot; the accessors never mutate it.
type CapabilitySnapshot struct {
	SdkInt                  int
	ShizukuInstalled        bool
	ShizukuStarted          bool
	VoiceAssistantInstalled bool

	granted      map[Permission]struct{}
	inputMethods []ImeInfo
	apps         map[string]AppInfo
	flashLenses  map[CameraLens]struct{}
	sounds       map[string]struct{}
	features     map[SystemFeature]struct{}
}

// SnapshotFacts are the raw facts a snapshot is built from.
type SnapshotFacts struct {
	SdkInt                  int
	GrantedPermissions      []Permission
	InputMethods            []ImeInfo
	Apps                    map[string]AppInfo
	FlashLenses             []CameraLens
	ShizukuInstalled        bool
	ShizukuStarted          bool
	SoundUIDs               []string
	VoiceAssistantInstalled bool
	SystemFeatures          []SystemFeature
}

// NewCapabilitySnapshot copies facts into an immutable snapshot.
func NewCapabilitySnapshot(facts SnapshotFacts) *CapabilitySnapshot {
	s := &CapabilitySnapshot{
		SdkInt:                  facts.SdkInt,
		ShizukuInstalled:        facts.ShizukuInstalled,
		ShizukuStarted:          facts.ShizukuStarted,
		VoiceAssistantInstalled: facts.VoiceAssistantInstalled,
		granted:                 make(map[Permission]struct{}, len(facts.GrantedPermissions)),
		inputMethods:            append([]ImeInfo(nil), facts.InputMethods...),
		apps:                    make(map[string]AppInfo, len(facts.Apps)),
		flashLenses:             make(map[CameraLens]struct{}, len(facts.FlashLenses)),
		sounds:                  make(map[string]struct{}, len(facts.SoundUIDs)),
		features:                make(map[SystemFeature]struct{}, len(facts.SystemFeatures)),
	}
	for _, p := range facts.GrantedPermissions {
		s.granted[p] = struct{}{}
	}
	for pkg, info := range facts.Apps {
		s.apps[pkg] = info
	}
	for _, lens := range facts.FlashLenses {
		s.flashLenses[lens] = struct{}{}
	}
	for _, uid := range facts.SoundUIDs {
		s.sounds[uid] = struct{}{}
	}
	for _, f := range facts.SystemFeatures {
		s.features[f] = struct{}{}
	}
	return s
}

func (s *CapabilitySnapshot) IsGranted(p Permission) bool {
	_, ok := s.granted[p]
	return ok
}

func (s *CapabilitySnapshot) HasFlash(lens CameraLens) bool {
	_, ok := s.flashLenses[lens]
	return ok
}

func (s *CapabilitySnapshot) HasSound(uid string) bool {
	_, ok := s.sounds[uid]
	return ok
}

func (s *CapabilitySnapshot) HasSystemFeature(f SystemFeature) bool {
	_, ok := s.features[f]
	return ok
}

// App returns the package info and whether the package manager knows the package at all.
func (s *CapabilitySnapshot) App(pkg string) (AppInfo, bool) {
	info, ok := s.apps[pkg]
	return info, ok
}

// InputMethods returns a copy of the installed input methods.
func (s *CapabilitySnapshot) InputMethods() []ImeInfo {
	return append([]ImeInfo(nil), s.inputMethods...)
}

// InputMethod looks up an input method by id.
func (s *CapabilitySnapshot) InputMethod(id string) (ImeInfo, bool) {
	for _, ime := range s.inputMethods {
		if ime.ID == id {
			return ime, true
		}
	}
	return ImeInfo{}, false
}

// ChosenIme returns the input method currently in use.
func (s *CapabilitySnapshot) ChosenIme() (ImeInfo, bool) {
	for _, ime := range s.inputMethods {
		if ime.IsChosen {
			return ime, true
		}
	}
	return ImeInfo{}, false
}

// IsCompatibleImeEnabled reports whether any Key Mapper keyboard is enabled.
func (s *CapabilitySnapshot) IsCompatibleImeEnabled() bool {
	for _, ime := range s.inputMethods {
		if ime.IsEnabled && ime.IsCompatible() {
			return true
		}
	}
	return false
}

// IsCompatibleImeChosen reports whether the chosen input method is a Key Mapper keyboard.
func (s *CapabilitySnapshot) IsCompatibleImeChosen() bool {
	ime, ok := s.ChosenIme()
	return ok && ime.IsCompatible()
}

// IsCompatibleIme reports whether the input method with id exists and is a Key Mapper keyboard.
func (s *CapabilitySnapshot) IsCompatibleIme(id string) bool {
	ime, ok := s.InputMethod(id)
	return ok && ime.IsCompatible()
}
