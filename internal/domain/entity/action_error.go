package entity

import "fmt"

// ActionErrorKind classifies why an action cannot be performed.
type ActionErrorKind string

const (
	ErrKindPermissionDenied             ActionErrorKind = "permission_denied"
	ErrKindAppNotFound                  ActionErrorKind = "app_not_found"
	ErrKindAppDisabled                  ActionErrorKind = "app_disabled"
	ErrKindNoCompatibleImeEnabled       ActionErrorKind = "no_compatible_ime_enabled"
	ErrKindNoCompatibleImeChosen        ActionErrorKind = "no_compatible_ime_chosen"
	ErrKindShizukuNotStarted            ActionErrorKind = "shizuku_not_started"
	ErrKindSdkVersionTooLow             ActionErrorKind = "sdk_version_too_low"
	ErrKindSdkVersionTooHigh            ActionErrorKind = "sdk_version_too_high"
	ErrKindSystemFeatureNotSupported    ActionErrorKind = "system_feature_not_supported"
	ErrKindFrontFlashNotFound           ActionErrorKind = "front_flash_not_found"
	ErrKindBackFlashNotFound            ActionErrorKind = "back_flash_not_found"
	ErrKindSoundFileNotFound            ActionErrorKind = "sound_file_not_found"
	ErrKindNoVoiceAssistant             ActionErrorKind = "no_voice_assistant"
	ErrKindInputMethodNotFound          ActionErrorKind = "input_method_not_found"
	ErrKindAccessibilityServiceCrashed  ActionErrorKind = "accessibility_service_crashed"
	ErrKindAccessibilityServiceDisabled ActionErrorKind = "accessibility_service_disabled"
)

// ActionError is a blocking condition reported for an action or a recording attempt.
// Only the fields relevant to Kind are set.
type ActionError struct {
	Kind       ActionErrorKind
	Permission Permission
	Package    string
	Sdk        int
	Feature    SystemFeature
	ID         string
}

func (e *ActionError) Error() string {
	switch e.Kind {
	case ErrKindPermissionDenied:
		return fmt.Sprintf("permission %s denied", e.Permission)
	case ErrKindAppNotFound:
		return fmt.Sprintf("app %s not found", e.Package)
	case ErrKindAppDisabled:
		return fmt.Sprintf("app %s is disabled", e.Package)
	case ErrKindNoCompatibleImeEnabled:
		return "no compatible keyboard is enabled"
	case ErrKindNoCompatibleImeChosen:
		return "no compatible keyboard is chosen"
	case ErrKindShizukuNotStarted:
		return "shizuku is not started"
	case ErrKindSdkVersionTooLow:
		return fmt.Sprintf("requires android sdk %d or newer", e.Sdk)
	case ErrKindSdkVersionTooHigh:
		return fmt.Sprintf("requires android sdk %d or older", e.Sdk)
	case ErrKindSystemFeatureNotSupported:
		return fmt.Sprintf("device does not support %s", e.Feature)
	case ErrKindFrontFlashNotFound:
		return "front flash not found"
	case ErrKindBackFlashNotFound:
		return "back flash not found"
	case ErrKindSoundFileNotFound:
		return fmt.Sprintf("sound file %s not found", e.ID)
	case ErrKindNoVoiceAssistant:
		return "no voice assistant installed"
	case ErrKindInputMethodNotFound:
		return fmt.Sprintf("input method %s not found", e.ID)
	case ErrKindAccessibilityServiceCrashed:
		return "accessibility service crashed"
	case ErrKindAccessibilityServiceDisabled:
		return "accessibility service is disabled"
	default:
		return string(e.Kind)
	}
}

// Is matches another *ActionError with the same kind and parameters.
// A target with only Kind set matches any error of that kind.
func (e *ActionError) Is(target error) bool {
	t, ok := target.(*ActionError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if *t == (ActionError{Kind: t.Kind}) {
		return true
	}
	return *t == *e
}

// PermissionDenied returns the error for a missing permission.
func PermissionDenied(p Permission) *ActionError {
	return &ActionError{Kind: ErrKindPermissionDenied, Permission: p}
}

// AppNotFound returns the error for an app that is not installed.
func AppNotFound(pkg string) *ActionError {
	return &ActionError{Kind: ErrKindAppNotFound, Package: pkg}
}

// AppDisabled returns the error for an installed but disabled app.
func AppDisabled(pkg string) *ActionError {
	return &ActionError{Kind: ErrKindAppDisabled, Package: pkg}
}

// NoCompatibleImeEnabled returns the error for no enabled Key Mapper keyboard.
func NoCompatibleImeEnabled() *ActionError {
	return &ActionError{Kind: ErrKindNoCompatibleImeEnabled}
}

// NoCompatibleImeChosen returns the error for a non Key Mapper keyboard being chosen.
func NoCompatibleImeChosen() *ActionError {
	return &ActionError{Kind: ErrKindNoCompatibleImeChosen}
}

// ShizukuNotStarted returns the error for an installed but stopped Shizuku.
func ShizukuNotStarted() *ActionError {
	return &ActionError{Kind: ErrKindShizukuNotStarted}
}

// SdkVersionTooLow returns the error for an action that needs at least sdk.
func SdkVersionTooLow(sdk int) *ActionError {
	return &ActionError{Kind: ErrKindSdkVersionTooLow, Sdk: sdk}
}

// SdkVersionTooHigh returns the error for an action that only works up to sdk.
func SdkVersionTooHigh(sdk int) *ActionError {
	return &ActionError{Kind: ErrKindSdkVersionTooHigh, Sdk: sdk}
}

// SystemFeatureNotSupported returns the error for missing device hardware or software.
func SystemFeatureNotSupported(f SystemFeature) *ActionError {
	return &ActionError{Kind: ErrKindSystemFeatureNotSupported, Feature: f}
}

// FlashNotFound returns the lens-specific missing flash error.
func FlashNotFound(lens CameraLens) *ActionError {
	if lens == CameraLensFront {
		return &ActionError{Kind: ErrKindFrontFlashNotFound}
	}
	return &ActionError{Kind: ErrKindBackFlashNotFound}
}

// SoundFileNotFound returns the error for a sound that no longer exists.
func SoundFileNotFound(uid string) *ActionError {
	return &ActionError{Kind: ErrKindSoundFileNotFound, ID: uid}
}

// NoVoiceAssistant returns the error for a device without a voice assist handler.
func NoVoiceAssistant() *ActionError {
	return &ActionError{Kind: ErrKindNoVoiceAssistant}
}

// InputMethodNotFound returns the error for an unknown input method id.
func InputMethodNotFound(imeID string) *ActionError {
	return &ActionError{Kind: ErrKindInputMethodNotFound, ID: imeID}
}

// AccessibilityServiceCrashed is reported when recording cannot reach the crashed service.
func AccessibilityServiceCrashed() *ActionError {
	return &ActionError{Kind: ErrKindAccessibilityServiceCrashed}
}

// AccessibilityServiceDisabled is reported when recording needs the service to be enabled.
func AccessibilityServiceDisabled() *ActionError {
	return &ActionError{Kind: ErrKindAccessibilityServiceDisabled}
}
