// Package service holds the pure domain computations over key maps.
package service

import (
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// IsActionSupported checks the SDK range and system features an action kind needs.
// Unknown kinds are reported as supported; the catalog is closed so this only
// happens for documents written by a newer version.
func IsActionSupported(id entity.ActionID, snap *entity.CapabilitySnapshot) *entity.ActionError {
	info, ok := entity.LookupActionInfo(id)
	if !ok {
		return nil
	}
	if info.MinSdk != 0 && snap.SdkInt < info.MinSdk {
		return entity.SdkVersionTooLow(info.MinSdk)
	}
	if info.MaxSdk != 0 && snap.SdkInt > info.MaxSdk {
		return entity.SdkVersionTooHigh(info.MaxSdk)
	}
	for _, f := range info.SystemFeatures {
		if !snap.HasSystemFeature(f) {
			return entity.SystemFeatureNotSupported(f)
		}
	}
	return nil
}

// EvaluateActionErrors returns the blocking error of every action, aligned by index.
// A nil entry means the action can be performed.
//
// The list is walked as if it were executed in order: a keyboard switch changes
// which input method later actions see as chosen.
func EvaluateActionErrors(actions []entity.Action, snap *entity.CapabilitySnapshot) []*entity.ActionError {
	errs := make([]*entity.ActionError, len(actions))
	var simulatedIme *string

	for i, action := range actions {
		if sw, ok := action.(entity.SwitchKeyboardAction); ok {
			imeID := sw.ImeID
			simulatedIme = &imeID
		}
		errs[i] = actionError(action, snap, simulatedIme)
	}
	return errs
}

func actionError(action entity.Action, snap *entity.CapabilitySnapshot, simulatedIme *string) *entity.ActionError {
	id := action.ID()
	info, _ := entity.LookupActionInfo(id)

	var err *entity.ActionError

	switch {
	case info.CanUseShizuku && snap.ShizukuInstalled:
		if !(info.CanUseIme && snap.IsCompatibleImeChosen()) {
			if !snap.ShizukuStarted {
				err = entity.ShizukuNotStarted()
			} else if !snap.IsGranted(entity.PermissionShizuku) {
				err = entity.PermissionDenied(entity.PermissionShizuku)
			}
		}
	case info.CanUseIme:
		if !snap.IsCompatibleImeEnabled() {
			err = entity.NoCompatibleImeEnabled()
		}
		var chosen bool
		if simulatedIme != nil {
			chosen = snap.IsCompatibleIme(*simulatedIme)
		} else {
			chosen = snap.IsCompatibleImeChosen()
		}
		if !chosen {
			err = entity.NoCompatibleImeChosen()
		}
	}

	if unsupported := IsActionSupported(id, snap); unsupported != nil {
		err = unsupported
	}

	for _, p := range info.RequiredPermissions(snap.SdkInt) {
		if !snap.IsGranted(p) {
			err = entity.PermissionDenied(p)
		}
	}

	if specific, ok := kindSpecificError(action, snap); ok {
		err = specific
	}
	return err
}

// kindSpecificError runs the check owned by the action kind. The bool is false
// for kinds without one; a true result with a nil error clears earlier errors.
func kindSpecificError(action entity.Action, snap *entity.CapabilitySnapshot) (*entity.ActionError, bool) {
	switch a := action.(type) {
	case entity.AppAction:
		return appError(a.PackageName, snap), true
	case entity.AppShortcutAction:
		if a.PackageName == "" {
			return nil, false
		}
		return appError(a.PackageName, snap), true
	case entity.InputKeyEventAction:
		if a.UseShell && !snap.IsGranted(entity.PermissionRoot) {
			return entity.PermissionDenied(entity.PermissionRoot), true
		}
	case entity.TapScreenAction:
		if snap.SdkInt < entity.SdkNougat {
			return entity.SdkVersionTooLow(entity.SdkNougat), true
		}
	case entity.PhoneCallAction:
		if !snap.IsGranted(entity.PermissionCallPhone) {
			return entity.PermissionDenied(entity.PermissionCallPhone), true
		}
	case entity.SoundAction:
		if !snap.HasSound(a.SoundUID) {
			return entity.SoundFileNotFound(a.SoundUID), true
		}
	case entity.FlashlightAction:
		if !snap.HasFlash(a.Lens) {
			return entity.FlashNotFound(a.Lens), true
		}
	case entity.SwitchKeyboardAction:
		if _, ok := snap.InputMethod(a.ImeID); !ok {
			return entity.InputMethodNotFound(a.ImeID), true
		}
	case entity.SystemAction:
		if a.Kind == entity.ActionIDOpenVoiceAssistant && !snap.VoiceAssistantInstalled {
			return entity.NoVoiceAssistant(), true
		}
	}
	return nil, false
}

func appError(pkg string, snap *entity.CapabilitySnapshot) *entity.ActionError {
	info, known := snap.App(pkg)
	if known && info.Installed && !info.Enabled {
		return entity.AppDisabled(pkg)
	}
	if !known || !info.Installed {
		return entity.AppNotFound(pkg)
	}
	return nil
}
