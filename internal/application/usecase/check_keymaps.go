package usecase

import (
	"context"
	"fmt"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/repository"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// ActionErrorsExecutor evaluates the blocking error of every action in a list.
// Both GetActionErrorsUseCase and CachedActionErrors satisfy it.
type ActionErrorsExecutor interface {
	Execute(ctx context.Context, actions []entity.KeyMapAction) (map[string]*entity.ActionError, error)
}

// KeyMapReport is the outcome of checking one key map against the device.
type KeyMapReport struct {
	KeyMap entity.KeyMap
	// ActionErrors maps action uid to its blocking error, nil when the action can run.
	ActionErrors  map[string]*entity.ActionError
	TriggerErrors []entity.KeyMapTriggerError
}

// OK reports whether nothing blocks the key map.
func (r KeyMapReport) OK() bool {
	if len(r.TriggerErrors) > 0 {
		return false
	}
	for _, err := range r.ActionErrors {
		if err != nil {
			return false
		}
	}
	return true
}

// CheckKeyMapsUseCase reports the action and trigger errors of stored key maps.
type CheckKeyMapsUseCase struct {
	repo    repository.KeyMapRepository
	errors  ActionErrorsExecutor
	display *DisplayKeyMapUseCase
}

// NewCheckKeyMapsUseCase creates a new CheckKeyMapsUseCase.
func NewCheckKeyMapsUseCase(
	repo repository.KeyMapRepository,
	errors ActionErrorsExecutor,
	display *DisplayKeyMapUseCase,
) *CheckKeyMapsUseCase {
	return &CheckKeyMapsUseCase{repo: repo, errors: errors, display: display}
}

// Execute checks the key maps with the given uids, or every stored key map when
// none are given. Reports follow the order of uids, or uid order otherwise.
func (uc *CheckKeyMapsUseCase) Execute(ctx context.Context, uids ...string) ([]KeyMapReport, error) {
	keyMaps, err := uc.load(ctx, uids)
	if err != nil {
		return nil, err
	}

	reports := make([]KeyMapReport, 0, len(keyMaps))
	for _, km := range keyMaps {
		report, err := uc.check(ctx, *km)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	logging.FromContext(ctx).Debug().Int("key_maps", len(reports)).Msg("key maps checked")
	return reports, nil
}

func (uc *CheckKeyMapsUseCase) load(ctx context.Context, uids []string) ([]*entity.KeyMap, error) {
	if len(uids) == 0 {
		keyMaps, err := uc.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list key maps: %w", err)
		}
		return keyMaps, nil
	}

	keyMaps := make([]*entity.KeyMap, 0, len(uids))
	for _, uid := range uids {
		km, err := uc.repo.Get(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("get key map %s: %w", uid, err)
		}
		keyMaps = append(keyMaps, km)
	}
	return keyMaps, nil
}

func (uc *CheckKeyMapsUseCase) check(ctx context.Context, km entity.KeyMap) (KeyMapReport, error) {
	actionErrs, err := uc.errors.Execute(ctx, km.Actions)
	if err != nil {
		return KeyMapReport{}, fmt.Errorf("action errors of %s: %w", km.UID, err)
	}
	triggerErrs, err := uc.display.GetTriggerErrors(ctx, km)
	if err != nil {
		return KeyMapReport{}, fmt.Errorf("trigger errors of %s: %w", km.UID, err)
	}
	return KeyMapReport{KeyMap: km, ActionErrors: actionErrs, TriggerErrors: triggerErrs}, nil
}
