package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/cache/generic"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/service"
	"github.com/keymapper-dev/keymapper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// CapabilityPorts are the platform adapters a capability snapshot is read from.
type CapabilityPorts struct {
	Permissions  port.PermissionAdapter
	InputMethods port.InputMethodAdapter
	Packages     port.PackageManagerAdapter
	Camera       port.CameraAdapter
	Sounds       port.SoundAdapter
	Shizuku      port.ShizukuAdapter
	System       port.SystemAdapter
}

// GetActionErrorsUseCase reports why each action of a key map cannot run on this device.
type GetActionErrorsUseCase struct {
	ports CapabilityPorts
}

// NewGetActionErrorsUseCase creates a new GetActionErrorsUseCase.
func NewGetActionErrorsUseCase(ports CapabilityPorts) *GetActionErrorsUseCase {
	return &GetActionErrorsUseCase{ports: ports}
}

// Execute evaluates actions against a freshly captured snapshot.
// The result has an entry for every action uid; nil means the action can run.
func (uc *GetActionErrorsUseCase) Execute(ctx context.Context, actions []entity.KeyMapAction) (map[string]*entity.ActionError, error) {
	log := logging.FromContext(ctx)

	data := make([]entity.Action, len(actions))
	for i, a := range actions {
		data[i] = a.Data
	}

	snap, err := uc.CaptureSnapshot(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("capture capability snapshot: %w", err)
	}

	errs := service.EvaluateActionErrors(data, snap)

	result := make(map[string]*entity.ActionError, len(actions))
	for i, a := range actions {
		result[a.UID] = errs[i]

		event := log.Debug().Str("action_uid", a.UID)
		if a.Data != nil {
			event = event.Str("action_id", string(a.Data.ID()))
		}
		if errs[i] != nil {
			event = event.Str("error_kind", string(errs[i].Kind))
		}
		event.Msg("evaluated action")
	}

	return result, nil
}

// IsActionSupported reports whether the device can run actions of kind id at all.
func (uc *GetActionErrorsUseCase) IsActionSupported(ctx context.Context, id entity.ActionID) *entity.ActionError {
	return service.IsActionSupported(id, uc.supportSnapshot(ctx))
}

// supportSnapshot holds only the facts IsActionSupported reads.
func (uc *GetActionErrorsUseCase) supportSnapshot(ctx context.Context) *entity.CapabilitySnapshot {
	return entity.NewCapabilitySnapshot(entity.SnapshotFacts{
		SdkInt:         uc.ports.System.SdkInt(ctx),
		SystemFeatures: uc.systemFeatures(ctx),
	})
}

// CaptureSnapshot reads every fact the evaluation of actions depends on.
// Independent adapter queries run concurrently.
func (uc *GetActionErrorsUseCase) CaptureSnapshot(ctx context.Context, actions []entity.Action) (*entity.CapabilitySnapshot, error) {
	facts := entity.SnapshotFacts{
		Apps: make(map[string]entity.AppInfo),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		imes, err := uc.ports.InputMethods.InputMethods(gctx)
		if err != nil {
			return fmt.Errorf("list input methods: %w", err)
		}
		facts.InputMethods = imes
		return nil
	})

	g.Go(func() error {
		sounds, err := uc.ports.Sounds.SoundUIDs(gctx)
		if err != nil {
			return fmt.Errorf("list sounds: %w", err)
		}
		facts.SoundUIDs = sounds
		return nil
	})

	for _, pkg := range referencedPackages(actions) {
		g.Go(func() error {
			info, err := uc.ports.Packages.AppInfo(gctx, pkg)
			if err != nil {
				return fmt.Errorf("look up app %s: %w", pkg, err)
			}
			mu.Lock()
			facts.Apps[pkg] = info
			mu.Unlock()
			return nil
		})
	}

	facts.SdkInt = uc.ports.System.SdkInt(ctx)
	facts.SystemFeatures = uc.systemFeatures(ctx)
	for _, p := range entity.AllPermissions {
		if uc.ports.Permissions.IsGranted(ctx, p) {
			facts.GrantedPermissions = append(facts.GrantedPermissions, p)
		}
	}
	for _, lens := range []entity.CameraLens{entity.CameraLensFront, entity.CameraLensBack} {
		if uc.ports.Camera.HasFlash(ctx, lens) {
			facts.FlashLenses = append(facts.FlashLenses, lens)
		}
	}
	facts.ShizukuInstalled = uc.ports.Shizuku.IsInstalled(ctx)
	facts.ShizukuStarted = uc.ports.Shizuku.IsStarted(ctx)
	facts.VoiceAssistantInstalled = uc.ports.Packages.IsVoiceAssistantInstalled(ctx)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entity.NewCapabilitySnapshot(facts), nil
}

// Invalidations signals whenever a fact the evaluation reads may have changed.
// The channel is closed once ctx is done.
func (uc *GetActionErrorsUseCase) Invalidations(ctx context.Context) <-chan struct{} {
	return mergeSignals(ctx,
		uc.ports.Permissions.Updates(ctx),
		uc.ports.InputMethods.InputMethodsUpdates(ctx),
		uc.ports.InputMethods.ChosenImeUpdates(ctx),
		uc.ports.Sounds.Updates(ctx),
		uc.ports.Shizuku.StartedUpdates(ctx),
		uc.ports.Shizuku.InstalledUpdates(ctx),
	)
}

func (uc *GetActionErrorsUseCase) systemFeatures(ctx context.Context) []entity.SystemFeature {
	var features []entity.SystemFeature
	for _, f := range entity.AllSystemFeatures {
		if uc.ports.System.HasSystemFeature(ctx, f) {
			features = append(features, f)
		}
	}
	return features
}

// referencedPackages returns the distinct app packages named by actions.
func referencedPackages(actions []entity.Action) []string {
	seen := make(map[string]bool)
	var pkgs []string
	add := func(pkg string) {
		if pkg == "" || seen[pkg] {
			return
		}
		seen[pkg] = true
		pkgs = append(pkgs, pkg)
	}

	for _, a := range actions {
		switch a := a.(type) {
		case entity.AppAction:
			add(a.PackageName)
		case entity.AppShortcutAction:
			add(a.PackageName)
		}
	}
	return pkgs
}

// CachedActionErrors memoises GetActionErrorsUseCase results until the next invalidation.
type CachedActionErrors struct {
	uc   *GetActionErrorsUseCase
	memo *generic.Memo[string, map[string]*entity.ActionError]
}

// NewCachedActionErrors wraps uc, keeping results in store. Call Start to hook
// up invalidations.
func NewCachedActionErrors(uc *GetActionErrorsUseCase, store port.Cache[string, map[string]*entity.ActionError]) *CachedActionErrors {
	return &CachedActionErrors{
		uc:   uc,
		memo: generic.NewMemo[string, map[string]*entity.ActionError](nil, store),
	}
}

// Start clears the memo whenever the platform state changes, until ctx is done.
// onInvalidate, if set, runs after each clear so callers can re-query.
func (c *CachedActionErrors) Start(ctx context.Context, onInvalidate func()) {
	c.memo.InvalidateOn(ctx, c.uc.Invalidations(ctx), onInvalidate)
}

// Execute is GetActionErrorsUseCase.Execute with memoisation.
// Callers must not modify the returned map.
func (c *CachedActionErrors) Execute(ctx context.Context, actions []entity.KeyMapAction) (map[string]*entity.ActionError, error) {
	compute := generic.ComputeFunc[string, map[string]*entity.ActionError](
		func(ctx context.Context, _ string) (map[string]*entity.ActionError, error) {
			return c.uc.Execute(ctx, actions)
		},
	)
	return c.memo.GetWith(ctx, fingerprint(actions), compute)
}

// Invalidate drops every memoised result.
func (c *CachedActionErrors) Invalidate() {
	c.memo.Invalidate()
}

// fingerprint identifies an action list by content, following pointer payloads.
func fingerprint(actions []entity.KeyMapAction) string {
	var b strings.Builder
	for _, a := range actions {
		payload, _ := json.Marshal(a.Data)
		fmt.Fprintf(&b, "%s=%T%s;", a.UID, a.Data, payload)
	}
	return b.String()
}
