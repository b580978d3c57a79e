package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/service"
	"github.com/keymapper-dev/keymapper/internal/logging"
	"github.com/sahilm/fuzzy"
)

// ListActionsInput filters the action catalog.
type ListActionsInput struct {
	// Query fuzzy-matches action ids; results are ordered by match score.
	Query string
	// Category keeps one category. Empty keeps all.
	Category entity.ActionCategory
	// SupportedOnly drops actions the device cannot perform at all.
	SupportedOnly bool
}

// ActionListing is one catalog entry as seen on the current device.
type ActionListing struct {
	ID            entity.ActionID
	Category      entity.ActionCategory
	Permissions   []entity.Permission
	CanUseIme     bool
	CanUseShizuku bool
	// Unsupported is nil when the device can perform the action.
	Unsupported *entity.ActionError
	// MatchedIndexes are the byte offsets of ID matched by the query.
	MatchedIndexes []int
}

// ListActionsUseCase lists the action catalog with device support.
type ListActionsUseCase struct {
	errors *GetActionErrorsUseCase
}

// NewListActionsUseCase creates a new ListActionsUseCase.
func NewListActionsUseCase(errors *GetActionErrorsUseCase) *ListActionsUseCase {
	return &ListActionsUseCase{errors: errors}
}

// Execute returns the matching catalog entries. Without a query they are sorted
// by category, then id.
func (uc *ListActionsUseCase) Execute(ctx context.Context, input ListActionsInput) []ActionListing {
	snap := uc.errors.supportSnapshot(ctx)

	ids := entity.AllActionIDs()
	slices.SortFunc(ids, func(a, b entity.ActionID) int {
		ia, _ := entity.LookupActionInfo(a)
		ib, _ := entity.LookupActionInfo(b)
		if c := strings.Compare(string(ia.Category), string(ib.Category)); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})

	listings := make([]ActionListing, 0, len(ids))
	for _, id := range ids {
		info, _ := entity.LookupActionInfo(id)
		if input.Category != "" && info.Category != input.Category {
			continue
		}
		unsupported := service.IsActionSupported(id, snap)
		if input.SupportedOnly && unsupported != nil {
			continue
		}
		listings = append(listings, ActionListing{
			ID:            id,
			Category:      info.Category,
			Permissions:   info.RequiredPermissions(snap.SdkInt),
			CanUseIme:     info.CanUseIme,
			CanUseShizuku: info.CanUseShizuku,
			Unsupported:   unsupported,
		})
	}

	if input.Query == "" {
		return listings
	}

	names := make([]string, len(listings))
	for i, l := range listings {
		names[i] = string(l.ID)
	}
	matches := fuzzy.Find(strings.ToUpper(input.Query), names)

	ranked := make([]ActionListing, len(matches))
	for i, m := range matches {
		ranked[i] = listings[m.Index]
		ranked[i].MatchedIndexes = m.MatchedIndexes
	}

	logging.FromContext(ctx).Debug().
		Str("query", input.Query).
		Int("matches", len(ranked)).
		Msg("filtered action catalog")
	return ranked
}
