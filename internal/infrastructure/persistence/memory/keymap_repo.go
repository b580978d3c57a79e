// Package memory provides repositories that live only for the process lifetime.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/repository"
	"github.com/keymapper-dev/keymapper/internal/domain/validation"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

type keyMapRepo struct {
	mu      sync.RWMutex
	keyMaps map[string]entity.KeyMap
}

// NewKeyMapRepository creates an in-memory key map repository holding seed.
func NewKeyMapRepository(seed ...entity.KeyMap) repository.KeyMapRepository {
	r := &keyMapRepo{keyMaps: make(map[string]entity.KeyMap, len(seed))}
	for _, km := range seed {
		r.keyMaps[km.UID] = km.Clone()
	}
	return r
}

func (r *keyMapRepo) Get(ctx context.Context, uid string) (*entity.KeyMap, error) {
	logging.FromContext(ctx).Debug().Str("uid", uid).Msg("getting key map")

	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.keyMaps[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrKeyMapNotFound, uid)
	}
	c := km.Clone()
	return &c, nil
}

func (r *keyMapRepo) Save(ctx context.Context, keyMap *entity.KeyMap) error {
	if keyMap == nil {
		return fmt.Errorf("%w: nil key map", validation.ErrInvalidKeyMap)
	}
	if err := validation.CheckKeyMap(*keyMap); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Str("uid", keyMap.UID).
		Int("keys", len(keyMap.Trigger.Keys)).
		Int("actions", len(keyMap.Actions)).
		Msg("saving key map")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keyMaps[keyMap.UID] = keyMap.Clone()
	return nil
}

func (r *keyMapRepo) Delete(ctx context.Context, uid string) error {
	logging.FromContext(ctx).Debug().Str("uid", uid).Msg("deleting key map")

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keyMaps, uid)
	return nil
}

func (r *keyMapRepo) List(_ context.Context) ([]*entity.KeyMap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entity.KeyMap, 0, len(r.keyMaps))
	for _, km := range r.keyMaps {
		c := km.Clone()
		list = append(list, &c)
	}
	slices.SortFunc(list, func(a, b *entity.KeyMap) int { return cmp.Compare(a.UID, b.UID) })
	return list, nil
}
