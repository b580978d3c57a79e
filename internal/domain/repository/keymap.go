package repository

import (
	"context"
	"errors"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// ErrKeyMapNotFound is returned when no key map has the requested uid.
var ErrKeyMapNotFound = errors.New("key map not found")

// KeyMapRepository stores key maps.
type KeyMapRepository interface {
	// Get returns ErrKeyMapNotFound for unknown uids.
	Get(ctx context.Context, uid string) (*entity.KeyMap, error)
	Save(ctx context.Context, keyMap *entity.KeyMap) error
	Delete(ctx context.Context, uid string) error

	// List returns every key map ordered by uid.
	List(ctx context.Context) ([]*entity.KeyMap, error)
}
