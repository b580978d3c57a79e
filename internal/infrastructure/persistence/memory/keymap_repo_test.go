package memory_test

import (
	"context"
	"testing"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/repository"
	"github.com/keymapper-dev/keymapper/internal/domain/validation"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/persistence/memory"
	"github.com/keymapper-dev/keymapper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func volumeKeyMap(uid string) entity.KeyMap {
	return entity.KeyMap{
		UID: uid,
		Trigger: entity.Trigger{
			Keys: []entity.TriggerKey{{
				UID:             uid + "-key",
				KeyCode:         entity.KeyCodeVolumeUp,
				ClickType:       entity.ClickTypeShortPress,
				ConsumeKeyEvent: true,
				Device:          entity.InternalDevice(),
			}},
			Mode: entity.UndefinedMode(),
		},
		Actions:   []entity.KeyMapAction{{UID: uid + "-action", Data: entity.SystemAction{Kind: entity.ActionIDGoHome}}},
		IsEnabled: true,
	}
}

func TestKeyMapRepository_GetUnknown(t *testing.T) {
	repo := memory.NewKeyMapRepository()

	km, err := repo.Get(testContext(), "missing")

	assert.Nil(t, km)
	assert.ErrorIs(t, err, repository.ErrKeyMapNotFound)
}

func TestKeyMapRepository_SaveGetDelete(t *testing.T) {
	ctx := testContext()
	repo := memory.NewKeyMapRepository()
	km := volumeKeyMap("a")

	require.NoError(t, repo.Save(ctx, &km))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, km, *got)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrKeyMapNotFound)

	assert.NoError(t, repo.Delete(ctx, "a"))
}

func TestKeyMapRepository_StoresCopies(t *testing.T) {
	ctx := testContext()
	km := volumeKeyMap("a")
	repo := memory.NewKeyMapRepository(km)

	km.Trigger.Keys[0].KeyCode = entity.KeyCodeVolumeDown
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entity.KeyCodeVolumeUp, got.Trigger.Keys[0].KeyCode)

	got.Trigger.Keys[0].ClickType = entity.ClickTypeLongPress
	again, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entity.ClickTypeShortPress, again.Trigger.Keys[0].ClickType)
}

func TestKeyMapRepository_SaveRejectsInvalid(t *testing.T) {
	ctx := testContext()
	repo := memory.NewKeyMapRepository()
	km := volumeKeyMap("a")
	km.Trigger.Keys = append(km.Trigger.Keys, km.Trigger.Keys[0])

	err := repo.Save(ctx, &km)

	require.ErrorIs(t, err, validation.ErrInvalidKeyMap)
	assert.ErrorIs(t, repo.Save(ctx, nil), validation.ErrInvalidKeyMap)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestKeyMapRepository_ListOrderedByUID(t *testing.T) {
	repo := memory.NewKeyMapRepository(volumeKeyMap("c"), volumeKeyMap("a"), volumeKeyMap("b"))

	list, err := repo.List(testContext())

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].UID)
	assert.Equal(t, "b", list[1].UID)
	assert.Equal(t, "c", list[2].UID)
}
