package entity_test

import (
	"testing"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestTriggerKey_SameKey(t *testing.T) {
	tests := []struct {
		name     string
		a, b     entity.TriggerKey
		expected bool
	}{
		{
			name:     "different key codes",
			a:        entity.TriggerKey{KeyCode: 24, Device: entity.AnyDevice()},
			b:        entity.TriggerKey{KeyCode: 25, Device: entity.AnyDevice()},
			expected: false,
		},
		{
			name:     "same code any and internal",
			a:        entity.TriggerKey{KeyCode: 24, Device: entity.AnyDevice()},
			b:        entity.TriggerKey{KeyCode: 24, Device: entity.InternalDevice()},
			expected: true,
		},
		{
			name:     "same external device",
			a:        entity.TriggerKey{KeyCode: 24, Device: entity.ExternalDevice("d1", "Pad")},
			b:        entity.TriggerKey{KeyCode: 24, Device: entity.ExternalDevice("d1", "Pad")},
			expected: true,
		},
		{
			name:     "different external devices",
			a:        entity.TriggerKey{KeyCode: 24, Device: entity.ExternalDevice("d1", "Pad")},
			b:        entity.TriggerKey{KeyCode: 24, Device: entity.ExternalDevice("d2", "Pad")},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.SameKey(tt.b))
		})
	}
}

func TestKeyMap_CloneIsIndependent(t *testing.T) {
	km := entity.KeyMap{
		UID: "km",
		Trigger: entity.Trigger{
			Keys: []entity.TriggerKey{{UID: "k1", KeyCode: 24}},
			Mode: entity.UndefinedMode(),
		},
		Actions: []entity.KeyMapAction{{UID: "a1", Data: entity.SystemAction{Kind: entity.ActionIDGoHome}}},
	}

	clone := km.Clone()
	clone.Trigger.Keys[0].KeyCode = 25
	clone.Actions[0].UID = "changed"

	assert.Equal(t, 24, km.Trigger.Keys[0].KeyCode)
	assert.Equal(t, "a1", km.Actions[0].UID)
	assert.Equal(t, 0, km.Trigger.KeyIndex("k1"))
	assert.Equal(t, -1, km.Trigger.KeyIndex("nope"))
	assert.Equal(t, []entity.Action{entity.SystemAction{Kind: entity.ActionIDGoHome}}, km.ActionData())
}

func TestTriggerMode(t *testing.T) {
	assert.True(t, entity.TriggerMode{}.IsUndefined())
	assert.True(t, entity.ParallelMode(entity.ClickTypeLongPress).IsParallel())
	assert.Equal(t, entity.ClickTypeLongPress, entity.ParallelMode(entity.ClickTypeLongPress).ClickType)
	assert.True(t, entity.SequenceMode().IsSequence())
	assert.False(t, entity.ClickType("TRIPLE").Valid())
}
