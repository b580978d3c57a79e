package usecase_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/keymapper-dev/keymapper/internal/application/port/mocks"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type manualTicker struct {
	ticks chan time.Time
}

func newManualTicker() *manualTicker {
	return &manualTicker{ticks: make(chan time.Time)}
}

func (m *manualTicker) start(time.Duration) (<-chan time.Time, func()) {
	return m.ticks, func() {}
}

func (m *manualTicker) tick(t *testing.T) {
	select {
	case m.ticks <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("countdown is not waiting for a tick")
	}
}

func waitForState(t *testing.T, uc *usecase.RecordTriggerUseCase, want entity.RecordTriggerState) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return uc.CurrentState() == want
	}, time.Second, 5*time.Millisecond, "want state %+v, have %+v", want, uc.CurrentState())
}

func newRecordTrigger(t *testing.T) (*usecase.RecordTriggerUseCase, *mocks.MockKeyCaptureAdapter, *manualTicker, chan entity.RecordedKey) {
	capture := mocks.NewMockKeyCaptureAdapter(t)
	keys := make(chan entity.RecordedKey)
	capture.EXPECT().StartCapture(mock.Anything).Return((<-chan entity.RecordedKey)(keys), nil).Maybe()
	capture.EXPECT().StopCapture(mock.Anything).Return(nil).Maybe()

	ticker := newManualTicker()
	uc := usecase.NewRecordTriggerUseCase(capture, nil).WithTicker(ticker.start)
	return uc, capture, ticker, keys
}

func TestRecordTriggerUseCase_CountsDownToStopped(t *testing.T) {
	uc, capture, ticker, _ := newRecordTrigger(t)
	ctx := testContext()

	assert.Equal(t, entity.RecordStopped(), uc.CurrentState())
	require.NoError(t, uc.StartRecording(ctx))
	assert.Equal(t, entity.RecordCountingDown(usecase.DefaultRecordCountdownSeconds), uc.CurrentState())

	for remaining := usecase.DefaultRecordCountdownSeconds - 1; remaining > 0; remaining-- {
		ticker.tick(t)
		waitForState(t, uc, entity.RecordCountingDown(remaining))
	}
	ticker.tick(t)
	waitForState(t, uc, entity.RecordStopped())

	capture.AssertNumberOfCalls(t, "StartCapture", 1)
	capture.AssertNumberOfCalls(t, "StopCapture", 1)
}

func TestRecordTriggerUseCase_CountdownFromPreferences(t *testing.T) {
	capture := mocks.NewMockKeyCaptureAdapter(t)
	capture.EXPECT().StartCapture(mock.Anything).Return((<-chan entity.RecordedKey)(make(chan entity.RecordedKey)), nil)
	capture.EXPECT().StopCapture(mock.Anything).Return(nil)
	prefs := mocks.NewMockTriggerPreferences(t)
	prefs.EXPECT().RecordCountdownSeconds().Return(2)

	ticker := newManualTicker()
	uc := usecase.NewRecordTriggerUseCase(capture, prefs).WithTicker(ticker.start)

	require.NoError(t, uc.StartRecording(testContext()))
	assert.Equal(t, entity.RecordCountingDown(2), uc.CurrentState())

	ticker.tick(t)
	waitForState(t, uc, entity.RecordCountingDown(1))
	ticker.tick(t)
	waitForState(t, uc, entity.RecordStopped())
}

func TestRecordTriggerUseCase_StartWhileCountingDownStops(t *testing.T) {
	uc, capture, _, _ := newRecordTrigger(t)
	ctx := testContext()

	require.NoError(t, uc.StartRecording(ctx))
	require.NoError(t, uc.StartRecording(ctx))

	assert.Equal(t, entity.RecordStopped(), uc.CurrentState())
	capture.AssertNumberOfCalls(t, "StartCapture", 1)
	capture.AssertNumberOfCalls(t, "StopCapture", 1)
}

func TestRecordTriggerUseCase_StopRecording(t *testing.T) {
	uc, _, _, _ := newRecordTrigger(t)

	uc.StopRecording()
	assert.Equal(t, entity.RecordStopped(), uc.CurrentState())

	require.NoError(t, uc.StartRecording(testContext()))
	uc.StopRecording()
	assert.Equal(t, entity.RecordStopped(), uc.CurrentState())
}

func TestRecordTriggerUseCase_ConcurrentStartsSerialize(t *testing.T) {
	uc, capture, _, _ := newRecordTrigger(t)
	ctx := testContext()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, uc.StartRecording(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, entity.RecordStopped(), uc.CurrentState())
	capture.AssertNumberOfCalls(t, "StartCapture", 1)
	capture.AssertNumberOfCalls(t, "StopCapture", 1)
}

func TestRecordTriggerUseCase_CaptureUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  *entity.ActionError
	}{
		{name: "service crashed", err: entity.AccessibilityServiceCrashed()},
		{name: "service disabled", err: entity.AccessibilityServiceDisabled()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capture := mocks.NewMockKeyCaptureAdapter(t)
			capture.EXPECT().StartCapture(mock.Anything).Return(nil, tt.err)

			uc := usecase.NewRecordTriggerUseCase(capture, nil)

			err := uc.StartRecording(testContext())

			var actionErr *entity.ActionError
			require.True(t, errors.As(err, &actionErr))
			assert.Equal(t, tt.err.Kind, actionErr.Kind)
			assert.Equal(t, entity.RecordStopped(), uc.CurrentState())
		})
	}
}

func TestRecordTriggerUseCase_PublishesKeysWhileCountingDown(t *testing.T) {
	uc, _, _, keys := newRecordTrigger(t)
	ctx := testContext()

	recorded := uc.RecordedKeys(ctx)
	states := uc.States(ctx)
	assert.Equal(t, entity.RecordStopped(), <-states)

	require.NoError(t, uc.StartRecording(ctx))
	assert.Equal(t, entity.RecordCountingDown(usecase.DefaultRecordCountdownSeconds), <-states)

	pressed := entity.RecordedKey{KeyCode: entity.KeyCodeVolumeUp, Device: entity.InternalDevice()}
	keys <- pressed

	select {
	case got := <-recorded:
		assert.Equal(t, pressed, got)
	case <-time.After(time.Second):
		t.Fatal("expected the captured key to be published")
	}

	uc.StopRecording()
	assert.Equal(t, entity.RecordStopped(), <-states)

	select {
	case keys <- pressed:
		t.Fatal("keys must not be consumed once stopped")
	case <-time.After(50 * time.Millisecond):
	}
}
