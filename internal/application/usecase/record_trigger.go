package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// DefaultRecordCountdownSeconds is how long a recording session lasts when
// preferences do not say otherwise.
const DefaultRecordCountdownSeconds = 5

const recordedKeyBuffer = 16

// Ticker starts a ticker firing every d. stop releases it.
type Ticker func(d time.Duration) (ticks <-chan time.Time, stop func())

func systemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// RecordTriggerUseCase runs trigger recording sessions: a countdown during which
// captured key presses are published. Only one session runs at a time.
type RecordTriggerUseCase struct {
	capture   port.KeyCaptureAdapter
	prefs     port.TriggerPreferences
	newTicker Ticker

	// startMu serialises StartRecording and StopRecording.
	startMu sync.Mutex

	mu        sync.Mutex
	state     entity.RecordTriggerState
	cancel    context.CancelFunc
	done      chan struct{}
	stateSubs map[chan entity.RecordTriggerState]struct{}
	keySubs   map[chan entity.RecordedKey]struct{}
}

// NewRecordTriggerUseCase creates a new RecordTriggerUseCase.
// prefs may be nil, in which case sessions last DefaultRecordCountdownSeconds.
func NewRecordTriggerUseCase(capture port.KeyCaptureAdapter, prefs port.TriggerPreferences) *RecordTriggerUseCase {
	return &RecordTriggerUseCase{
		capture:   capture,
		prefs:     prefs,
		newTicker: systemTicker,
		state:     entity.RecordStopped(),
		stateSubs: make(map[chan entity.RecordTriggerState]struct{}),
		keySubs:   make(map[chan entity.RecordedKey]struct{}),
	}
}

// WithTicker replaces the one-second countdown ticker.
func (uc *RecordTriggerUseCase) WithTicker(t Ticker) *RecordTriggerUseCase {
	uc.newTicker = t
	return uc
}

// CurrentState returns the state of the recording session.
func (uc *RecordTriggerUseCase) CurrentState() entity.RecordTriggerState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// States returns a channel receiving the current state and every change after it.
// Only the latest state is kept for slow readers. The channel is closed once ctx is done.
func (uc *RecordTriggerUseCase) States(ctx context.Context) <-chan entity.RecordTriggerState {
	ch := make(chan entity.RecordTriggerState, 1)

	uc.mu.Lock()
	uc.stateSubs[ch] = struct{}{}
	ch <- uc.state
	uc.mu.Unlock()

	go func() {
		<-ctx.Done()
		uc.mu.Lock()
		delete(uc.stateSubs, ch)
		close(ch)
		uc.mu.Unlock()
	}()
	return ch
}

// RecordedKeys returns a channel receiving the keys captured while counting down.
// The channel is closed once ctx is done.
func (uc *RecordTriggerUseCase) RecordedKeys(ctx context.Context) <-chan entity.RecordedKey {
	ch := make(chan entity.RecordedKey, recordedKeyBuffer)

	uc.mu.Lock()
	uc.keySubs[ch] = struct{}{}
	uc.mu.Unlock()

	go func() {
		<-ctx.Done()
		uc.mu.Lock()
		delete(uc.keySubs, ch)
		close(ch)
		uc.mu.Unlock()
	}()
	return ch
}

// StartRecording starts a countdown session, or stops the running one.
//
// When key capture is unavailable the returned error is an *entity.ActionError
// of kind ErrKindAccessibilityServiceCrashed or ErrKindAccessibilityServiceDisabled
// and the state stays Stopped.
func (uc *RecordTriggerUseCase) StartRecording(ctx context.Context) error {
	uc.startMu.Lock()
	defer uc.startMu.Unlock()

	log := logging.FromContext(ctx)

	if uc.CurrentState().IsCountingDown() {
		log.Debug().Msg("recording already running, stopping it")
		uc.stopLocked()
		return nil
	}

	keys, err := uc.capture.StartCapture(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to start key capture")
		return err
	}

	seconds := uc.countdownSeconds()
	session, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	uc.mu.Lock()
	uc.cancel = cancel
	uc.done = done
	uc.setStateLocked(entity.RecordCountingDown(seconds))
	uc.mu.Unlock()

	log.Info().Int("seconds", seconds).Msg("recording trigger")

	go uc.run(session, seconds, keys, done)
	return nil
}

// StopRecording ends the running session early. It is a no-op when stopped.
func (uc *RecordTriggerUseCase) StopRecording() {
	uc.startMu.Lock()
	defer uc.startMu.Unlock()
	uc.stopLocked()
}

// stopLocked cancels the session and waits for it to wind down. Callers hold uc.startMu.
func (uc *RecordTriggerUseCase) stopLocked() {
	uc.mu.Lock()
	cancel, done := uc.cancel, uc.done
	uc.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (uc *RecordTriggerUseCase) run(ctx context.Context, seconds int, keys <-chan entity.RecordedKey, done chan struct{}) {
	defer close(done)
	log := logging.FromContext(ctx)

	ticks, stop := uc.newTicker(time.Second)
	defer stop()

	remaining := seconds
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticks:
			remaining--
			if remaining <= 0 {
				break loop
			}
			uc.setState(entity.RecordCountingDown(remaining))
		case key, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			log.Debug().Str("key", entity.KeyCodeToString(key.KeyCode)).Msg("recorded key")
			uc.publishKey(key)
		}
	}

	if err := uc.capture.StopCapture(context.WithoutCancel(ctx)); err != nil {
		log.Warn().Err(err).Msg("failed to stop key capture")
	}

	uc.mu.Lock()
	uc.cancel = nil
	uc.done = nil
	uc.setStateLocked(entity.RecordStopped())
	uc.mu.Unlock()

	log.Info().Msg("recording stopped")
}

func (uc *RecordTriggerUseCase) countdownSeconds() int {
	if uc.prefs == nil {
		return DefaultRecordCountdownSeconds
	}
	if s := uc.prefs.RecordCountdownSeconds(); s > 0 {
		return s
	}
	return DefaultRecordCountdownSeconds
}

func (uc *RecordTriggerUseCase) setState(state entity.RecordTriggerState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.setStateLocked(state)
}

func (uc *RecordTriggerUseCase) setStateLocked(state entity.RecordTriggerState) {
	uc.state = state
	for ch := range uc.stateSubs {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

// publishKey drops the key for subscribers whose buffer is full.
func (uc *RecordTriggerUseCase) publishKey(key entity.RecordedKey) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for ch := range uc.keySubs {
		select {
		case ch <- key:
		default:
		}
	}
}
