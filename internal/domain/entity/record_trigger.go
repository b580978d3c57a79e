package entity

// RecordTriggerStateKind is the phase of a recording session.
type RecordTriggerStateKind string

const (
	RecordTriggerStopped      RecordTriggerStateKind = "STOPPED"
	RecordTriggerCountingDown RecordTriggerStateKind = "COUNTING_DOWN"
)

// RecordTriggerState is Stopped or CountingDown with the seconds left.
type RecordTriggerState struct {
	Kind             RecordTriggerStateKind
	SecondsRemaining int
}

// RecordStopped is the idle recording state.
func RecordStopped() RecordTriggerState {
	return RecordTriggerState{Kind: RecordTriggerStopped}
}

// RecordCountingDown is the active recording state.
func RecordCountingDown(seconds int) RecordTriggerState {
	return RecordTriggerState{Kind: RecordTriggerCountingDown, SecondsRemaining: seconds}
}

func (s RecordTriggerState) IsCountingDown() bool {
	return s.Kind == RecordTriggerCountingDown
}

// RecordedKey is a physical key press captured while recording.
type RecordedKey struct {
	KeyCode int
	Device  TriggerKeyDevice
}
