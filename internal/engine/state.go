package engine

// State represents the engine-side playback state machine.
//
// Engines move through the states roughly as:
//
//	Idle → Preparing → Buffering ⇄ Ready → Ended
//
// with Stop returning to Idle from anywhere. The facade never drives
// transitions itself; it only mirrors the last state the engine reported.
type State int

const (
	// StateIdle means the engine has no source provider set.
	StateIdle State = iota
	// StatePreparing means the engine is opening a source.
	StatePreparing
	// StateBuffering means the engine has a source but cannot play
	// from the current position yet.
	StateBuffering
	// StateReady means the engine can play from the current position
	// as soon as play-when-ready is set.
	StateReady
	// StateEnded means the engine played all sources to completion.
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePreparing:
		return "Preparing"
	case StateBuffering:
		return "Buffering"
	case StateReady:
		return "Ready"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
