package engine

// Event is an engine-to-facade report. Events are delivered on a single
// channel and processed strictly in send order.
type Event interface {
	isEvent()
}

// StateChanged reports a playback state transition.
type StateChanged struct {
	State State
}

// PlayWhenReadyAck acknowledges one SetPlayWhenReady command.
type PlayWhenReadyAck struct{}

// SourceProviderAck acknowledges one SetSourceProvider command.
type SourceProviderAck struct{}

// SeekAck acknowledges one Seek command.
type SeekAck struct{}

// SourceChanged carries a fresh authoritative snapshot. Engines may send it
// decoupled from the acknowledgment of the request that caused it.
type SourceChanged struct {
	Snapshot Snapshot
}

// Error reports a playback failure. The payload is forwarded verbatim to
// listeners; this layer performs no interpretation or retry.
type Error struct {
	Err error
}

func (StateChanged) isEvent() {}
func (PlayWhenReadyAck) isEvent() {}
func (SourceProviderAck) isEvent() {}
func (SeekAck) isEvent() {}
func (SourceChanged) isEvent() {}
func (Error) isEvent() {}
