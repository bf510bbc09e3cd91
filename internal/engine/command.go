package engine

// Command is a facade-to-engine request. Commands are delivered on a single
// channel and processed strictly in send order.
type Command interface {
	isCommand()
}

// SetSourceProvider replaces the engine's source provider. The engine
// acknowledges with SourceProviderAck and reports the resulting snapshot
// with a separate SourceChanged event.
type SetSourceProvider struct {
	Provider Provider
}

// Seek moves playback to a position within a source. Acknowledged with
// SeekAck. Out-of-range indices are forwarded as-is; how the engine reacts
// is its own contract.
type Seek struct {
	SourceIndex int
	PositionMs  int64
}

// SetPlayWhenReady toggles whether the engine should play as soon as it is
// ready. Acknowledged with PlayWhenReadyAck.
type SetPlayWhenReady struct {
	Value bool
}

// Stop halts playback. Stop is not acknowledged.
type Stop struct{}

// Release tears the engine down. No command may follow a Release.
type Release struct{}

// DeliverMessages carries a batch of opaque messages to the engine's
// components, preserving order. If Done is non-nil the engine must close it
// once the whole batch has been processed; the sender blocks on it for the
// synchronous delivery variant. Waiting on Done from the engine goroutine
// itself deadlocks.
type DeliverMessages struct {
	Messages []Message
	Done     chan struct{}
}

func (SetSourceProvider) isCommand() {}
func (Seek) isCommand() {}
func (SetPlayWhenReady) isCommand() {}
func (Stop) isCommand() {}
func (Release) isCommand() {}
func (DeliverMessages) isCommand() {}
