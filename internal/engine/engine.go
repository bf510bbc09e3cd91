// Package engine defines the contract between the playback facade and a
// playback engine: the source capability the engine consumes, the command
// and event messages crossing the two channels, and the authoritative
// snapshot the engine reports.
//
// Both channels are ordered and one-way. Commands flow facade → engine,
// events flow engine → facade. No ordering holds across the two directions
// beyond what the facade's pending-acknowledgment counters encode.
package engine

// Time sentinels. Positions and durations exposed by the facade are in
// milliseconds; snapshot fields are in microseconds.
const (
	// UnknownTime marks a duration or position that cannot be resolved.
	// It is distinct from zero.
	UnknownTime int64 = -1

	// UnsetTimeUs marks a snapshot field the engine has not determined yet.
	UnsetTimeUs int64 = -1

	// EndOfSourceUs marks a buffered position that reached the end of the
	// current source.
	EndOfSourceUs int64 = -2
)

// Source is an opaque handle to one playable piece of media. The facade
// never inspects sources beyond passing them through to the engine.
type Source interface {
	// URI returns the location of the media this source reads from.
	URI() string
}

// Provider supplies the sequence of sources an engine plays through.
// Implemented by callers or by the adapters in the source package.
type Provider interface {
	SourceCount() int
	CreateSource(index int) Source
}

// Snapshot is the authoritative playback report produced by an engine.
// A snapshot is replaced wholesale on the facade side, never merged, so
// engines must send a fully populated value every time.
type Snapshot struct {
	SourceIndex        int
	PositionUs         int64
	DurationUs         int64 // UnsetTimeUs when the engine has not resolved it
	BufferedPositionUs int64 // UnsetTimeUs or EndOfSourceUs when not meaningful
}

// Message is an opaque engine-directed payload addressed to one of the
// engine's components. This layer forwards messages without interpretation.
type Message struct {
	Target  any
	Type    int
	Payload any
}

// Pipe returns the connected channel pair that joins a facade to an engine.
// The buffer size applies to both directions.
func Pipe(buffer int) (chan Command, chan Event) {
	return make(chan Command, buffer), make(chan Event, buffer)
}
