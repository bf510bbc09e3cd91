// Package player implements a synchronous-looking control and query surface
// over a playback engine that runs on its own goroutine.
//
// Mutating calls translate into exactly one asynchronous command each and
// update local optimistic state immediately, so reads and listener
// notifications reflect the request before the engine has acted on it. The
// engine's authoritative snapshot arrives asynchronously; two pending-
// acknowledgment counters decide, at every read, whether the snapshot or
// the optimistic overlay is the valid source of truth.
package player

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lvasseur/cadence/internal/engine"
	"github.com/lvasseur/cadence/internal/source"
)

// Player is the playback facade. All methods are safe for concurrent use.
type Player struct {
	commands chan<- engine.Command
	events   <-chan engine.Event
	log      zerolog.Logger

	// sendMu serializes the mutate-then-send sequence of every command
	// method so channel order matches mutation order. Commands go out
	// after mu is released: a full channel stalls writers on sendMu but
	// never blocks reads.
	sendMu sync.Mutex

	mu sync.RWMutex

	// Copy-on-write: replaced on add/remove, never mutated in place, so an
	// in-progress notification pass iterates a stable slice.
	listeners []Listener

	playWhenReady bool
	playbackState engine.State

	pendingPlayWhenReadyAcks int
	pendingTransitionAcks    int

	// Authoritative playback report, consulted while no seek or set-source
	// request is outstanding.
	snapshot engine.Snapshot

	// Optimistic overlay, consulted while pendingTransitionAcks > 0. Written
	// only by seek/set-source calls, never by engine events.
	overlaySourceIndex int
	overlayPositionMs  int64
	overlayDurationMs  int64

	// Transitions once, while both sendMu and mu are held, so command
	// methods may read it under sendMu alone.
	released bool
}

// New creates a player over the given engine channels and starts its event
// dispatch goroutine. Panics if either channel is nil.
func New(commands chan<- engine.Command, events <-chan engine.Event, logger zerolog.Logger) *Player {
	if commands == nil || events == nil {
		panic("player: nil engine channel")
	}
	p := &Player{
		commands:          commands,
		events:            events,
		log:               logger,
		playbackState:     engine.StateIdle,
		overlayDurationMs: engine.UnknownTime,
		snapshot: engine.Snapshot{
			DurationUs:         engine.UnsetTimeUs,
			BufferedPositionUs: engine.UnsetTimeUs,
		},
	}
	go p.run()
	p.log.Debug().Msg("player created")
	return p
}

// AddListener registers a listener. Adding during a notification pass takes
// effect on the next pass.
func (p *Player) AddListener(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := make([]Listener, len(p.listeners), len(p.listeners)+1)
	copy(next, p.listeners)
	p.listeners = append(next, l)
}

// RemoveListener unregisters a listener. Removal during a notification pass
// does not affect that pass.
func (p *Player) RemoveListener(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := make([]Listener, 0, len(p.listeners))
	for _, existing := range p.listeners {
		if existing != l {
			next = append(next, existing)
		}
	}
	p.listeners = next
}

// Stop halts playback on the engine. Stop is not acknowledged and does not
// touch the pending counters.
func (p *Player) Stop() {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if p.released {
		return
	}
	p.commands <- engine.Stop{}
}

// SendMessages forwards an ordered batch of opaque messages to the engine,
// fire-and-forget.
func (p *Player) SendMessages(messages ...engine.Message) {
	if len(messages) == 0 {
		return
	}
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if p.released {
		return
	}
	p.commands <- engine.DeliverMessages{Messages: messages}
}

// BlockingSendMessages forwards an ordered batch of opaque messages and
// blocks until the engine has processed the whole batch. Must never be
// called from the engine goroutine itself: the engine cannot process the
// batch while blocked on it, so the call deadlocks.
func (p *Player) BlockingSendMessages(messages ...engine.Message) {
	if len(messages) == 0 {
		return
	}
	done := make(chan struct{})
	p.sendMu.Lock()
	if p.released {
		p.sendMu.Unlock()
		return
	}
	p.commands <- engine.DeliverMessages{Messages: messages, Done: done}
	p.sendMu.Unlock()
	<-done
}

// Release tears the player down: it forwards a release command to the
// engine and stops applying events. Events still in flight keep being
// drained and discarded until the engine closes its event channel, so a
// mid-emission engine is never blocked away from the release command.
// Release is idempotent; no command is sent after the first call.
func (p *Player) Release() {
	p.sendMu.Lock()
	if p.released {
		p.sendMu.Unlock()
		return
	}
	p.mu.Lock()
	p.released = true
	p.mu.Unlock()
	p.commands <- engine.Release{}
	p.sendMu.Unlock()
	p.log.Debug().Msg("player released")
}

// SetSource is a convenience wrapper that adapts a single pre-built source
// into a one-element provider.
func (p *Player) SetSource(s engine.Source) {
	p.SetSourceProvider(source.Single(s))
}
