// Package sim provides a simulated playback engine for demos and
// integration tests. It honors the engine command/event contract — ordered
// processing, one acknowledgment per request, wholesale snapshots — but
// performs no decoding or buffering: the position advances on a wall-clock
// ticker while play-when-ready is set and the state is Ready.
package sim

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lvasseur/cadence/internal/engine"
)

const (
	defaultTick     = 250 * time.Millisecond
	defaultDuration = 3 * time.Minute

	// How far ahead of the position the simulated buffer reaches.
	bufferLeadUs = int64(10 * time.Second / time.Microsecond)
)

// Options configures a simulated engine. Zero values select defaults.
type Options struct {
	// Tick is the interval at which the position advances.
	Tick time.Duration
	// DefaultDuration is assumed for sources without a duration hint.
	DefaultDuration time.Duration
	// Logger receives per-command debug logging.
	Logger zerolog.Logger
}

// Engine simulates playback of whatever provider it is given. Sources that
// implement DurationHint() int64 (milliseconds) play for that long;
// everything else plays for DefaultDuration.
type Engine struct {
	commands <-chan engine.Command
	events   chan<- engine.Event
	log      zerolog.Logger

	tick              time.Duration
	defaultDurationUs int64

	provider engine.Provider
	source   engine.Source

	state         engine.State
	playWhenReady bool
	sourceIndex   int
	positionUs    int64
	durationUs    int64
}

// New creates a simulated engine on the given channels and starts its
// worker goroutine. The goroutine exits on a Release command or when the
// command channel is closed, closing the event channel on the way out.
func New(commands <-chan engine.Command, events chan<- engine.Event, opts Options) *Engine {
	if opts.Tick <= 0 {
		opts.Tick = defaultTick
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = defaultDuration
	}
	e := &Engine{
		commands:          commands,
		events:            events,
		log:               opts.Logger,
		tick:              opts.Tick,
		defaultDurationUs: opts.DefaultDuration.Microseconds(),
		state:             engine.StateIdle,
		durationUs:        engine.UnsetTimeUs,
	}
	go e.run()
	return e
}

func (e *Engine) run() {
	defer close(e.events)
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case cmd, ok := <-e.commands:
			if !ok {
				return
			}
			if released := e.apply(cmd); released {
				return
			}
		case <-ticker.C:
			e.advance(e.tick)
		}
	}
}

// apply processes one command and emits its acknowledgment. Returns true on
// Release.
func (e *Engine) apply(cmd engine.Command) bool {
	switch c := cmd.(type) {
	case engine.SetSourceProvider:
		e.log.Debug().Int("sources", c.Provider.SourceCount()).Msg("set source provider")
		e.provider = c.Provider
		e.positionUs = 0
		e.openSource(0)
		e.events <- engine.SourceProviderAck{}
		e.events <- engine.SourceChanged{Snapshot: e.snapshot()}
		e.setState(engine.StatePreparing)
		e.setState(engine.StateReady)

	case engine.Seek:
		index := c.SourceIndex
		if e.provider != nil {
			// This engine clamps out-of-range seeks rather than erroring.
			if last := e.provider.SourceCount() - 1; index > last {
				index = last
			}
			if index < 0 {
				index = 0
			}
		}
		e.log.Debug().Int("source", index).Int64("position_ms", c.PositionMs).Msg("seek")
		if index != e.sourceIndex || e.source == nil {
			e.openSource(index)
		}
		e.positionUs = c.PositionMs * 1000
		if e.durationUs != engine.UnsetTimeUs && e.positionUs > e.durationUs {
			e.positionUs = e.durationUs
		}
		e.events <- engine.SeekAck{}
		e.events <- engine.SourceChanged{Snapshot: e.snapshot()}
		if e.state == engine.StateEnded {
			e.setState(engine.StateReady)
		}

	case engine.SetPlayWhenReady:
		e.log.Debug().Bool("play_when_ready", c.Value).Msg("set play-when-ready")
		e.playWhenReady = c.Value
		e.events <- engine.PlayWhenReadyAck{}

	case engine.Stop:
		e.log.Debug().Msg("stop")
		e.positionUs = 0
		e.setState(engine.StateIdle)

	case engine.DeliverMessages:
		for _, msg := range c.Messages {
			e.log.Debug().Int("type", msg.Type).Msg("message delivered")
		}
		if c.Done != nil {
			close(c.Done)
		}

	case engine.Release:
		e.log.Debug().Msg("release")
		return true
	}
	return false
}

// advance moves the simulated position forward and handles source
// transitions and end of playback.
func (e *Engine) advance(elapsed time.Duration) {
	if e.state != engine.StateReady || !e.playWhenReady {
		return
	}
	e.positionUs += elapsed.Microseconds()
	if e.durationUs == engine.UnsetTimeUs || e.positionUs < e.durationUs {
		return
	}

	if e.provider != nil && e.sourceIndex+1 < e.provider.SourceCount() {
		e.positionUs = 0
		e.openSource(e.sourceIndex + 1)
		e.events <- engine.SourceChanged{Snapshot: e.snapshot()}
		return
	}

	e.positionUs = e.durationUs
	e.setState(engine.StateEnded)
}

func (e *Engine) openSource(index int) {
	e.sourceIndex = index
	e.source = nil
	e.durationUs = e.defaultDurationUs
	if e.provider == nil || e.provider.SourceCount() == 0 {
		e.durationUs = engine.UnsetTimeUs
		return
	}
	e.source = e.provider.CreateSource(index)
	if h, ok := e.source.(interface{ DurationHint() int64 }); ok {
		if ms := h.DurationHint(); ms != engine.UnknownTime {
			e.durationUs = ms * 1000
		}
	}
}

func (e *Engine) setState(s engine.State) {
	if e.state == s {
		return
	}
	e.state = s
	e.events <- engine.StateChanged{State: s}
}

func (e *Engine) snapshot() engine.Snapshot {
	buffered := e.positionUs + bufferLeadUs
	if e.durationUs != engine.UnsetTimeUs && buffered >= e.durationUs {
		buffered = engine.EndOfSourceUs
	}
	return engine.Snapshot{
		SourceIndex:        e.sourceIndex,
		PositionUs:         e.positionUs,
		DurationUs:         e.durationUs,
		BufferedPositionUs: buffered,
	}
}
