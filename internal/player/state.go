package player

import "github.com/lvasseur/cadence/internal/engine"

// Read accessors. All reads are O(1), never block, and never talk to the
// engine: they consult the optimistic overlay while a seek or set-source
// request is unacknowledged and fall through to the authoritative snapshot
// otherwise.

// PlaybackState returns the last state the engine reported.
func (p *Player) PlaybackState() engine.State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playbackState
}

// PlayWhenReady returns the last value requested by the caller.
func (p *Player) PlayWhenReady() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playWhenReady
}

// PlayWhenReadyCommitted reports whether the engine has acknowledged every
// play-when-ready request.
func (p *Player) PlayWhenReadyCommitted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pendingPlayWhenReadyAcks == 0
}

// Duration returns the duration of the current source in milliseconds, or
// engine.UnknownTime.
func (p *Player) Duration() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.durationLocked()
}

// Position returns the playback position in milliseconds.
func (p *Player) Position() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.positionLocked()
}

// CurrentSourceIndex returns the index of the source being played.
func (p *Player) CurrentSourceIndex() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentSourceIndexLocked()
}

// BufferedPosition returns an estimate of the position up to which data is
// buffered, in milliseconds, or engine.UnknownTime. While a transition is
// pending it is approximated by the requested position.
func (p *Player) BufferedPosition() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.bufferedPositionLocked()
}

// BufferedPercentage returns the buffered position as a percentage of the
// duration, or 0 if either is unknown.
func (p *Player) BufferedPercentage() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	buffered := p.bufferedPositionLocked()
	duration := p.durationLocked()
	switch {
	case buffered == engine.UnknownTime || duration == engine.UnknownTime:
		return 0
	case duration == 0:
		return 100
	default:
		return int(buffered * 100 / duration)
	}
}

func (p *Player) durationLocked() int64 {
	if p.pendingTransitionAcks > 0 {
		return p.overlayDurationMs
	}
	if p.snapshot.DurationUs == engine.UnsetTimeUs {
		return engine.UnknownTime
	}
	return p.snapshot.DurationUs / 1000
}

func (p *Player) positionLocked() int64 {
	if p.pendingTransitionAcks > 0 {
		return p.overlayPositionMs
	}
	return p.snapshot.PositionUs / 1000
}

func (p *Player) currentSourceIndexLocked() int {
	if p.pendingTransitionAcks > 0 {
		return p.overlaySourceIndex
	}
	return p.snapshot.SourceIndex
}

func (p *Player) bufferedPositionLocked() int64 {
	if p.pendingTransitionAcks > 0 {
		return p.overlayPositionMs
	}
	buffered := p.snapshot.BufferedPositionUs
	if buffered == engine.UnsetTimeUs || buffered == engine.EndOfSourceUs {
		return engine.UnknownTime
	}
	return buffered / 1000
}
