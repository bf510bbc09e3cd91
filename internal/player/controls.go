package player

import "github.com/lvasseur/cadence/internal/engine"

// SetSourceProvider replaces what the engine plays. The overlay resets to
// source 0 at position 0 with unknown duration, and listeners are notified
// of the discontinuity before this method returns. Panics on a nil
// provider.
func (p *Player) SetSourceProvider(provider engine.Provider) {
	if provider == nil {
		panic("player: nil source provider")
	}
	p.sendMu.Lock()
	if p.released {
		p.sendMu.Unlock()
		return
	}
	p.mu.Lock()
	p.overlaySourceIndex = 0
	p.overlayPositionMs = 0
	p.overlayDurationMs = engine.UnknownTime
	p.pendingTransitionAcks++
	listeners := p.listeners
	p.mu.Unlock()
	p.commands <- engine.SetSourceProvider{Provider: provider}
	p.sendMu.Unlock()

	for _, l := range listeners {
		l.OnPositionDiscontinuity(0, 0)
	}
}

// SetPlayWhenReady requests playback to start or pause. Setting the current
// value again is a no-op: no command is sent, no counter is touched, no
// listener is notified. Otherwise listeners see the state change before
// this method returns, with the current (possibly stale) playback state.
func (p *Player) SetPlayWhenReady(playWhenReady bool) {
	p.sendMu.Lock()
	if p.released {
		p.sendMu.Unlock()
		return
	}
	p.mu.Lock()
	if p.playWhenReady == playWhenReady {
		p.mu.Unlock()
		p.sendMu.Unlock()
		return
	}
	p.playWhenReady = playWhenReady
	p.pendingPlayWhenReadyAcks++
	state := p.playbackState
	listeners := p.listeners
	p.mu.Unlock()
	p.commands <- engine.SetPlayWhenReady{Value: playWhenReady}
	p.sendMu.Unlock()

	for _, l := range listeners {
		l.OnPlayerStateChanged(playWhenReady, state)
	}
}

// SeekTo seeks within the current source.
func (p *Player) SeekTo(positionMs int64) {
	p.SeekToSource(p.CurrentSourceIndex(), positionMs)
}

// SeekToSource seeks to a position within the given source. Seeking within
// the current source keeps the known duration; crossing sources invalidates
// it. Listeners are notified of the discontinuity before this method
// returns. The index is not validated; out-of-range values are the engine's
// contract to resolve.
func (p *Player) SeekToSource(sourceIndex int, positionMs int64) {
	p.sendMu.Lock()
	if p.released {
		p.sendMu.Unlock()
		return
	}
	p.mu.Lock()
	if sourceIndex == p.currentSourceIndexLocked() {
		p.overlayDurationMs = p.durationLocked()
	} else {
		p.overlayDurationMs = engine.UnknownTime
	}
	p.overlaySourceIndex = sourceIndex
	p.overlayPositionMs = positionMs
	p.pendingTransitionAcks++
	listeners := p.listeners
	p.mu.Unlock()
	p.commands <- engine.Seek{SourceIndex: sourceIndex, PositionMs: positionMs}
	p.sendMu.Unlock()

	for _, l := range listeners {
		l.OnPositionDiscontinuity(sourceIndex, positionMs)
	}
}
