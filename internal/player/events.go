package player

import "github.com/lvasseur/cadence/internal/engine"

// run consumes engine events one at a time until the engine closes its
// event channel. Release does not stop the loop: events addressed to a
// released player keep being drained (handleEvent discards them) so an
// engine mid-emission on a bounded channel never blocks and still reaches
// the release command.
func (p *Player) run() {
	for ev := range p.events {
		p.handleEvent(ev)
	}
}

// handleEvent applies one engine event to the facade state and notifies
// listeners. Events addressed to a released player are discarded.
func (p *Player) handleEvent(ev engine.Event) {
	p.mu.Lock()
	if p.released {
		p.mu.Unlock()
		return
	}

	var notify func(Listener)
	switch e := ev.(type) {
	case engine.StateChanged:
		p.playbackState = e.State
		playWhenReady, state := p.playWhenReady, p.playbackState
		notify = func(l Listener) { l.OnPlayerStateChanged(playWhenReady, state) }

	case engine.PlayWhenReadyAck:
		if p.pendingPlayWhenReadyAcks == 0 {
			p.log.Warn().Msg("unmatched play-when-ready ack")
			break
		}
		p.pendingPlayWhenReadyAcks--
		if p.pendingPlayWhenReadyAcks == 0 {
			notify = func(l Listener) { l.OnPlayWhenReadyCommitted() }
		}

	case engine.SourceProviderAck, engine.SeekAck:
		// Both request kinds share one counter; only the net zero crossing
		// un-gates snapshot reads (see SourceChanged below).
		if p.pendingTransitionAcks == 0 {
			p.log.Warn().Msg("unmatched transition ack")
			break
		}
		p.pendingTransitionAcks--

	case engine.SourceChanged:
		p.snapshot = e.Snapshot
		if p.pendingTransitionAcks == 0 {
			index := e.Snapshot.SourceIndex
			notify = func(l Listener) { l.OnPositionDiscontinuity(index, 0) }
		}
		// A snapshot arriving while transitions are still pending is stale
		// relative to the outstanding request: store it, suppress the
		// discontinuity notification.

	case engine.Error:
		err := e.Err
		p.log.Error().Err(err).Msg("engine reported playback failure")
		notify = func(l Listener) { l.OnPlayerError(err) }
	}

	listeners := p.listeners
	p.mu.Unlock()

	if notify == nil {
		return
	}
	for _, l := range listeners {
		notify(l)
	}
}
