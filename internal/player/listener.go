package player

import "github.com/lvasseur/cadence/internal/engine"

// Listener receives playback notifications from a Player.
//
// Callbacks are invoked synchronously from the call that triggered them
// (for command-issuing methods) or from the player's event dispatch
// goroutine (for engine-reported events). A listener may call back into the
// player, including adding or removing listeners; changes made during a
// notification pass take effect on the next pass.
type Listener interface {
	// OnPlayerStateChanged is called when play-when-ready or the engine's
	// playback state changes. The state may be stale relative to a request
	// the engine has not acknowledged yet.
	OnPlayerStateChanged(playWhenReady bool, state engine.State)

	// OnPlayWhenReadyCommitted is called when the engine has acknowledged
	// every outstanding play-when-ready request.
	OnPlayWhenReadyCommitted()

	// OnPositionDiscontinuity is called when the playback position jumps
	// due to a seek or a source change, as opposed to natural progress.
	OnPositionDiscontinuity(sourceIndex int, positionMs int64)

	// OnPlayerError is called with engine-reported failures, forwarded
	// verbatim.
	OnPlayerError(err error)
}
