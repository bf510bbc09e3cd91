//go:build !linux

package mpris

import (
	"github.com/lvasseur/cadence/internal/engine"
	"github.com/lvasseur/cadence/internal/player"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ *player.Player, _ []engine.Source) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
