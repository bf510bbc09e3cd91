//go:build linux

// Package mpris exposes a player over D-Bus using the MPRIS media player
// interface, so desktop media keys and applets can drive it.
package mpris

import (
	"fmt"
	"hash/fnv"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/lvasseur/cadence/internal/engine"
	"github.com/lvasseur/cadence/internal/player"
	"github.com/lvasseur/cadence/internal/source"
)

// Adapter connects a player to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. The sources slice mirrors the
// provider handed to the player and is used for metadata lookups; it may be
// nil.
func New(p *player.Player, sources []engine.Source) (*Adapter, error) {
	a := &Adapter{}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{player: p, sources: sources}

	a.server = server.NewServer("cadence", rootAdapter, playerAdapter)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - the harness manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Cadence", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	player  *player.Player
	sources []engine.Source
}

func (p *playerAdapter) Next() error {
	p.player.SeekToSource(p.player.CurrentSourceIndex()+1, 0)
	return nil
}

func (p *playerAdapter) Previous() error {
	if index := p.player.CurrentSourceIndex(); index > 0 {
		p.player.SeekToSource(index-1, 0)
	}
	return nil
}

func (p *playerAdapter) Pause() error {
	p.player.SetPlayWhenReady(false)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.player.SetPlayWhenReady(!p.player.PlayWhenReady())
	return nil
}

func (p *playerAdapter) Stop() error {
	p.player.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	p.player.SetPlayWhenReady(true)
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	position := p.player.Position() + int64(offset)/1000
	if position < 0 {
		position = 0
	}
	p.player.SeekTo(position)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.player.SeekTo(int64(position) / 1000)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.player.PlaybackState() {
	case engine.StateReady, engine.StateBuffering, engine.StatePreparing:
		if p.player.PlayWhenReady() {
			return types.PlaybackStatusPlaying, nil
		}
		return types.PlaybackStatusPaused, nil
	case engine.StateIdle, engine.StateEnded:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	index := p.player.CurrentSourceIndex()
	if index < 0 || index >= len(p.sources) {
		return types.Metadata{}, nil
	}
	src := p.sources[index]

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(src.URI())),
		Title:   filepath.Base(src.URI()),
	}
	if duration := p.player.Duration(); duration != engine.UnknownTime {
		meta.Length = types.Microseconds(duration * 1000)
	}

	if fs, ok := src.(*source.FileSource); ok {
		tags := fs.Meta()
		meta.Title = tags.Title
		meta.Artist = []string{tags.Artist}
		meta.Album = tags.Album
		if artPath := FindAlbumArt(fs.URI()); artPath != "" {
			meta.ArtUrl = "file://" + artPath
		}
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume lives in the engine, not this layer
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	position := p.player.Position()
	if position == engine.UnknownTime {
		return 0, nil
	}
	return position * 1000, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.player.CurrentSourceIndex()+1 < len(p.sources), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.player.CurrentSourceIndex() > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.player.PlaybackState() != engine.StateIdle, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(uri string) string {
	h := fnv.New64a()
	h.Write([]byte(uri))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
