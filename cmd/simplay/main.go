// Command simplay exercises the playback facade end to end: it wires the
// facade to the simulated engine, restores the previous session, exposes
// media controls over MPRIS and logs every listener notification. Useful
// for manual testing of the command/event protocol without real media
// decoding.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lvasseur/cadence/internal/config"
	"github.com/lvasseur/cadence/internal/engine"
	"github.com/lvasseur/cadence/internal/engine/sim"
	"github.com/lvasseur/cadence/internal/log"
	"github.com/lvasseur/cadence/internal/mpris"
	"github.com/lvasseur/cadence/internal/player"
	"github.com/lvasseur/cadence/internal/session"
	"github.com/lvasseur/cadence/internal/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Configure(log.Config{Level: cfg.LogLevel})
	logger := log.WithComponent("simplay")

	paths := os.Args[1:]
	if len(paths) == 0 {
		return fmt.Errorf("usage: simplay <file>...")
	}

	sources := make([]engine.Source, 0, len(paths))
	for _, path := range paths {
		src, err := source.NewFileSource(path)
		if err != nil {
			return fmt.Errorf("open source %s: %w", path, err)
		}
		logger.Info().Str("path", path).Str("title", src.Meta().Title).Msg("loaded source")
		sources = append(sources, src)
	}

	commands, events := engine.Pipe(cfg.CommandBuffer)
	sim.New(commands, events, sim.Options{
		Tick:            cfg.Sim.Tick(),
		DefaultDuration: cfg.Sim.DefaultDuration(),
		Logger:          log.WithComponent("sim"),
	})
	p := player.New(commands, events, log.WithComponent("player"))
	p.AddListener(&logListener{log: logger})

	var store *session.Store
	var saved *session.Session
	if cfg.Session {
		store, err = session.Open()
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		defer store.Close()
		if saved, err = store.Load(); err != nil {
			logger.Warn().Err(err).Msg("could not load previous session")
		}
	}

	p.SetSourceProvider(source.List(sources...))
	if saved != nil && saved.SourceIndex < len(sources) {
		logger.Info().
			Int("source", saved.SourceIndex).
			Int64("position_ms", saved.PositionMs).
			Msg("resuming previous session")
		p.SeekToSource(saved.SourceIndex, saved.PositionMs)
		p.SetPlayWhenReady(saved.PlayWhenReady)
	} else {
		p.SetPlayWhenReady(true)
	}

	if cfg.Mpris {
		bridge, err := mpris.New(p, sources)
		if err != nil {
			logger.Warn().Err(err).Msg("mpris bridge unavailable")
		} else {
			defer bridge.Close()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	statusTicker := time.NewTicker(5 * time.Second)
	defer statusTicker.Stop()

	for {
		select {
		case <-statusTicker.C:
			logger.Info().
				Stringer("state", p.PlaybackState()).
				Int("source", p.CurrentSourceIndex()).
				Int64("position_ms", p.Position()).
				Int64("duration_ms", p.Duration()).
				Int("buffered_pct", p.BufferedPercentage()).
				Msg("status")
		case sig := <-sigCh:
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
			if store != nil {
				err := store.Save(session.Session{
					SourceIndex:   p.CurrentSourceIndex(),
					PositionMs:    p.Position(),
					PlayWhenReady: p.PlayWhenReady(),
				})
				if err != nil {
					logger.Warn().Err(err).Msg("could not save session")
				}
			}
			p.Release()
			return nil
		}
	}
}

// logListener logs every facade notification.
type logListener struct {
	log zerolog.Logger
}

func (l *logListener) OnPlayerStateChanged(playWhenReady bool, state engine.State) {
	l.log.Info().Bool("play_when_ready", playWhenReady).Stringer("state", state).Msg("state changed")
}

func (l *logListener) OnPlayWhenReadyCommitted() {
	l.log.Info().Msg("play-when-ready committed")
}

func (l *logListener) OnPositionDiscontinuity(sourceIndex int, positionMs int64) {
	l.log.Info().Int("source", sourceIndex).Int64("position_ms", positionMs).Msg("position discontinuity")
}

func (l *logListener) OnPlayerError(err error) {
	l.log.Error().Err(err).Msg("player error")
}
