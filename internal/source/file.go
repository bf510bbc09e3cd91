package source

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"

	"github.com/lvasseur/cadence/internal/engine"
)

// Meta holds the tag metadata of a file source.
type Meta struct {
	Title  string
	Artist string
	Album  string
}

// FileSource is a local media file with tag metadata attached. Engines that
// cannot probe media themselves may use the duration hint.
type FileSource struct {
	path       string
	meta       Meta
	durationMs int64
}

// NewFileSource reads tag metadata from path and returns a source for it.
// Files without readable tags still yield a usable source; the title falls
// back to the file basename.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta := Meta{Title: filepath.Base(path)}
	if m, err := tag.ReadFrom(f); err == nil {
		if title := m.Title(); title != "" {
			meta.Title = title
		}
		meta.Artist = m.Artist()
		meta.Album = m.Album()
	}

	return &FileSource{
		path:       path,
		meta:       meta,
		durationMs: engine.UnknownTime,
	}, nil
}

// URI returns the file path.
func (s *FileSource) URI() string {
	return s.path
}

// Meta returns the tag metadata read when the source was created.
func (s *FileSource) Meta() Meta {
	return s.meta
}

// DurationHint returns the known duration in milliseconds, or
// engine.UnknownTime. Tags do not carry durations, so the hint stays
// unknown unless set by the caller.
func (s *FileSource) DurationHint() int64 {
	return s.durationMs
}

// SetDurationHint records a duration for engines that cannot probe media.
func (s *FileSource) SetDurationHint(ms int64) {
	s.durationMs = ms
}
