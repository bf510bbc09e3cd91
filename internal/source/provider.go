// Package source provides engine.Source and engine.Provider implementations:
// the single-source adapter, a fixed-list provider, and a file-backed source
// carrying tag metadata.
package source

import "github.com/lvasseur/cadence/internal/engine"

// Single wraps one pre-built source as a provider with a source count of 1.
func Single(s engine.Source) engine.Provider {
	return singleProvider{source: s}
}

type singleProvider struct {
	source engine.Source
}

func (p singleProvider) SourceCount() int {
	return 1
}

// CreateSource returns the wrapped source regardless of index. The engine
// requests it at most once; repeated calls get the same instance rather
// than a fresh one.
func (p singleProvider) CreateSource(int) engine.Source {
	return p.source
}

// List exposes a fixed slice of sources as a provider.
func List(sources ...engine.Source) engine.Provider {
	return listProvider(sources)
}

type listProvider []engine.Source

func (p listProvider) SourceCount() int {
	return len(p)
}

func (p listProvider) CreateSource(index int) engine.Source {
	return p[index]
}
