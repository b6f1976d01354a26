package blob

import (
	"errors"

	"github.com/katalvlaran/wang/tile"
)

// ErrNoCandidate indicates that, in strict mode, at least one cell had no
// catalog tile compatible with its neighbors.
var ErrNoCandidate = errors.New("blob: no catalog tile fits")

// Option customizes a Map before generation.
type Option func(*config)

type config struct {
	catalog *tile.Catalog
	strict  bool
}

func defaultConfig() config {
	return config{catalog: tile.DefaultCatalog()}
}

// WithCatalog makes the generator search c instead of the default catalog.
// Panics on nil.
func WithCatalog(c *tile.Catalog) Option {
	if c == nil {
		panic("blob: WithCatalog(nil)")
	}
	return func(cfg *config) { cfg.catalog = c }
}

// WithStrict makes Generate return ErrNoCandidate when any cell stays empty.
func WithStrict() Option {
	return func(cfg *config) { cfg.strict = true }
}
