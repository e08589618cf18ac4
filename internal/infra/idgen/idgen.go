// Package idgen issues opaque ids for diary entities.
package idgen

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/google/uuid"
)

// Ensure Generator implements domain.IDGenerator.
var _ domain.IDGenerator = (*Generator)(nil)

// Generator issues random UUIDs, falling back to a timestamp plus random
// suffix when the secure random source is unavailable.
type Generator struct {
	random io.Reader // nil = crypto/rand via uuid
	clock  domain.Clock
}

// New creates a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{clock: domain.RealClock{}}
}

// NewWithSource creates a Generator reading randomness from r.
// This is useful for testing the fallback path.
func NewWithSource(r io.Reader, clock domain.Clock) *Generator {
	return &Generator{random: r, clock: clock}
}

// NewID returns a new id.
func (g *Generator) NewID() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.random != nil {
		id, err = uuid.NewRandomFromReader(g.random)
	} else {
		id, err = uuid.NewRandom()
	}
	if err == nil {
		return id.String()
	}
	return g.fallback()
}

// fallback returns "<unix-nanos>_<hex>", unique enough for one process.
func (g *Generator) fallback() string {
	return fmt.Sprintf("%d_%x", g.clock.Now().UnixNano(), rand.Uint64())
}
