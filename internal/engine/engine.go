// Package engine implements the progression, penalty, vitality, and
// achievement rules over the player state. All operations are
// synchronous, run to completion, and either mutate the state fully or
// leave it untouched.
package engine

import "github.com/mfehric/gamify/internal/catalog"

// Engine applies the rule tables from the catalog to a State. It holds
// no mutable state of its own; the State is threaded through every
// call explicitly.
type Engine struct {
	Catalog *catalog.Catalog
	Clock   Clock
}

func New(cat *catalog.Catalog, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{Catalog: cat, Clock: clock}
}

func clampFloor(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
