// Package autodiff implements reverse-mode automatic differentiation over
// scalars.
//
// A Tape records one node per elementary operation applied to Var handles
// during a forward evaluation. Node values and adjoints live in arrays
// indexed by node id (the all-nodes list); nodes that propagate to operands
// are additionally recorded, in creation order, in the chainable list. Since
// a node can only be built from already existing Vars, creation order is a
// topological order, and Grad walks the chainable list backwards to
// accumulate adjoints.
//
// Variable-length operand and partial arrays are carved from an arena and
// reclaimed in bulk, either all at once (RecoverMemory) or back to a
// checkpoint (StartNested / RecoverNested).
//
// Usage:
//
//	t := autodiff.New()
//	x, y := t.NewVar(3), t.NewVar(2)
//	f := x.Mul(x).Mul(y).Add(y.Sin()) // x*x*y + sin(y)
//	t.Grad(f)
//	fmt.Println(x.Adj(), y.Adj())    // 12, 9 + cos(2)
//
// A Tape is confined to one goroutine. Concurrent computations each use their
// own Tape.
package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/adjoint/internal/arena"
)

// Config controls tape allocation.
type Config struct {
	Arena        arena.Config // Backing store for operand and partial arrays
	NodeCapacity int          // Initial capacity of the node arrays
}

// DefaultConfig returns the default tape configuration.
func DefaultConfig() Config {
	return Config{
		Arena:        arena.DefaultConfig(),
		NodeCapacity: 1024,
	}
}

// Tape is the execution stack of a reverse-mode computation.
type Tape struct {
	arena *arena.Arena

	// All-nodes list, indexed by node id.
	vals []float64
	adjs []float64

	// Chainable list in creation order.
	chain []entry

	nested    []checkpoint
	noGrad    int // depth of NoGrad calls
	maxNodes  int
	peakNodes int
}

// New creates a tape with the default configuration.
func New() *Tape {
	return NewTape(DefaultConfig())
}

// NewTape creates a tape with the given configuration.
func NewTape(cfg Config) *Tape {
	n := cfg.NodeCapacity
	if n <= 0 {
		n = DefaultConfig().NodeCapacity
	}
	return &Tape{
		arena:    arena.New(cfg.Arena),
		vals:     make([]float64, 0, n),
		adjs:     make([]float64, 0, n),
		chain:    make([]entry, 0, n),
		maxNodes: math.MaxInt32,
	}
}

// Stats is a snapshot of tape usage.
type Stats struct {
	Nodes       int           // Length of the all-nodes list
	Chainable   int           // Length of the chainable list
	PeakNodes   int           // Largest Nodes value observed
	NestedDepth int           // Open nested scopes
	Arena       arena.Metrics // Backing arena usage
}

// Stats returns current usage figures.
func (t *Tape) Stats() Stats {
	return Stats{
		Nodes:       len(t.vals),
		Chainable:   len(t.chain),
		PeakNodes:   t.peakNodes,
		NestedDepth: len(t.nested),
		Arena:       t.arena.Metrics(),
	}
}

// NumNodes returns the length of the all-nodes list.
func (t *Tape) NumNodes() int {
	return len(t.vals)
}

// NumChainable returns the length of the chainable list.
func (t *Tape) NumChainable() int {
	return len(t.chain)
}

// RecoverMemory discards every node and rewinds the arena, keeping its
// blocks for the next computation. Vars created before the call are invalid
// afterwards. Panics if a nested scope is open.
func (t *Tape) RecoverMemory() {
	if len(t.nested) > 0 {
		panic("autodiff: RecoverMemory called with open nested scopes; use RecoverNested")
	}
	t.truncate(0, 0)
	t.arena.Reset()
}

// Release frees the arena. The tape cannot be used afterwards.
func (t *Tape) Release() {
	t.vals, t.adjs, t.chain, t.nested = nil, nil, nil, nil
	t.arena.Release()
}

// Own ties obj to the current generation of the tape (see arena.Own). Use it
// for heap state held by custom nodes that must be dropped with them.
func (t *Tape) Own(obj any) {
	t.arena.Own(obj)
}

// NoGrad runs fn with recording suspended: operations still compute values,
// but their results are constants that gradients do not flow through. Calls
// nest. The previous state is restored even if fn panics.
func (t *Tape) NoGrad(fn func()) {
	t.noGrad++
	defer func() { t.noGrad-- }()
	fn()
}

// IsRecording reports whether operations currently record chainable nodes.
func (t *Tape) IsRecording() bool {
	return t.noGrad == 0
}

// truncate shortens both lists. Node and chain ids past the new lengths
// become invalid.
func (t *Tape) truncate(nodes, chain int) {
	clear(t.chain[chain:])
	t.chain = t.chain[:chain]
	t.vals = t.vals[:nodes]
	t.adjs = t.adjs[:nodes]
}

// push appends a node to the all-nodes list and returns its handle.
func (t *Tape) push(val float64) Var {
	id := len(t.vals)
	if id >= t.maxNodes {
		panic(fmt.Sprintf("autodiff: tape exceeds %d nodes", t.maxNodes))
	}
	t.vals = append(t.vals, val)
	t.adjs = append(t.adjs, 0)
	if id+1 > t.peakNodes {
		t.peakNodes = id + 1
	}
	return Var{t: t, id: int32(id)}
}
