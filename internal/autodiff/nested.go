package autodiff

import "github.com/born-ml/adjoint/internal/arena"

// checkpoint is the saved state of a nested scope.
type checkpoint struct {
	mark  arena.Mark
	nodes int
	chain int
}

// StartNested opens a nested scope. Nodes created until the matching
// RecoverNested form their own generation: Grad only sweeps them, and
// RecoverNested reclaims them (and their arena memory) without touching
// anything created before.
//
// Every StartNested must be paired with RecoverNested on all exit paths,
// error and panic included; prefer Nested, which guarantees it.
func (t *Tape) StartNested() {
	t.nested = append(t.nested, checkpoint{
		mark:  t.arena.Mark(),
		nodes: len(t.vals),
		chain: len(t.chain),
	})
}

// RecoverNested closes the innermost nested scope, restoring the node lists
// and arena cursor to their state at the matching StartNested. Vars created
// inside the scope are invalid afterwards. Panics if no scope is open.
func (t *Tape) RecoverNested() {
	n := len(t.nested)
	if n == 0 {
		panic("autodiff: RecoverNested called without StartNested")
	}
	cp := t.nested[n-1]
	t.nested = t.nested[:n-1]
	t.truncate(cp.nodes, cp.chain)
	t.arena.ResetTo(cp.mark)
}

// Nested runs fn inside a nested scope and always recovers it, whether fn
// returns normally, returns an error, or panics. The error from fn is
// returned unchanged and a panic is re-raised after recovery.
func (t *Tape) Nested(fn func() error) error {
	t.StartNested()
	defer t.RecoverNested()
	return fn()
}

// NestedDepth returns the number of open nested scopes.
func (t *Tape) NestedDepth() int {
	return len(t.nested)
}
