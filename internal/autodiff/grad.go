package autodiff

// Grad computes the gradient of out with respect to every node of the
// current generation, that is every node created since the innermost open
// nested scope (the whole tape if none is open).
//
// Algorithm:
//  1. Zero the adjoints of the current generation
//  2. Seed the adjoint of out with 1
//  3. Walk the chainable list of the current generation backwards, calling
//     each entry's reverse step exactly once
//
// Afterwards x.Adj() holds d out / d x for every Var x of the generation.
// Adjoints are reset on every call, so consecutive Grad calls on different
// outputs do not contaminate each other. out must belong to the current
// generation; this is not checked.
func (t *Tape) Grad(out Var) {
	nodes, chain := t.generation()
	clear(t.adjs[nodes:])
	t.adjs[out.id] = 1
	for i := len(t.chain) - 1; i >= chain; i-- {
		t.propagate(&t.chain[i])
	}
}

// ZeroAdjoints resets the adjoints of the current generation.
func (t *Tape) ZeroAdjoints() {
	nodes, _ := t.generation()
	clear(t.adjs[nodes:])
}

// Gradient runs Grad(out) and returns the adjoints of wrt.
func (t *Tape) Gradient(out Var, wrt []Var) []float64 {
	t.Grad(out)
	return Adjoints(wrt)
}

// generation returns the start of the current generation in the all-nodes
// and chainable lists.
func (t *Tape) generation() (nodes, chain int) {
	if n := len(t.nested); n > 0 {
		cp := t.nested[n-1]
		return cp.nodes, cp.chain
	}
	return 0, 0
}
