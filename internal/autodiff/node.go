package autodiff

import "github.com/born-ml/adjoint/internal/arena"

// kind tags the shape of a chainable entry.
type kind uint8

const (
	kindUnary  kind = iota // one operand, stored partial
	kindBinary             // two operands, stored partials
	kindMul                // a*b, partials read from operand values
	kindDiv                // a/b, partials read from operand and output values
	kindNary               // operands and partials stored in the arena
	kindCustom             // user-defined Chainer
)

// entry is one element of the chainable list.
type entry struct {
	kind     kind
	out      int32
	a, b     int32
	da, db   float64
	operands []int32   // kindNary, arena memory
	partials []float64 // kindNary, arena memory
	node     Chainer   // kindCustom
}

// Chainer is a node with a user-defined reverse step, for operations whose
// partials are cheaper to compute lazily than to store.
type Chainer interface {
	// Chain adds adj times each local partial derivative into the
	// corresponding operand adjoint, using Tape.AddAdj. It must not create
	// nodes.
	Chain(t *Tape, adj float64)
	// Operands lists the nodes the output was computed from.
	Operands() []Var
}

// Push records a node with value val whose reverse step is node.Chain.
func (t *Tape) Push(val float64, node Chainer) Var {
	out := t.push(val)
	if t.noGrad == 0 {
		t.chain = append(t.chain, entry{kind: kindCustom, out: out.id, node: node})
	}
	return out
}

// Precomputed records a node with value val and the given partial
// derivatives with respect to operands. Both slices are copied into the
// tape's arena; the caller may reuse them.
func (t *Tape) Precomputed(val float64, operands []Var, partials []float64) Var {
	if len(operands) != len(partials) {
		panic("autodiff: Precomputed needs one partial per operand")
	}
	out := t.push(val)
	if t.noGrad != 0 || len(operands) == 0 {
		return out
	}
	ids := arena.AllocSlice[int32](t.arena, len(operands))
	for i, op := range operands {
		ids[i] = op.id
	}
	t.chain = append(t.chain, entry{
		kind:     kindNary,
		out:      out.id,
		operands: ids,
		partials: arena.CopySlice(t.arena, partials),
	})
	return out
}

// AddAdj adds delta to the adjoint of x. It is meant for Chainer
// implementations.
func (t *Tape) AddAdj(x Var, delta float64) {
	t.adjs[x.id] += delta
}

// Adj returns the adjoint of x. It is meant for Chainer implementations.
func (t *Tape) Adj(x Var) float64 {
	return t.adjs[x.id]
}

func (t *Tape) unary(val float64, a Var, da float64) Var {
	out := t.push(val)
	if t.noGrad == 0 {
		t.chain = append(t.chain, entry{kind: kindUnary, out: out.id, a: a.id, da: da})
	}
	return out
}

func (t *Tape) binary(val float64, a, b Var, da, db float64) Var {
	out := t.push(val)
	if t.noGrad == 0 {
		t.chain = append(t.chain, entry{kind: kindBinary, out: out.id, a: a.id, b: b.id, da: da, db: db})
	}
	return out
}

// lazy records a two-operand node whose partials are recomputed in chain.
func (t *Tape) lazy(k kind, val float64, a, b Var) Var {
	out := t.push(val)
	if t.noGrad == 0 {
		t.chain = append(t.chain, entry{kind: k, out: out.id, a: a.id, b: b.id})
	}
	return out
}

// propagate runs the reverse step of e.
func (t *Tape) propagate(e *entry) {
	adjs := t.adjs
	adj := adjs[e.out]
	switch e.kind {
	case kindUnary:
		adjs[e.a] += adj * e.da
	case kindBinary:
		adjs[e.a] += adj * e.da
		adjs[e.b] += adj * e.db
	case kindMul:
		va, vb := t.vals[e.a], t.vals[e.b]
		adjs[e.a] += adj * vb
		adjs[e.b] += adj * va
	case kindDiv:
		vb := t.vals[e.b]
		adjs[e.a] += adj / vb
		adjs[e.b] -= adj * t.vals[e.out] / vb
	case kindNary:
		for i, op := range e.operands {
			adjs[op] += adj * e.partials[i]
		}
	case kindCustom:
		e.node.Chain(t, adj)
	}
}

// visitOperands calls fn with the id of every operand of e.
func (e *entry) visitOperands(fn func(id int32)) {
	switch e.kind {
	case kindUnary:
		fn(e.a)
	case kindBinary, kindMul, kindDiv:
		fn(e.a)
		fn(e.b)
	case kindNary:
		for _, op := range e.operands {
			fn(op)
		}
	case kindCustom:
		for _, op := range e.node.Operands() {
			fn(op.id)
		}
	}
}
