package autodiff

import (
	"math"

	"github.com/born-ml/adjoint/internal/arena"
)

// Sum returns the sum of xs as a single n-ary node. The empty sum is a
// constant 0.
func (t *Tape) Sum(xs []Var) Var {
	total := 0.0
	for _, x := range xs {
		total += x.Val()
	}
	out := t.push(total)
	if t.noGrad != 0 || len(xs) == 0 {
		return out
	}
	ids := arena.AllocSlice[int32](t.arena, len(xs))
	ones := arena.AllocSlice[float64](t.arena, len(xs))
	for i, x := range xs {
		ids[i] = x.id
		ones[i] = 1
	}
	t.chain = append(t.chain, entry{kind: kindNary, out: out.id, operands: ids, partials: ones})
	return out
}

// DotScalar returns sum(xs[i] * c[i]). xs and c must have equal length.
func (t *Tape) DotScalar(xs []Var, c []float64) Var {
	total := 0.0
	for i, x := range xs {
		total += x.Val() * c[i]
	}
	return t.Precomputed(total, xs, c)
}

// LogSumExp returns log(sum(exp(xs))), shifted by the maximum so that it
// does not overflow. The empty input gives -Inf.
func (t *Tape) LogSumExp(xs []Var) Var {
	if len(xs) == 0 {
		return t.push(math.Inf(-1))
	}
	m := math.Inf(-1)
	for _, x := range xs {
		m = math.Max(m, x.Val())
	}
	if math.IsInf(m, 0) {
		// All -Inf, or some +Inf: the shift is meaningless.
		return t.Precomputed(m, xs, make([]float64, len(xs)))
	}

	partials := arena.AllocSlice[float64](t.arena, len(xs))
	sum := 0.0
	for i, x := range xs {
		partials[i] = math.Exp(x.Val() - m)
		sum += partials[i]
	}
	for i := range partials {
		partials[i] /= sum
	}
	lse := m + math.Log(sum)

	out := t.push(lse)
	if t.noGrad != 0 {
		return out
	}
	ids := arena.AllocSlice[int32](t.arena, len(xs))
	for i, x := range xs {
		ids[i] = x.id
	}
	t.chain = append(t.chain, entry{kind: kindNary, out: out.id, operands: ids, partials: partials})
	return out
}

// Dot returns the inner product of xs and ys, which must have equal length.
// The partials are read from the operand values during the reverse sweep
// rather than stored.
func (t *Tape) Dot(xs, ys []Var) Var {
	n := &dotNode{
		t:  t,
		xs: arena.AllocSlice[int32](t.arena, len(xs)),
		ys: arena.AllocSlice[int32](t.arena, len(ys)),
	}
	total := 0.0
	for i := range xs {
		n.xs[i], n.ys[i] = xs[i].id, ys[i].id
		total += xs[i].Val() * ys[i].Val()
	}
	return t.Push(total, n)
}

type dotNode struct {
	t      *Tape
	xs, ys []int32
}

func (n *dotNode) Chain(t *Tape, adj float64) {
	for i, x := range n.xs {
		y := n.ys[i]
		t.adjs[x] += adj * t.vals[y]
		t.adjs[y] += adj * t.vals[x]
	}
}

func (n *dotNode) Operands() []Var {
	out := make([]Var, 0, 2*len(n.xs))
	for i := range n.xs {
		out = append(out, Var{t: n.t, id: n.xs[i]}, Var{t: n.t, id: n.ys[i]})
	}
	return out
}
