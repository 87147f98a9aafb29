package autodiff

import (
	"strconv"

	"github.com/born-ml/adjoint/internal/scalar"
)

var _ scalar.Scalar[Var] = Var{}

// Var is a handle to a node on a Tape. Copying a Var copies the reference,
// not the node: both copies name the same node and share its adjoint.
//
// The zero Var is not attached to any tape; calling operations on it panics.
// A Var is valid until the tape is rewound past its node (RecoverMemory, or
// RecoverNested of the scope it was created in).
type Var struct {
	t  *Tape
	id int32
}

// NewVar creates a leaf node holding v.
func (t *Tape) NewVar(v float64) Var {
	return t.push(v)
}

// Vars creates one leaf per element of xs.
func (t *Tape) Vars(xs []float64) []Var {
	out := make([]Var, len(xs))
	for i, x := range xs {
		out[i] = t.push(x)
	}
	return out
}

// Const creates a leaf on the receiver's tape. Leaves and constants are the
// same kind of node; a constant is simply a leaf nobody reads the adjoint of.
func (x Var) Const(c float64) Var {
	return x.t.push(c)
}

// Val returns the node's value.
func (x Var) Val() float64 {
	return x.t.vals[x.id]
}

// Adj returns the node's accumulated adjoint.
func (x Var) Adj() float64 {
	return x.t.adjs[x.id]
}

// ID returns the node id, its position in the all-nodes list.
func (x Var) ID() int {
	return int(x.id)
}

// Tape returns the tape the node lives on, or nil for the zero Var.
func (x Var) Tape() *Tape {
	return x.t
}

// Same reports whether x and y refer to the same node.
func (x Var) Same(y Var) bool {
	return x.t == y.t && x.id == y.id
}

// IsValid reports whether x is attached to a tape and its node has not been
// rewound away.
func (x Var) IsValid() bool {
	return x.t != nil && int(x.id) < len(x.t.vals)
}

// Detach returns a new leaf with the same value. Gradients do not flow from
// the result back to x.
func (x Var) Detach() Var {
	return x.t.push(x.Val())
}

// String formats the value.
func (x Var) String() string {
	if x.t == nil {
		return "<nil>"
	}
	return strconv.FormatFloat(x.Val(), 'g', -1, 64)
}

// Values returns the values of vs.
func Values(vs []Var) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Val()
	}
	return out
}

// Adjoints returns the adjoints of vs.
func Adjoints(vs []Var) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Adj()
	}
	return out
}
