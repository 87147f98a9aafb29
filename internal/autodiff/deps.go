package autodiff

import "github.com/RoaringBitmap/roaring/v2"

// Dependencies returns the ids of the leaf nodes that out depends on,
// following the chainable list of the current generation. A leaf is any node
// no entry of the generation produced: NewVar results, constants, and nodes
// of enclosing generations. Adjoints are not touched.
func (t *Tape) Dependencies(out Var) *roaring.Bitmap {
	_, chain := t.generation()
	live := roaring.New()
	live.Add(uint32(out.id))
	produced := roaring.New()

	for i := len(t.chain) - 1; i >= chain; i-- {
		e := &t.chain[i]
		produced.Add(uint32(e.out))
		if !live.Contains(uint32(e.out)) {
			continue
		}
		e.visitOperands(func(id int32) {
			live.Add(uint32(id))
		})
	}

	live.AndNot(produced)
	return live
}

// DependsOn reports whether any of wrt influences out.
func (t *Tape) DependsOn(out Var, wrt []Var) bool {
	deps := t.Dependencies(out)
	for _, w := range wrt {
		if deps.Contains(uint32(w.id)) {
			return true
		}
	}
	return false
}
