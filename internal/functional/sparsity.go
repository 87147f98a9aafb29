package functional

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/check"
)

// SparsityPattern evaluates f at x and reports, for every output, the set of
// input indices it structurally depends on. The pattern is read off the
// recorded graph, so a dependency whose partial happens to be zero at x
// still counts. No reverse sweep is run.
func SparsityPattern(t *autodiff.Tape, f VectorFunc[autodiff.Var], x []float64) ([]*roaring.Bitmap, error) {
	if err := check.NonEmpty("functional.SparsityPattern", "x", x); err != nil {
		return nil, err
	}
	var rows []*roaring.Bitmap
	err := t.Nested(func() error {
		xs := t.Vars(x)
		ys, err := f(xs)
		if err != nil {
			return err
		}
		// Inputs are the first nodes of the scope, so id - first is the index.
		first := uint32(xs[0].ID())
		inputs := roaring.New()
		inputs.AddRange(uint64(first), uint64(first)+uint64(len(xs)))

		rows = make([]*roaring.Bitmap, len(ys))
		for i, y := range ys {
			deps := roaring.And(t.Dependencies(y), inputs)
			row := roaring.New()
			it := deps.Iterator()
			for it.HasNext() {
				row.Add(it.Next() - first)
			}
			rows[i] = row
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("functional.SparsityPattern: %w", err)
	}
	return rows, nil
}
