// Package main provides the adjoint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/adjoint/autodiff"
	"github.com/born-ml/adjoint/functional"
	"github.com/born-ml/adjoint/scalar"
)

const version = "v0.1.0-dev"

// f(x, y) = x*x*y + sin(y)
func f[T scalar.Scalar[T]](x []T) (T, error) {
	return x[0].Mul(x[0]).Mul(x[1]).Add(x[1].Sin()), nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("adjoint %s\n", version)
	case "demo":
		if err := demo(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("adjoint - automatic differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate f(x, y) = x*x*y + sin(y) at (3, 2)")
}

func demo() error {
	x := []float64{3, 2}
	t := autodiff.New()
	defer t.Release()

	fx, grad, err := functional.Gradient(t, f[autodiff.Var], x)
	if err != nil {
		return err
	}
	fmt.Printf("f(3, 2)        = %.4f\n", fx)
	fmt.Printf("gradient       = [%.4f %.4f]\n", grad[0], grad[1])

	_, _, hess, err := functional.Hessian(t, f[functional.MixedVar], x)
	if err != nil {
		return err
	}
	fmt.Printf("hessian        = [%.4f %.4f; %.4f %.4f]\n", hess[0][0], hess[0][1], hess[1][0], hess[1][1])

	_, hv, err := functional.HessianTimesVector(t, f[functional.MixedVar], x, []float64{1, 0})
	if err != nil {
		return err
	}
	fmt.Printf("hessian * e1   = [%.4f %.4f]\n", hv[0], hv[1])

	_, fd, err := functional.FiniteDiffGradient(f[scalar.Float], x, functional.DefaultFiniteDiffConfig())
	if err != nil {
		return err
	}
	fmt.Printf("finite diff    = [%.4f %.4f]\n", fd[0], fd[1])

	s := t.Stats()
	fmt.Printf("tape           = %d nodes (peak %d), arena %d bytes reserved\n",
		s.Nodes, s.PeakNodes, s.Arena.Capacity)
	return nil
}
