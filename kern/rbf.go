package kern

import (
	"gonum.org/v1/gonum/mat"
	"math"
)

var (
	rbf *RBF
	_   Kernel = rbf // Check that RBF respects the Kernel interface.
)

// Radial basis function kernel, exp(-gamma * ||x1 - x2||^2). The larger
// gamma is, the more influential the distance between the two vectors is.
// Identical vectors give exactly 1 for any gamma.
func RBFKernel(gamma float64, x1, x2 mat.Vector) float64 {
	var diff mat.VecDense
	diff.SubVec(x1, x2)
	dist := mat.Dot(&diff, &diff)
	return math.Exp(-gamma * dist)
}

type RBF struct {
	gamma float64
}

func NewRBF(gamma float64) *RBF {
	return &RBF{
		gamma: gamma,
	}
}

func (k *RBF) Eval(x1, x2 mat.Vector) float64 {
	return RBFKernel(k.gamma, x1, x2)
}
