package kern

import (
	"gonum.org/v1/gonum/mat"
)

var (
	linear *Linear
	_      Kernel = linear // Check that Linear respects the Kernel interface.
)

// Inner product of the two vectors, sum_i x1[i]*x2[i]. Vectors of
// different lengths panic inside gonum.
func LinearKernel(x1, x2 mat.Vector) float64 {
	return mat.Dot(x1, x2)
}

type Linear struct{}

func NewLinear() *Linear {
	return &Linear{}
}

func (k *Linear) Eval(x1, x2 mat.Vector) float64 {
	return LinearKernel(x1, x2)
}
