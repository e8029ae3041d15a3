package kern

import (
	"gonum.org/v1/gonum/mat"
	"math"
)

var (
	polynomial *Polynomial
	_          Kernel = polynomial // Check that Polynomial respects the Kernel interface.
)

// (inner product + c) raised to pow. A negative base with a non-integer
// exponent yields NaN, following math.Pow.
func PolynomialKernel(c, pow float64, x1, x2 mat.Vector) float64 {
	return math.Pow(mat.Dot(x1, x2)+c, pow)
}

type Polynomial struct {
	c   float64
	pow float64
}

func NewPolynomial(c, pow float64) *Polynomial {
	return &Polynomial{
		c:   c,
		pow: pow,
	}
}

func (k *Polynomial) Eval(x1, x2 mat.Vector) float64 {
	return PolynomialKernel(k.c, k.pow, x1, x2)
}
