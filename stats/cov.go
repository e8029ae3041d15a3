package stats

import (
	"github.com/turkunov/ml-from-scratch/utils"
	"gonum.org/v1/gonum/mat"
)

// CovMatrix computes the sample covariance matrix of the columns of x,
// with Bessel's correction:
//
//	(1 / (n-1)) * (x - mean(x))^T (y - mean(y))
//
// A nil y means y = x (self-covariance, a symmetric matrix); otherwise
// the result is the cross-covariance of the columns of x against the
// columns of y, of shape (cols(x), cols(y)). x and y must have the same
// number of rows or the multiplication panics inside gonum. A single-row
// input divides by n-1 = 0 and the entries come out NaN, since the
// estimator is undefined there.
func CovMatrix(x, y *mat.Dense) *mat.Dense {
	if y == nil {
		y = x
	}
	n, p := x.Dims()
	_, q := y.Dims()
	xc := utils.Center(x)
	yc := utils.Center(y)
	out := mat.NewDense(p, q, nil)
	out.Mul(xc.T(), yc)
	out.Scale(1.0/float64(n-1), out)
	return out
}
