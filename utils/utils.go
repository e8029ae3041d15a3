package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Column means of a matrix.
func ColMeans(x *mat.Dense) *mat.VecDense {
	r, c := x.Dims()
	out := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += x.At(i, j)
		}
		out.SetVec(j, sum/float64(r))
	}
	return out
}

// Freshly allocated copy of a matrix with the mean of each column
// subtracted out. The input is left untouched.
func Center(x *mat.Dense) *mat.Dense {
	r, c := x.Dims()
	means := ColMeans(x)
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(i, j)-means.AtVec(j))
		}
	}
	return out
}
