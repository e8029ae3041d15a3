package kern

import (
	"gonum.org/v1/gonum/mat"
)

type Kernel interface {
	// Similarity between the two vectors under the kernel.
	Eval(x1, x2 mat.Vector) float64
}
