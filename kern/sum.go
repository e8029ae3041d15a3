package kern

import (
	"gonum.org/v1/gonum/mat"
)

var (
	sum *Sum
	_   Kernel = sum // Check that Sum respects the Kernel interface.
)

// Sum of two or more kernels. Nested sums are flattened.
type Sum struct {
	parts []Kernel
}

func NewSum(first, second Kernel) *Sum {
	parts := make([]Kernel, 0, 2)
	switch first := first.(type) {
	case *Sum:
		parts = append(parts, first.parts...)
	default:
		parts = append(parts, first)
	}
	switch second := second.(type) {
	case *Sum:
		parts = append(parts, second.parts...)
	default:
		parts = append(parts, second)
	}
	return &Sum{
		parts: parts,
	}
}

func (k *Sum) Eval(x1, x2 mat.Vector) float64 {
	total := 0.0
	for _, part := range k.parts {
		total += part.Eval(x1, x2)
	}
	return total
}
