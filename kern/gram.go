package kern

import (
	"gonum.org/v1/gonum/mat"
	"sync"
)

// Gram computes the pairwise kernel matrix of the rows of x against the
// rows of y, i.e. entry (i, j) is k.Eval(x_i, y_j). A nil y means y = x.
// With nWorkers > 1 the rows are split across a pool of goroutines; the
// result is identical to the serial one.
func Gram(k Kernel, x, y *mat.Dense, nWorkers int) *mat.Dense {
	if y == nil {
		y = x
	}
	n, _ := x.Dims()
	m, _ := y.Dims()
	out := mat.NewDense(n, m, nil)
	if nWorkers <= 1 {
		for i := 0; i < n; i++ {
			gramRow(k, out, x, y, i)
		}
		return out
	}
	rowChan := make(chan int, 100)
	defer close(rowChan)
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		go func() {
			for i := range rowChan {
				gramRow(k, out, x, y, i)
				wg.Done()
			}
		}()
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		rowChan <- i
	}
	wg.Wait()
	return out
}

// Workers write to disjoint rows of out, so no locking is needed.
func gramRow(k Kernel, out, x, y *mat.Dense, i int) {
	m, _ := y.Dims()
	xi := x.RowView(i)
	for j := 0; j < m; j++ {
		out.Set(i, j, k.Eval(xi, y.RowView(j)))
	}
}
