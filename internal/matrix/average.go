package matrix

import "fmt"

// Average returns the element-wise mean of the given matrices. Every input
// must carry the same axis labels in the same order.
func Average(matrices []*Matrix) (*Matrix, error) {
	if len(matrices) == 0 {
		return nil, fmt.Errorf("no matrices to average")
	}
	first := matrices[0]
	for i, m := range matrices[1:] {
		if !SameLabels(first, m) {
			return nil, fmt.Errorf("matrix %d does not share the first matrix's labels", i+1)
		}
	}
	avg := New(first.Labels)
	n := first.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for _, m := range matrices {
				sum += m.Values[i][j]
			}
			avg.Values[i][j] = sum / float64(len(matrices))
		}
	}
	return avg, nil
}
