package ntru

// naiveConvolution computes a*b modulo x^N - 1, or modulo x^N + 1 when
// negacyclic is set, over int64. Both inputs must have N coefficients and the
// caller must keep the products within int64.
func naiveConvolution(a, b []int64, negacyclic bool) []int64 {
	N := len(a)
	res := make([]int64, N)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			k := i + j
			if k < N {
				res[k] += ai * bj
			} else if negacyclic {
				res[k-N] -= ai * bj
			} else {
				res[k-N] += ai * bj
			}
		}
	}
	return res
}
