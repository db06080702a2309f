package ntru

// CenterModQ maps every coefficient to its representative in [-q/2, q/2).
func CenterModQ(a []int64, q int64) []int64 {
	out := make([]int64, len(a))
	for i, v := range a {
		t := v % q
		if t < 0 {
			t += q
		}
		if 2*t >= q {
			t -= q
		}
		out[i] = t
	}
	return out
}

// DecenterToModQ maps every coefficient to its representative in [0, q).
func DecenterToModQ(a []int64, q int64) []int64 {
	out := make([]int64, len(a))
	for i, v := range a {
		t := v % q
		if t < 0 {
			t += q
		}
		out[i] = t
	}
	return out
}
