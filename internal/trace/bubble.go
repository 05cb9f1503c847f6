package trace

// Bubble records bubble sort: adjacent pairs are compared and exchanged,
// and each pass settles the largest remaining value at the end.
func Bubble(input Array) Trace {
	r := newRecorder(input)
	a := r.arr
	n := len(a)
	if n <= 1 {
		return r.finish()
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			r.emit(KindCompare, []int{j, j + 1}, nil, a[j], a[j+1])
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				r.emit(KindSwap, []int{j, j + 1}, []int{j, j + 1}, a[j], a[j+1])
			} else {
				r.emit(KindInOrder, nil, nil)
			}
		}
		r.emit(KindSettle, nil, []int{n - i - 1}, n-i-1)
	}

	return r.finish()
}
