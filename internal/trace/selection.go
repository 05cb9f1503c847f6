package trace

// Selection records selection sort: each pass scans the unsorted suffix for
// its minimum and moves it to the front of the suffix.
func Selection(input Array) Trace {
	r := newRecorder(input)
	a := r.arr
	n := len(a)
	if n <= 1 {
		return r.finish()
	}

	for i := 0; i < n-1; i++ {
		minIdx := i
		r.emit(KindSearch, []int{i}, nil, i)

		for j := i + 1; j < n; j++ {
			r.emit(KindCompare, []int{minIdx, j}, nil, a[minIdx], a[j])
			if a[j] < a[minIdx] {
				minIdx = j
				r.emit(KindNewMin, []int{minIdx}, nil, a[minIdx], minIdx)
			}
		}

		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
			r.emit(KindSwap, []int{i, minIdx}, []int{i, minIdx}, a[minIdx], a[i])
		}
		r.emit(KindSettle, nil, []int{i}, i)
	}

	return r.finish()
}
