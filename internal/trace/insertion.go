package trace

// Insertion records insertion sort: each element is taken as a key and the
// larger elements before it are shifted right until the key's slot is found.
func Insertion(input Array) Trace {
	r := newRecorder(input)
	a := r.arr
	n := len(a)
	if n <= 1 {
		return r.finish()
	}

	for i := 1; i < n; i++ {
		key := a[i]
		j := i - 1
		r.emit(KindTakeKey, []int{i}, nil, key, i)

		for j >= 0 && a[j] > key {
			r.emit(KindCompare, []int{j, j + 1}, nil, a[j], key)
			a[j+1] = a[j]
			r.emit(KindShift, []int{j}, []int{j + 1}, a[j], j+1)
			j--
		}

		// Nothing moved when the key is still in place.
		if a[j+1] != key {
			a[j+1] = key
			r.emit(KindInsert, []int{j + 1}, []int{j + 1}, key, j+1)
		}

		settled := make([]int, i+1)
		for k := range settled {
			settled[k] = k
		}
		r.emit(KindPartial, nil, settled, i)
	}

	return r.finish()
}
