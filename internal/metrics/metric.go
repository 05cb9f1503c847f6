package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Metric accumulates a count over the steps of a trace.
type Metric interface {
	Name() string
	Observe(s trace.Step)
	Value() int
	Reset()
}

// Defaults returns fresh instances of the metrics reported for every
// algorithm.
func Defaults() []Metric {
	return []Metric{
		NewComparisons(),
		NewSwaps(),
		NewWrites(),
	}
}

// Collect resets ms, feeds them every step of t and returns their values by
// name.
func Collect(t trace.Trace, ms ...Metric) map[string]int {
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range t {
		for _, m := range ms {
			m.Observe(s)
		}
	}

	values := make(map[string]int, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}
	return values
}

// Series returns the running value of m after each step of t.
func Series(t trace.Trace, m Metric) []float64 {
	m.Reset()
	out := make([]float64, len(t))
	for i, s := range t {
		m.Observe(s)
		out[i] = float64(m.Value())
	}
	return out
}
