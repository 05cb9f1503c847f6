package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Writes counts element assignments: two per swap, one per shift or insert.
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(s trace.Step) {
	switch s.Kind {
	case trace.KindSwap:
		w.count += 2
	case trace.KindShift, trace.KindInsert:
		w.count++
	}
}

func (w *Writes) Value() int { return w.count }
func (w *Writes) Reset()     { w.count = 0 }
