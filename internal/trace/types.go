package trace

import (
	"fmt"
	"math"
	"slices"
)

// Array is the sequence being sorted.
type Array []float64

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

func (a Array) IsValid() bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

func (a Array) Max() float64 {
	if len(a) == 0 {
		return 0
	}
	return slices.Max(a)
}

// Scale maps every value to a bar height in [0, rows] relative to the
// largest value. Positive values never scale below 1.
func (a Array) Scale(rows int) []int {
	heights := make([]int, len(a))
	hi := a.Max()
	if hi <= 0 || rows <= 0 {
		return heights
	}
	for i, v := range a {
		if v <= 0 {
			continue
		}
		h := int(math.Round(v / hi * float64(rows)))
		heights[i] = max(h, 1)
	}
	return heights
}

// Kind tags the event a step records.
type Kind int

const (
	KindInitial Kind = iota
	KindCompare
	KindSwap
	KindInOrder
	KindSettle
	KindSearch
	KindNewMin
	KindTakeKey
	KindShift
	KindInsert
	KindPartial
	KindFinal
)

var kindNames = [...]string{
	KindInitial: "initial",
	KindCompare: "compare",
	KindSwap:    "swap",
	KindInOrder: "in_order",
	KindSettle:  "settle",
	KindSearch:  "search",
	KindNewMin:  "new_min",
	KindTakeKey: "take_key",
	KindShift:   "shift",
	KindInsert:  "insert",
	KindPartial: "partial",
	KindFinal:   "final",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("trace: unknown step kind %q", text)
}

// Step is one snapshot of the array during a sort. Steps are never modified
// after the generator returns them.
type Step struct {
	Array       Array  `json:"array" yaml:"array"`
	Comparing   []int  `json:"comparing" yaml:"comparing"`
	Swapped     []int  `json:"swapped" yaml:"swapped"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Description string `json:"description" yaml:"description"`
	Args        []any  `json:"-" yaml:"-"`
}

func (s Step) IsComparing(i int) bool { return slices.Contains(s.Comparing, i) }
func (s Step) IsSwapped(i int) bool   { return slices.Contains(s.Swapped, i) }

// Highlight is how a renderer should mark one element of a step.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightComparing
	HighlightSwapped
	HighlightSorted
)

// Highlight reports the mark for element i. Swapped wins over comparing,
// and every element of a final step is sorted.
func (s Step) Highlight(i int) Highlight {
	switch {
	case s.Kind == KindFinal:
		return HighlightSorted
	case s.IsSwapped(i):
		return HighlightSwapped
	case s.IsComparing(i):
		return HighlightComparing
	default:
		return HighlightNone
	}
}

// Trace is the complete ordered record of one sort.
type Trace []Step

// Last returns the final step. It panics on an empty trace.
func (t Trace) Last() Step { return t[len(t)-1] }

// Generator turns an input array into its trace. Implementations must not
// mutate input.
type Generator func(input Array) Trace

// Validate checks t against the input it was generated from.
func (t Trace) Validate(input Array) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidTrace)
	}
	if !slices.Equal(t[0].Array, input) {
		return fmt.Errorf("%w: first step %v does not match input %v", ErrInvalidTrace, t[0].Array, input)
	}
	for _, idx := range []int{0, len(t) - 1} {
		if len(t[idx].Comparing) != 0 || len(t[idx].Swapped) != 0 {
			return fmt.Errorf("%w: step %d has highlights", ErrInvalidTrace, idx)
		}
	}

	n := len(input)
	for i, s := range t {
		if len(s.Array) != n {
			return fmt.Errorf("%w: step %d has length %d, want %d", ErrInvalidTrace, i, len(s.Array), n)
		}
		if len(s.Comparing) > 2 {
			return fmt.Errorf("%w: step %d compares %d indices", ErrInvalidTrace, i, len(s.Comparing))
		}
		if s.Kind != KindPartial && len(s.Swapped) > 2 {
			return fmt.Errorf("%w: step %d marks %d indices", ErrInvalidTrace, i, len(s.Swapped))
		}
		for _, idx := range append(slices.Clone(s.Comparing), s.Swapped...) {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: step %d index %d out of range", ErrInvalidTrace, i, idx)
			}
		}
	}

	last := t.Last().Array
	want := input.Clone()
	slices.Sort(want)
	if !slices.Equal(last, want) {
		return fmt.Errorf("%w: last step %v is not the sorted input", ErrInvalidTrace, last)
	}
	return nil
}

// recorder accumulates steps while a generator sorts its private copy.
type recorder struct {
	arr   Array
	steps Trace
}

func newRecorder(input Array) *recorder {
	r := &recorder{arr: input.Clone()}
	r.emit(KindInitial, nil, nil)
	return r
}

func (r *recorder) emit(kind Kind, comparing, swapped []int, args ...any) {
	if comparing == nil {
		comparing = []int{}
	}
	if swapped == nil {
		swapped = []int{}
	}
	s := Step{
		Array:     r.arr.Clone(),
		Comparing: comparing,
		Swapped:   swapped,
		Kind:      kind,
		Args:      args,
	}
	s.Description = Describe(english, s)
	r.steps = append(r.steps, s)
}

func (r *recorder) finish() Trace {
	r.emit(KindFinal, nil, nil)
	return r.steps
}
