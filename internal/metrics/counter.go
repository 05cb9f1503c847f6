package metrics

import (
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

// KindCounter counts steps of the given kinds.
type KindCounter struct {
	name  string
	kinds []trace.Kind
	count int
}

func NewKindCounter(name string, kinds ...trace.Kind) *KindCounter {
	return &KindCounter{name: name, kinds: kinds}
}

func NewComparisons() *KindCounter { return NewKindCounter("comparisons", trace.KindCompare) }
func NewSwaps() *KindCounter       { return NewKindCounter("swaps", trace.KindSwap) }

func (c *KindCounter) Name() string { return c.name }

func (c *KindCounter) Observe(s trace.Step) {
	if slices.Contains(c.kinds, s.Kind) {
		c.count++
	}
}

func (c *KindCounter) Value() int { return c.count }
func (c *KindCounter) Reset()     { c.count = 0 }
