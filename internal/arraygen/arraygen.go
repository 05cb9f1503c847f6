// Package arraygen produces the input arrays sortviz traces.
package arraygen

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

const (
	MinSize  = 5
	MaxSize  = 10
	MinValue = 10
	MaxValue = 100
)

// ErrInvalidArray indicates an array literal that cannot be traced.
var ErrInvalidArray = errors.New("arraygen: invalid array")

// Shape selects how generated values are arranged.
type Shape string

const (
	ShapeRandom     Shape = "random"
	ShapeSorted     Shape = "sorted"
	ShapeReversed   Shape = "reversed"
	ShapeDuplicates Shape = "duplicates"
	ShapeFewUnique  Shape = "few-unique"
)

var shapes = []Shape{ShapeRandom, ShapeSorted, ShapeReversed, ShapeDuplicates, ShapeFewUnique}

func Shapes() []Shape { return slices.Clone(shapes) }

func ParseShape(s string) (Shape, error) {
	if s == "" {
		return ShapeRandom, nil
	}
	for _, sh := range shapes {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", fmt.Errorf("arraygen: unknown shape %q (available: %v)", s, shapes)
}

// Generator is a seeded source of arrays. It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	shape Shape
	size  int
}

// New returns a generator producing shape. size 0 picks a random length in
// [MinSize, MaxSize] for every array.
func New(seed int64, shape Shape, size int) *Generator {
	if shape == "" {
		shape = ShapeRandom
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		shape: shape,
		size:  size,
	}
}

// Random returns between MinSize and MaxSize uniformly drawn values,
// ignoring the configured shape and size.
func (g *Generator) Random() trace.Array {
	return g.RandomN(MinSize + g.rng.Intn(MaxSize-MinSize+1))
}

// Next returns a fresh array using the configured shape and size.
func (g *Generator) Next() trace.Array {
	n := g.size
	if n <= 0 {
		n = MinSize + g.rng.Intn(MaxSize-MinSize+1)
	}
	return g.Shaped(g.shape, n)
}

// RandomN returns n integers drawn uniformly from [MinValue, MaxValue].
func (g *Generator) RandomN(n int) trace.Array {
	a := make(trace.Array, n)
	for i := range a {
		a[i] = float64(MinValue + g.rng.Intn(MaxValue-MinValue+1))
	}
	return a
}

func (g *Generator) Shaped(shape Shape, n int) trace.Array {
	switch shape {
	case ShapeSorted:
		a := g.RandomN(n)
		slices.Sort(a)
		return a
	case ShapeReversed:
		a := g.RandomN(n)
		slices.Sort(a)
		slices.Reverse(a)
		return a
	case ShapeDuplicates:
		a := g.RandomN(n)
		for i := 1; i < n; i += 2 {
			a[i] = a[i-1]
		}
		g.rng.Shuffle(n, func(i, j int) { a[i], a[j] = a[j], a[i] })
		return a
	case ShapeFewUnique:
		pool := g.RandomN(3)
		a := make(trace.Array, n)
		for i := range a {
			a[i] = pool[g.rng.Intn(len(pool))]
		}
		return a
	default:
		return g.RandomN(n)
	}
}

// Parse reads a comma separated array literal such as "5,3,8".
func Parse(s string) (trace.Array, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return trace.Array{}, nil
	}

	fields := strings.Split(s, ",")
	a := make(trace.Array, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidArray, f, err)
		}
		a = append(a, v)
	}
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: %v: %w", ErrInvalidArray, a, trace.ErrInvalidArray)
	}
	return a, nil
}

// Format is the inverse of Parse.
func Format(a trace.Array) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
