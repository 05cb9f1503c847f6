// Package algorithms is the fixed catalog of sorting algorithms sortviz can
// trace.
package algorithms

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/trace"
)

// Descriptor binds an algorithm id to its generator and display metadata.
type Descriptor struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Label           string          `json:"label" yaml:"label"`
	TimeComplexity  string          `json:"time_complexity" yaml:"time_complexity"`
	SpaceComplexity string          `json:"space_complexity" yaml:"space_complexity"`
	Description     string          `json:"description" yaml:"description"`
	Generate        trace.Generator `json:"-" yaml:"-"`
}

// Entry is the id and label shown in algorithm pickers.
type Entry struct {
	ID    string
	Label string
}

type Registry struct {
	order       []string
	descriptors map[string]Descriptor
}

// NewRegistry returns the catalog. It is never modified after construction.
func NewRegistry() *Registry {
	r := &Registry{descriptors: make(map[string]Descriptor)}

	r.add(Descriptor{
		ID:              "bubble",
		Name:            "Bubble Sort",
		Label:           "Bubble sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Description:     "Compares neighbouring elements pairwise and swaps them when they are out of order.",
		Generate:        trace.Bubble,
	})
	r.add(Descriptor{
		ID:              "selection",
		Name:            "Selection Sort",
		Label:           "Selection sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Description:     "Finds the minimum of the unsorted part on every pass and moves it to the front.",
		Generate:        trace.Selection,
	})
	r.add(Descriptor{
		ID:              "insertion",
		Name:            "Insertion Sort",
		Label:           "Insertion sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Description:     "Grows a sorted prefix by inserting each new element at its place.",
		Generate:        trace.Insertion,
	})

	return r
}

func (r *Registry) add(d Descriptor) {
	r.order = append(r.order, d.ID)
	r.descriptors[d.ID] = d
}

func (r *Registry) Lookup(id string) (Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	return d, nil
}

// Generate looks up id and traces input with it.
func (r *Registry) Generate(id string, input trace.Array) (trace.Trace, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return d.Generate(input), nil
}

// List returns the picker entries in catalog order.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, Entry{ID: id, Label: r.descriptors[id].Label})
	}
	return entries
}

// Descriptors returns every descriptor in catalog order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.descriptors[id])
	}
	return out
}

func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Next returns the id after id in catalog order, wrapping around. Unknown ids
// map to the first entry.
func (r *Registry) Next(id string) string {
	for i, cur := range r.order {
		if cur == id {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
