package algorithms

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

// Comparison summarises one algorithm's trace for a shared input.
type Comparison struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Steps       int    `json:"steps"`
	Comparisons int    `json:"comparisons"`
	Swaps       int    `json:"swaps"`
	Writes      int    `json:"writes"`
}

// Compare traces input with every algorithm concurrently. Each generator gets
// its own clone of input. Results follow catalog order.
func (r *Registry) Compare(ctx context.Context, input trace.Array) ([]Comparison, error) {
	descs := r.Descriptors()
	results := make([]Comparison, len(descs))

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range descs {
		i, d := i, d
		own := input.Clone()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			steps := d.Generate(own)
			values := metrics.Collect(steps, metrics.Defaults()...)
			results[i] = Comparison{
				ID:          d.ID,
				Name:        d.Name,
				Steps:       len(steps),
				Comparisons: values["comparisons"],
				Swaps:       values["swaps"],
				Writes:      values["writes"],
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Sweep runs Compare for one array per size and returns the step counts of
// each algorithm, indexed like sizes. arrayOf is called sequentially before
// any comparison starts; at most runtime.NumCPU sizes are compared at once.
func (r *Registry) Sweep(ctx context.Context, sizes []int, arrayOf func(n int) trace.Array) (map[string][]float64, error) {
	inputs := make([]trace.Array, len(sizes))
	for i, n := range sizes {
		inputs[i] = arrayOf(n)
	}

	perSize := make([][]Comparison, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			results, err := r.Compare(ctx, input)
			if err != nil {
				return err
			}
			perSize[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make(map[string][]float64, len(r.order))
	for _, id := range r.order {
		counts[id] = make([]float64, 0, len(sizes))
	}
	for _, results := range perSize {
		for _, c := range results {
			counts[c.ID] = append(counts[c.ID], float64(c.Steps))
		}
	}
	return counts, nil
}
