// filter.go — the filter interface and fixed-point propagation.

package match

import (
	"context"
	"fmt"
)

// Filter inspects a Problem and clears candidate bits that cannot appear
// in any isomorphism. Filters never set bits, so repeated application
// converges.
type Filter interface {
	// Name labels the filter in logs and errors.
	Name() string

	// Apply prunes and reports whether anything was cleared.
	Apply(p *Problem) (changed bool, err error)
}

// DefaultFilters returns the standard pipeline, cheapest first: local
// degree and self-loop screens, then edgewise consistency, then the global
// assignment bound.
func DefaultFilters() []Filter {
	return []Filter{DegreeFilter{}, LoopsFilter{}, EdgewiseFilter{}, AssignmentFilter{}}
}

// Propagate applies the filters in order, repeating full passes until one
// pass changes nothing. With no filters given it runs DefaultFilters.
// The context is consulted between filters; the candidate matrix is left
// in its partially filtered state on cancellation.
//
// Complexity: each changed pass clears at least one bit, so at most
// (template nodes x world nodes) passes.
func (p *Problem) Propagate(ctx context.Context, filters ...Filter) error {
	if len(filters) == 0 {
		filters = DefaultFilters()
	}
	for pass := 1; ; pass++ {
		any := false
		for _, f := range filters {
			if err := ctx.Err(); err != nil {
				return err
			}
			before := p.cand.Count()
			changed, err := f.Apply(p)
			if err != nil {
				return fmt.Errorf("filter %s: %w", f.Name(), err)
			}
			if changed {
				any = true
				p.logf(false, "propagate pass %d, %s: %d -> %d candidates",
					pass, f.Name(), before, p.cand.Count())
			}
		}
		if !any {
			return nil
		}
	}
}
