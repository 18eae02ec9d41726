package action

import (
	"iter"
	"slices"
)

// Domain is the ordered set of values one parameter ranges over.
type Domain []any

// Range returns the ints lo, lo+1, …, hi-1. It is empty when hi <= lo.
func Range(lo, hi int) Domain {
	if hi <= lo {
		return Domain{}
	}
	d := make(Domain, 0, hi-lo)
	for v := lo; v < hi; v++ {
		d = append(d, v)
	}

	return d
}

// Values returns a categorical domain holding vs in the given order.
func Values(vs ...any) Domain {
	return Domain(slices.Clone(vs))
}

// Product yields the cartesian product of domains in lexicographic order:
// the last domain varies fastest. With no domains it yields a single empty
// Args; if any domain is empty it yields nothing. Every yielded Args is a
// fresh slice the consumer may keep.
func Product(domains ...Domain) iter.Seq[Args] {
	return func(yield func(Args) bool) {
		for _, d := range domains {
			if len(d) == 0 {
				return
			}
		}
		idx := make([]int, len(domains))
		for {
			args := make(Args, len(domains))
			for i, d := range domains {
				args[i] = d[idx[i]]
			}
			if !yield(args) {
				return
			}

			// odometer increment, rightmost digit first
			i := len(domains) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(domains[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
