package types

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/oops"
)

// candidate is one variant of a structurally discriminated union: the
// variant is chosen when match accepts the record, and built by decode.
type candidate[N ~string, K any] struct {
	name   N
	match  func(record) bool
	decode func(record) (K, error)
}

func requires(keys ...string) func(record) bool {
	return func(r record) bool { return r.hasAll(keys...) }
}

func requiresAny(keys ...string) func(record) bool {
	return func(r record) bool { return r.hasAny(keys...) }
}

func candidateNames[N ~string, K any](candidates []candidate[N, K]) []N {
	return lo.Map(candidates, func(c candidate[N, K], _ int) N { return c.name })
}

func matchesAny[N ~string, K any](r record, candidates []candidate[N, K]) bool {
	return lo.SomeBy(candidates, func(c candidate[N, K]) bool { return c.match(r) })
}

// resolve decodes r as the first candidate that matches it. A matched
// candidate that fails to decode is an error; later candidates are not
// tried.
func resolve[N ~string, K any](r record, candidates []candidate[N, K]) (K, error) {
	c, ok := lo.Find(candidates, func(c candidate[N, K]) bool { return c.match(r) })
	if !ok {
		var zero K
		keys := lo.Keys(r)
		slices.Sort(keys)
		return zero, oops.
			In("types").
			With("keys", keys).
			Wrap(ErrNoMatchingKind)
	}

	k, err := c.decode(r)
	if err != nil {
		return k, oops.
			In("types").
			With("kind", string(c.name)).
			Wrap(err)
	}
	return k, nil
}
