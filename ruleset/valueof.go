package ruleset

import "github.com/partizangames/cgt/cgt"

// ValueOf computes the canonical game value of pos under rs, following
// spec.md §4.6's three-step algorithm: canonicalize and decompose into
// components, look each component up in cache (computing and inserting
// on miss), and sum. Decomposition soundness (spec.md §8) follows
// directly from Add being the disjunctive sum operation on cgt.Value.
func ValueOf[P any](rs Ruleset[P], cache *Cache, pos P) cgt.Value {
	canon := rs.CanonicalPosition(pos)
	components := rs.Decompose(canon)
	if len(components) == 1 {
		return valueOfComponent(rs, cache, components[0])
	}
	sum := cgt.Zero()
	for _, c := range components {
		sum = cgt.Add(sum, valueOfComponent(rs, cache, c))
	}
	return sum
}

// valueOfComponent computes (and memoizes) the value of a single,
// already-decomposed component: the per-position recursion over Moves
// that builds the option lists FromOptions canonicalizes.
func valueOfComponent[P any](rs Ruleset[P], cache *Cache, pos P) cgt.Value {
	canon := rs.CanonicalPosition(pos)
	fp := rs.Fingerprint(canon)
	if v, ok := cache.Get(fp); ok {
		return v
	}

	leftMoves := rs.Moves(canon, Left)
	rightMoves := rs.Moves(canon, Right)

	left := make([]cgt.Value, len(leftMoves))
	for i, m := range leftMoves {
		left[i] = ValueOf(rs, cache, m)
	}
	right := make([]cgt.Value, len(rightMoves))
	for i, m := range rightMoves {
		right[i] = ValueOf(rs, cache, m)
	}

	v := cgt.FromOptions(left, right)
	cache.Put(fp, v)
	return v
}
