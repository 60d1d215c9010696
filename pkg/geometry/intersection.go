package geometry

import "sort"

// Intersection records a parametric hit distance along a ray, the scene node
// that was hit, and (for interpolated-normal shapes) the barycentric u/v of
// the hit. Intersections live only for the duration of one query.
type Intersection struct {
	T      float64
	Object *Node
	U, V   float64
}

// SortIntersections orders intersections ascending by t. The sort is stable,
// so intersections at exactly the same distance keep their insertion order,
// which makes coincident-surface behavior deterministic.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative t. The list must already be sorted ascending by t.
// ok is false when every intersection lies behind the ray origin.
func Hit(xs []Intersection) (hit Intersection, ok bool) {
	for _, i := range xs {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}
