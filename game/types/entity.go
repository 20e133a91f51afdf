package types

import "iter"

// Entity is anything occupying cells of the grid world. Cells must return a
// fresh traversal on every call.
type Entity interface {
	Cells() iter.Seq[GridPoint]
}

// Intersect returns the cells of b that are also occupied by a, in b's order.
// Duplicates in b are kept.
func Intersect(a, b Entity) []GridPoint {
	occupied := make(map[Key]struct{})
	for p := range a.Cells() {
		occupied[p.Key()] = struct{}{}
	}

	var hits []GridPoint
	for p := range b.Cells() {
		if _, ok := occupied[p.Key()]; ok {
			hits = append(hits, p)
		}
	}
	return hits
}

// Points adapts a slice of points to an Entity.
type Points []GridPoint

func (c Points) Cells() iter.Seq[GridPoint] {
	return func(yield func(GridPoint) bool) {
		for _, p := range c {
			if !yield(p) {
				return
			}
		}
	}
}
