package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Group is the aggregate shape: it has no geometry of its own and instead
// owns an ordered list of child nodes. Its intersection is the merged,
// sorted union of its children's intersections.
type Group struct {
	children []*Node
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{}
}

// Children returns the group's child nodes
func (g *Group) Children() []*Node {
	return g.children
}

// Material panics: groups carry no appearance, and asking for one is a
// scene-authoring error
func (g *Group) Material() *material.Material {
	panic("geometry: a Group has no material")
}

// LocalIntersect concatenates every child's intersections and sorts them
// ascending by t
func (g *Group) LocalIntersect(r core.Ray, n *Node) []Intersection {
	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, child.Intersect(r)...)
	}
	SortIntersections(xs)
	return xs
}

// LocalNormalAt panics: normals are always asked of leaf shapes
func (g *Group) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	panic("geometry: a Group has no local normal")
}
