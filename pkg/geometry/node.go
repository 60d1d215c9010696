package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Node is the scene-graph element: it owns exactly one Shape and the
// transform from its local space into its parent's space. Nodes form a tree;
// the parent pointer is a non-owning back-reference used only for read-only
// coordinate-space ascent and is maintained by AddChild.
type Node struct {
	parent    *Node
	transform core.Transform
	shape     Shape
}

// NewNode creates a root-level node with the identity transform
func NewNode(shape Shape) *Node {
	return &Node{transform: core.Identity(), shape: shape}
}

// Shape returns the node's shape
func (n *Node) Shape() Shape {
	return n.shape
}

// Parent returns the node that owns this one, or nil at the root
func (n *Node) Parent() *Node {
	return n.parent
}

// Transform returns the local-to-parent transform
func (n *Node) Transform() core.Transform {
	return n.transform
}

// SetTransform replaces the local-to-parent transform
func (n *Node) SetTransform(t core.Transform) {
	n.transform = t
}

// Material returns the shape's material. Panics if the shape is a Group,
// which carries no appearance of its own.
func (n *Node) Material() *material.Material {
	return n.shape.Material()
}

// AddChild transfers ownership of child into this node's Group shape and
// points the child's parent back-reference at this node. Panics if the
// node's shape is not a Group.
func (n *Node) AddChild(child *Node) {
	group, ok := n.shape.(*Group)
	if !ok {
		panic("geometry: AddChild called on a node whose shape is not a Group")
	}
	child.parent = n
	group.children = append(group.children, child)
}

// Intersect converts the incoming ray into this node's local space and
// delegates to the shape. Returned intersections reference this node, so
// shading later resolves materials and transforms without knowing the
// concrete shape kind.
func (n *Node) Intersect(r core.Ray) []Intersection {
	localRay := n.transform.Inv().MultiplyRay(r)
	return n.shape.LocalIntersect(localRay, n)
}

// WorldToObject converts a world-space point into this node's local space by
// applying every ancestor's inverse transform, root-most first
func (n *Node) WorldToObject(p core.Point) core.Point {
	if n.parent != nil {
		p = n.parent.WorldToObject(p)
	}
	return n.transform.Inv().MultiplyPoint(p)
}

// NormalToWorld converts a local-space normal into world space by applying
// each level's inverse-transpose on the way back up the ancestor chain,
// renormalizing at every level
func (n *Node) NormalToWorld(v core.Vector) core.Vector {
	v = n.transform.ApplyToNormal(v)
	if n.parent != nil {
		v = n.parent.NormalToWorld(v)
	}
	return v
}

// NormalAt returns the world-space surface normal at a world-space point on
// this node's shape. The intersection supplies barycentric u/v for shapes
// with interpolated normals.
func (n *Node) NormalAt(worldPoint core.Point, hit Intersection) core.Vector {
	localPoint := n.WorldToObject(worldPoint)
	localNormal := n.shape.LocalNormalAt(localPoint, hit)
	return n.NormalToWorld(localNormal)
}
