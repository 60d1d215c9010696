package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func checkersPattern() material.Pattern {
	return material.NewCheckersPattern(
		core.NewColor(0.95, 0.95, 0.95),
		core.NewColor(0.15, 0.15, 0.15),
	)
}

func stripedPattern() material.Pattern {
	p := material.NewStripePattern(
		core.NewColor(0.1, 1, 0.5),
		core.NewColor(0.05, 0.6, 0.3),
	)
	p.SetTransform(core.RotationZ(math.Pi / 4).Compose(core.Scaling(0.25, 0.25, 0.25)))
	return p
}

// NewSpheresScene is the classic arrangement: three patterned spheres on a
// checkered, slightly reflective floor
func NewSpheresScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	floor := geometry.NewNode(geometry.NewPlane())
	floor.Material().Color = core.NewColor(1, 0.9, 0.9)
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.1
	floor.Material().Pattern = checkersPattern()
	w.AddNode(floor)

	middle := geometry.NewNode(geometry.NewSphere())
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material().Color = core.NewColor(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Reflective = 0.2
	middle.Material().Pattern = stripedPattern()
	w.AddNode(middle)

	right := geometry.NewNode(geometry.NewSphere())
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Compose(core.Scaling(0.5, 0.5, 0.5)))
	right.Material().Color = core.NewColor(0.5, 1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3
	w.AddNode(right)

	left := geometry.NewNode(geometry.NewSphere())
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Compose(core.Scaling(0.33, 0.33, 0.33)))
	left.Material().Color = core.NewColor(1, 0.8, 0.1)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3
	w.AddNode(left)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{
		Name:        "spheres",
		Description: "Three patterned spheres on a checkered reflective floor",
		World:       w,
		Camera:      camera,
	}
}

// NewGlassScene puts a hollow glass sphere above a checkered floor, showing
// refraction, the Schlick blend, and the air pocket inside
func NewGlassScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	floor := geometry.NewNode(geometry.NewPlane())
	floor.SetTransform(core.Translation(0, -10.1, 0))
	floor.Material().Pattern = checkersPattern()
	floor.Material().Ambient = 0.8
	floor.Material().Diffuse = 0.2
	floor.Material().Specular = 0
	w.AddNode(floor)

	outer := geometry.NewNode(geometry.NewGlassSphere())
	outer.Material().Color = core.NewColor(1, 1, 1)
	outer.Material().Ambient = 0
	outer.Material().Diffuse = 0
	outer.Material().Specular = 0.9
	outer.Material().Shininess = 300
	outer.Material().Reflective = 0.9
	w.AddNode(outer)

	// An inner sphere of air makes the glass hollow
	inner := geometry.NewNode(geometry.NewGlassSphere())
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	inner.Material().Color = core.NewColor(1, 1, 1)
	inner.Material().Ambient = 0
	inner.Material().Diffuse = 0
	inner.Material().Specular = 0.9
	inner.Material().Shininess = 300
	inner.Material().Reflective = 0.9
	inner.Material().RefractiveIndex = 1.0000034
	w.AddNode(inner)

	camera := renderer.NewCamera(width, height, 0.45)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{
		Name:        "glass",
		Description: "A hollow glass sphere over a checkered floor",
		World:       w,
		Camera:      camera,
	}
}

// NewHexagonScene builds a hexagonal ring from grouped spheres and
// cylinders, exercising nested group transforms
func NewHexagonScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	hex := geometry.NewNode(geometry.NewGroup())
	for i := 0; i < 6; i++ {
		side := hexagonSide()
		side.SetTransform(core.RotationY(float64(i) * math.Pi / 3))
		hex.AddChild(side)
	}
	hex.SetTransform(core.RotationX(-math.Pi / 6))
	w.AddNode(hex)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -3),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{
		Name:        "hexagon",
		Description: "A hexagonal ring assembled from nested groups",
		World:       w,
		Camera:      camera,
	}
}

// hexagonSide is one corner sphere plus one edge cylinder, grouped
func hexagonSide() *geometry.Node {
	corner := geometry.NewNode(geometry.NewSphere())
	corner.SetTransform(core.Translation(0, 0, -1).Compose(core.Scaling(0.25, 0.25, 0.25)))

	cyl := geometry.NewCylinder()
	cyl.Minimum = 0
	cyl.Maximum = 1
	edge := geometry.NewNode(cyl)
	edge.SetTransform(core.Translation(0, 0, -1).
		Compose(core.RotationY(-math.Pi / 6)).
		Compose(core.RotationZ(-math.Pi / 2)).
		Compose(core.Scaling(0.25, 1, 0.25)))

	side := geometry.NewNode(geometry.NewGroup())
	side.AddChild(corner)
	side.AddChild(edge)
	return side
}

// NewShapesScene lines up the quadric primitives: a cube, a capped cylinder,
// and a cone on a plain floor
func NewShapesScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(-5, 8, -9), core.White))

	floor := geometry.NewNode(geometry.NewPlane())
	floor.Material().Color = core.NewColor(0.9, 0.9, 0.9)
	floor.Material().Specular = 0
	w.AddNode(floor)

	cube := geometry.NewNode(geometry.NewCube())
	cube.SetTransform(core.Translation(-2.5, 1, 1).Compose(core.RotationY(math.Pi / 6)))
	cube.Material().Color = core.NewColor(0.8, 0.2, 0.2)
	w.AddNode(cube)

	cyl := geometry.NewCylinder()
	cyl.Minimum = 0
	cyl.Maximum = 2
	cyl.Closed = true
	cylinder := geometry.NewNode(cyl)
	cylinder.SetTransform(core.Translation(0.5, 0, 0.5))
	cylinder.Material().Color = core.NewColor(0.2, 0.8, 0.2)
	cylinder.Material().Reflective = 0.2
	w.AddNode(cylinder)

	cone := geometry.NewCone()
	cone.Minimum = -1.5
	cone.Maximum = 0
	cone.Closed = true
	ice := geometry.NewNode(cone)
	ice.SetTransform(core.Translation(3, 1.5, 0.5))
	ice.Material().Color = core.NewColor(0.2, 0.2, 0.8)
	w.AddNode(ice)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{
		Name:        "shapes",
		Description: "A cube, capped cylinder, and cone on a plain floor",
		World:       w,
		Camera:      camera,
	}
}
