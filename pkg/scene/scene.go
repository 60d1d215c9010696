// Package scene provides named, ready-to-render demo scenes used by the CLI
// and the web viewer.
package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene couples a world with a camera that frames it
type Scene struct {
	Name        string
	Description string
	World       *world.World
	Camera      *renderer.Camera
}

// builders maps scene names to their constructors. Scenes are built on
// demand so each Get returns a fresh, independently mutable world.
var builders = map[string]func(width, height int) *Scene{
	"spheres": NewSpheresScene,
	"glass":   NewGlassScene,
	"hexagon": NewHexagonScene,
	"shapes":  NewShapesScene,
}

// Get builds the named scene at the given image size
func Get(name string, width, height int) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(width, height), nil
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns a name-to-description map for the scene listing
func Descriptions() map[string]string {
	out := make(map[string]string, len(builders))
	for name, build := range builders {
		out[name] = build(1, 1).Description
	}
	return out
}
