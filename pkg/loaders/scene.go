package loaders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// SceneFile is the YAML scene description: a camera, point lights, and a
// list of objects with optional materials, patterns, and transform chains
type SceneFile struct {
	Camera  CameraConfig   `yaml:"camera"`
	Lights  []LightConfig  `yaml:"lights"`
	Objects []ObjectConfig `yaml:"objects"`
}

// CameraConfig describes the camera block of a scene file
type CameraConfig struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float64   `yaml:"field-of-view"`
	From        []float64 `yaml:"from"`
	To          []float64 `yaml:"to"`
	Up          []float64 `yaml:"up"`
}

// LightConfig describes one point light
type LightConfig struct {
	At        []float64 `yaml:"at"`
	Intensity []float64 `yaml:"intensity"`
}

// ObjectConfig describes one shape node. Children is used by groups, File
// by obj references, and Min/Max/Closed by cylinders and cones.
type ObjectConfig struct {
	Type      string          `yaml:"type"`
	Transform []TransformStep `yaml:"transform"`
	Material  *MaterialConfig `yaml:"material"`
	Min       *float64        `yaml:"min"`
	Max       *float64        `yaml:"max"`
	Closed    bool            `yaml:"closed"`
	Children  []ObjectConfig  `yaml:"children"`
	File      string          `yaml:"file"`
}

// MaterialConfig describes a material block; nil pointers keep the default
type MaterialConfig struct {
	Color           []float64      `yaml:"color"`
	Ambient         *float64       `yaml:"ambient"`
	Diffuse         *float64       `yaml:"diffuse"`
	Specular        *float64       `yaml:"specular"`
	Shininess       *float64       `yaml:"shininess"`
	Reflective      *float64       `yaml:"reflective"`
	Transparency    *float64       `yaml:"transparency"`
	RefractiveIndex *float64       `yaml:"refractive-index"`
	Pattern         *PatternConfig `yaml:"pattern"`
}

// PatternConfig describes a procedural pattern block
type PatternConfig struct {
	Type      string          `yaml:"type"`
	A         []float64       `yaml:"a"`
	B         []float64       `yaml:"b"`
	Transform []TransformStep `yaml:"transform"`
}

// TransformStep is one entry of a transform chain; steps are applied in the
// order listed
type TransformStep struct {
	Translate []float64 `yaml:"translate"`
	Scale     []float64 `yaml:"scale"`
	RotateX   *float64  `yaml:"rotate-x"`
	RotateY   *float64  `yaml:"rotate-y"`
	RotateZ   *float64  `yaml:"rotate-z"`
	Shear     []float64 `yaml:"shear"`
}

// LoadScene reads a YAML scene file and builds the world and camera it
// describes. OBJ references are resolved relative to the scene file.
func LoadScene(path string) (*world.World, *renderer.Camera, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()
	return LoadSceneReader(file, filepath.Dir(path))
}

// LoadSceneReader builds a world and camera from a YAML stream. baseDir
// anchors relative OBJ file references.
func LoadSceneReader(r io.Reader, baseDir string) (*world.World, *renderer.Camera, error) {
	var sf SceneFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, nil, fmt.Errorf("failed to decode scene file: %w", err)
	}

	camera, err := buildCamera(sf.Camera)
	if err != nil {
		return nil, nil, err
	}

	w := world.New()
	for i, lc := range sf.Lights {
		at, err := toPoint(lc.At)
		if err != nil {
			return nil, nil, fmt.Errorf("light %d: %w", i, err)
		}
		intensity, err := toColor(lc.Intensity)
		if err != nil {
			return nil, nil, fmt.Errorf("light %d: %w", i, err)
		}
		w.AddLight(lights.NewPointLight(at, intensity))
	}

	for i, oc := range sf.Objects {
		node, err := buildNode(oc, baseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("object %d: %w", i, err)
		}
		w.AddNode(node)
	}

	return w, camera, nil
}

func buildCamera(cc CameraConfig) (*renderer.Camera, error) {
	if cc.Width <= 0 || cc.Height <= 0 {
		return nil, fmt.Errorf("camera requires positive width and height, got %dx%d", cc.Width, cc.Height)
	}
	if cc.FieldOfView <= 0 {
		return nil, fmt.Errorf("camera requires a positive field-of-view, got %g", cc.FieldOfView)
	}

	camera := renderer.NewCamera(cc.Width, cc.Height, cc.FieldOfView)
	if cc.From != nil || cc.To != nil || cc.Up != nil {
		from, err := toPoint(cc.From)
		if err != nil {
			return nil, fmt.Errorf("camera from: %w", err)
		}
		to, err := toPoint(cc.To)
		if err != nil {
			return nil, fmt.Errorf("camera to: %w", err)
		}
		up, err := toVector(cc.Up)
		if err != nil {
			return nil, fmt.Errorf("camera up: %w", err)
		}
		camera.SetTransform(core.ViewTransform(from, to, up))
	}
	return camera, nil
}

func buildNode(oc ObjectConfig, baseDir string) (*geometry.Node, error) {
	var node *geometry.Node

	switch oc.Type {
	case "sphere":
		node = geometry.NewNode(geometry.NewSphere())
	case "plane":
		node = geometry.NewNode(geometry.NewPlane())
	case "cube":
		node = geometry.NewNode(geometry.NewCube())
	case "cylinder":
		cyl := geometry.NewCylinder()
		if oc.Min != nil {
			cyl.Minimum = *oc.Min
		}
		if oc.Max != nil {
			cyl.Maximum = *oc.Max
		}
		cyl.Closed = oc.Closed
		node = geometry.NewNode(cyl)
	case "cone":
		cone := geometry.NewCone()
		if oc.Min != nil {
			cone.Minimum = *oc.Min
		}
		if oc.Max != nil {
			cone.Maximum = *oc.Max
		}
		cone.Closed = oc.Closed
		node = geometry.NewNode(cone)
	case "group":
		node = geometry.NewNode(geometry.NewGroup())
		for i, child := range oc.Children {
			childNode, err := buildNode(child, baseDir)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			node.AddChild(childNode)
		}
	case "obj":
		if oc.File == "" {
			return nil, fmt.Errorf("obj object requires a file")
		}
		path := oc.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		parsed, err := ParseOBJFile(path)
		if err != nil {
			return nil, err
		}
		node = parsed.Group()
	default:
		return nil, fmt.Errorf("unknown object type %q", oc.Type)
	}

	if len(oc.Transform) > 0 {
		t, err := buildTransform(oc.Transform)
		if err != nil {
			return nil, err
		}
		node.SetTransform(t)
	}

	if oc.Material != nil {
		if oc.Type == "group" || oc.Type == "obj" {
			return nil, fmt.Errorf("%s objects cannot carry a material", oc.Type)
		}
		if err := applyMaterial(node.Material(), oc.Material); err != nil {
			return nil, err
		}
	}

	return node, nil
}

func applyMaterial(mat *material.Material, mc *MaterialConfig) error {
	if mc.Color != nil {
		c, err := toColor(mc.Color)
		if err != nil {
			return fmt.Errorf("material color: %w", err)
		}
		mat.Color = c
	}
	setIf := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&mat.Ambient, mc.Ambient)
	setIf(&mat.Diffuse, mc.Diffuse)
	setIf(&mat.Specular, mc.Specular)
	setIf(&mat.Shininess, mc.Shininess)
	setIf(&mat.Reflective, mc.Reflective)
	setIf(&mat.Transparency, mc.Transparency)
	setIf(&mat.RefractiveIndex, mc.RefractiveIndex)

	if mc.Pattern != nil {
		pattern, err := buildPattern(mc.Pattern)
		if err != nil {
			return err
		}
		mat.Pattern = pattern
	}
	return nil
}

func buildPattern(pc *PatternConfig) (material.Pattern, error) {
	a, err := toColor(pc.A)
	if err != nil {
		return nil, fmt.Errorf("pattern color a: %w", err)
	}
	b, err := toColor(pc.B)
	if err != nil {
		return nil, fmt.Errorf("pattern color b: %w", err)
	}

	var pattern material.Pattern
	switch pc.Type {
	case "stripe":
		pattern = material.NewStripePattern(a, b)
	case "gradient":
		pattern = material.NewGradientPattern(a, b)
	case "ring":
		pattern = material.NewRingPattern(a, b)
	case "checkers":
		pattern = material.NewCheckersPattern(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", pc.Type)
	}

	if len(pc.Transform) > 0 {
		t, err := buildTransform(pc.Transform)
		if err != nil {
			return nil, err
		}
		pattern.SetTransform(t)
	}
	return pattern, nil
}

// buildTransform composes a transform chain; the first listed step is
// applied to points first
func buildTransform(steps []TransformStep) (core.Transform, error) {
	combined := core.Identity()
	for i, step := range steps {
		t, err := buildStep(step)
		if err != nil {
			return core.Transform{}, fmt.Errorf("transform step %d: %w", i, err)
		}
		combined = t.Compose(combined)
	}
	return combined, nil
}

func buildStep(step TransformStep) (core.Transform, error) {
	switch {
	case step.Translate != nil:
		if len(step.Translate) != 3 {
			return core.Transform{}, fmt.Errorf("translate needs 3 values, got %d", len(step.Translate))
		}
		return core.Translation(step.Translate[0], step.Translate[1], step.Translate[2]), nil
	case step.Scale != nil:
		if len(step.Scale) != 3 {
			return core.Transform{}, fmt.Errorf("scale needs 3 values, got %d", len(step.Scale))
		}
		if step.Scale[0] == 0 || step.Scale[1] == 0 || step.Scale[2] == 0 {
			return core.Transform{}, fmt.Errorf("scale factors must be non-zero")
		}
		return core.Scaling(step.Scale[0], step.Scale[1], step.Scale[2]), nil
	case step.RotateX != nil:
		return core.RotationX(*step.RotateX), nil
	case step.RotateY != nil:
		return core.RotationY(*step.RotateY), nil
	case step.RotateZ != nil:
		return core.RotationZ(*step.RotateZ), nil
	case step.Shear != nil:
		if len(step.Shear) != 6 {
			return core.Transform{}, fmt.Errorf("shear needs 6 values, got %d", len(step.Shear))
		}
		return core.Shearing(step.Shear[0], step.Shear[1], step.Shear[2], step.Shear[3], step.Shear[4], step.Shear[5]), nil
	default:
		return core.Transform{}, fmt.Errorf("empty transform step")
	}
}

func toPoint(v []float64) (core.Point, error) {
	if len(v) != 3 {
		return core.Point{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return core.NewPoint(v[0], v[1], v[2]), nil
}

func toVector(v []float64) (core.Vector, error) {
	if len(v) != 3 {
		return core.Vector{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return core.NewVector(v[0], v[1], v[2]), nil
}

func toColor(v []float64) (core.Color, error) {
	if len(v) != 3 {
		return core.Color{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}
