// Package loaders turns external scene descriptions (Wavefront OBJ meshes
// and YAML scene files) into node trees ready to attach to a world.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// OBJFile holds the result of parsing a Wavefront OBJ stream. Vertices and
// Normals are 1-based as in the text format; index 0 is an unused sentinel.
type OBJFile struct {
	Vertices []core.Point
	Normals  []core.Vector

	// DefaultGroup collects faces that appear before any g record; named
	// groups collect the rest.
	DefaultGroup *geometry.Node
	Groups       map[string]*geometry.Node

	// IgnoredLines counts records the parser skipped (comments, texture
	// coordinates, materials, and anything else unrecognized)
	IgnoredLines int
}

// ParseOBJ parses an OBJ stream: v/vn/f/g records build triangles grouped by
// name; everything else is skipped and counted. Faces with four or more
// vertices are fan-triangulated from the first vertex, and faces carrying
// vertex-normal indices become smooth triangles.
func ParseOBJ(r io.Reader) (*OBJFile, error) {
	f := &OBJFile{
		Vertices:     []core.Point{core.NewPoint(0, 0, 0)},
		Normals:      []core.Vector{core.NewVector(0, 0, 0)},
		DefaultGroup: geometry.NewNode(geometry.NewGroup()),
		Groups:       make(map[string]*geometry.Node),
	}
	currentGroup := f.DefaultGroup

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseTriple(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			f.Vertices = append(f.Vertices, core.NewPoint(p[0], p[1], p[2]))

		case "vn":
			p, err := parseTriple(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex normal: %w", lineNo, err)
			}
			f.Normals = append(f.Normals, core.NewVector(p[0], p[1], p[2]))

		case "f":
			if err := f.parseFace(fields, currentGroup); err != nil {
				return nil, fmt.Errorf("line %d: invalid face: %w", lineNo, err)
			}

		case "g":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: group record missing name", lineNo)
			}
			name := fields[1]
			if _, exists := f.Groups[name]; !exists {
				f.Groups[name] = geometry.NewNode(geometry.NewGroup())
			}
			currentGroup = f.Groups[name]

		default:
			f.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ stream: %w", err)
	}

	return f, nil
}

// ParseOBJFile parses an OBJ file from disk
func ParseOBJFile(path string) (*OBJFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()
	return ParseOBJ(bufio.NewReader(file))
}

// Group assembles the parse result into one attachable node: a root group
// containing the default group's faces plus one child group per named g
// section, in sorted name order for deterministic scenes
func (f *OBJFile) Group() *geometry.Node {
	names := make([]string, 0, len(f.Groups))
	for name := range f.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f.DefaultGroup.AddChild(f.Groups[name])
	}
	return f.DefaultGroup
}

// parseTriple parses the three float arguments of a v or vn record
func parseTriple(fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) < 4 {
		return out, fmt.Errorf("expected 3 components, got %d", len(fields)-1)
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// parseFace triangulates one f record into the current group. A face vertex
// may be "i", "i/t", "i//n", or "i/t/n"; normals are used only when every
// vertex of the face carries one.
func (f *OBJFile) parseFace(fields []string, group *geometry.Node) error {
	if len(fields) < 4 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(fields)-1)
	}

	var vertexIndices, normalIndices []int
	smooth := true
	for _, field := range fields[1:] {
		parts := strings.Split(field, "/")

		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("bad vertex index %q: %w", parts[0], err)
		}
		if vi < 1 || vi >= len(f.Vertices) {
			return fmt.Errorf("vertex index %d out of range", vi)
		}
		vertexIndices = append(vertexIndices, vi)

		if len(parts) >= 3 && parts[2] != "" {
			ni, err := strconv.Atoi(parts[2])
			if err != nil {
				return fmt.Errorf("bad normal index %q: %w", parts[2], err)
			}
			if ni < 1 || ni >= len(f.Normals) {
				return fmt.Errorf("normal index %d out of range", ni)
			}
			normalIndices = append(normalIndices, ni)
		} else {
			smooth = false
		}
	}

	// Fan triangulation from the first vertex
	for i := 1; i < len(vertexIndices)-1; i++ {
		var tri geometry.Shape
		if smooth {
			tri = geometry.NewSmoothTriangle(
				f.Vertices[vertexIndices[0]],
				f.Vertices[vertexIndices[i]],
				f.Vertices[vertexIndices[i+1]],
				f.Normals[normalIndices[0]],
				f.Normals[normalIndices[i]],
				f.Normals[normalIndices[i+1]],
			)
		} else {
			tri = geometry.NewTriangle(
				f.Vertices[vertexIndices[0]],
				f.Vertices[vertexIndices[i]],
				f.Vertices[vertexIndices[i+1]],
			)
		}
		group.AddChild(geometry.NewNode(tri))
	}
	return nil
}
