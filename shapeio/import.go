// Package shapeio imports collision hulls from the plain-text exports
// produced by PhysicsEditor.
//
// Deprecated: author hulls in prefab YAML instead. The importer stays so
// old exports can be converted once and committed.
package shapeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/collision"
)

// Body is one named entry in an export file. Parsed polygons are
// anchor-relative, matching what prefab hulls and collision shapes expect.
type Body struct {
	Name     string
	Anchor   mgl64.Vec2
	Polygons [][]mgl64.Vec2
}

// Parse reads every body from an export. Vertex lines may follow either a
// "Hull polygon:" or a "Convex sub polygons:" header; each line holds one
// polygon as "(x, y) , (x, y) , ..." pairs in image coordinates, which are
// shifted by the body's anchor point.
func Parse(r io.Reader) ([]Body, error) {
	var (
		bodies  []Body
		current *Body
		raw     [][]mgl64.Vec2
		inPolys bool
	)

	// The anchor line may appear after the polygons, so the shift waits
	// until the body is complete.
	flush := func() {
		if current == nil {
			return
		}
		for _, poly := range raw {
			adjusted := make([]mgl64.Vec2, len(poly))
			for i, v := range poly {
				adjusted[i] = v.Sub(current.Anchor)
			}
			current.Polygons = append(current.Polygons, adjusted)
		}
		bodies = append(bodies, *current)
		current = nil
		raw = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "Name:"):
			flush()
			current = &Body{Name: strings.TrimSpace(strings.TrimPrefix(line, "Name:"))}
			inPolys = false
		case current == nil:
			continue
		case strings.HasPrefix(line, "AnchorPointAbs:"):
			anchor, err := parseAnchor(strings.TrimPrefix(line, "AnchorPointAbs:"))
			if err != nil {
				return nil, fmt.Errorf("shapeio: line %d: %w", lineNo, err)
			}
			current.Anchor = anchor
		case strings.Contains(line, "Hull polygon:") || strings.Contains(line, "Convex sub polygons:"):
			inPolys = true
		case inPolys && strings.HasPrefix(line, "("):
			poly, err := parseVertices(line)
			if err != nil {
				return nil, fmt.Errorf("shapeio: line %d: %w", lineNo, err)
			}
			if len(poly) > 0 {
				raw = append(raw, poly)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("shapeio: read: %w", err)
	}
	flush()
	return bodies, nil
}

// Load parses an export and builds the collision shape for one body.
func Load(r io.Reader, name string) (*collision.Shape, error) {
	bodies, err := Parse(r)
	if err != nil {
		return nil, err
	}
	for _, b := range bodies {
		if b.Name != name {
			continue
		}
		if len(b.Polygons) == 0 {
			return nil, fmt.Errorf("shapeio: body %q has no polygons", name)
		}
		shape := collision.NewShape()
		for _, poly := range b.Polygons {
			shape.AddPolygon(poly)
		}
		return shape, nil
	}
	return nil, fmt.Errorf("shapeio: body %q not found", name)
}

// parseAnchor decodes the "{ x,y }" payload of an AnchorPointAbs line.
func parseAnchor(s string) (mgl64.Vec2, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("malformed anchor {%s}", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("malformed anchor {%s}: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("malformed anchor {%s}: %w", s, err)
	}
	return mgl64.Vec2{x, y}, nil
}

func parseVertices(line string) ([]mgl64.Vec2, error) {
	var verts []mgl64.Vec2
	for pos := 0; pos < len(line); {
		open := strings.IndexByte(line[pos:], '(')
		if open < 0 {
			break
		}
		open += pos
		end := strings.IndexByte(line[open:], ')')
		if end < 0 {
			return nil, fmt.Errorf("unterminated vertex in %q", line)
		}
		end += open
		v, err := parseVertex(line[open+1 : end])
		if err != nil {
			return nil, err
		}
		verts = append(verts, v)
		pos = end + 1
	}
	return verts, nil
}

func parseVertex(s string) (mgl64.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("malformed vertex (%s)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("malformed vertex (%s): %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("malformed vertex (%s): %w", s, err)
	}
	return mgl64.Vec2{x, y}, nil
}
