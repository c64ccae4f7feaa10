// Command hullcheck validates authored collision hulls: every polygon
// must have at least three vertices, be convex, and share one winding
// direction with the rest of the shape. It reads prefab YAML or shape
// export files and exits nonzero when any hull fails.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/geom"
	"github.com/milk9111/starwreck/prefabs"
	"github.com/milk9111/starwreck/shapeio"
)

func main() {
	prefab := flag.String("prefab", "", "prefab YAML to check, e.g. dreadnought.yaml")
	file := flag.String("file", "", "shape export file to check")
	body := flag.String("body", "", "body name inside -file (default: all bodies)")
	verbose := flag.Bool("v", false, "print every polygon")
	flag.Parse()

	switch {
	case *prefab != "" && *file != "":
		log.Fatal("use -prefab or -file, not both")
	case *prefab != "":
		if !checkPrefab(*prefab, *verbose) {
			os.Exit(1)
		}
	case *file != "":
		if !checkFile(*file, *body, *verbose) {
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func checkPrefab(name string, verbose bool) bool {
	spec, err := prefabs.LoadShip(name)
	if err != nil {
		log.Fatalf("load prefab: %v", err)
	}

	polys := make([][]mgl64.Vec2, len(spec.Hull.Polygons))
	for i, poly := range spec.Hull.Polygons {
		verts := make([]mgl64.Vec2, len(poly))
		for j, v := range poly {
			verts[j] = mgl64.Vec2{v.X, v.Y}
		}
		polys[i] = verts
	}
	return checkHull(spec.Name, polys, verbose)
}

func checkFile(path, body string, verbose bool) bool {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer f.Close()

	bodies, err := shapeio.Parse(f)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	ok := true
	matched := false
	for _, b := range bodies {
		if body != "" && b.Name != body {
			continue
		}
		matched = true
		if !checkHull(b.Name, b.Polygons, verbose) {
			ok = false
		}
	}
	if !matched {
		if body != "" {
			log.Fatalf("body %q not found in %s", body, path)
		}
		log.Fatalf("no bodies in %s", path)
	}
	return ok
}

func checkHull(name string, polys [][]mgl64.Vec2, verbose bool) bool {
	if len(polys) == 0 {
		fmt.Printf("%s: FAIL: no polygons\n", name)
		return false
	}

	ok := true
	shapeWinding := 0
	for i, poly := range polys {
		w, err := polygonWinding(poly)
		if err != nil {
			fmt.Printf("%s: polygon %d: FAIL: %v\n", name, i, err)
			ok = false
			continue
		}
		if shapeWinding == 0 {
			shapeWinding = w
		} else if w != shapeWinding {
			fmt.Printf("%s: polygon %d: FAIL: winding differs from polygon 0\n", name, i)
			ok = false
		}
		if verbose {
			fmt.Printf("%s: polygon %d: %d vertices, %s\n", name, i, len(poly), windingName(w))
		}
	}

	if ok {
		box := hullAABB(polys)
		fmt.Printf("%s: OK: %d polygons, bounds x=[%.1f, %.1f] y=[%.1f, %.1f]\n",
			name, len(polys), box.MinX(), box.MaxX(), box.MinY(), box.MaxY())
	}
	return ok
}

// polygonWinding returns +1 (clockwise in screen coordinates, where Y
// grows downward) or -1 for the polygon's turn direction. Degenerate and
// concave polygons return an error; collinear runs are tolerated.
func polygonWinding(poly []mgl64.Vec2) (int, error) {
	if len(poly) < 3 {
		return 0, fmt.Errorf("%d vertices, need at least 3", len(poly))
	}

	winding := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		e1 := poly[(i+1)%n].Sub(poly[i])
		e2 := poly[(i+2)%n].Sub(poly[(i+1)%n])
		cross := e1.X()*e2.Y() - e1.Y()*e2.X()
		switch {
		case cross == 0:
		case cross > 0:
			if winding < 0 {
				return 0, fmt.Errorf("concave at vertex %d", (i+1)%n)
			}
			winding = 1
		default:
			if winding > 0 {
				return 0, fmt.Errorf("concave at vertex %d", (i+1)%n)
			}
			winding = -1
		}
	}
	if winding == 0 {
		return 0, fmt.Errorf("all vertices collinear")
	}
	return winding, nil
}

func windingName(w int) string {
	if w > 0 {
		return "clockwise"
	}
	return "counterclockwise"
}

func hullAABB(polys [][]mgl64.Vec2) geom.Rect {
	var box geom.Rect
	first := true
	for _, poly := range polys {
		for _, v := range poly {
			r := geom.Rect{X: v.X(), Y: v.Y()}
			if first {
				box = r
				first = false
			} else {
				box = box.Union(r)
			}
		}
	}
	return box
}
