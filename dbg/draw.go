package dbg

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convex/geom"
)

// Padding in pixels around the scene
const DrawPadding = 20

// Render polygons into a context with the origin at the bottom left. Polygons
// that intersect any other polygon in the scene are filled red, the rest
// green, and each one is labeled with its Name at its centroid.
func render(scale float64, polys []*geom.ConvexPolygon) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly.Vertices() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if len(polys) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + DrawPadding*2
	height := int(scale*(maxY-minY)) + DrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(DrawPadding, DrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, poly := range polys {
		overlapping := false
		for j, other := range polys {
			if i != j && poly.Intersects(other) {
				overlapping = true
				break
			}
		}

		verts := poly.Vertices()
		c.MoveTo(verts[0].X, verts[0].Y)
		for _, p := range verts[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		if overlapping {
			c.SetRGBA(1, 0.2, 0.2, 0.5)
		} else {
			c.SetRGBA(0, 0.5, 0, 0.5)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()

		// Text has to be drawn in native coordinates, or it comes out upside down
		center, err := poly.Centroid()
		if err != nil {
			continue
		}
		x, y := c.TransformPoint(center.X, center.Y)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(Name(poly), x, y, 0.5, 0.5)
		c.Pop()
	}
	return c
}

// Write polygons as a PNG.
func Draw(w io.Writer, scale float64, polys ...*geom.ConvexPolygon) error {
	return render(scale, polys).EncodePNG(w)
}

func DrawFile(path string, scale float64, polys ...*geom.ConvexPolygon) error {
	return render(scale, polys).SavePNG(path)
}

// Print a PNG file to the terminal (iTerm only).
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
