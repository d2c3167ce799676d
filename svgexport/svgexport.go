package svgexport

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/arborfield/polyforest/geo"
)

// margin is the blank border, in SVG units, left around the bounding
// box of the rendered polygons.
const margin = 10.0

// Render writes an SVG document containing one <polygon> per entry in
// polys to w.
func Render(w io.Writer, polys []geo.Polygon) error {
	canvas := svg.New(w)

	if len(polys) == 0 {
		canvas.Start(2*int(margin), 2*int(margin))
		canvas.End()

		return nil
	}

	frames := make([]geo.Rectangle, len(polys))
	for i, p := range polys {
		frames[i] = p.Frame()
	}
	bounds := geo.BoundingRectangle(frames)

	width := int(math.Ceil(bounds.Width()+2*margin))
	height := int(math.Ceil(bounds.Height()+2*margin))
	canvas.Start(width, height)

	originX := bounds.BottomLeft().X
	top := bounds.TopRight().Y

	for _, p := range polys {
		pts := p.Points()
		xs := make([]int, len(pts))
		ys := make([]int, len(pts))
		for i, pt := range pts {
			xs[i] = int(math.Round(pt.X - originX + margin))
			ys[i] = int(math.Round(top - pt.Y + margin))
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:1")
	}

	canvas.End()

	return nil
}
