package forest

import (
	"github.com/arborfield/polyforest/forest/tree"
	"github.com/arborfield/polyforest/geo"
)

// Build computes the containment forest of polys with the chosen
// algorithm: a tree rooted at a virtual node carrying index -1, whose
// other nodes carry a polygon index each. Build(nil, algo) returns an
// empty root.
func Build(polys []geo.Polygon, algo Algorithm) *tree.Node[int] {
	n := len(polys)
	if n == 0 {
		return tree.New(rootIndex)
	}

	indices := rangeN(n)

	switch algo {
	case Naive:
		return buildQueueForest(indices, func(a, b int) bool {
			return polys[a].ContainsPolygon(polys[b])
		})
	case Frames:
		frames := frameSlice(polys)
		root := buildQueueForest(indices, func(a, b int) bool {
			return frames[a].Contains(frames[b])
		})
		fixFalseInclusions(root, polys)
		return root
	case DAC:
		frames := frameSlice(polys)
		big := boundingOf(frames, indices)
		root := divide(indices, frames, big)
		fixFalseInclusions(root, polys)
		return root
	default:
		panic("forest: unknown algorithm")
	}
}

// ParentIndices flattens a forest built over n polygons into a slice
// where index i holds the parent index of polygon i (-1 for a
// top-level polygon).
func ParentIndices(root *tree.Node[int], n int) []int {
	return parentMap(root, n)
}

func rangeN(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func frameSlice(polys []geo.Polygon) []geo.Rectangle {
	out := make([]geo.Rectangle, len(polys))
	for i, p := range polys {
		out[i] = p.Frame()
	}

	return out
}
