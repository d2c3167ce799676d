package forest

import (
	"github.com/arborfield/polyforest/forest/tree"
	"github.com/arborfield/polyforest/geo"
)

// fixFalseInclusions repairs a forest built over bounding rectangles:
// a rectangle containing another is only a necessary condition for the
// underlying polygons to nest, not a sufficient one. Walking the tree
// breadth-first, any node whose real polygon is not actually contained
// by its parent's real polygon is moved up to its grandparent, then
// re-attached under whichever of the grandparent's other children
// actually contains it, if any.
//
// The walk enqueues a node's current children at the moment the node
// itself is dequeued, so a node moved earlier in the same pass is
// descended into using its new position, not a stale snapshot.
func fixFalseInclusions(root *tree.Node[int], polys []geo.Polygon) {
	queue := root.Children()
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		queue = append(queue, node.Children()...)

		parent := node.Parent()
		if parent == root {
			continue
		}

		childPoly := polys[node.Value()]
		if polys[parent.Value()].ContainsPolygon(childPoly) {
			continue
		}

		node.Upgrade()
		newParent := node.Parent()
		for _, sibling := range newParent.Children() {
			if sibling == node || sibling == parent {
				continue
			}
			if polys[sibling.Value()].ContainsPolygon(childPoly) {
				sibling.Adopt(node)
				break
			}
		}
	}
}
