package forest

import "github.com/arborfield/polyforest/forest/tree"

// rootIndex is the payload carried by the virtual root every builder
// attaches its top-level polygons under.
const rootIndex = -1

// buildQueueForest runs the naive descend-through-siblings algorithm
// over indices, using contains(a, b) to test whether polygon a
// directly encloses polygon b. It underlies both the plain Naive
// builder and the rectangle-level pre-pass of Frames and the
// no-progress fallback of DAC.
func buildQueueForest(indices []int, contains func(a, b int) bool) *tree.Node[int] {
	root := tree.New(rootIndex)
	nodes := make([]*tree.Node[int], len(indices))
	queue := make([]*tree.Node[int], 0, len(indices))

	for i, idx := range indices {
		n := tree.New(idx)
		nodes[i] = n
		root.Adopt(n)
		queue = append(queue, n)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		parent := cur.Parent()
		for _, sib := range parent.Children() {
			if sib == cur {
				continue
			}
			if contains(sib.Value(), cur.Value()) {
				cur.Attach(sib)
				queue = append(queue, cur)
				break
			}
		}
	}

	return root
}

// parentMap walks the forest rooted at root and returns, for each
// polygon index in [0, n), the index of its parent (rootIndex for a
// top-level polygon).
func parentMap(root *tree.Node[int], n int) []int {
	out := make([]int, n)
	for _, node := range root.BFS() {
		if node == root {
			continue
		}
		out[node.Value()] = node.Parent().Value()
	}

	return out
}
