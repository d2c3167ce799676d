package forest

import (
	"github.com/arborfield/polyforest/forest/tree"
	"github.com/arborfield/polyforest/geo"
)

// divide builds a rectangle-level forest over subset by recursively
// splitting big, the region being partitioned (the bounding rectangle
// of every frame at the top level, one half of the parent's region in
// recursive calls), into two halves and merging the two halves'
// sub-forests back together.
func divide(subset []int, frames []geo.Rectangle, big geo.Rectangle) *tree.Node[int] {
	switch len(subset) {
	case 0:
		return tree.New(rootIndex)
	case 1:
		root := tree.New(rootIndex)
		root.Adopt(tree.New(subset[0]))
		return root
	case 2:
		return divideTwo(subset[0], subset[1], frames)
	default:
		return divideMany(subset, frames, big)
	}
}

func divideTwo(a, b int, frames []geo.Rectangle) *tree.Node[int] {
	root := tree.New(rootIndex)
	na, nb := tree.New(a), tree.New(b)

	switch {
	case frames[a].Contains(frames[b]):
		root.Adopt(na)
		na.Adopt(nb)
	case frames[b].Contains(frames[a]):
		root.Adopt(nb)
		nb.Adopt(na)
	default:
		root.Adopt(na)
		root.Adopt(nb)
	}

	return root
}

func divideMany(subset []int, frames []geo.Rectangle, big geo.Rectangle) *tree.Node[int] {
	n := len(subset)

	left, right, sep := big.DivideVertically()
	a, b := splitSubset(subset, frames, sep)

	if len(a) == n || len(b) == n {
		// splitSubset's first list is the side counter-clockwise of the
		// left-to-right separator, i.e. the top half.
		right, left, sep = big.DivideHorizontally()
		a, b = splitSubset(subset, frames, sep)
	}

	switch {
	case len(a) == n:
		return buildQueueForest(a, func(i, j int) bool { return frames[i].Contains(frames[j]) })
	case len(b) == n:
		return buildQueueForest(b, func(i, j int) bool { return frames[i].Contains(frames[j]) })
	default:
		tl := divide(a, frames, left)
		tr := divide(b, frames, right)
		return conquer(tl, tr, frames)
	}
}

// splitSubset partitions subset's rectangles relative to sep: a
// rectangle joins left if any of its four corners lies strictly
// counter-clockwise of sep's direction, and right if any corner lies
// strictly clockwise. A rectangle straddling sep can join both halves.
func splitSubset(subset []int, frames []geo.Rectangle, sep geo.Segment) (left, right []int) {
	u := sep.Direction()
	start := sep.Start()

	for _, i := range subset {
		inLeft, inRight := false, false
		for _, corner := range frames[i].Polygon().Points() {
			v := geo.NewVectorBetween(start, corner)
			d := u.Det(v)
			switch {
			case d > geo.Epsilon:
				inLeft = true
			case d < -geo.Epsilon:
				inRight = true
			}
		}
		if inLeft {
			left = append(left, i)
		}
		if inRight {
			right = append(right, i)
		}
	}

	return left, right
}

// conquer merges left into right: each of left's top-level rectangles
// is adopted by the first of right's top-level rectangles that
// contains it, or attached directly under right's root otherwise.
func conquer(left, right *tree.Node[int], frames []geo.Rectangle) *tree.Node[int] {
	for !left.IsLeaf() {
		child := left.Children()[0]
		placed := false
		for _, candidate := range right.Children() {
			if frames[candidate.Value()].Contains(frames[child.Value()]) {
				candidate.Adopt(child)
				placed = true
				break
			}
		}
		if !placed {
			right.Adopt(child)
		}
	}

	return right
}

// boundingOf returns the bounding rectangle of frames[i] for i in
// subset. It returns the zero Rectangle for an empty subset, which
// callers never dereference.
func boundingOf(frames []geo.Rectangle, subset []int) geo.Rectangle {
	if len(subset) == 0 {
		return geo.Rectangle{}
	}

	rs := make([]geo.Rectangle, len(subset))
	for i, idx := range subset {
		rs[i] = frames[idx]
	}

	return geo.BoundingRectangle(rs)
}
