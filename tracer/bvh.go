package tracer

import (
	"fmt"
	"time"

	"github.com/vega-rt/vega/log"
	"github.com/vega-rt/vega/scene"
	"github.com/vega-rt/vega/types"
)

// The split policy selects how the BVH builder partitions primitives at
// each internal node.
type SplitPolicy uint8

const (
	// Bucketed surface area heuristic splits; the default.
	SAHSplit SplitPolicy = iota

	// Plain midpoint splits along the widest centroid axis.
	BasicSplit
)

const (
	// Number of candidate buckets evaluated by the SAH split.
	sahBucketCount = 12

	// Estimated cost of a box traversal relative to a primitive
	// intersection test. Empirical tuning value; changing it reshapes the
	// tree but does not affect correctness.
	sahTraversalCost float32 = 0.125

	// Node sets at or below this size always use the midpoint split; the
	// SAH bookkeeping is not worth it for them.
	sahMinItems = 4

	// Centroid ranges below this threshold are treated as degenerate.
	minCentroidRange float32 = 1e-6
)

// A BVH tree node. Leafs carry indices into the primitive arena; internal
// nodes carry their two children. The tree owns its nodes but never the
// primitives themselves.
type bvhNode struct {
	bounds Bounds
	left   *bvhNode
	right  *bvhNode

	// nil for internal nodes.
	prims []int
}

func (n *bvhNode) isLeaf() bool {
	return n.left == nil
}

// An immutable bounding volume hierarchy over a primitive arena. Built
// once per render; traversal holds no mutable state, so any number of
// goroutines may query the same tree concurrently.
type Tree struct {
	root  *bvhNode
	prims []*scene.Primitive
}

// Per-primitive data captured once before the recursive build.
type buildItem struct {
	index  int
	bounds Bounds
	center types.Vec3
}

// A candidate SAH bucket accumulated during a split evaluation.
type splitBucket struct {
	count  int
	bounds Bounds
}

type buildStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

type builder struct {
	logger log.Logger
	policy SplitPolicy
	stats  buildStats
}

// Construct a BVH over the given primitive arena. The tree stores arena
// indices, so the arena must outlive the tree and must not be mutated
// while the tree is in use.
//
// A post-build completeness check verifies that the primitives reachable
// from the root exactly match the input count; a mismatch means a builder
// bug and aborts immediately.
func Build(prims []*scene.Primitive, policy SplitPolicy) *Tree {
	b := &builder{
		logger: log.New("bvh"),
		policy: policy,
	}

	items := make([]buildItem, len(prims))
	for i, prim := range prims {
		bbox := prim.BBox()
		items[i] = buildItem{
			index:  i,
			bounds: NewBounds(bbox[0], bbox[1]),
			center: prim.Center(),
		}
	}

	start := time.Now()
	root := b.partition(items, 0)
	tree := &Tree{root: root, prims: prims}

	if got := tree.countPrims(root); got != len(prims) {
		panic(fmt.Sprintf("tracer: bvh completeness check failed: %d primitives reachable, %d expected", got, len(prims)))
	}

	b.logger.Debugf(
		"bvh build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.stats.maxDepth, b.stats.nodes, b.stats.leafs,
	)
	return tree
}

// Recursively partition items into a subtree.
func (b *builder) partition(items []buildItem, depth int) *bvhNode {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	// Union of member bounds; the zero-box identity covers the empty set.
	var bounds Bounds
	for i, item := range items {
		if i == 0 {
			bounds = item.bounds
		} else {
			bounds = bounds.Union(item.bounds)
		}
	}

	if len(items) <= 1 {
		return b.createLeaf(bounds, items)
	}

	// Select the axis with the widest centroid spread.
	cmin := items[0].center
	cmax := items[0].center
	for _, item := range items[1:] {
		cmin = types.MinVec3(cmin, item.center)
		cmax = types.MaxVec3(cmax, item.center)
	}
	axis := 0
	spread := cmax.Sub(cmin)
	if spread[1] > spread[axis] {
		axis = 1
	}
	if spread[2] > spread[axis] {
		axis = 2
	}

	var left, right []buildItem
	useSAH := b.policy == SAHSplit && len(items) > sahMinItems && spread[axis] >= minCentroidRange
	if useSAH {
		left, right = splitSAH(items, bounds, axis, cmin[axis], cmax[axis])
	}
	if left == nil || right == nil {
		// Basic policy, small or degenerate sets, or no usable SAH
		// candidate: partition around the centroid range midpoint.
		left, right = splitMidpoint(items, axis, (cmin[axis]+cmax[axis])*0.5)
	}
	if len(left) == 0 || len(right) == 0 {
		// All centroids coincide; cut the set in half so the recursion
		// always makes progress.
		left = items[:len(items)/2]
		right = items[len(items)/2:]
	}

	leftNode := b.partition(left, depth+1)
	rightNode := b.partition(right, depth+1)
	b.stats.nodes++
	return &bvhNode{
		bounds: leftNode.bounds.Union(rightNode.bounds),
		left:   leftNode,
		right:  rightNode,
	}
}

func (b *builder) createLeaf(bounds Bounds, items []buildItem) *bvhNode {
	prims := make([]int, len(items))
	for i, item := range items {
		prims[i] = item.index
	}
	b.stats.nodes++
	b.stats.leafs++
	return &bvhNode{bounds: bounds, prims: prims}
}

// Partition items by whether their centroid lies below the split point on
// the given axis.
func splitMidpoint(items []buildItem, axis int, splitPoint float32) ([]buildItem, []buildItem) {
	left := make([]buildItem, 0, len(items))
	right := make([]buildItem, 0, len(items))
	for _, item := range items {
		if item.center[axis] < splitPoint {
			left = append(left, item)
		} else {
			right = append(right, item)
		}
	}
	return left, right
}

// Evaluate the bucketed surface area heuristic along the given axis and
// partition items at the cheapest candidate plane. Returns nil slices when
// no candidate produces two non-empty partitions.
func splitSAH(items []buildItem, bounds Bounds, axis int, cmin, cmax float32) ([]buildItem, []buildItem) {
	// A flat parent box has zero surface area; the cost ratio would be
	// NaN or Inf for every candidate, so defer to the midpoint split.
	parentArea := bounds.SurfaceArea()
	if parentArea <= 0 {
		return nil, nil
	}

	centroidRange := cmax - cmin

	var buckets [sahBucketCount]splitBucket
	bucketOf := func(item buildItem) int {
		bi := int(float32(sahBucketCount) * (item.center[axis] - cmin) / centroidRange)
		if bi >= sahBucketCount {
			bi = sahBucketCount - 1
		}
		return bi
	}
	for _, item := range items {
		bi := bucketOf(item)
		if buckets[bi].count == 0 {
			buckets[bi].bounds = item.bounds
		} else {
			buckets[bi].bounds = buckets[bi].bounds.Union(item.bounds)
		}
		buckets[bi].count++
	}

	// Score the bucketCount-1 candidate planes. The parent surface area
	// normalizes both child terms.
	bestSplit := -1
	var bestCost float32
	for split := 0; split < sahBucketCount-1; split++ {
		var leftCount, rightCount int
		var leftBounds, rightBounds Bounds
		for i := 0; i <= split; i++ {
			if buckets[i].count == 0 {
				continue
			}
			if leftCount == 0 {
				leftBounds = buckets[i].bounds
			} else {
				leftBounds = leftBounds.Union(buckets[i].bounds)
			}
			leftCount += buckets[i].count
		}
		for i := split + 1; i < sahBucketCount; i++ {
			if buckets[i].count == 0 {
				continue
			}
			if rightCount == 0 {
				rightBounds = buckets[i].bounds
			} else {
				rightBounds = rightBounds.Union(buckets[i].bounds)
			}
			rightCount += buckets[i].count
		}
		if leftCount == 0 || rightCount == 0 {
			continue
		}

		cost := sahTraversalCost +
			(float32(leftCount)*leftBounds.SurfaceArea()+float32(rightCount)*rightBounds.SurfaceArea())/parentArea
		if bestSplit == -1 || cost < bestCost {
			bestSplit = split
			bestCost = cost
		}
	}
	if bestSplit == -1 {
		return nil, nil
	}

	left := make([]buildItem, 0, len(items))
	right := make([]buildItem, 0, len(items))
	for _, item := range items {
		if bucketOf(item) <= bestSplit {
			left = append(left, item)
		} else {
			right = append(right, item)
		}
	}
	return left, right
}

// Find the nearest primitive intersected by the ray. Ties between equal
// parameters resolve deterministically for a given input ordering: within
// a leaf the earlier arena index wins, across subtrees the left child wins.
func (t *Tree) NearestIntersection(r types.Ray) (*scene.Primitive, float32, bool) {
	if t.root == nil {
		return nil, 0, false
	}
	idx, tval, ok := t.nearestInNode(t.root, r)
	if !ok {
		return nil, 0, false
	}
	return t.prims[idx], tval, true
}

func (t *Tree) nearestInNode(n *bvhNode, r types.Ray) (int, float32, bool) {
	if _, hit := n.bounds.Intersect(r); !hit {
		return 0, 0, false
	}

	if n.isLeaf() {
		bestIdx := -1
		var bestT float32
		for _, idx := range n.prims {
			if tval, ok := t.prims[idx].Intersect(r); ok && (bestIdx == -1 || tval < bestT) {
				bestIdx = idx
				bestT = tval
			}
		}
		if bestIdx == -1 {
			return 0, 0, false
		}
		return bestIdx, bestT, true
	}

	lIdx, lT, lOK := t.nearestInNode(n.left, r)
	rIdx, rT, rOK := t.nearestInNode(n.right, r)
	switch {
	case lOK && rOK:
		if rT < lT {
			return rIdx, rT, true
		}
		return lIdx, lT, true
	case lOK:
		return lIdx, lT, true
	case rOK:
		return rIdx, rT, true
	}
	return 0, 0, false
}

// Count the primitive references reachable from the root.
func (t *Tree) Count() int {
	return t.countPrims(t.root)
}

// Count the primitive references reachable from the given node.
func (t *Tree) countPrims(n *bvhNode) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return len(n.prims)
	}
	return t.countPrims(n.left) + t.countPrims(n.right)
}
