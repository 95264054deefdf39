package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mcray/go-raytracer/pkg/core"
)

// BVHNode is a node in a bounding volume hierarchy. Leaves hold one or two
// primitives; internal nodes hold exactly two children. A node's box always
// contains both children's boxes. Built once, never mutated.
type BVHNode struct {
	left  core.Hittable
	right core.Hittable
	box   core.AABB
}

// boundedObject pairs a primitive with its precomputed bounding box so the
// sort comparator never recomputes boxes
type boundedObject struct {
	object core.Hittable
	box    core.AABB
}

// NewBVH builds a hierarchy over the given primitives for the given time
// interval. A primitive without a bounding box cannot be placed into a BVH;
// that is a construction-time error the scene builder must treat as fatal.
func NewBVH(objects []core.Hittable, time0, time1 float64) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("bvh: cannot build over an empty primitive list")
	}

	bounded := make([]boundedObject, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("bvh: primitive %d has no bounding box", i)
		}
		bounded[i] = boundedObject{object: object, box: box}
	}

	// Axis choice is randomized per node; a fixed seed keeps builds
	// reproducible without changing the algorithm
	rng := rand.New(rand.NewSource(int64(len(objects))))
	return buildBVH(bounded, rng), nil
}

// buildBVH recursively partitions the primitives: pick a random axis, sort
// by the minimum box coordinate along it, split at the median
func buildBVH(objects []boundedObject, rng *rand.Rand) *BVHNode {
	axis := rng.Intn(3)

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.left = objects[0].object
		node.right = objects[0].object
		node.box = objects[0].box
	case 2:
		a, b := objects[0], objects[1]
		if a.box.Min.Axis(axis) > b.box.Min.Axis(axis) {
			a, b = b, a
		}
		node.left = a.object
		node.right = b.object
		node.box = core.Surrounding(a.box, b.box)
	default:
		sort.Slice(objects, func(i, j int) bool {
			return objects[i].box.Min.Axis(axis) < objects[j].box.Min.Axis(axis)
		})

		mid := len(objects) / 2
		left := buildBVH(objects[:mid], rng)
		right := buildBVH(objects[mid:], rng)
		node.left = left
		node.right = right
		node.box = core.Surrounding(left.box, right.box)
	}

	return node
}

// Hit rejects via the node's box, then probes both children, shrinking tMax
// so deeper subtrees cannot report a farther hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closestHit, hitLeft := n.left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = closestHit.T
	}

	if hit, hitRight := n.right.Hit(ray, tMin, tMax, sampler); hitRight {
		closestHit = hit
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the node's precomputed box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}
