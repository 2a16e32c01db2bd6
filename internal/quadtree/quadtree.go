// Package quadtree implements the LOD quadtree: an 18-root-tile Earth
// subdivided on demand as the camera approaches, with visibility
// culling and a fixed distance-to-LOD ladder driving split/merge
// decisions each frame.
package quadtree

import (
	"github.com/avatar29a/terraincore/internal/cameracontract"
	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/tile"
	"github.com/avatar29a/terraincore/internal/tilecache"
)

// Node is one quadtree node: a materialized tile plus up to four
// children, one per quadrant.
type Node struct {
	TopLeftLon, TopLeftLat float64
	LOD                    int

	Tile *tile.Tile

	NW, NE, SW, SE *Node

	Visible bool
	InFOV   bool
}

// Earth is the root of the quadtree: the fixed 18-tile, LOD-0 cover
// of the sphere.
type Earth struct {
	Roots [18]*Node
}

// NewEarth builds the 18 root nodes at LOD 0 (60-degree tiles over a
// 6x3 grid), fetching each one's tile through the cache under
// consumer.
func NewEarth(cache *tilecache.Cache, consumer tilecache.Consumer, ds *dataset.Reader) (*Earth, error) {
	e := &Earth{}
	idx := 0
	for la := 0; la < 3; la++ {
		for lo := 0; lo < 6; lo++ {
			lon := float64(lo) * 60.0
			lat := 90.0 - float64(la)*60.0

			n, err := newChildNode(cache, consumer, ds, lon, lat, 0) // (lon, lat) is already this root's top-left corner
			if err != nil {
				return nil, err
			}
			e.Roots[idx] = n
			idx++
		}
	}
	return e, nil
}

// newChildNode fetches or builds the node whose top-left corner is
// exactly (lon, lat) at lod, through the cache.
func newChildNode(cache *tilecache.Cache, consumer tilecache.Consumer, ds *dataset.Reader, lon, lat float64, lod int) (*Node, error) {
	if t, ok := cache.Find(consumer, lon, lat, lod); ok {
		return &Node{TopLeftLon: lon, TopLeftLat: lat, LOD: lod, Tile: t}, nil
	}

	built, err := tile.Build(lon, lat, lod, ds)
	if err != nil {
		return nil, err
	}
	t := cache.Register(consumer, built)
	return &Node{TopLeftLon: lon, TopLeftLat: lat, LOD: lod, Tile: t}, nil
}

// Visibility reports whether n should be considered for rendering
// this frame: either it is close enough to the camera to always show,
// or its closest point has not yet gone over the visible horizon.
func (n *Node) Visibility(cam cameracontract.Snapshot) bool {
	closest, normal, distance := n.Tile.ClosestPoint(cam.Position)

	toClosest := closest.Sub(cam.Position).Normalize()
	beyondHorizon := toClosest.Dot(normal) > -0.01

	closeToCamera := distance <= n.Tile.MustShowDistance

	behind := cam.Position.Sub(toClosest.Scale(10000.0))
	lookDir := closest.Sub(behind).Normalize()
	n.InFOV = lookDir.Dot(cam.Forward.Normalize()) >= cam.ClippingCosine

	return closeToCamera || !beyondHorizon
}

// lodDistanceKm is the fixed 13-step ladder of km thresholds, in
// increasing order, paired with the LOD each threshold activates
// (LODForDistance walks it from the finest LOD down).
var lodDistanceKm = [13]float64{
	5.2, 10.4, 20.8, 41.6, 83.2, 166.4, 332.8,
	665.6, 1331.2, 2662.5, 5324.9, 10649.9, 21299.7,
}

// LODForDistance returns the LOD a tile at distance meters (scaled by
// lodMultiplier) should render at, per the fixed 13-step ladder: LOD
// 13 inside 5.2km, stepping down to LOD 0 beyond 21299.7km.
func LODForDistance(distance float64, lodMultiplier float64) int {
	km := distance / 1000.0
	for i, threshold := range lodDistanceKm {
		if km < threshold*lodMultiplier {
			return 13 - i
		}
	}
	return 0
}

// Update is the per-frame maintenance step for n and everything below
// it: recomputing visibility, then splitting or merging to match the
// camera-driven target LOD.
func (n *Node) Update(cam cameracontract.Snapshot, cache *tilecache.Cache, consumer tilecache.Consumer, ds *dataset.Reader) error {
	if n.Tile == nil {
		panic("quadtree: Update called on a node with a nil Tile")
	}

	n.Visible = n.Visibility(cam)
	if !n.Visible {
		n.merge(cache, consumer)
		return nil
	}

	_, _, distance := n.Tile.ClosestPoint(cam.Position)
	targetLOD := LODForDistance(distance, cam.LODMultiplier)

	if targetLOD > n.LOD {
		if err := n.split(cache, consumer, ds); err != nil {
			return err
		}
		for _, child := range n.children() {
			if err := child.Update(cam, cache, consumer, ds); err != nil {
				return err
			}
		}
		return nil
	}

	n.merge(cache, consumer)
	return nil
}

func (n *Node) children() [4]*Node {
	return [4]*Node{n.NW, n.NE, n.SW, n.SE}
}

// split lazily materializes n's four children if not already present.
func (n *Node) split(cache *tilecache.Cache, consumer tilecache.Consumer, ds *dataset.Reader) error {
	if n.NW != nil {
		return nil // already split
	}

	half := dataset.LODDegreeSize(n.LOD) / 2.0
	lod := n.LOD + 1

	quadrants := [4]struct {
		lon, lat float64
		slot     **Node
	}{
		{n.TopLeftLon, n.TopLeftLat, &n.NW},
		{n.TopLeftLon + half, n.TopLeftLat, &n.NE},
		{n.TopLeftLon, n.TopLeftLat - half, &n.SW},
		{n.TopLeftLon + half, n.TopLeftLat - half, &n.SE},
	}

	for _, q := range quadrants {
		child, err := newChildNode(cache, consumer, ds, q.lon, q.lat, lod)
		if err != nil {
			return err
		}
		*q.slot = child
	}
	return nil
}

// merge releases all four children's tiles back to the cache and
// drops the child nodes. Idempotent if n is already a leaf.
func (n *Node) merge(cache *tilecache.Cache, consumer tilecache.Consumer) {
	if n.NW == nil {
		return
	}
	for _, child := range n.children() {
		child.merge(cache, consumer)
		cache.Release(consumer, child.Tile)
	}
	n.NW, n.NE, n.SW, n.SE = nil, nil, nil, nil
}

// Update runs the per-frame maintenance step across every root.
func (e *Earth) Update(cam cameracontract.Snapshot, cache *tilecache.Cache, consumer tilecache.Consumer, ds *dataset.Reader) error {
	for _, root := range e.Roots {
		if err := root.Update(cam, cache, consumer, ds); err != nil {
			return err
		}
	}
	return nil
}
