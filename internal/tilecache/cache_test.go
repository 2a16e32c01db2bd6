package tilecache

import (
	"testing"
	"time"

	"github.com/avatar29a/terraincore/internal/earthmath"
	"github.com/avatar29a/terraincore/internal/tile"
)

func newTestTile(lon, lat float64, lod int) *tile.Tile {
	t := &tile.Tile{TopLeftLon: lon, TopLeftLat: lat, LOD: lod}
	t.Grid[0][0].SeaLevel = earthmath.Vec3{X: 1, Y: 0, Z: 0}
	return t
}

func TestRegisterDeduplicatesSameKey(t *testing.T) {
	c := New(nil)

	a := newTestTile(0, 90, 0)
	got1 := c.Register(ConsumerA, a)
	if got1 != a {
		t.Fatalf("first Register should return the inserted tile")
	}

	b := newTestTile(0, 90, 0)
	got2 := c.Register(ConsumerB, b)
	if got2 != a {
		t.Fatalf("second Register for the same key should return the canonical tile, got a distinct pointer")
	}

	found, ok := c.Find(ConsumerA, 0, 90, 0)
	if !ok || found != a {
		t.Fatalf("Find should return the canonical tile")
	}
}

func TestReleaseOnMissingKeyIsNoop(t *testing.T) {
	c := New(nil)
	ghost := newTestTile(15, 45, 3)
	c.Release(ConsumerA, ghost) // must not panic
}

func TestBoundNeverEvictsInUseEntry(t *testing.T) {
	c := New(nil)
	a := newTestTile(0, 90, 0)
	c.Register(ConsumerA, a)

	c.Bound(0) // force eviction attempt with a zero bound

	_, ok := c.Find(ConsumerB, 0, 90, 0)
	if !ok {
		t.Fatalf("an in-use entry (ConsumerA held) must survive Bound")
	}
}

func TestSweepEvictsIdleEntries(t *testing.T) {
	c := New(nil)
	a := newTestTile(0, 90, 0)
	c.Register(ConsumerA, a)
	c.Release(ConsumerA, a)

	c.Sweep(time.Now().Add(time.Hour))

	info := c.Info()
	if info.Count != 0 {
		t.Fatalf("expected sweep to remove the idle entry, got count %d", info.Count)
	}
}

type recordingSink struct {
	handles []uint32
}

func (s *recordingSink) EnqueueDeletion(handle uint32) error {
	s.handles = append(s.handles, handle)
	return nil
}

func TestSweepEnqueuesTextureHandle(t *testing.T) {
	sink := &recordingSink{}
	c := New(sink)

	a := newTestTile(0, 90, 0)
	a.TextureHandle = 42
	c.Register(ConsumerA, a)
	c.Release(ConsumerA, a)

	c.Sweep(time.Now().Add(time.Hour))

	if len(sink.handles) != 1 || sink.handles[0] != 42 {
		t.Fatalf("expected texture handle 42 enqueued, got %v", sink.handles)
	}
}

func TestRegisterPanicsOnSameCanonicalPointer(t *testing.T) {
	c := New(nil)
	a := newTestTile(0, 90, 0)
	c.Register(ConsumerA, a)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic registering the already-canonical pointer again")
		}
	}()
	c.Register(ConsumerB, a)
}
