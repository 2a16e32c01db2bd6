// Package tilecache implements the sharded, reference-counted tile
// cache shared by the updater and renderer trees: entries are looked
// up and registered by two independent consumers, each tracked with
// its own occupancy flag rather than a single refcount, so that
// releasing one tree's hold on a tile never affects the other's.
package tilecache

import (
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/geo"
	"github.com/avatar29a/terraincore/internal/tile"
)

// Consumer identifies which of the two double-buffered tree
// instances is calling into the cache.
type Consumer int

const (
	ConsumerA Consumer = iota
	ConsumerB
)

// MaxUnused is the default steady-state bound on not-in-use entries
// passed to Bound.
const MaxUnused = 50000

// DeletionSink receives GPU resource handles freed by an eviction, so
// the owning pipeline can drain them on its render thread. A nil sink
// silently drops handles.
type DeletionSink interface {
	EnqueueDeletion(handle uint32) error
}

type entry struct {
	tile        *tile.Tile
	consumerA   bool
	consumerB   bool
	lastTouched time.Time
}

func (e *entry) inUse() bool {
	return e.consumerA || e.consumerB
}

type shard struct {
	mu      sync.Mutex
	entries []*entry
}

// Cache is the full three-band, sharded tile cache.
type Cache struct {
	bands map[geo.Band]*bandCache
	sink  DeletionSink
}

type bandCache struct {
	degreeSize float64
	shards     map[int64]*shard
	mu         sync.Mutex // guards the shards map itself, not its contents
}

// New creates an empty cache for the three elevation bands, with sink
// receiving GPU handles freed by evictions (may be nil).
func New(sink DeletionSink) *Cache {
	c := &Cache{
		bands: make(map[geo.Band]*bandCache),
		sink:  sink,
	}
	for _, band := range []geo.Band{geo.ElevationL00L03, geo.ElevationL04L08, geo.ElevationL09L13} {
		c.bands[band] = &bandCache{
			degreeSize: band.DegreeSize(),
			shards:     make(map[int64]*shard),
		}
	}
	return c
}

func shardKeyFor(degreeSize, topLeftLon, topLeftLat float64) int64 {
	return int64(geo.ToAvailabilityIndex(topLeftLon, topLeftLat, degreeSize))
}

func (c *Cache) bandFor(lod int) *bandCache {
	return c.bands[dataset.ElevationBandForLOD(lod)]
}

func (b *bandCache) shardFor(topLeftLon, topLeftLat float64) *shard {
	key := shardKeyFor(b.degreeSize, topLeftLon, topLeftLat)

	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.shards[key]
	if !ok {
		s = &shard{}
		b.shards[key] = s
	}
	return s
}

func setFlag(e *entry, consumer Consumer) {
	switch consumer {
	case ConsumerA:
		e.consumerA = true
	case ConsumerB:
		e.consumerB = true
	}
}

func clearFlag(e *entry, consumer Consumer) {
	switch consumer {
	case ConsumerA:
		e.consumerA = false
	case ConsumerB:
		e.consumerB = false
	}
}

// Find looks up the tile whose top-left corner and LOD match (lon,
// lat, lod) after snapping to the owning band's shard, marking the
// calling consumer's occupancy flag if found.
func (c *Cache) Find(consumer Consumer, topLeftLon, topLeftLat float64, lod int) (*tile.Tile, bool) {
	band := c.bandFor(lod)
	s := band.shardFor(topLeftLon, topLeftLat)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		k := e.tile.Key()
		if k.TopLeftLon == topLeftLon && k.TopLeftLat == topLeftLat && k.LOD == lod {
			setFlag(e, consumer)
			e.lastTouched = time.Now()
			return e.tile, true
		}
	}
	return nil, false
}

// Register inserts built into the cache under its own key, marking
// the caller's occupancy flag. If an entry already exists for that
// key, built is discarded and the existing, canonical tile is
// returned instead: two consumers building the same tile independently
// converge on one shared instance.
//
// Registering the exact pointer that is already the canonical entry
// for its key is a caller programming error.
func (c *Cache) Register(consumer Consumer, built *tile.Tile) *tile.Tile {
	key := built.Key()
	band := c.bandFor(key.LOD)
	s := band.shardFor(key.TopLeftLon, key.TopLeftLat)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.tile.Key() == key {
			if e.tile == built {
				panic("tilecache: Register called with the already-canonical tile pointer")
			}
			setFlag(e, consumer)
			e.lastTouched = time.Now()
			return e.tile
		}
	}

	e := &entry{tile: built, lastTouched: time.Now()}
	setFlag(e, consumer)
	s.entries = append(s.entries, e)
	return built
}

// Release clears the calling consumer's occupancy flag for t. A
// release against a key with no live entry is a no-op, matching the
// original's defensive handling of zombie releases.
func (c *Cache) Release(consumer Consumer, t *tile.Tile) {
	key := t.Key()
	band := c.bandFor(key.LOD)
	s := band.shardFor(key.TopLeftLon, key.TopLeftLat)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.tile == t {
			clearFlag(e, consumer)
			e.lastTouched = time.Now()
			return
		}
	}
}

// CacheInfo summarizes cache occupancy across every band and shard.
type CacheInfo struct {
	Count         int
	InUseCount    int
	NotInUseCount int
	EmptyCount    int
	MinIdleTime   time.Time
}

// Info aggregates counts and idle time across the whole cache.
func (c *Cache) Info() CacheInfo {
	var info CacheInfo
	var haveMin bool

	for _, band := range c.bands {
		band.mu.Lock()
		shards := make([]*shard, 0, len(band.shards))
		for _, s := range band.shards {
			shards = append(shards, s)
		}
		band.mu.Unlock()

		for _, s := range shards {
			s.mu.Lock()
			if len(s.entries) == 0 {
				info.EmptyCount++
			}
			for _, e := range s.entries {
				info.Count++
				if e.inUse() {
					info.InUseCount++
				} else {
					info.NotInUseCount++
					if !haveMin || e.lastTouched.Before(info.MinIdleTime) {
						info.MinIdleTime = e.lastTouched
						haveMin = true
					}
				}
			}
			s.mu.Unlock()
		}
	}
	return info
}

// Sweep unconditionally evicts every not-in-use entry last touched
// before olderThan, across every band and shard, enqueueing any
// carried GPU texture handle for deletion on the owning pipeline. Any
// errors returned by the deletion sink across all shards are
// aggregated and returned together rather than aborting the sweep.
func (c *Cache) Sweep(olderThan time.Time) error {
	var errs error

	for _, band := range c.bands {
		band.mu.Lock()
		shards := make([]*shard, 0, len(band.shards))
		for _, s := range band.shards {
			shards = append(shards, s)
		}
		band.mu.Unlock()

		for _, s := range shards {
			s.mu.Lock()
			kept := s.entries[:0]
			for _, e := range s.entries {
				if !e.inUse() && e.lastTouched.Before(olderThan) {
					if e.tile.TextureHandle != 0 && c.sink != nil {
						errs = multierr.Append(errs, c.sink.EnqueueDeletion(e.tile.TextureHandle))
					}
					continue
				}
				kept = append(kept, e)
			}
			s.entries = kept
			s.mu.Unlock()
		}
	}

	return errs
}

// SetSink rebinds the cache's deletion sink, letting a pipeline wire
// itself in after both it and the cache have been constructed.
func (c *Cache) SetSink(sink DeletionSink) {
	c.sink = sink
}

// Bound applies the steady-state eviction policy: if the number of
// not-in-use entries exceeds maxUnused, sweep everything idle since
// MinIdleTime plus a 5 second grace window; otherwise a no-op.
func (c *Cache) Bound(maxUnused int) error {
	info := c.Info()
	if info.NotInUseCount <= maxUnused {
		return nil
	}
	return c.Sweep(info.MinIdleTime.Add(5 * time.Second))
}
