// Package sceneclock implements the animator: a fixed-tick goroutine
// that mutates only the shared camera/viewpoint state consumed
// read-only by the updater and renderer each frame.
package sceneclock

import (
	"math"
	"sync"
	"time"

	"github.com/avatar29a/terraincore/internal/cameracontract"
	"github.com/avatar29a/terraincore/internal/earthmath"
)

// TickInterval is the animator's fixed tick period.
const TickInterval = 15 * time.Millisecond

// Waypoint names a point the animator can fly the camera to, paired
// with the altitude (meters above EarthRadius) and LOD multiplier it
// should arrive at.
type Waypoint struct {
	Name          string
	Lon, Lat      float64
	Altitude      float64
	LODMultiplier float64
}

// flight describes an in-progress ease from one viewpoint to another.
type flight struct {
	from, to       earthmath.Vec3
	fromLOD, toLOD float64
	start          time.Time
	duration       time.Duration
}

// Clock owns the current camera snapshot and, optionally, an
// in-progress eased flight toward a waypoint.
type Clock struct {
	mu   sync.Mutex
	snap cameracontract.Snapshot
	fl   *flight

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewClock creates a clock parked at the given initial snapshot.
func NewClock(initial cameracontract.Snapshot) *Clock {
	return &Clock{snap: initial, stop: make(chan struct{})}
}

// Snapshot implements pipeline.CameraSource.
func (c *Clock) Snapshot() cameracontract.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Set directly replaces the current snapshot, canceling any
// in-progress flight.
func (c *Clock) Set(snap cameracontract.Snapshot) {
	c.mu.Lock()
	c.snap = snap
	c.fl = nil
	c.mu.Unlock()
}

// FlyTo starts an eased transition of camera position and LOD
// multiplier from the current snapshot to w's position (held at its
// altitude above EarthRadius, looking straight down) over duration.
func (c *Clock) FlyTo(w Waypoint, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := earthmath.SphericalToCartesian(w.Lon, w.Lat, earthmath.EarthRadius+w.Altitude)
	c.fl = &flight{
		from:     c.snap.Position,
		to:       target,
		fromLOD:  c.snap.LODMultiplier,
		toLOD:    w.LODMultiplier,
		start:    time.Now(),
		duration: duration,
	}
}

// easeInOutCosine maps t in [0,1] to an eased [0,1] progress using a
// cosine curve, slow at both ends and fastest through the middle.
func easeInOutCosine(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2.0
}

func (c *Clock) tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fl == nil {
		return
	}

	elapsed := now.Sub(c.fl.start)
	if elapsed >= c.fl.duration {
		c.snap.Position = c.fl.to
		c.snap.LODMultiplier = c.fl.toLOD
		c.snap.Forward = c.snap.Position.Scale(-1).Normalize()
		c.fl = nil
		return
	}

	t := easeInOutCosine(float64(elapsed) / float64(c.fl.duration))
	c.snap.Position = lerp(c.fl.from, c.fl.to, t)
	c.snap.LODMultiplier = c.fl.fromLOD + (c.fl.toLOD-c.fl.fromLOD)*t
	c.snap.Forward = c.snap.Position.Scale(-1).Normalize()
}

func lerp(a, b earthmath.Vec3, t float64) earthmath.Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Run starts the animator's fixed-tick loop; Stop ends it.
func (c *Clock) Run() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case now := <-ticker.C:
				c.tick(now)
			}
		}
	}()
}

// Stop ends the animator's tick loop and waits for it to exit.
func (c *Clock) Stop() {
	close(c.stop)
	c.wg.Wait()
}
