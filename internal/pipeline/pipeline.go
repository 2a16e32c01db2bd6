// Package pipeline implements the double-buffered frame pipeline: an
// updater goroutine maintaining a back quadtree while a renderer
// goroutine reads a front quadtree, swapping ownership via a short
// handshake between frames. Only the renderer ever drains the
// GPU-resource deletion queue, mirroring the single live GL context
// the original engine's render thread owned.
package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avatar29a/terraincore/internal/cameracontract"
	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/quadtree"
	"github.com/avatar29a/terraincore/internal/tilecache"
)

// CameraSource supplies the current camera snapshot to the updater
// and renderer each iteration.
type CameraSource interface {
	Snapshot() cameracontract.Snapshot
}

// Pipeline owns the two double-buffered quadtree.Earth instances and
// the goroutines that alternate ownership of them.
type Pipeline struct {
	ID uuid.UUID

	cache  *tilecache.Cache
	ds     *dataset.Reader
	camera CameraSource
	log    *zap.Logger

	bufA, bufB *quadtree.Earth

	swapMu          sync.Mutex
	swapCond        *sync.Cond
	readyToExchange bool
	stopping        bool

	updatingMu sync.Mutex
	updating   bool

	deletionMu    sync.Mutex
	deletionQueue []uint32

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewPipeline builds both trees' 18 root nodes via cache (consumer A
// for bufA, consumer B for bufB) and wires itself in as the cache's
// GPU-resource deletion sink.
func NewPipeline(cache *tilecache.Cache, ds *dataset.Reader, camera CameraSource, log *zap.Logger) (*Pipeline, error) {
	p := &Pipeline{
		ID:       uuid.New(),
		cache:    cache,
		ds:       ds,
		camera:   camera,
		log:      log,
		updating: true,
		stop:     make(chan struct{}),
	}
	p.swapCond = sync.NewCond(&p.swapMu)
	cache.SetSink(p)

	bufA, err := quadtree.NewEarth(cache, tilecache.ConsumerA, ds)
	if err != nil {
		return nil, err
	}
	bufB, err := quadtree.NewEarth(cache, tilecache.ConsumerB, ds)
	if err != nil {
		return nil, err
	}
	p.bufA, p.bufB = bufA, bufB

	return p, nil
}

// EnqueueDeletion implements tilecache.DeletionSink: handles are held
// until the renderer goroutine next drains the queue, at the end of
// its next iteration (after its swap check, whether or not a swap
// happened).
func (p *Pipeline) EnqueueDeletion(handle uint32) error {
	p.deletionMu.Lock()
	p.deletionQueue = append(p.deletionQueue, handle)
	p.deletionMu.Unlock()
	return nil
}

func (p *Pipeline) drainDeletions() []uint32 {
	p.deletionMu.Lock()
	defer p.deletionMu.Unlock()
	if len(p.deletionQueue) == 0 {
		return nil
	}
	drained := p.deletionQueue
	p.deletionQueue = nil
	return drained
}

// SetTreeUpdating toggles whether the updater goroutine performs its
// maintenance pass each iteration; when false it still participates in
// the swap handshake so the renderer is never starved.
func (p *Pipeline) SetTreeUpdating(on bool) {
	p.updatingMu.Lock()
	p.updating = on
	p.updatingMu.Unlock()
}

func (p *Pipeline) treeUpdating() bool {
	p.updatingMu.Lock()
	defer p.updatingMu.Unlock()
	return p.updating
}

// Start launches the updater and renderer goroutines. render is called
// once per renderer iteration with the current front tree, read-only;
// maxUnused bounds the cache after each updater pass.
func (p *Pipeline) Start(render func(*quadtree.Earth), maxUnused int) {
	p.wg.Add(2)
	go p.runUpdater(maxUnused)
	go p.runRenderer(render)
}

func (p *Pipeline) runUpdater(maxUnused int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		if p.treeUpdating() {
			cam := p.camera.Snapshot()
			if err := p.bufB.Update(cam, p.cache, tilecache.ConsumerB, p.ds); err != nil {
				p.log.Error("quadtree update failed", zap.String("pipeline", p.ID.String()), zap.Error(err))
			}
			if err := p.cache.Bound(maxUnused); err != nil {
				p.log.Warn("cache bound reported errors", zap.String("pipeline", p.ID.String()), zap.Error(err))
			}
		}

		p.swapMu.Lock()
		p.readyToExchange = true
		for p.readyToExchange && !p.stopping {
			p.swapCond.Wait()
		}
		stopping := p.stopping
		p.swapMu.Unlock()
		if stopping {
			return
		}
	}
}

func (p *Pipeline) runRenderer(render func(*quadtree.Earth)) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		render(p.bufA)

		p.swapMu.Lock()
		if p.readyToExchange {
			p.bufA, p.bufB = p.bufB, p.bufA
			p.readyToExchange = false
			p.swapCond.Signal()
		}
		p.swapMu.Unlock()

		for _, handle := range p.drainDeletions() {
			p.log.Debug("gpu resource queued for deletion", zap.String("pipeline", p.ID.String()), zap.Uint32("handle", handle))
		}
	}
}

// Close stops both goroutines and performs a final sweep of the
// entire cache.
func (p *Pipeline) Close() error {
	p.swapMu.Lock()
	p.stopping = true
	p.swapMu.Unlock()

	close(p.stop)
	p.swapCond.Broadcast()
	p.wg.Wait()
	return p.cache.Sweep(time.Now().Add(time.Hour * 24 * 365))
}
