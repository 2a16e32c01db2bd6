// Package main is the headless terraincore demo entry point: it wires
// configuration, logging, the dataset reader, the tile cache, and the
// double-buffered pipeline together and runs the engine without any
// GPU, windowing, or input layer, which are external collaborators
// left to a host renderer.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/avatar29a/terraincore/internal/cameracontract"
	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/earthmath"
	"github.com/avatar29a/terraincore/internal/enginecfg"
	"github.com/avatar29a/terraincore/internal/geo"
	"github.com/avatar29a/terraincore/internal/logger"
	"github.com/avatar29a/terraincore/internal/pipeline"
	"github.com/avatar29a/terraincore/internal/poi"
	"github.com/avatar29a/terraincore/internal/quadtree"
	"github.com/avatar29a/terraincore/internal/sceneclock"
	"github.com/avatar29a/terraincore/internal/tilecache"
)

func main() {
	enginecfg.ParseFlags()

	cfg, err := enginecfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== terraincore ===")

	ds, err := openDataset(cfg.Dataset)
	if err != nil {
		logger.Error("dataset open failed", zap.Error(err))
		os.Exit(1)
	}
	defer ds.Close()

	cache := tilecache.New(nil)

	initial := cameracontract.Snapshot{
		Position:       earthmath.Vec3{X: earthmath.EarthRadius * 3},
		Forward:        earthmath.Vec3{X: -1},
		ClippingCosine: 0.5,
		LODMultiplier:  cfg.Camera.LODMultiplier,
	}
	clock := sceneclock.NewClock(initial)
	clock.Run()
	defer clock.Stop()

	if cfg.Demo.FlyTo != "" {
		flyTo(clock, cfg)
	}

	p, err := pipeline.NewPipeline(cache, ds, clock, logger.Log)
	if err != nil {
		logger.Error("pipeline init failed", zap.Error(err))
		os.Exit(1)
	}

	frames := 0
	p.Start(func(e *quadtree.Earth) {
		frames++
	}, cfg.Cache.MaxUnused)

	logger.Info("pipeline started", zap.String("pipeline_id", p.ID.String()))

	if cfg.Demo.Headless {
		runHeadlessDemo(p, &frames)
	} else {
		waitForSignal()
	}

	if err := p.Close(); err != nil {
		logger.Warn("pipeline close reported errors", zap.Error(err))
	}
	logger.Info("terraincore stopped", zap.Int("frames_rendered", frames))
}

func openDataset(d enginecfg.DatasetConfig) (*dataset.Reader, error) {
	return dataset.NewReader(map[geo.Band]string{
		geo.ElevationL00L03: d.ElevationL00L03,
		geo.ElevationL04L08: d.ElevationL04L08,
		geo.ElevationL09L13: d.ElevationL09L13,
		geo.ElevationSRTM:   d.ElevationSRTM,
		geo.TextureL00L02:   d.TextureL00L02,
		geo.TextureL03L05:   d.TextureL03L05,
		geo.TextureL06L08:   d.TextureL06L08,
		geo.TextureL09L10:   d.TextureL09L10,
	})
}

func flyTo(clock *sceneclock.Clock, cfg *enginecfg.Config) {
	if cfg.Dataset.PointsOfInterest == "" {
		logger.Warn("fly_to requested but no points_of_interest file configured", zap.String("fly_to", cfg.Demo.FlyTo))
		return
	}

	points, err := poi.Load(cfg.Dataset.PointsOfInterest)
	if err != nil {
		logger.Warn("loading points of interest failed", zap.Error(err))
		return
	}

	for _, pt := range points {
		if pt.Name == cfg.Demo.FlyTo {
			clock.FlyTo(sceneclock.Waypoint{
				Name:          pt.Name,
				Lon:           pt.Lon,
				Lat:           pt.Lat,
				Altitude:      2_000_000,
				LODMultiplier: cfg.Camera.LODMultiplier,
			}, 5*time.Second)
			logger.Info("flying to waypoint", zap.String("name", pt.Name))
			return
		}
	}
	logger.Warn("fly_to waypoint not found", zap.String("fly_to", cfg.Demo.FlyTo))
}

// runHeadlessDemo runs the pipeline for a short, fixed window so the
// binary can be exercised in CI/scripted contexts without a renderer.
func runHeadlessDemo(p *pipeline.Pipeline, frames *int) {
	const demoDuration = 2 * time.Second
	deadline := time.After(demoDuration)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			logger.Info("demo progress", zap.Int("frames_rendered", *frames))
		}
	}
}

func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
