// Package enginecfg handles engine configuration loading: dataset
// directory roots, cache and LOD tuning, logging, and a headless/demo
// toggle for cmd/terraincore.
package enginecfg

// Config holds all engine settings.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Cache   CacheConfig   `yaml:"cache"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
	Demo    DemoConfig    `yaml:"demo"`
}

// DatasetConfig holds the on-disk roots for each dataset band, plus
// the optional points-of-interest file.
type DatasetConfig struct {
	ElevationL00L03 string `yaml:"elevation_l00_l03"`
	ElevationL04L08 string `yaml:"elevation_l04_l08"`
	ElevationL09L13 string `yaml:"elevation_l09_l13"`
	ElevationSRTM   string `yaml:"elevation_srtm"`
	TextureL00L02   string `yaml:"texture_l00_l02"`
	TextureL03L05   string `yaml:"texture_l03_l05"`
	TextureL06L08   string `yaml:"texture_l06_l08"`
	TextureL09L10   string `yaml:"texture_l09_l10"`
	PointsOfInterest string `yaml:"points_of_interest"`
}

// CacheConfig tunes the tile cache's idle-eviction policy.
type CacheConfig struct {
	MaxUnused int `yaml:"max_unused"`
}

// CameraConfig holds default camera/animation tuning.
type CameraConfig struct {
	LODMultiplier float64 `yaml:"lod_multiplier"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DemoConfig controls cmd/terraincore's headless demo behavior.
type DemoConfig struct {
	Headless bool   `yaml:"headless"`
	FlyTo    string `yaml:"fly_to"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{},
		Cache: CacheConfig{
			MaxUnused: 50000,
		},
		Camera: CameraConfig{
			LODMultiplier: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Demo: DemoConfig{
			Headless: true,
		},
	}
}
