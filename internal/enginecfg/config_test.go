package enginecfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cache.MaxUnused != 50000 {
		t.Errorf("expected default MaxUnused 50000, got %d", cfg.Cache.MaxUnused)
	}
	if cfg.Camera.LODMultiplier != 1.0 {
		t.Errorf("expected default LODMultiplier 1.0, got %v", cfg.Camera.LODMultiplier)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if !cfg.Demo.Headless {
		t.Error("expected headless to be true by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terraincore.yaml")

	yamlContent := `
dataset:
  elevation_l00_l03: /data/elev/l00-l03
  texture_l00_l02: /data/tex/l00-l02

cache:
  max_unused: 10000

camera:
  lod_multiplier: 2.5

logging:
  level: "debug"
  log_file: "terraincore.log"

demo:
  headless: false
  fly_to: "everest"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Dataset.ElevationL00L03 != "/data/elev/l00-l03" {
		t.Errorf("expected elevation root, got %s", cfg.Dataset.ElevationL00L03)
	}
	if cfg.Cache.MaxUnused != 10000 {
		t.Errorf("expected MaxUnused 10000, got %d", cfg.Cache.MaxUnused)
	}
	if cfg.Camera.LODMultiplier != 2.5 {
		t.Errorf("expected LODMultiplier 2.5, got %v", cfg.Camera.LODMultiplier)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Demo.Headless {
		t.Error("expected headless to be false")
	}
	if cfg.Demo.FlyTo != "everest" {
		t.Errorf("expected fly_to 'everest', got %s", cfg.Demo.FlyTo)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
cache:
  max_unused: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/terraincore.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "terraincore.yaml")
	if err := os.WriteFile(configPath, []byte("cache:\n  max_unused: 100\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find terraincore.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "max-unused flag",
			setup: func() { *flagMaxUnused = 999 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Cache.MaxUnused != 999 {
					t.Errorf("expected MaxUnused 999, got %d", cfg.Cache.MaxUnused)
				}
			},
			teardown: func() { *flagMaxUnused = 0 },
		},
		{
			name:  "headless flag",
			setup: func() { *flagHeadless = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Demo.Headless {
					t.Error("expected headless true")
				}
			},
			teardown: func() { *flagHeadless = false },
		},
		{
			name:  "fly-to flag",
			setup: func() { *flagFlyTo = "k2" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Demo.FlyTo != "k2" {
					t.Errorf("expected fly_to 'k2', got %s", cfg.Demo.FlyTo)
				}
			},
			teardown: func() { *flagFlyTo = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terraincore.yaml")

	yamlContent := `
cache:
  max_unused: 1600
camera:
  lod_multiplier: 3
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagMaxUnused = 42
	defer func() {
		*flagConfig = ""
		*flagMaxUnused = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Cache.MaxUnused != 42 {
		t.Errorf("expected MaxUnused 42 from flag, got %d", cfg.Cache.MaxUnused)
	}
	if cfg.Camera.LODMultiplier != 3 {
		t.Errorf("expected LODMultiplier 3 from file, got %v", cfg.Camera.LODMultiplier)
	}
}
