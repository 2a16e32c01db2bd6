package enginecfg

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagMaxUnused = flag.Int("max-unused", 0, "Cache idle-entry bound")
	flagFlyTo     = flag.String("fly-to", "", "Name of a points-of-interest waypoint to fly to on startup")
	flagHeadless  = flag.Bool("headless", false, "Force headless demo mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMaxUnused > 0 {
		cfg.Cache.MaxUnused = *flagMaxUnused
	}
	if *flagFlyTo != "" {
		cfg.Demo.FlyTo = *flagFlyTo
	}
	if *flagHeadless {
		cfg.Demo.Headless = true
	}
}
