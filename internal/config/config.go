package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ACCIDENT_ATLAS_CONFIG"
	boundariesPathEnv = "ATLAS_BOUNDARIES_PATH"
	statsPathEnv      = "ATLAS_STATS_PATH"
	logLevelEnv       = "ATLAS_LOG_LEVEL"
	joinModeEnv       = "ATLAS_JOIN_MODE"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Join     JoinConfig     `yaml:"join"`
	Sources  SourcesConfig  `yaml:"sources"`
	Output   OutputConfig   `yaml:"output"`
	Report   ReportConfig   `yaml:"report"`
	Fallback FallbackConfig `yaml:"fallback"`
}

// LoggingConfig controls log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// JoinConfig selects how boundary and stat rows are paired.
type JoinConfig struct {
	Mode string `yaml:"mode"`
}

// SourcesConfig names the two input files and their reader strategies.
type SourcesConfig struct {
	Boundaries SourceConfig `yaml:"boundaries"`
	Stats      SourceConfig `yaml:"stats"`
}

// SourceConfig describes one input file: which registered reader handles it
// and reader-specific options (column names, delimiter, name property).
type SourceConfig struct {
	Format  string            `yaml:"format"`
	Path    string            `yaml:"path"`
	Options map[string]string `yaml:"options"`
}

// OutputConfig is where the joined dataset lands.
type OutputConfig struct {
	DatasetPath string `yaml:"datasetPath"`
}

// ReportConfig controls the summary report and the highlighted department.
type ReportConfig struct {
	Path       string `yaml:"path"` // empty means stdout
	Department string `yaml:"department"`
}

// FallbackConfig is the degraded-mode policy for an unavailable stats
// source. The placeholder rows stand in for the real table.
type FallbackConfig struct {
	Enabled bool              `yaml:"enabled"`
	Stats   []FallbackStatRow `yaml:"stats"`
}

// FallbackStatRow is one placeholder observation.
type FallbackStatRow struct {
	Name   string `yaml:"name"`
	Deaths int    `yaml:"deaths"`
}

// Load reads YAML configuration from the env-provided path (if any) and
// applies environment overrides.
func Load() Config {
	return LoadPath(os.Getenv(configPathEnv))
}

// LoadPath reads YAML configuration from an explicit path, falling back to
// defaults when it is empty or unreadable, then applies env overrides.
func LoadPath(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(boundariesPathEnv); v != "" {
		c.Sources.Boundaries.Path = v
	}
	if v := os.Getenv(statsPathEnv); v != "" {
		c.Sources.Stats.Path = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(joinModeEnv); v != "" {
		c.Join.Mode = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Join.Mode != "" {
		base.Join.Mode = override.Join.Mode
	}

	if override.Sources.Boundaries.Format != "" || override.Sources.Boundaries.Path != "" {
		base.Sources.Boundaries = override.Sources.Boundaries
	}
	if override.Sources.Stats.Format != "" || override.Sources.Stats.Path != "" {
		base.Sources.Stats = override.Sources.Stats
	}

	if override.Output.DatasetPath != "" {
		base.Output.DatasetPath = override.Output.DatasetPath
	}

	if override.Report.Path != "" {
		base.Report.Path = override.Report.Path
	}
	if override.Report.Department != "" {
		base.Report.Department = override.Report.Department
	}

	if override.Fallback.Enabled {
		base.Fallback.Enabled = true
	}
	if len(override.Fallback.Stats) > 0 {
		base.Fallback.Stats = override.Fallback.Stats
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Join:    JoinConfig{Mode: "outer"},
		Sources: SourcesConfig{
			Boundaries: SourceConfig{
				Format: "geojson",
				Path:   "data/colombia_departments.geojson",
			},
			Stats: SourceConfig{
				Format: "csv",
				Path:   "data/riesgos_laborales_2024.csv",
			},
		},
		Output: OutputConfig{DatasetPath: "out/joined.geojson"},
		Report: ReportConfig{Department: "bogota"},
		Fallback: FallbackConfig{
			Enabled: false,
			Stats: []FallbackStatRow{
				{Name: "BOGOTA", Deaths: 10},
				{Name: "ANTIOQUIA", Deaths: 8},
				{Name: "VALLE DEL CAUCA", Deaths: 4},
			},
		},
	}
}
