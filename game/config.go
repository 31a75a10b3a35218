package game

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/terracarve/engine/collider"
	"github.com/memmaker/terracarve/engine/util"
	"github.com/memmaker/terracarve/engine/voxel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Field      FieldConfig       `yaml:"field"`
	Noise      voxel.NoiseParams `yaml:"noise"`
	Scheduler  SchedulerConfig   `yaml:"scheduler"`
	Log        LogConfig         `yaml:"log"`
	DebugFlags []string          `yaml:"debug_flags,omitempty"`
}

type FieldConfig struct {
	Size     [3]int32   `yaml:"size"`
	CellSize float32    `yaml:"cell_size"`
	Origin   [3]float32 `yaml:"origin"`
}

type SchedulerConfig struct {
	Rate      float64       `yaml:"rate"`
	Retention time.Duration `yaml:"retention"`
}

type LogConfig struct {
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Size:     [3]int32{33, 17, 33},
			CellSize: 1,
		},
		Noise: voxel.DefaultNoiseParams(),
		Scheduler: SchedulerConfig{
			Rate:      20,
			Retention: collider.DefaultRetention,
		},
		Log: LogConfig{
			Level:      "info",
			Categories: []string{"all"},
		},
	}
}

// Load reads a YAML config on top of the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	return Parse(raw)
}

func Parse(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config yaml")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	return cfg, nil
}

func (c *Config) Normalize() {
	for i := range c.DebugFlags {
		c.DebugFlags[i] = strings.ToUpper(strings.TrimSpace(c.DebugFlags[i]))
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.Log.Categories) == 0 {
		c.Log.Categories = []string{"all"}
	}
	if c.Scheduler.Retention == 0 {
		c.Scheduler.Retention = collider.DefaultRetention
	}
}

func (c Config) Validate() error {
	for axis, n := range c.Field.Size {
		if n < 2 {
			return fmt.Errorf("field.size[%d] must be at least 2, got %d", axis, n)
		}
	}
	if !(c.Field.CellSize > 0) || math.IsInf(float64(c.Field.CellSize), 0) {
		return fmt.Errorf("field.cell_size must be positive and finite, got %v", c.Field.CellSize)
	}
	if math.IsNaN(c.Scheduler.Rate) || math.IsInf(c.Scheduler.Rate, 0) || c.Scheduler.Rate < 0 {
		return fmt.Errorf("scheduler.rate must be a finite non-negative number, got %v", c.Scheduler.Rate)
	}
	if c.Scheduler.Retention < time.Second {
		return fmt.Errorf("scheduler.retention must be at least 1s, got %s", c.Scheduler.Retention)
	}
	if _, ok := util.ParseLogLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level %q is not one of debug|info|warning|error", c.Log.Level)
	}
	if _, ok := util.ParseLogCategories(c.Log.Categories); !ok {
		return fmt.Errorf("log.categories %v contains an unknown category", c.Log.Categories)
	}
	for _, f := range c.DebugFlags {
		if _, ok := knownFlags[Flag(f)]; !ok {
			return fmt.Errorf("unknown debug flag %q", f)
		}
	}
	return nil
}

func (c Config) Flags() DebugFlags {
	return NewDebugFlags(c.DebugFlags)
}

func (c FieldConfig) SizeInt3() voxel.Int3 {
	return voxel.Int3{X: c.Size[0], Y: c.Size[1], Z: c.Size[2]}
}

func (c FieldConfig) OriginVec3() mgl32.Vec3 {
	return mgl32.Vec3(c.Origin)
}

// NewLogger builds the logger described by the log section. Invalid entries
// fall back to info level and all categories.
func (c Config) NewLogger() *util.Logger {
	level, ok := util.ParseLogLevel(c.Log.Level)
	if !ok {
		level = util.LogLevelInfo
	}
	categories, ok := util.ParseLogCategories(c.Log.Categories)
	if !ok {
		categories = util.LogAll
	}
	return util.NewLogger(level, categories, os.Stderr)
}
