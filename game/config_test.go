package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, [3]int32{33, 17, 33}, cfg.Field.Size)
	require.Equal(t, 20.0, cfg.Scheduler.Rate)
	require.Equal(t, 5*time.Second, cfg.Scheduler.Retention)
	require.NotNil(t, cfg.NewLogger())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
field:
  size: [9, 5, 9]
  cell_size: 0.5
  origin: [1, 2, 3]
noise:
  seed: 7
scheduler:
  rate: 4.5
  retention: 2s
log:
  level: " Debug "
  categories: [voxel, collider]
debug_flags: [log_carves]
`))
	require.NoError(t, err)
	require.Equal(t, [3]int32{9, 5, 9}, cfg.Field.Size)
	require.Equal(t, float32(0.5), cfg.Field.CellSize)
	require.Equal(t, float32(2), cfg.Field.OriginVec3().Y())
	require.Equal(t, int32(5), cfg.Field.SizeInt3().Y)
	require.Equal(t, int64(7), cfg.Noise.Seed)
	require.Equal(t, 4.5, cfg.Scheduler.Rate)
	require.Equal(t, 2*time.Second, cfg.Scheduler.Retention)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Flags().IsSet(FlagLogCarves))
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for name, raw := range map[string]string{
		"negative rate":   "scheduler:\n  rate: -1\n",
		"infinite rate":   "scheduler:\n  rate: .inf\n",
		"short retention": "scheduler:\n  retention: 500ms\n",
		"tiny field":      "field:\n  size: [1, 4, 4]\n",
		"zero cell":       "field:\n  cell_size: 0\n",
		"log level":       "log:\n  level: verbose\n",
		"log category":    "log:\n  categories: [rendering]\n",
		"debug flag":      "debug_flags: [FLY_MODE]\n",
		"broken yaml":     "field: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terracarve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheduler:\n  rate: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3.0, cfg.Scheduler.Rate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
