package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerFiltersByLevelAndCategory(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(LogLevelInfo, LogVoxel|LogIO, &out)

	logger.VoxelInfo("meshed %d", 3)
	logger.VoxelDebug("too verbose")
	logger.ColliderInfo("wrong category")
	logger.IOError("disk %s", "full")

	require.Equal(t, "[Voxel] meshed 3\n[IO] disk full\n", out.String())
}

func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	require.False(t, logger.Enabled(LogVoxel, LogLevelError))
	require.NotPanics(t, func() { logger.SystemInfo("nothing") })
}

func TestParseLogSettings(t *testing.T) {
	level, ok := ParseLogLevel(" Debug ")
	require.True(t, ok)
	require.Equal(t, LogLevelDebug, level)

	_, ok = ParseLogLevel("verbose")
	require.False(t, ok)

	mask, ok := ParseLogCategories([]string{"voxel", "collider"})
	require.True(t, ok)
	require.Equal(t, LogVoxel|LogCollider, mask)

	mask, ok = ParseLogCategories([]string{"all"})
	require.True(t, ok)
	require.Equal(t, LogAll, mask)

	_, ok = ParseLogCategories([]string{"opengl"})
	require.False(t, ok)
}
