package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugFlags(t *testing.T) {
	flags := NewDebugFlags([]string{"LOG_CARVES"})
	require.True(t, flags.IsSet(FlagLogCarves))
	require.False(t, flags.IsSet(FlagDisableTerrainCollider))

	var set, notSet []Flag
	for _, f := range []Flag{FlagLogCarves, FlagDisableTerrainCollider} {
		f := f
		flags.IfSet(f, func() { set = append(set, f) })
		flags.IfNotSet(f, func() { notSet = append(notSet, f) })
	}
	require.Equal(t, []Flag{FlagLogCarves}, set)
	require.Equal(t, []Flag{FlagDisableTerrainCollider}, notSet)
}

func TestEmptyDebugFlags(t *testing.T) {
	var flags DebugFlags
	require.False(t, flags.IsSet(FlagLogCarves))
	called := false
	flags.IfNotSet(FlagLogCarves, func() { called = true })
	require.True(t, called)
}
