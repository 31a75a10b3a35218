package game

// Flag names a debug switch in Config.DebugFlags.
type Flag string

const (
	FlagLogCarves              Flag = "LOG_CARVES"
	FlagDisableColliderMetrics Flag = "DISABLE_COLLIDER_METRICS"
	FlagDisableTerrainCollider Flag = "DISABLE_TERRAIN_COLLIDER"
)

var knownFlags = map[Flag]struct{}{
	FlagLogCarves:              {},
	FlagDisableColliderMetrics: {},
	FlagDisableTerrainCollider: {},
}

// DebugFlags is a lookup set of enabled flags. It is built once from config
// and handed to whatever needs it.
type DebugFlags map[Flag]struct{}

func NewDebugFlags(flags []string) DebugFlags {
	set := make(DebugFlags)
	for _, f := range flags {
		set[Flag(f)] = struct{}{}
	}
	return set
}

func (f DebugFlags) IsSet(flag Flag) bool {
	_, ok := f[flag]
	return ok
}

// IfSet runs do if flag is set.
func (f DebugFlags) IfSet(flag Flag, do func()) {
	if !f.IsSet(flag) {
		return
	}
	do()
}

// IfNotSet runs do if flag is not set.
func (f DebugFlags) IfNotSet(flag Flag, do func()) {
	if f.IsSet(flag) {
		return
	}
	do()
}
