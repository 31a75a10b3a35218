package util

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogCollider
	LogIO
	LogSystem

	LogAll = LogVoxel | LogCollider | LogIO | LogSystem
)

var levelNames = map[string]LogLevel{
	"error":   LogLevelError,
	"warning": LogLevelWarning,
	"info":    LogLevelInfo,
	"debug":   LogLevelDebug,
}

var categoryNames = map[string]LogCategory{
	"voxel":    LogVoxel,
	"collider": LogCollider,
	"io":       LogIO,
	"system":   LogSystem,
	"all":      LogAll,
}

func ParseLogLevel(name string) (LogLevel, bool) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	return lvl, ok
}

func ParseLogCategories(names []string) (LogCategory, bool) {
	var mask LogCategory
	for _, name := range names {
		cat, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, false
		}
		mask |= cat
	}
	return mask, true
}

// Logger filters lines by level and category before writing them out.
// A nil *Logger is valid and discards everything.
type Logger struct {
	level      LogLevel
	categories LogCategory
	out        io.Writer
}

func NewLogger(level LogLevel, categories LogCategory, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{level: level, categories: categories, out: out}
}

func (l *Logger) Enabled(cat LogCategory, lvl LogLevel) bool {
	if l == nil {
		return false
	}
	if lvl > l.level {
		return false
	}
	return l.categories&cat != 0
}

func (l *Logger) log(cat LogCategory, lvl LogLevel, format string, args ...any) {
	if !l.Enabled(cat, lvl) {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *Logger) VoxelInfo(format string, args ...any) {
	l.log(LogVoxel, LogLevelInfo, "[Voxel] "+format, args...)
}

func (l *Logger) VoxelDebug(format string, args ...any) {
	l.log(LogVoxel, LogLevelDebug, "[Voxel] "+format, args...)
}

func (l *Logger) ColliderInfo(format string, args ...any) {
	l.log(LogCollider, LogLevelInfo, "[Collider] "+format, args...)
}

func (l *Logger) ColliderDebug(format string, args ...any) {
	l.log(LogCollider, LogLevelDebug, "[Collider] "+format, args...)
}

func (l *Logger) ColliderWarning(format string, args ...any) {
	l.log(LogCollider, LogLevelWarning, "[Collider] "+format, args...)
}

func (l *Logger) IOError(format string, args ...any) {
	l.log(LogIO, LogLevelError, "[IO] "+format, args...)
}

func (l *Logger) IOInfo(format string, args ...any) {
	l.log(LogIO, LogLevelInfo, "[IO] "+format, args...)
}

func (l *Logger) SystemInfo(format string, args ...any) {
	l.log(LogSystem, LogLevelInfo, "[System] "+format, args...)
}
