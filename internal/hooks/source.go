// Package hooks holds logrus hooks shared by the commands.
package hooks

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxDepth = 16

// SourceHook records the file and line that emitted an entry.
type SourceHook struct {
	Field  string
	levels []logrus.Level
}

// NewSourceHook reports the caller for the given levels, all levels when
// none are given.
func NewSourceHook(levels ...logrus.Level) *SourceHook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &SourceHook{
		Field:  "source",
		levels: levels,
	}
}

func (hook *SourceHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *SourceHook) Fire(entry *logrus.Entry) error {
	entry.Data[hook.Field] = caller()
	return nil
}

// caller skips the frames of logrus and of the hook itself.
func caller() string {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.Contains(f.File, "sirupsen/logrus") && !strings.HasSuffix(f.File, "hooks/source.go") {
			return fmt.Sprintf("%s:%d", shorten(f.File), f.Line)
		}
		if !more {
			return ""
		}
	}
}

// shorten keeps the package directory and the file name.
func shorten(file string) string {
	dir, name := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), name)
}
