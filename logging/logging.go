/*
package logging builds the structured loggers used throughout cosmoconv.
There is no package-level logger: whoever builds a cosmology decides where
its log records go.
*/
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"
)

type Flag int

const (
	// Nil discards every record.
	Nil Flag = iota
	// Performance reports model construction and timing at the info level.
	Performance
	// Debug additionally reports per-measure interpolation tables.
	Debug
)

var flagNames = []string{"nil", "performance", "debug"}

func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) {
		return fmt.Sprintf("Flag(%d)", int(f))
	}
	return flagNames[f]
}

// ParseFlag returns the Flag with the given name. The empty string is Nil.
func ParseFlag(name string) (Flag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Nil, nil
	}
	for i := range flagNames {
		if flagNames[i] == name {
			return Flag(i), nil
		}
	}
	return Nil, fmt.Errorf(
		"logging mode '%s' isn't one of %s", name, strings.Join(flagNames, ", "),
	)
}

// New returns a logger that writes text records to w at the level implied
// by mode.
func New(w io.Writer, mode Flag) *slog.Logger {
	if mode == Nil || w == nil {
		return Discard()
	}

	level := slog.LevelInfo
	addSource := false
	if mode == Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger which drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// MemString returns a string containing various statistics on the current
// memory usage of the process.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
