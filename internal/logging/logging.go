// Package logging provides the minimal logger used across fenboard.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger is the subset of *log.Logger the rest of the module depends on.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

// New returns a Logger writing to w. Each line starts with prefix.
func New(w io.Writer, prefix string) Logger {
	return log.New(w, prefix, 0)
}

// NewTimestamped is like New with date and time on each line.
func NewTimestamped(w io.Writer, prefix string) Logger {
	return log.New(w, prefix, log.LstdFlags)
}

// FuncLogger adapts a printf-style function.
type FuncLogger func(format string, v ...any)

func (f FuncLogger) Println(v ...any) {
	f("%s", strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (f FuncLogger) Printf(format string, v ...any) {
	f(format, v...)
}

func (f FuncLogger) Print(v ...any) {
	f("%s", fmt.Sprint(v...))
}

type discard struct{}

func (discard) Println(v ...any)               {}
func (discard) Printf(format string, v ...any) {}
func (discard) Print(v ...any)                 {}

// Discard drops everything.
var Discard Logger = discard{}

// Verbose wraps l so that Printf calls at a level above verbosity are
// dropped. Level 0 messages are always written.
type Verbose struct {
	Logger
	Verbosity int
}

// V logs at the given level.
func (v Verbose) V(level int, format string, args ...any) {
	if level <= v.Verbosity {
		v.Printf(format, args...)
	}
}
