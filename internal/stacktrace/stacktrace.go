// Package stacktrace captures and formats call stacks for diagnostics.
package stacktrace

import (
	"fmt"
	"runtime"
	"strings"
)

const maxDepth = 32

// Frame represents a single frame in a captured call stack.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Trace holds the program counters captured at a single point in time.
// Formatting is deferred until String or Frames is called; the underlying
// counters never change after capture.
type Trace struct {
	pcs []uintptr
}

// Capture records the current call stack. A skip of 0 starts the trace at
// the caller of Capture; each additional skip drops one more frame.
func Capture(skip int) *Trace {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2+skip, pcs)
	if n == 0 {
		return &Trace{}
	}
	return &Trace{pcs: pcs[:n]}
}

// Frames resolves the captured program counters into structured frames.
func (t *Trace) Frames() []Frame {
	if t == nil || len(t.pcs) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(t.pcs)
	resolved := make([]Frame, 0, len(t.pcs))
	for {
		frame, more := frames.Next()

		// Trim the file path down to its final element.
		file := frame.File
		if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
			file = file[lastSlash+1:]
		}

		resolved = append(resolved, Frame{
			Function: frame.Function,
			File:     file,
			Line:     frame.Line,
		})

		if !more {
			break
		}
	}
	return resolved
}

// String formats the trace with one frame per line, outermost caller last.
func (t *Trace) String() string {
	frames := t.Frames()
	if len(frames) == 0 {
		return ""
	}

	var b strings.Builder
	for i, frame := range frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "    at %s (%s:%d)", frame.Function, frame.File, frame.Line)
	}
	return b.String()
}
