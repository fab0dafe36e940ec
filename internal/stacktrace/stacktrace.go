// Package stacktrace captures the current call stack as a sequence of
// opaque, human-identifiable frame descriptors for attachment to
// construct metadata. It does not interpret the frames beyond
// formatting them for display.
package stacktrace

import (
	"runtime"
	"strings"
)

// maxFrames bounds how deep a single capture walks, matching the
// depth a metadata trace realistically needs for debugging.
const maxFrames = 32

// thisPackage is used to elide this package's own frame from a capture
// so the topmost remaining frame identifies the actual caller.
const thisPackage = "github.com/constructhub/constructtree/internal/stacktrace"

// Capture returns the caller's stack as opaque frame descriptors (the
// fully qualified function name of each frame), skipping frames that
// belong to this package itself.
func Capture() []string {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs) // skip runtime.Callers and Capture
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if !belongsToThisPackage(frame.Function) {
			out = append(out, frame.Function)
		}
		if !more {
			break
		}
	}
	return out
}

func belongsToThisPackage(function string) bool {
	return strings.HasPrefix(function, thisPackage+".")
}
