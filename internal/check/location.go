package check

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// PathStyle selects how a Location renders its file.
type PathStyle string

const (
	PathBase PathStyle = "base" // file name only
	PathFull PathStyle = "full" // path as recorded by the compiler
)

// ValidPathStyles defines the allowed path styles.
var ValidPathStyles = []PathStyle{PathBase, PathFull}

// Location is the source position of an assertion call.
type Location struct {
	File string
	Line int
}

// Caller returns the location skip frames above the caller of Caller.
// Caller(0) is the line that called Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: file, Line: line}
}

// Format renders the location as "FILE at line N".
func (l Location) Format(style PathStyle) string {
	file := l.File
	if style != PathFull {
		file = filepath.Base(file)
	}
	return fmt.Sprintf("%s at line %d", file, l.Line)
}

func (l Location) String() string {
	return l.Format(PathFull)
}
