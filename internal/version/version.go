// Package version exposes build metadata, overridden at link time via
// -ldflags "-X .../internal/version.Version=v0.2.0 ...".
package version

import (
	"runtime"
	"time"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = time.Now().Format(time.RFC3339)
	GoVersion = runtime.Version()
)
