// Package version reports the build version of logincount.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time with -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns Version, or the module version recorded by the Go toolchain
// when Version was not set at build time.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// Full returns the version with commit, build date and platform.
func Full() string {
	return fmt.Sprintf("logincount %s (commit %s, built %s, %s %s/%s)",
		String(), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
