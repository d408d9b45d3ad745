// Package version reports which hotelres build is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X github.com/example/hotelres/internal/version.Commit=...".
// When left empty, the VCS stamp embedded by the Go toolchain is used instead.
var (
	Commit    = ""
	BuildTime = ""
)

// Info describes the running build.
type Info struct {
	Commit    string
	BuildTime string
	Modified  bool
}

// Get resolves build information from ldflags, falling back to the
// embedded VCS settings.
func Get() Info {
	return resolve(Commit, BuildTime, readSettings())
}

// String returns the version string shown by --version.
func String() string {
	return Get().String()
}

func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("hotelres dev (commit: %s, built: %s)", commit, i.BuildTime)
}

func resolve(commit, buildTime string, settings map[string]string) Info {
	info := Info{Commit: commit, BuildTime: buildTime}
	if info.Commit == "" {
		info.Commit = settings["vcs.revision"]
		info.Modified = settings["vcs.modified"] == "true"
	}
	if info.BuildTime == "" {
		info.BuildTime = settings["vcs.time"]
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

func readSettings() map[string]string {
	settings := map[string]string{}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}
