package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata injected with -ldflags "-X .../internal/app.Version=1.4.0".
// Commit and BuildTime fall back to the VCS stamp the Go toolchain embeds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running server for startup logs.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = vcsStamp(info.Settings, commit, built)
	}
	return formatVersion(Version, commit, built)
}

func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	fromVCS, dirty := false, false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "" {
				commit, fromVCS = s.Value[:min(len(s.Value), 12)], true
			}
		case "vcs.time":
			if built == "" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && fromVCS {
		commit += "-dirty"
	}
	return commit, built
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
