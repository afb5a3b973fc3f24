package main

import (
	"fmt"
	"runtime/debug"
)

const shortCommitLen = 7

var readBuildInfo = debug.ReadBuildInfo

// initVersion fills in whatever ldflags left unset from the module build
// info: the module version for `go install`, vcs.revision and vcs.time for
// local builds.
func initVersion() {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return
	}

	if version == defaultVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "" {
				commit = setting.Value
			}
		case "vcs.time":
			if date == "" {
				date = setting.Value
			}
		}
	}
}

// versionString renders the version shown by --version, e.g.
// "v0.4.1 (abc1234, 2026-01-02T03:04:05Z)".
func versionString() string {
	short := commit
	if len(short) > shortCommitLen {
		short = short[:shortCommitLen]
	}

	switch {
	case short != "" && date != "":
		return fmt.Sprintf("%s (%s, %s)", version, short, date)
	case short != "":
		return fmt.Sprintf("%s (%s)", version, short)
	default:
		return version
	}
}
