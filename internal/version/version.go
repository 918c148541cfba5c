// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report a release tag when stamped at link time, else the VCS revision from build info.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set with -ldflags "-X github.com/poruru-code/appgen/internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the stamped release version when present.
// Otherwise it falls back to the short VCS revision, suffixed with "(dirty)"
// for modified trees, and finally to "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	revision, modified := vcsState(info.Settings)
	if revision == "" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}

func vcsState(settings []debug.BuildSetting) (string, bool) {
	var revision string
	var modified bool
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	return revision, modified
}
