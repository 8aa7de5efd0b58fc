// Package version exposes build metadata for the axion CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = unknown
	BuildDate = unknown
)

// BuildInfo is the resolved build metadata.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Module    string `json:"module"`
}

// Info resolves build metadata, falling back to the binary's embedded
// module info when ldflags were not set.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && info.GitCommit == unknown {
				info.GitCommit = s.Value
			}
		}
	}
	return info
}

// Short returns the version with an abbreviated commit hash.
func (b BuildInfo) Short() string {
	commit := b.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == unknown {
		return b.Version
	}
	return fmt.Sprintf("%s (%s)", b.Version, commit)
}

// String renders the full metadata block.
func (b BuildInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "axion %s\n", b.Short())
	fmt.Fprintf(&sb, "  go:     %s\n", b.GoVersion)
	fmt.Fprintf(&sb, "  built:  %s\n", b.BuildDate)
	if b.Module != "" {
		fmt.Fprintf(&sb, "  module: %s\n", b.Module)
	}
	return sb.String()
}
