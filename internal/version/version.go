package version

import (
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

//nolint:gochecknoglobals // Values are overridden via ldflags.
var (
	// AppName is the product name.
	AppName = defaultAppName
	// Version is the human-readable version of the build.
	Version = defaultVersion
	// Year is the copyright year; derived from the commit time when empty.
	Year = ""
	// Commit is the git revision embedded at build time.
	Commit = ""
	// CommitTime is the commit timestamp embedded at build time.
	CommitTime = ""
	// BuildState is the numeric working tree state: 0 clean, 1 release, 2 uncommitted, 3 untracked.
	BuildState = "0"
	// Debug is "true" for debug builds.
	Debug = "false"
)

const (
	// defaultAppName replaces an empty injected AppName.
	defaultAppName = "showversion"
	// defaultVersion replaces an empty injected Version.
	defaultVersion = "0.0.0-dev"
	// unknown is used for commit details that could not be determined.
	unknown = "unknown"
)

// shortRevisionLen is the length of revisions taken from the VCS stamp.
const shortRevisionLen = 7

//nolint:gochecknoglobals // Replaced in tests.
var (
	readBuildInfo = debug.ReadBuildInfo
	now           = time.Now
)

// Metadata assembles build metadata from the injected variables.
// Empty AppName or Version fall back to the compiled-in defaults, and
// malformed BuildState or Debug values fall back to clean and false.
func Metadata() buildinfo.Metadata {
	md := buildinfo.Metadata{
		AppName:    orDefault(AppName, defaultAppName),
		Version:    orDefault(Version, defaultVersion),
		Year:       Year,
		CommitHash: Commit,
		CommitTime: CommitTime,
		State:      parseBuildState(BuildState),
		Debug:      parseDebug(Debug),
	}

	if md.CommitHash == "" {
		applyVCS(&md)
	}

	if md.CommitHash == "" {
		md.CommitHash = unknown
	}

	if md.CommitTime == "" {
		md.CommitTime = unknown
	}

	if md.Year == "" {
		md.Year = yearOf(md.CommitTime)
	}

	return md
}

// Short returns only the version string.
func Short() string {
	return orDefault(Version, defaultVersion)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}

func parseBuildState(s string) buildinfo.BuildState {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return buildinfo.StateClean
	}

	return buildinfo.BuildState(n).Normalize()
}

func parseDebug(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))

	return err == nil && v
}

// applyVCS fills commit details from the VCS stamp of the running binary.
func applyVCS(md *buildinfo.Metadata) {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			md.CommitHash = s.Value[:min(len(s.Value), shortRevisionLen)]
		case "vcs.time":
			if md.CommitTime == "" {
				md.CommitTime = s.Value
			}
		case "vcs.modified":
			if s.Value == "true" && md.State == buildinfo.StateClean {
				md.State = buildinfo.StateUncommitted
			}
		}
	}
}

// yearOf returns the leading year of a timestamp or the current UTC year.
func yearOf(ts string) string {
	if len(ts) >= 4 {
		if y, err := strconv.Atoi(ts[:4]); err == nil && y >= 1000 {
			return ts[:4]
		}
	}

	return strconv.Itoa(now().UTC().Year())
}
