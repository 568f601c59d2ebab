package buildinfo

// BuildState describes the working tree condition at build time.
type BuildState int

const (
	// StateClean is a build from a clean working tree.
	StateClean BuildState = iota
	// StateRelease is a build from a tagged release commit.
	StateRelease
	// StateUncommitted is a build with uncommitted local changes.
	StateUncommitted
	// StateUntracked is a build with untracked files present.
	StateUntracked
)

// Known reports whether the state is one of the defined values.
func (s BuildState) Known() bool {
	return s >= StateClean && s <= StateUntracked
}

// Normalize maps unknown states to StateClean.
func (s BuildState) Normalize() BuildState {
	if !s.Known() {
		return StateClean
	}

	return s
}

// HashMarker returns the marker appended to the commit hash.
func (s BuildState) HashMarker() string {
	if s == StateRelease {
		return "+"
	}

	return ""
}

// Annotation returns the trailing text of the detail line, including its leading space.
func (s BuildState) Annotation() string {
	switch s {
	case StateUncommitted:
		return " +uncommitted files"
	case StateUntracked:
		return " +untracked files"
	default:
		return ""
	}
}

// String returns a human-readable name of the state.
func (s BuildState) String() string {
	switch s.Normalize() {
	case StateRelease:
		return "release"
	case StateUncommitted:
		return "uncommitted"
	case StateUntracked:
		return "untracked"
	default:
		return "clean"
	}
}

// Metadata is the version information rendered by the banner.
// Values are copied by value and never mutated after construction.
type Metadata struct {
	// AppName is the product name.
	AppName string
	// Version is the human-readable version string.
	Version string
	// Year is the copyright year.
	Year string
	// CommitHash is the source control revision.
	CommitHash string
	// CommitTime is the commit timestamp; only its date part is displayed.
	CommitTime string
	// State is the working tree condition at build time.
	State BuildState
	// Debug marks a debug build.
	Debug bool
}
