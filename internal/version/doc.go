// Package version exposes build metadata for the project.
//
// Variables AppName, Version, Year, Commit, CommitTime, BuildState and Debug
// are injected at build time via Go ldflags, for example:
//
//	go build -ldflags "-X github.com/oshokin/showversion/internal/version.Version=2024.5.1.3 \
//	  -X github.com/oshokin/showversion/internal/version.BuildState=1"
//
// When Commit is not injected, the VCS stamp embedded by the Go toolchain is
// used instead. Metadata turns the raw values into an immutable
// buildinfo.Metadata, and the Cobra helpers wire `version`, -v and -V.
package version
