// Package config loads, validates and saves the version metadata file.
//
// The file is YAML and carries the same values that are otherwise injected at
// link time, so build scripts can describe a release without rebuilding.
package config
