// Package banner renders build metadata as a human-readable version banner.
//
// Short mode prints a single line with the application name, version, optional
// debug marker and copyright. Full mode adds a Git line with the commit hash,
// commit date and working tree annotation.
package banner
