// Package render resolves build metadata and prints it as a banner or as
// product attributes.
//
// Metadata comes from a YAML metadata file when a path is given, otherwise
// from the values linked into the binary.
package render
