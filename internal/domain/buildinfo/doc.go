// Package buildinfo defines the immutable build metadata shown in version banners.
//
// Metadata is assembled once at process start, either from linker-injected
// values or from a metadata file, and then passed explicitly to renderers.
package buildinfo
