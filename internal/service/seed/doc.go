// Package seed writes a metadata file from the resolved build metadata so
// release scripts can start from the values of an existing binary.
package seed
