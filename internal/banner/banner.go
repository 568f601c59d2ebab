package banner

import (
	"io"

	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

const (
	// Author is the copyright holder printed after the year.
	Author = "Mark Ogden"
	// DebugMarker is appended to the version of debug builds.
	DebugMarker = "{debug}"
	// commitDateLen is the length of the date part of a commit timestamp.
	commitDateLen = 10
)

// Show writes the banner to w. The short line is always written; the Git line
// only when full is set. Each line is a single Write call on w and write errors
// are returned as is.
func Show(w io.Writer, md buildinfo.Metadata, full bool) error {
	if _, err := io.WriteString(w, ShortLine(md)+"\n"); err != nil {
		return err
	}

	if !full {
		return nil
	}

	_, err := io.WriteString(w, DetailLine(md)+"\n")

	return err
}

// ShortLine returns the one-line banner without the trailing newline.
func ShortLine(md buildinfo.Metadata) string {
	line := md.AppName + " " + md.Version
	if md.Debug {
		line += " " + DebugMarker
	}

	return line + " " + Copyright(md.Year)
}

// DetailLine returns the Git line without the trailing newline.
func DetailLine(md buildinfo.Metadata) string {
	state := md.State.Normalize()

	return "Git: " + md.CommitHash + state.HashMarker() +
		" [" + CommitDate(md.CommitTime) + "]" + state.Annotation()
}

// Copyright returns the copyright notice for the given year.
func Copyright(year string) string {
	return "(C)" + year + " " + Author
}

// CommitDate returns at most the first ten characters of the commit timestamp.
func CommitDate(ts string) string {
	runes := 0

	for i := range ts {
		if runes == commitDateLen {
			return ts[:i]
		}

		runes++
	}

	return ts
}
