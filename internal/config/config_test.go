package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

// TestValidate checks required fields, year format and defaults.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), errFileIsNotSet)

	// Missing application name.
	file := new(File)
	require.ErrorIs(t, Validate(file), errAppNameRequired)

	// Missing version.
	file = &File{AppName: "disit"}
	require.ErrorIs(t, Validate(file), errVersionRequired)

	// Missing year.
	file = &File{AppName: "disit", Version: "1.2.3"}
	require.ErrorIs(t, Validate(file), errYearRequired)

	// Bad year.
	file = &File{AppName: "disit", Version: "1.2.3", Year: "24"}
	require.ErrorIs(t, Validate(file), errInvalidYear)

	// Defaults for commit details.
	file = &File{AppName: "disit", Version: "1.2.3", Year: "2024"}
	require.NoError(t, Validate(file))
	require.Equal(t, Unknown, file.Commit)
	require.Equal(t, Unknown, file.CommitTime)
}

// TestSaveLoadRoundtrip ensures metadata is persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "version.yaml")

	file := &File{
		AppName:    "disit",
		Version:    "2024.5.1.3",
		Year:       "2024",
		Commit:     "abcdef1",
		CommitTime: "2024-05-01 10:00:00",
		BuildState: int(buildinfo.StateRelease),
		Debug:      true,
	}

	require.NoError(t, Save(path, file))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, file, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.ErrorIs(t, Save(path, nil), errFileIsNotSet)
}

// TestLoadKeepsUnknownBuildState ensures out-of-range states load and render as clean.
func TestLoadKeepsUnknownBuildState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "version.yaml")
	contents := "app_name: disit\nversion: 1.2.3\nyear: \"2024\"\nbuild_state: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	loaded, err := Load(path)
	require.NoError(t, err)

	md := loaded.Metadata()
	require.Equal(t, buildinfo.BuildState(7), md.State)
	require.Equal(t, buildinfo.StateClean, md.State.Normalize())
	require.Equal(t, Unknown, md.CommitHash)
}

// TestLoadErrors covers missing files, malformed YAML and validation failures.
func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("app_name: [\n"), DefaultFilePermissions))
	_, err = Load(bad)
	require.Error(t, err)

	incomplete := filepath.Join(dir, "incomplete.yaml")
	require.NoError(t, os.WriteFile(incomplete, []byte("app_name: disit\n"), DefaultFilePermissions))
	_, err = Load(incomplete)
	require.ErrorIs(t, err, errVersionRequired)
}

// TestMetadataConversion checks both conversion directions agree.
func TestMetadataConversion(t *testing.T) {
	t.Parallel()

	md := buildinfo.Metadata{
		AppName:    "disit",
		Version:    "1.2.3",
		Year:       "2024",
		CommitHash: "abcdef1",
		CommitTime: "2024-05-01T10:00:00Z",
		State:      buildinfo.StateUntracked,
		Debug:      true,
	}

	require.Equal(t, md, FromMetadata(md).Metadata())
}

// TestCreateKeepsExistingFile ensures Create never replaces a file.
func TestCreateKeepsExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "version.yaml")
	file := &File{AppName: "disit", Version: "1.2.3", Year: "2024"}

	require.NoError(t, Create(path, file))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, file, loaded)

	other := &File{AppName: "other", Version: "9.9.9", Year: "2025"}
	require.ErrorIs(t, Create(path, other), os.ErrExist)

	loaded, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "disit", loaded.AppName)

	require.ErrorIs(t, Create(path, nil), errFileIsNotSet)
}
