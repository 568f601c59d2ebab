package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/showversion/internal/config"
	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

func writeMetadata(t *testing.T, file *config.File) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, config.Save(path, file))

	return path
}

func sampleFile() *config.File {
	return &config.File{
		AppName:    "disit",
		Version:    "1.2.3",
		Year:       "2024",
		Commit:     "abcdef1",
		CommitTime: "2024-05-01T10:00:00Z",
		BuildState: int(buildinfo.StateUncommitted),
	}
}

// TestRunFromFile renders every mode from a metadata file.
func TestRunFromFile(t *testing.T) {
	t.Parallel()

	path := writeMetadata(t, sampleFile())

	attributes := "Title: disit\nProduct: disit\nCompany: Mark Ogden\n" +
		"Copyright: (C)2024 Mark Ogden\nConfiguration: \nInformationalVersion: 1.2.3\n"

	cases := map[Mode]string{
		ModeShort:      "disit 1.2.3 (C)2024 Mark Ogden\n",
		ModeFull:       "disit 1.2.3 (C)2024 Mark Ogden\nGit: abcdef1 [2024-05-01] +uncommitted files\n",
		ModeAttributes: attributes,
	}

	for mode, want := range cases {
		var out bytes.Buffer

		require.NoError(t, Run(context.Background(), &Options{
			ConfigPath: path,
			Mode:       mode,
			Out:        &out,
		}))
		require.Equal(t, want, out.String())
	}
}

// TestRunUnknownBuildState ensures out-of-range states render as clean.
func TestRunUnknownBuildState(t *testing.T) {
	t.Parallel()

	file := sampleFile()
	file.BuildState = 5
	path := writeMetadata(t, file)

	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), &Options{ConfigPath: path, Mode: ModeFull, Out: &out}))
	require.Equal(t, "disit 1.2.3 (C)2024 Mark Ogden\nGit: abcdef1 [2024-05-01]\n", out.String())
}

// TestResolveMissingFile reports load failures.
func TestResolveMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Resolve(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestResolveLinked falls back to the values linked into the binary.
func TestResolveLinked(t *testing.T) {
	t.Parallel()

	md, err := Resolve(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, md.AppName)
	require.NotEmpty(t, md.Version)
	require.NotEmpty(t, md.Year)
	require.NotEmpty(t, md.CommitHash)
}
