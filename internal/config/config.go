package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

// File holds version metadata as stored on disk.
type File struct {
	// AppName is the product name.
	AppName string `yaml:"app_name"`
	// Version is the human-readable version string.
	Version string `yaml:"version"`
	// Year is the copyright year.
	Year string `yaml:"year"`
	// Commit is the source control revision.
	Commit string `yaml:"commit"`
	// CommitTime is the commit timestamp.
	CommitTime string `yaml:"commit_time"`
	// BuildState is the numeric working tree state (0 clean, 1 release, 2 uncommitted, 3 untracked).
	BuildState int `yaml:"build_state"`
	// Debug marks a debug build.
	Debug bool `yaml:"debug"`
}

const (
	// DefaultFilename is the default metadata filename.
	DefaultFilename = "version.yaml"

	// DefaultFilePermissions is the permission used when saving the file.
	DefaultFilePermissions = 0o644

	// Unknown is the placeholder for missing commit details.
	Unknown = "unknown"
)

var (
	// errFileIsNotSet is returned when a nil file is provided.
	errFileIsNotSet = errors.New("metadata is not set")
	// errAppNameRequired is returned when the application name is missing.
	errAppNameRequired = errors.New("app_name must be provided")
	// errVersionRequired is returned when the version is missing.
	errVersionRequired = errors.New("version must be provided")
	// errYearRequired is returned when the copyright year is missing.
	errYearRequired = errors.New("year must be provided")
	// errInvalidYear is returned when the year is not four digits.
	errInvalidYear = errors.New("year must be four digits")

	yearPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// Load reads metadata from the provided path and validates it.
func Load(path string) (*File, error) {
	if path == "" {
		path = DefaultFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Save writes metadata to the provided path.
func Save(path string, file *File) error {
	if file == nil {
		return errFileIsNotSet
	}

	if path == "" {
		path = DefaultFilename
	}

	if err := Validate(file); err != nil {
		return err
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	return nil
}

// Create writes metadata to a new file at path. It fails with an error
// wrapping os.ErrExist when the file is already there; the existence check
// and the creation are a single open call.
func Create(path string, file *File) error {
	if file == nil {
		return errFileIsNotSet
	}

	if path == "" {
		path = DefaultFilename
	}

	if err := Validate(file); err != nil {
		return err
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("create metadata: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()

		return fmt.Errorf("write metadata: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close metadata: %w", err)
	}

	return nil
}

// Validate checks required fields and fills defaults for optional ones.
func Validate(file *File) error {
	if file == nil {
		return errFileIsNotSet
	}

	if file.AppName == "" {
		return errAppNameRequired
	}

	if file.Version == "" {
		return errVersionRequired
	}

	if file.Year == "" {
		return errYearRequired
	}

	if !yearPattern.MatchString(file.Year) {
		return fmt.Errorf("%w: %q", errInvalidYear, file.Year)
	}

	if file.Commit == "" {
		file.Commit = Unknown
	}

	if file.CommitTime == "" {
		file.CommitTime = Unknown
	}

	return nil
}

// Metadata converts the file into build metadata.
func (f *File) Metadata() buildinfo.Metadata {
	return buildinfo.Metadata{
		AppName:    f.AppName,
		Version:    f.Version,
		Year:       f.Year,
		CommitHash: f.Commit,
		CommitTime: f.CommitTime,
		State:      buildinfo.BuildState(f.BuildState),
		Debug:      f.Debug,
	}
}

// FromMetadata converts build metadata into its file representation.
func FromMetadata(md buildinfo.Metadata) *File {
	return &File{
		AppName:    md.AppName,
		Version:    md.Version,
		Year:       md.Year,
		Commit:     md.CommitHash,
		CommitTime: md.CommitTime,
		BuildState: int(md.State),
		Debug:      md.Debug,
	}
}
