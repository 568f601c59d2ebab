package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/showversion/internal/config"
	"github.com/oshokin/showversion/internal/logger"
	"github.com/oshokin/showversion/internal/service/render"
)

// Options controls the seed command.
type Options struct {
	// ConfigPath is an optional metadata file to copy from; linked-in values are used when empty.
	ConfigPath string
	// Output is the destination file.
	Output string
	// Force allows replacing an existing destination file.
	Force bool
}

// ErrFileExists is returned when the destination exists and Force is not set.
var ErrFileExists = errors.New("metadata file already exists")

// Run resolves metadata and saves it to opts.Output.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithLevelAtMost(logger.WithName(ctx, "seed"), zapcore.InfoLevel)

	output := opts.Output
	if output == "" {
		output = config.DefaultFilename
	}

	output = filepath.Clean(output)

	md, err := render.Resolve(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	file := config.FromMetadata(md)
	logger.Debugf(ctx, "Writing metadata to %s", output)

	if opts.Force {
		err = config.Save(output, file)
	} else {
		err = config.Create(output, file)
	}

	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrFileExists, output)
	}

	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Metadata file written", "path", output, "force", opts.Force)

	return nil
}
