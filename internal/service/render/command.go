package render

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/showversion/internal/banner"
	"github.com/oshokin/showversion/internal/config"
	"github.com/oshokin/showversion/internal/domain/buildinfo"
	"github.com/oshokin/showversion/internal/logger"
	"github.com/oshokin/showversion/internal/version"
)

// Mode selects what Run prints.
type Mode int

const (
	// ModeShort prints the one-line banner.
	ModeShort Mode = iota
	// ModeFull prints the banner with Git details.
	ModeFull
	// ModeAttributes prints product attributes.
	ModeAttributes
)

// Options controls where metadata comes from and how it is printed.
type Options struct {
	// ConfigPath is an optional metadata file; linked-in values are used when empty.
	ConfigPath string
	// Mode selects the output.
	Mode Mode
	// Out receives the output.
	Out io.Writer
}

// Resolve loads metadata from the file at configPath or from the linked-in values.
func Resolve(ctx context.Context, configPath string) (buildinfo.Metadata, error) {
	if configPath == "" {
		md := version.Metadata()
		logMetadata(ctx, "linked", md)

		return md, nil
	}

	file, err := config.Load(configPath)
	if err != nil {
		return buildinfo.Metadata{}, fmt.Errorf("load metadata: %w", err)
	}

	md := file.Metadata()
	if !md.State.Known() {
		logger.WarnKV(ctx, "Unknown build state, treating as clean", "build_state", int(md.State), "path", configPath)
	}

	logMetadata(ctx, configPath, md)

	return md, nil
}

// Run resolves metadata and writes it to opts.Out.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithKV(logger.WithName(ctx, "render"), "mode", int(opts.Mode))

	md, err := Resolve(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case ModeAttributes:
		return banner.WriteAttributes(opts.Out, banner.Attributes(md))
	case ModeFull:
		return banner.Show(opts.Out, md, true)
	default:
		return banner.Show(opts.Out, md, false)
	}
}

func logMetadata(ctx context.Context, source string, md buildinfo.Metadata) {
	logger.DebugKV(ctx, "Metadata resolved",
		"source", source,
		"app_name", md.AppName,
		"version", md.Version,
		"commit", md.CommitHash,
		"build_state", md.State.String(),
		"debug", md.Debug,
	)
}
