package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/showversion/internal/config"
	"github.com/oshokin/showversion/internal/domain/buildinfo"
	"github.com/oshokin/showversion/internal/logger"
	"github.com/oshokin/showversion/internal/service/render"
	"github.com/oshokin/showversion/internal/service/seed"
	"github.com/oshokin/showversion/internal/version"
)

// NewRootCommand builds the showversion command tree.
func NewRootCommand() *cobra.Command {
	var (
		// configPath stores the path to an optional metadata file.
		configPath string
		// logLevel sets the minimum level of diagnostic output on stderr.
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "showversion",
		Short: "Print the version banner of a build.",
		Long: `Prints the version banner: application name, version and copyright year,
followed with -V by the commit hash, commit date and working tree state.

Metadata is linked into the binary at build time or read from a YAML file
given with --config.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)
			cmd.SetContext(logger.WithName(cmd.Context(), "showversion"))

			return nil
		},
	}

	flags := version.AttachVersionFlags(rootCmd)

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		mode := render.ModeFull
		if flags.Short && !flags.Full {
			mode = render.ModeShort
		}

		return render.Run(cmd.Context(), &render.Options{
			ConfigPath: configPath,
			Mode:       mode,
			Out:        cmd.OutOrStdout(),
		})
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to metadata file (linked-in values when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	if err := rootCmd.PersistentFlags().MarkHidden("log-level"); err != nil {
		panic(err)
	}

	version.AttachCobraVersionCommand(rootCmd, func(ctx context.Context) (buildinfo.Metadata, error) {
		return render.Resolve(ctx, configPath)
	})
	rootCmd.AddCommand(newInitCommand(&configPath), newAssemblyCommand(&configPath))

	return rootCmd
}

func newInitCommand(configPath *string) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the resolved metadata to a YAML file.",
		Long: `Writes the metadata this binary would print to a YAML file, ` + config.DefaultFilename + ` by default.

An existing file is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := config.DefaultFilename
			if len(args) > 0 {
				output = args[0]
			}

			return seed.Run(cmd.Context(), &seed.Options{
				ConfigPath: *configPath,
				Output:     output,
				Force:      force,
			})
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing file")

	return initCmd
}

func newAssemblyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "assembly",
		Short: "Print product attributes.",
		Long:  "Prints title, product, company, copyright, configuration and informational version, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.Run(cmd.Context(), &render.Options{
				ConfigPath: *configPath,
				Mode:       render.ModeAttributes,
				Out:        cmd.OutOrStdout(),
			})
		},
	}
}

// Execute runs the showversion CLI and exits with non-zero status on error.
func Execute() {
	ctx := context.Background()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.ErrorKV(ctx, "Command failed", "error", err, "version", version.Short())
		os.Exit(1)
	}
}
