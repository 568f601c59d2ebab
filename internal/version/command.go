package version

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/showversion/internal/banner"
	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

// Resolver returns the metadata a command should display.
type Resolver func(ctx context.Context) (buildinfo.Metadata, error)

// Linked resolves the metadata injected at build time.
func Linked(context.Context) (buildinfo.Metadata, error) {
	return Metadata(), nil
}

// Flags holds the state of the -v and -V flags.
type Flags struct {
	// Short requests the one-line banner.
	Short bool
	// Full requests the banner with Git details.
	Full bool
}

// AttachVersionFlags registers -v (short banner) and -V (full banner) on the command.
func AttachVersionFlags(cmd *cobra.Command) *Flags {
	flags := new(Flags)

	cmd.Flags().BoolVarP(&flags.Short, "short-version", "v", false, "print the short version banner and exit")
	cmd.Flags().BoolVarP(&flags.Full, "full-version", "V", false, "print the full version banner and exit")

	return flags
}

// Requested reports whether either version flag was given.
func (f *Flags) Requested() bool {
	return f.Short || f.Full
}

// Print writes the banner selected by the flags. -V wins over -v.
func (f *Flags) Print(cmd *cobra.Command, resolve Resolver) error {
	return printBanner(cmd, resolve, f.Full)
}

// AttachCobraVersionCommand attaches a `version` subcommand to the provided root command.
// It prints the short banner, or the full one with --full.
func AttachCobraVersionCommand(root *cobra.Command, resolve Resolver) {
	var full bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long: `Print the version banner: application name, version and copyright.

With --full a second line shows the commit hash, the commit date and the state
of the working tree the binary was built from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printBanner(cmd, resolve, full)
		},
	}

	versionCmd.Flags().BoolVarP(&full, "full", "f", false, "include commit details")

	root.AddCommand(versionCmd)
}

func printBanner(cmd *cobra.Command, resolve Resolver, full bool) error {
	if resolve == nil {
		resolve = Linked
	}

	md, err := resolve(cmd.Context())
	if err != nil {
		return err
	}

	return banner.Show(cmd.OutOrStdout(), md, full)
}
