// Package cli provides the wallgrid command line: listing the remote catalog,
// its categories and downloading single images without the GUI.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/wallgrid/internal/logging"
)

// CommandOptions holds common options for wallgrid commands
type CommandOptions struct {
	Verbose bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if GetOptions(cmd).Verbose {
			logging.SetLevel(logrus.DebugLevel)
		}
	}

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return CommandOptions{Verbose: verbose}
}

// NewRootCmd assembles the wallgrid command tree
func NewRootCmd(info VersionInfo) *cobra.Command {
	root := NewStandardCommand("wallgrid", "Browse and download wallpapers from the remote image directory")
	root.Version = info.Version
	SetVersionTemplate(root, info)

	root.AddCommand(
		NewListCmd(),
		NewCategoriesCmd(),
		NewDownloadCmd(),
		NewVersionCommand("wallgrid", info),
	)
	return root
}
