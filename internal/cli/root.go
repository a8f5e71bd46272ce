package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"nifresolver/pkg/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "nifresolver",
	Short: "Resolve NIF ontology URLs to their backing files",
	Long: `nifresolver sends visitors of the ontology site to the right resource.
URL fragments are promoted to path segments and .owl paths are sent to the
raw content host of the NIF-Ontology repository.`,
	SilenceUsage: true,
	// Keep stdout clean for command output; serve installs its own logger.
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.InitWithWriter(cmd.ErrOrStderr(), slog.LevelWarn)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
