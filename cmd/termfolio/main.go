// Termfolio is a personal portfolio page for the terminal.
//
// It shows a fixed header, four panels (Home, About, Projects, Contact) and
// a page-dot footer. Wide terminals page horizontally through the panels;
// narrow ones stack them vertically and scroll.
//
// Usage:
//
//	termfolio [command] [flags]
//
// Running without arguments opens the portfolio.
// See 'termfolio --help' for available commands.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/termfolio/internal/logging"
	"github.com/muurk/termfolio/internal/version"
)

func main() {
	// Silent by default. Set TERMFOLIO_LOG_LEVEL=debug to log to termfolio.log
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Error("Command failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "A portfolio page for the terminal",
	Long: `A personal portfolio rendered as a full-screen terminal page.

Navigate with the arrow keys, 1-4, the mouse wheel or by clicking the header
buttons and page dots. The About panel fills its skill bars the first time it
is reached.

If no command is specified, the portfolio opens automatically.`,
	Version: version.Version,
	RunE:    runPortfolio,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "termfolio %s\n", version.Full())
	},
}
