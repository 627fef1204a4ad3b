package cmd

import (
	mdwlog "github.com/msto63/plzero/foundation/core/log"
	"github.com/msto63/plzero/internal/tui/browser"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:     "browse FILE",
	Aliases: []string{"tui"},
	Short:   "Browse the tokens of a file interactively",
	Long: `Starts the interactive token browser.

Keys:
  ↑/↓ or j/k   scroll one line
  PgUp/PgDn    scroll one page
  g / G        jump to top / bottom
  e            show errors only
  r            rescan the file
  q / Ctrl+C   quit`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Log lines on the terminal would corrupt the alternate screen
	cfg := browser.Config{
		File:  args[0],
		Lexer: appConfig.LexerConfig(mdwlog.Discard()),
	}

	return browser.Run(cfg)
}
