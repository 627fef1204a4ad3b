package cmd

import (
	"errors"
	"fmt"
	"io"

	plerror "github.com/msto63/plzero/foundation/core/error"
	mdwlog "github.com/msto63/plzero/foundation/core/log"
	"github.com/msto63/plzero/pkg/core/config"
	"github.com/msto63/plzero/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// Set by setup before any subcommand runs
	appConfig *config.Config
	logger    *mdwlog.Logger
)

// errFailed signals that errors were already reported in the command output
var errFailed = plerror.New("lexical errors found").
	WithCode(plerror.CodeLexical)

var rootCmd = &cobra.Command{
	Use:   "plzero",
	Short: "plzero - PL/0 lexical analyzer",
	Long: `plzero tokenizes PL/0 source files.

Commands:
  lex      - print the token listing of one or more files
  check    - report lexical errors only
  browse   - interactive token browser
  version  - version information

Configuration is read from --config, $PLZERO_CONFIG, ./plzero.toml,
./configs/plzero.toml or ~/.config/plzero/config.toml (TOML or YAML).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Errors other than reported lexical
// failures are printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// setup loads the configuration and creates the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := appConfig.General.LogLevel
	if verbose {
		level = "debug"
	}

	logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: "plzero",
		Level:       level,
		Format:      appConfig.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	logger.Debug("configuration loaded", mdwlog.Fields{
		"config":           cfgFile,
		"output_format":    appConfig.Output.Format,
		"max_ident_length": appConfig.Lexer.MaxIdentLength,
	})

	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
