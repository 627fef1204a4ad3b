package cmd

import (
	"context"
	"os"
	"os/signal"

	plerror "github.com/msto63/plzero/foundation/core/error"
	"github.com/msto63/plzero/internal/report"
	"github.com/msto63/plzero/internal/watch"
	"github.com/msto63/plzero/pkg/lexer"
	"github.com/spf13/cobra"
)

var (
	lexFormat      string
	lexNoColor     bool
	lexMaxIdent    int
	lexStopOnError bool
	lexWatch       bool
)

var lexCmd = &cobra.Command{
	Use:   "lex FILE...",
	Short: "Print the token listing of PL/0 files",
	Long: `Tokenizes each file and prints every token with its kind, line,
column and text. Lexical errors are shown at their position and the
command exits with status 1 if any file had an error.

Use "-" to read from standard input.

Examples:
  plzero lex prog.pl0
  plzero lex --format json a.pl0 b.pl0
  plzero lex --stop-on-error --max-ident 8 prog.pl0
  plzero lex --watch prog.pl0
  cat prog.pl0 | plzero lex -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexFormat, "format", "f", "", "output format: table, json, yaml or plain (default from config)")
	lexCmd.Flags().BoolVar(&lexNoColor, "no-color", false, "disable colored table output")
	lexCmd.Flags().IntVar(&lexMaxIdent, "max-ident", 0, "maximum identifier length (default from config)")
	lexCmd.Flags().BoolVar(&lexStopOnError, "stop-on-error", false, "stop at the first lexical error")
	lexCmd.Flags().BoolVarP(&lexWatch, "watch", "w", false, "print the listing again whenever a file changes")
}

func runLex(cmd *cobra.Command, args []string) error {
	cfg := *appConfig
	if lexFormat != "" {
		cfg.Output.Format = lexFormat
	}
	if lexNoColor {
		cfg.Output.Color = false
	}
	if lexMaxIdent != 0 {
		cfg.Lexer.MaxIdentLength = lexMaxIdent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if lexWatch {
		for _, file := range args {
			if file == stdinName {
				return plerror.New("cannot watch standard input").
					WithCode(plerror.CodeInvalidInput)
			}
		}
	}

	w, err := report.ForFormat(cfg.Output.Format, cfg.Output.Color)
	if err != nil {
		return err
	}

	lcfg := cfg.LexerConfig(logger)
	listings := make([]report.Listing, 0, len(args))
	failed := false

	for _, file := range args {
		l := scanFile(lcfg, file, cmd.InOrStdin(), lexStopOnError)
		listings = append(listings, l)
		if l.Failed() {
			failed = true
			if lexStopOnError {
				break
			}
		}
	}

	if err := w.Write(cmd.OutOrStdout(), listings...); err != nil {
		return err
	}

	if lexWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watchFiles(ctx, cmd, w, lcfg, args)
	}

	if failed {
		return errFailed
	}
	return nil
}

// watchFiles re-scans a file and writes its listing after every change
// until ctx is done.
func watchFiles(ctx context.Context, cmd *cobra.Command, w report.Writer, lcfg lexer.Config, files []string) error {
	return watch.New(files, logger).Run(ctx, func(file string) {
		l := scanFile(lcfg, file, nil, lexStopOnError)
		if err := w.Write(cmd.OutOrStdout(), l); err != nil {
			logger.WarnWithErr("cannot write listing", err)
		}
	})
}
