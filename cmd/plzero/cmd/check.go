package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report lexical errors only",
	Long: `Scans each file and prints one line per lexical error in the form
file:line:column: reason "text". Files without errors print "ok".
The command exits with status 1 if any error was found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	lcfg := appConfig.LexerConfig(logger)
	total := 0

	for _, file := range args {
		l := scanFile(lcfg, file, cmd.InOrStdin(), false)

		for _, e := range l.Errors {
			fmt.Fprintln(out, e.Message)
		}
		if l.Fatal != "" {
			fmt.Fprintf(out, "%s: %s\n", file, l.Fatal)
		}
		if !l.Failed() {
			fmt.Fprintf(out, "%s: ok (%d tokens)\n", file, len(l.Tokens))
			continue
		}
		total += len(l.Errors)
		if l.Fatal != "" {
			total++
		}
	}

	if total > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s) in %d file(s)\n", total, len(args))
		return errFailed
	}
	return nil
}
