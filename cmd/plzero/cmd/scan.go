package cmd

import (
	"io"

	mdwlog "github.com/msto63/plzero/foundation/core/log"
	"github.com/msto63/plzero/internal/report"
	"github.com/msto63/plzero/pkg/lexer"
)

// stdinName selects standard input as the source
const stdinName = "-"

// scanFile tokenizes one file into a listing. With stopOnError the scan
// ends at the first lexical error.
func scanFile(lcfg lexer.Config, file string, stdin io.Reader, stopOnError bool) report.Listing {
	timer := logger.StartTimer("tokenize").
		WithLevel(mdwlog.LevelDebug).
		WithField("file", file)

	lx := lexer.NewWithConfig(lcfg)

	var err error
	if file == stdinName {
		err = lx.OpenReader("", stdin)
	} else {
		err = lx.Open(file)
	}
	if err != nil {
		timer.StopWithError(err)
		return report.NewListing(file, nil, nil, err)
	}

	var (
		tokens  []lexer.Token
		lexErrs []error
		fatal   error
	)

	for !lx.Done() {
		tok, err := lx.Next()
		if err == nil {
			tokens = append(tokens, tok)
			continue
		}
		if !lexer.IsLexical(err) {
			fatal = err
			break
		}
		lexErrs = append(lexErrs, err)
		if stopOnError {
			break
		}
	}

	if err := lx.Close(); err != nil && fatal == nil {
		fatal = err
	}

	if fatal != nil {
		timer.StopWithError(fatal)
	} else {
		timer.Stop()
	}

	name := file
	if file == stdinName {
		name = ""
	}
	return report.NewListing(name, tokens, lexErrs, fatal)
}
