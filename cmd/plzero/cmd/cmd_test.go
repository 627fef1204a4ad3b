package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buger/jsonparser"
	plerror "github.com/msto63/plzero/foundation/core/error"
	"github.com/msto63/plzero/pkg/core/config"
	"github.com/msto63/plzero/pkg/core/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values and captured output
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose = "", false
	lexFormat, lexNoColor, lexMaxIdent, lexStopOnError, lexWatch = "", false, 0, false, false

	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLex_Table(t *testing.T) {
	path := writeFile(t, "ok.pl0", "const a = 1;\n")

	out, _, err := execute(t, "", "lex", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Tokens from file "+path+":")
	assert.Contains(t, out, "constsym")
	assert.Contains(t, out, "eofsym")
}

func TestLex_LexicalErrorExitsNonZero(t *testing.T) {
	path := writeFile(t, "bad.pl0", "x := 12a")

	out, errOut, err := execute(t, "", "lex", "--no-color", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFailed))

	assert.Contains(t, out, `identifier starts with a digit "12a"`)
	assert.NotContains(t, errOut, "Error:")
}

func TestLex_JSON(t *testing.T) {
	path := writeFile(t, "j.pl0", "const a = 1;")

	out, _, err := execute(t, "", "lex", "--format", "json", path)
	require.NoError(t, err)

	kind, err := jsonparser.GetString([]byte(out), "tokens", "[0]", "kind")
	require.NoError(t, err)
	assert.Equal(t, "constsym", kind)
}

func TestLex_StopOnError(t *testing.T) {
	first := writeFile(t, "a.pl0", "a ! b ! c")
	second := writeFile(t, "b.pl0", "d ! e")

	out, _, err := execute(t, "", "lex", "-f", "json", "--stop-on-error", first, second)
	require.Error(t, err)

	file, err := jsonparser.GetString([]byte(out), "file")
	require.NoError(t, err, "a single listing is written as an object")
	assert.Equal(t, first, file)

	count := 0
	_, err = jsonparser.ArrayEach([]byte(out), func([]byte, jsonparser.ValueType, int, error) {
		count++
	}, "errors")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLex_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pl0")

	out, _, err := execute(t, "", "lex", "--format", "plain", missing)
	require.Error(t, err)
	assert.Contains(t, out, "fatal\tcannot open source")
}

func TestLex_Stdin(t *testing.T) {
	out, _, err := execute(t, "begin end.", "lex", "--format", "plain", "-")
	require.NoError(t, err)

	assert.Equal(t,
		"beginsym\tbegin\t1\t1\n"+
			"endsym\tend\t1\t7\n"+
			"periodsym\t.\t1\t10\n"+
			"eofsym\t\t1\t11\n",
		out)
}

func TestLex_WatchRejectsStdin(t *testing.T) {
	_, _, err := execute(t, "x", "lex", "--watch", "-")
	require.Error(t, err)
	assert.True(t, plerror.HasCode(err, plerror.CodeInvalidInput))
}

func TestLex_MaxIdent(t *testing.T) {
	path := writeFile(t, "id.pl0", "abcd")

	out, _, err := execute(t, "", "lex", "--max-ident", "3", "--format", "plain", path)
	require.Error(t, err)
	assert.Contains(t, out, "identifier too long")
}

func TestLex_InvalidFormat(t *testing.T) {
	path := writeFile(t, "f.pl0", "x")

	_, errOut, err := execute(t, "", "lex", "--format", "html", path)
	require.Error(t, err)
	assert.True(t, plerror.HasCode(err, plerror.CodeInvalidConfig))
	assert.Contains(t, errOut, "Error:")
}

func TestLex_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "plzero.toml", "[output]\nformat = \"plain\"\n")
	path := writeFile(t, "p.pl0", "odd")

	out, _, err := execute(t, "", "--config", cfg, "lex", path)
	require.NoError(t, err)
	assert.Equal(t, "oddsym\todd\t1\t1\neofsym\t\t1\t4\n", out)
}

func TestLex_MissingConfig(t *testing.T) {
	path := writeFile(t, "p.pl0", "x")

	_, errOut, err := execute(t, "", "--config", "/nonexistent/plzero.toml", "lex", path)
	require.Error(t, err)
	assert.True(t, plerror.HasCode(err, plerror.CodeMissingConfig))
	assert.Contains(t, errOut, "config file not found")
}

func TestLex_Verbose(t *testing.T) {
	path := writeFile(t, "v.pl0", "x")

	_, errOut, err := execute(t, "", "-v", "lex", path)
	require.NoError(t, err)

	assert.Contains(t, errOut, "configuration loaded")
	assert.Contains(t, errOut, "session opened")
	assert.Contains(t, errOut, "tokenize completed")
}

func TestLex_RequiresFile(t *testing.T) {
	_, _, err := execute(t, "", "lex")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.pl0", "var x;")
	bad := writeFile(t, "bad.pl0", "x := 1 $ 2")

	out, _, err := execute(t, "", "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok (4 tokens)\n", out)

	out, errOut, err := execute(t, "", "check", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, good+": ok")
	assert.Contains(t, out, bad+`:1:8: invalid symbol "$"`)
	assert.Contains(t, errOut, "1 error(s) in 2 file(s)")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "plzero "+version.Tool)
	assert.Contains(t, out, "Go Version:")
}
