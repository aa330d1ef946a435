package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes a fresh root command with args from inside a temp working
// directory (so the history.json it writes doesn't touch the repo) and
// returns whatever it printed to stdout.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	root := newRootCmd()
	root.SetArgs(args)
	runErr := root.Execute()

	w.Close()
	os.Stdout = stdout
	out, _ := io.ReadAll(r)

	require.NoError(t, runErr)
	return string(out)
}

func TestCLIDifferentiatesBareArgument(t *testing.T) {
	out := runCLI(t, "x^2")
	assert.Contains(t, out, `"input": "x^2"`)
	assert.Contains(t, out, `"output": "2*x"`)
	assert.Contains(t, out, `"mode": "text"`)
}

func TestCLILatexFlagSelectsLatexMode(t *testing.T) {
	out := runCLI(t, "-f", "x^2", "--latex")
	assert.Contains(t, out, `"mode": "latex"`)
}

func TestCLIApproximateFlagRecordsResult(t *testing.T) {
	out := runCLI(t, "-f", "x^3", "-n", "2")
	assert.Contains(t, out, `"approximations"`)
}

func TestCLIWritesHistoryFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = devNull
	root := newRootCmd()
	root.SetArgs([]string{"-f", "x+x"})
	err = root.Execute()
	os.Stdout = stdout
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "history.json"))
	assert.NoError(t, err)
}

func TestCLIRejectsMissingExpression(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{})
	err := root.Execute()
	assert.Error(t, err)
}
