package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func sampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	return path
}

func TestQuality_Stdin(t *testing.T) {
	out, _, err := run(t, sample, "quality")
	require.NoError(t, err)
	assert.Equal(t, "33\n", out)
}

func TestMax_File(t *testing.T) {
	out, _, err := run(t, "", "max", "--horizon", "24", sampleFile(t))
	require.NoError(t, err)
	assert.Equal(t, "blueprint 1: 9\nblueprint 2: 12\n", out)
}

func TestProduct_Flags(t *testing.T) {
	out, _, err := run(t, sample, "product", "--horizon", "24", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, "108\n", out, "9 · 12")
}

// TestProduct_ConfigDefaults reads horizon and count from a config file.
func TestProduct_ConfigDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "geodes.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("product_horizon: 24\nproduct_count: 1\n"), 0o600))

	out, _, err := run(t, sample, "product", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodes.prom")
	_, _, err := run(t, sample, "quality", "--horizon", "20", "--metrics-file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "geodes_search_runs_total 2")
}

func TestLogging_JSONDebug(t *testing.T) {
	_, errOut, err := run(t, sample, "max", "--horizon", "12", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"blueprint searched"`)
	assert.Contains(t, errOut, `"msg":"blueprints parsed"`)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "Blueprint 2: nonsense", "quality")
	assert.ErrorIs(t, err, blueprint.ErrOutOfOrder)

	_, _, err = run(t, sample, "quality", "--log-level", "chatty")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "", "max", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, sample, "max", "a", "b")
	assert.Error(t, err, "at most one input file")
}
