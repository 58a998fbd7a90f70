package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/cli"
)

func TestRun_Sample(t *testing.T) {
	t.Parallel()

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, logs, []string{filepath.Join("testdata", "sample.txt")})

	require.NoError(t, err)
	assert.Equal(t, "Part 1: 31\nPart 2: 29\n", out.String())
	assert.Contains(t, logs.String(), "heightmap loaded")
	assert.Contains(t, logs.String(), "path found")
}

func TestRun_SingleModeWithPathAndStats(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-mode", "reverse", "-path", "-stats", filepath.Join("testdata", "sample.txt")})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Part 2: 29", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  path: 5,2 -> "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " -> 0,4"), lines[1])
	assert.Equal(t, 29, strings.Count(lines[1], "->"))
	assert.Contains(t, lines[2], "of 40 cells")
}

func TestRun_NoPath(t *testing.T) {
	t.Parallel()

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, logs, []string{"-path", filepath.Join("testdata", "walled.txt")})

	require.NoError(t, err, "an unreachable goal is an answer, not a failure")
	assert.Equal(t, "Part 1: no path\nPart 2: no path\n", out.String())
	assert.Contains(t, logs.String(), "no path")
}

func TestRun_MaxCostCutsSearch(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-max-cost", "30", filepath.Join("testdata", "sample.txt")})
	require.NoError(t, err)
	assert.Equal(t, "Part 1: no path\nPart 2: 29\n", out.String())
}

func TestRun_JSONTraceLogs(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	err := run(&bytes.Buffer{}, logs, []string{"-mode", "forward", "-log-level", "trace", "-log-format", "json", filepath.Join("testdata", "sample.txt")})
	require.NoError(t, err)

	expands := 0
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "expand" {
			expands++
			assert.Contains(t, rec, "cost")
			assert.Contains(t, rec, "coord")
		}
	}
	assert.Positive(t, expands)
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input, err := filepath.Abs(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, "hillclimb.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+input+"\nmodes: [\"1\"]\nlog_level: error\n"), 0o600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(out, logs, []string{"-config", cfgPath}))
	assert.Equal(t, "Part 1: 31\n", out.String())
	assert.Empty(t, logs.String(), "error level hides info logs")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join("testdata", "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join("testdata", "broken.txt")})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidCell)
	assert.Contains(t, err.Error(), "broken.txt")

	err = run(&bytes.Buffer{}, &bytes.Buffer{}, nil)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}
