package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdelivery/city"
	"github.com/katalvlaran/lvdelivery/delivery"
)

const feasibleInput = "5 5 1\n3 3 4\n4 1 2\n1 1 1\n4 1 1\n0\n"

// execute runs the root command with stdin and returns stdout, stderr and
// the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CITYDELIVERY_LOG_LEVEL", "off")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_TextFromStdin(t *testing.T) {
	stdout, _, err := execute(t, feasibleInput)
	require.NoError(t, err)
	assert.Equal(t, "Case 1:\n2 2 0 0\n\nCase 2:\n0 1 0 0\n0 0 0 1\n\n", stdout)
}

func TestRun_FileInputWithVerifyAndMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 2 2\n1 1 1\n2 2 1\n0\n"), 0o600))

	stdout, stderr, err := execute(t, "", path, "--verify", "--map")
	require.NoError(t, err)
	assert.Equal(t, "Case 1:\n1 0 0 0\n0 0 1 0\n\n", stdout)
	assert.Contains(t, stderr, "Case 1:\n1 2\n1 2\n")
}

func TestRun_InfeasibleSuppressesOutput(t *testing.T) {
	input := "5 5 1\n3 3 4\n3 1 2\n1 1 2\n3 1 2\n0\n"

	stdout, stderr, err := execute(t, input)
	require.ErrorIs(t, err, delivery.ErrInfeasible)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "impossible to appoint blocks")
}

func TestRun_IsolatePolicy(t *testing.T) {
	input := "3 1 2\n1 1 2\n3 1 2\n5 5 1\n3 3 4\n0\n"

	stdout, _, err := execute(t, input, "--policy", "isolate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Case 1:\ndelivery: impossible to appoint blocks"), stdout)
	assert.True(t, strings.HasSuffix(stdout, "Case 2:\n2 2 0 0\n\n"), stdout)
}

func TestRun_InvalidDimensionRejectedBeforeAllocation(t *testing.T) {
	stdout, _, err := execute(t, "5 5 1\n3 3 4\n31 5 1\n1 1 1\n0\n")
	require.ErrorIs(t, err, city.ErrInvalidDimension)
	assert.Empty(t, stdout)
}

func TestRun_YAMLFromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "citydelivery.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"yaml\"\n"), 0o600))

	stdout, _, err := execute(t, feasibleInput, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "case: 1")
	assert.Contains(t, stdout, "north: 2")

	// an explicit flag beats the file
	stdout, _, err = execute(t, feasibleInput, "--config", cfgPath, "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Case 1:\n"))
}

func TestRun_BadFlags(t *testing.T) {
	_, _, err := execute(t, feasibleInput, "--format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, feasibleInput, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
