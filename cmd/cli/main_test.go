package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A cast file with a syntax error is guaranteed to make app.NewApp panic
	// during the loading phase.
	invalidHCL := `
		producer "static" "broken" {
			arguments {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "cast.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, errW, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BuiltinCastEndToEnd(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	err := run(out, errW, []string{"--log-level", "error"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Message: ")
	require.Contains(t, out.String(), "From C++: 101")
}

func TestRun_DeclaredCastEndToEnd(t *testing.T) {
	t.Parallel()

	castPath := filepath.Join(t.TempDir(), "cast.hcl")
	cast := `
producer "static" "p" {
  arguments {
    text = "wired"
  }
}

displayer "console" "d" {}
`
	require.NoError(t, os.WriteFile(castPath, []byte(cast), 0600))

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"--log-level", "error", castPath})

	require.NoError(t, err)
	require.Equal(t, "Message: wired\nFrom C++: 101\n\n\n", out.String())
}
