package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/fanoutgo/internal/cli"
)

func TestParse_DefaultsWithNoArguments(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse(nil, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "", cfg.CastPath, "no cast path means the built-in cast")
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1, cfg.Runs)
}

func TestParse_CastPathSources(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{"long flag", []string{"--cast", "demo.hcl"}},
		{"short flag", []string{"-c", "demo.hcl"}},
		{"positional", []string{"demo.hcl"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, shouldExit, err := cli.Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.False(t, shouldExit)
			require.Equal(t, "demo.hcl", cfg.CastPath)
		})
	}
}

func TestParse_HelpRequestsCleanExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := cli.Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse([]string{"--log-format", "xml"}, &bytes.Buffer{})
	require.Error(t, err)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse([]string{"--log-level", "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParse_NegativeRunsRejected(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse([]string{"--runs", "-2"}, &bytes.Buffer{})
	require.Error(t, err)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse([]string{"--does-not-exist"}, &bytes.Buffer{})
	require.Error(t, err)
}
