package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestContentCommand(t *testing.T) {
	out, _, err := execute(t, "content")
	require.NoError(t, err)
	assert.Contains(t, out, "BEM ALI")
	assert.Contains(t, out, "Dra. Mara Magalhães")
}

func TestContentCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "content", "--content", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	// Reset for the other tests sharing the flag set.
	require.NoError(t, rootCmd.PersistentFlags().Set("content", ""))
}

func TestTaglineCommand_FallsBackWithoutKey(t *testing.T) {
	for _, env := range []string{"BEMALI_API_KEY", "GEMINI_API_KEY", "API_KEY", "BEMALI_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(env, "")
	}
	logFile := filepath.Join(t.TempDir(), "bemali.log")

	out, errOut, err := execute(t, "tagline", "--mode", "personal", "--log-file", logFile)
	require.NoError(t, err)
	assert.Equal(t, "Um espaço seguro para você ser quem é.", strings.TrimSpace(out))
	assert.Contains(t, errOut, "fallback")
	require.NoError(t, rootCmd.PersistentFlags().Set("mode", "institutional"))
}
