package minifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	sysEnv := []string{
		"HOME=/home/user",
		"PATH=/usr/bin",
		"SECRET=hunter2",
		"MALFORMED",
	}

	env := resolveEnvironment(sysEnv, map[string]string{"PATH": "/opt/bin", "MODE": "fast"})

	assert.Equal(t, []string{"HOME=/home/user", "MODE=fast", "PATH=/opt/bin"}, env)
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "glsl-min")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // Executable test fixture.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte("x"), 0o600))

	got, err := lookPath("glsl-min", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("plain", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("glsl-min", nil)
	require.Error(t, err)
}

func TestLogWriter_FlushesPartialLine(t *testing.T) {
	var lines []string
	w := &logWriter{log: func(s string) { lines = append(lines, s) }}

	_, _ = w.Write([]byte("one\r\ntw"))
	_, _ = w.Write([]byte("o\n\nthree"))
	assert.Equal(t, []string{"one", "two"}, lines)

	require.NoError(t, w.Close())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
