package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shade/internal/adapters/config"
	"go.trai.ch/shade/internal/adapters/fs"
	"go.trai.ch/shade/internal/adapters/logger"
	"go.trai.ch/shade/internal/app"
	"go.trai.ch/shade/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *bool) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.New()
	application := app.New(
		config.NewLoader(log),
		log,
		nil,
		fs.NewOSFS(),
		fs.NewWalker(),
		mocks.NewMockWatcher(ctrl),
	)

	cleaned := false
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() { cleaned = true }, nil
	}, &cleaned
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, cleaned := newProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, *cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())
	provider, _ := newProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", "--config", "missing.yaml"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "failed to read config file")
}

// TestRun_EmptyProject verifies that a project without shaders builds cleanly.
func TestRun_EmptyProject(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	t.Chdir(dir)
	provider, _ := newProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr.String(), "built 0 of 0 shaders")
}
