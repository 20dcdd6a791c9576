// Package minifier provides shader analyzers: an external process speaking the
// JSON protocol and a built-in scanner.
package minifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Analyzer = (*Process)(nil)

// Process analyzes shaders by running an external command. The command receives a
// JSON object of shader id to source on stdin and answers with
// {"shaders": {...}, "mappings": {...}} on stdout. Every stderr line is logged as a warning.
type Process struct {
	command []string
	env     map[string]string
	dir     string
	logger  ports.Logger
}

// NewProcess creates a Process running command in dir with env added on top of the
// allow-listed host environment.
func NewProcess(command []string, env map[string]string, dir string, logger ports.Logger) *Process {
	return &Process{
		command: command,
		env:     env,
		dir:     dir,
		logger:  logger,
	}
}

// Analyze runs the command once over every source.
func (p *Process) Analyze(ctx context.Context, sources map[string]string) (*domain.AnalysisResult, error) {
	if len(p.command) == 0 {
		return nil, zerr.With(domain.ErrAnalyzerStartFailed, "command", "")
	}

	input, err := json.Marshal(sources)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalyzerInputInvalid.Error())
	}

	name := p.command[0]
	cmdEnv := resolveEnvironment(os.Environ(), p.env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, p.command[1:]...) //nolint:gosec // Configured analyzer command.
	cmd.Args[0] = name
	cmd.Dir = p.dir
	cmd.Env = cmdEnv

	var stdout bytes.Buffer
	stderr := &logWriter{log: p.logger.Warn}
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	_ = stderr.Close()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(err, domain.ErrAnalyzerFailed.Error()), "exit_code", exitErr.ExitCode()),
				"command", name,
			)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAnalyzerStartFailed.Error()), "command", name)
	}

	var res domain.AnalysisResult
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAnalyzerOutputInvalid.Error()), "command", name)
	}
	return res.Normalize(), nil
}
