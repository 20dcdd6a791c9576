// Package config loads shade.yaml into domain settings.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the settings for cwd. An explicit path must exist; otherwise the
// nearest shade.yaml in cwd or one of its parents is used, and defaults rooted at
// cwd apply when there is none.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	configPath := path
	if configPath != "" && !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}
	if configPath == "" {
		configPath = findConfiguration(cwd)
	}

	if configPath == "" {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(filepath.Clean(cwd)), nil
	}

	var file Shadefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	settings, err := resolveSettings(configPath, &file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug("loaded " + configPath)
	return settings, nil
}

// findConfiguration returns the nearest config file at or above cwd, or "" if there is none.
func findConfiguration(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func resolveSettings(configPath string, file *Shadefile) (domain.Settings, error) {
	if file.Version != "" && file.Version != domain.ConfigVersion {
		return domain.Settings{}, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	settings := domain.DefaultSettings(resolvePath(configPath, file.Root))

	if len(file.Extensions) > 0 {
		for _, ext := range file.Extensions {
			if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return domain.Settings{}, zerr.With(domain.ErrInvalidExtension, "extension", ext)
			}
		}
		settings.Extensions = file.Extensions
	}

	if file.Suffix != "" {
		if !strings.HasPrefix(file.Suffix, ".") {
			return domain.Settings{}, zerr.With(domain.ErrInvalidSuffix, "suffix", file.Suffix)
		}
		settings.Suffix = file.Suffix
	}

	if file.Concurrency < 0 {
		return domain.Settings{}, zerr.With(domain.ErrInvalidConcurrency, "concurrency", file.Concurrency)
	}
	settings.Concurrency = file.Concurrency

	if file.Debounce != "" {
		d, err := time.ParseDuration(file.Debounce)
		if err != nil || d < 0 {
			return domain.Settings{}, zerr.With(domain.ErrInvalidDebounce, "debounce", file.Debounce)
		}
		settings.Debounce = d
	}

	if file.Runtime.Specifier != "" {
		settings.Runtime.Specifier = file.Runtime.Specifier
	}
	if file.Runtime.Output != "" {
		settings.Runtime.Output = resolvePath(configPath, file.Runtime.Output)
	}

	settings.Analyzer = domain.AnalyzerSettings{
		Command: file.Analyzer.Command,
		Env:     file.Analyzer.Env,
		Minify:  file.Analyzer.Minify,
		Rename:  file.Analyzer.Rename,
	}

	return settings, nil
}

// resolvePath resolves configured relative to the directory holding the config file.
func resolvePath(configPath, configured string) string {
	configDir := filepath.Dir(configPath)
	if configured == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and decodes it into target, rejecting unknown keys.
// An empty file decodes to the zero value.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is the discovered or user-supplied config file.
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
