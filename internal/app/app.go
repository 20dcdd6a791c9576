// Package app implements the application layer for shade.
package app

import (
	"os"
	"path/filepath"

	"go.trai.ch/shade/internal/adapters/codegen"  //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/adapters/minifier" //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/adapters/runtime"  //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/shade/internal/host"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	fs           ports.FileSystem
	walker       ports.Walker
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	fsys ports.FileSystem,
	walker ports.Walker,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		fs:           fsys,
		walker:       walker,
		watcher:      watcher,
	}
}

// Options configures a single command.
type Options struct {
	// Dir is the directory configuration discovery starts from. Empty means the working directory.
	Dir string
	// ConfigPath is an explicit configuration file, relative to Dir.
	ConfigPath string
	// DryRun reports the files that would change without touching them.
	DryRun bool
}

// session is one plugin wired to its settings and runtime module graph.
type session struct {
	settings domain.Settings
	plugin   *host.Plugin
	graph    *runtime.Graph
}

func (a *App) loadSettings(opts Options) (domain.Settings, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "dir", dir)
	}

	settings, err := a.configLoader.Load(abs, opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

func (a *App) open(opts Options, fsys ports.FileSystem) (*session, error) {
	settings, err := a.loadSettings(opts)
	if err != nil {
		return nil, err
	}

	virtualID := domain.ResolvedVirtualID(settings.Runtime.Specifier)
	outputs := map[string]string{}
	if settings.Runtime.Output != "" {
		outputs[virtualID] = settings.Runtime.Output
	}
	graph := runtime.NewGraph(fsys, a.logger, outputs)

	plugin := host.New(
		settings,
		minifier.New(settings.Analyzer, settings.Root, a.logger),
		fsys,
		codegen.New(settings.Runtime.Specifier),
		host.WithModuleGraph(graph),
		host.WithLogger(a.logger),
		host.WithTracer(a.tracer),
	)

	return &session{settings: settings, plugin: plugin, graph: graph}, nil
}

// relative renders path relative to the shader root when possible.
func (s *session) relative(path string) string {
	rel, err := filepath.Rel(s.settings.Root, path)
	if err != nil {
		return path
	}
	return rel
}
