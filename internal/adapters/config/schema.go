package config

// Shadefile represents the structure of the shade.yaml configuration file.
type Shadefile struct {
	Version     string      `yaml:"version"`
	Root        string      `yaml:"root"`
	Extensions  []string    `yaml:"extensions"`
	Suffix      string      `yaml:"suffix"`
	Concurrency int         `yaml:"concurrency"`
	Debounce    string      `yaml:"debounce"`
	Runtime     RuntimeDTO  `yaml:"runtime"`
	Analyzer    AnalyzerDTO `yaml:"analyzer"`
}

// RuntimeDTO represents the runtime module section.
type RuntimeDTO struct {
	Specifier string `yaml:"specifier"`
	Output    string `yaml:"output"`
}

// AnalyzerDTO represents the analyzer section.
type AnalyzerDTO struct {
	Command []string          `yaml:"command"`
	Env     map[string]string `yaml:"env"`
	Minify  bool              `yaml:"minify"`
	Rename  bool              `yaml:"rename"`
}
