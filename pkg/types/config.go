package types

import "time"

// CompilerBackend identifies how pdflatex is invoked.
type CompilerBackend string

const (
	// BackendLocal runs the pdflatex binary found on PATH.
	BackendLocal CompilerBackend = "local"
	// BackendContainer runs pdflatex inside a TeX Live container image.
	BackendContainer CompilerBackend = "container"
)

// CompilerConfig holds settings for the document compiler.
type CompilerConfig struct {
	// Backend selects local or container execution.
	Backend CompilerBackend `json:"backend" yaml:"backend"`

	// Binary is the typesetting program (default "pdflatex").
	Binary string `json:"binary" yaml:"binary"`

	// Image is the container image used by the container backend.
	Image string `json:"image" yaml:"image"`

	// Timeout bounds a single compiler pass. Zero means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// AuxExtensions lists the auxiliary file extensions removed after a
	// successful compile (default .aux, .log, .out).
	AuxExtensions []string `json:"aux_extensions" yaml:"aux_extensions"`
}

// RenderConfig holds settings for the template rendering engine.
type RenderConfig struct {
	// StrictAnchors turns fallback placement of a section into an error.
	StrictAnchors bool `json:"strict_anchors" yaml:"strict_anchors"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default "127.0.0.1:8000").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigins lists the CORS origins allowed to call the API.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`

	// Token, when non-empty, is required as a bearer token on every
	// request except GET /. Loaded from the secrets directory.
	Token string `json:"-" yaml:"-"`
}

// HistoryConfig holds settings for the render history store.
type HistoryConfig struct {
	// Enabled controls whether renders are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir holds history.db.
	Dir string `json:"dir" yaml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// File, when set, receives log output with size-based rotation.
	File string `json:"file" yaml:"file"`

	// MaxSizeMB is the size at which the log file rotates.
	MaxSizeMB int `json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `json:"max_backups" yaml:"max_backups"`
}

// Config groups all writer settings.
type Config struct {
	// TemplatesDir holds the .txt/.tex templates.
	TemplatesDir string `json:"templates_dir" yaml:"templates_dir"`

	// OutputDir receives generated .tex and .pdf files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SecretsDir holds one file per secret (e.g. server-token).
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir"`

	// Concurrency is the number of documents rendered in parallel by batch.
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	Compiler CompilerConfig `json:"compiler" yaml:"compiler"`
	Render   RenderConfig   `json:"render" yaml:"render"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	History  HistoryConfig  `json:"history" yaml:"history"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// DefaultConfig returns the settings used when no config file, flag, or
// environment variable overrides them.
func DefaultConfig() Config {
	return Config{
		TemplatesDir: "templates",
		OutputDir:    "outputs",
		SecretsDir:   ".secrets",
		Concurrency:  4,
		Compiler: CompilerConfig{
			Backend:       BackendLocal,
			Binary:        "pdflatex",
			Image:         "texlive/texlive:latest",
			Timeout:       2 * time.Minute,
			AuxExtensions: []string{".aux", ".log", ".out"},
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8000",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     ".writer",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}
