// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the writer CLI. It fills LaTeX
// templates for resumes, reports, and cover letters and compiles them to
// PDF, from data files, an interactive prompt, or an HTTP API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/writer/internal/assemble"
	"github.com/pdiddy/writer/internal/compile"
	"github.com/pdiddy/writer/internal/history"
	"github.com/pdiddy/writer/internal/logging"
	"github.com/pdiddy/writer/internal/secrets"
	"github.com/pdiddy/writer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the resolved configuration, set before any command runs.
	cfg types.Config
	log *logrus.Logger

	logCloser io.Closer = io.NopCloser(nil)
)

// rootCmd is the base command for the writer CLI.
var rootCmd = &cobra.Command{
	Use:   "writer",
	Short: "Fill LaTeX templates and compile them to PDF",
	Long: `writer generates resumes, IEEE-style reports, and cover letters from
LaTeX templates. Structured data (YAML or JSON) is substituted into the
template's placeholders, repeated sections such as education entries or
author blocks are generated and spliced in, and the result is compiled
with pdflatex, locally or inside a TeX Live container.

Templates live in the templates directory; generated files go to the
output directory. Every render is recorded in a local history database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		l, closer, err := logging.Setup(c.Log)
		if err != nil {
			return err
		}
		log, logCloser = l, closer

		s, err := secrets.Load(c.SecretsDir, log)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			log.WithField("keys", keys).Debug("loaded secrets")
		}
		c.Server.Token = s[secrets.ServerToken]

		cfg = c
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logCloser.Close()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./writer.yaml or ~/.config/writer/writer.yaml)")
	pf.String("templates-dir", "", "directory holding .txt/.tex templates")
	pf.String("output-dir", "", "directory receiving generated .tex and .pdf files")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("strict-anchors", false, "fail instead of inserting a section whose template anchor is missing")
	pf.String("compiler", "", "compiler backend: local or container")

	for key, flag := range map[string]string{
		"templates_dir":         "templates-dir",
		"output_dir":            "output-dir",
		"log.level":             "log-level",
		"render.strict_anchors": "strict-anchors",
		"compiler.backend":      "compiler",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	def := types.DefaultConfig()
	viper.SetDefault("templates_dir", def.TemplatesDir)
	viper.SetDefault("output_dir", def.OutputDir)
	viper.SetDefault("secrets_dir", def.SecretsDir)
	viper.SetDefault("concurrency", def.Concurrency)
	viper.SetDefault("compiler.backend", string(def.Compiler.Backend))
	viper.SetDefault("compiler.binary", def.Compiler.Binary)
	viper.SetDefault("compiler.image", def.Compiler.Image)
	viper.SetDefault("compiler.timeout", def.Compiler.Timeout)
	viper.SetDefault("compiler.aux_extensions", def.Compiler.AuxExtensions)
	viper.SetDefault("render.strict_anchors", def.Render.StrictAnchors)
	viper.SetDefault("server.addr", def.Server.Addr)
	viper.SetDefault("server.allowed_origins", def.Server.AllowedOrigins)
	viper.SetDefault("history.enabled", def.History.Enabled)
	viper.SetDefault("history.dir", def.History.Dir)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.file", def.Log.File)
	viper.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	viper.SetDefault("log.max_backups", def.Log.MaxBackups)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("writer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "writer"))
		}
	}

	viper.SetEnvPrefix("WRITER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged flag, env, file, and default settings.
func loadConfig() (types.Config, error) {
	c := types.Config{
		TemplatesDir: viper.GetString("templates_dir"),
		OutputDir:    viper.GetString("output_dir"),
		SecretsDir:   viper.GetString("secrets_dir"),
		Concurrency:  viper.GetInt("concurrency"),
		Compiler: types.CompilerConfig{
			Backend:       types.CompilerBackend(viper.GetString("compiler.backend")),
			Binary:        viper.GetString("compiler.binary"),
			Image:         viper.GetString("compiler.image"),
			Timeout:       viper.GetDuration("compiler.timeout"),
			AuxExtensions: viper.GetStringSlice("compiler.aux_extensions"),
		},
		Render: types.RenderConfig{
			StrictAnchors: viper.GetBool("render.strict_anchors"),
		},
		Server: types.ServerConfig{
			Addr:           viper.GetString("server.addr"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Dir:     viper.GetString("history.dir"),
		},
		Log: types.LogConfig{
			Level:      viper.GetString("log.level"),
			File:       viper.GetString("log.file"),
			MaxSizeMB:  viper.GetInt("log.max_size_mb"),
			MaxBackups: viper.GetInt("log.max_backups"),
		},
	}
	if c.Concurrency < 1 {
		return c, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return c, nil
}

// newService wires the assembly service. The compiler is skipped for dry
// runs so they work without a TeX installation.
func newService(ctx context.Context, dryRun bool) (*assemble.Service, func(), error) {
	var compiler compile.Compiler
	if !dryRun {
		c, err := compile.New(ctx, cfg.Compiler, cfg.OutputDir, log)
		if err != nil {
			return nil, nil, err
		}
		compiler = c
	}

	cleanup := func() {}
	var recorder assemble.Recorder
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Dir)
		if err != nil {
			return nil, nil, err
		}
		recorder = store
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.WithError(err).Warn("closing history database")
			}
		}
	}

	return assemble.New(cfg, compiler, recorder, log), cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
