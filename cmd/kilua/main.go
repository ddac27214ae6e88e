// Package main is the entry point for the kilua editor.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/dshills/kilua/internal/app"
	"github.com/dshills/kilua/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configs []string
	eval    string
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "kilua [flags] FILE",
		Short: "A small terminal text editor scripted in Lua",
		Long: `kilua - a small terminal text editor scripted in Lua

Key handling lives in Lua. At startup kilua loads ~/.kilo.lua, ./kilo.lua,
the scripts listed in the configuration and any --config Lua files. At least
one of them must exist.

Settings are read from ~/.kilua.toml, ./kilua.toml, --config TOML files and
KILUA_* environment variables, later sources winning.`,
		Example: `  # Edit a file
  kilua notes.txt

  # Load an extra script and call its "setup" function once
  kilua --config extra.lua --eval setup notes.txt

  # Use a different settings file
  kilua --config ~/work.toml main.go`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&f.configs, "config", nil, "Settings file (.toml) or Lua init script; may be repeated")
	cmd.Flags().StringVar(&f.eval, "eval", "", "Global Lua function to call once after startup")
	return cmd
}

// splitConfigs sorts --config values into TOML settings files and Lua
// scripts.
func splitConfigs(paths []string) (settings, scripts []string) {
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".toml") {
			settings = append(settings, p)
		} else {
			scripts = append(scripts, p)
		}
	}
	return settings, scripts
}

func run(f flags, filename string) error {
	settings, scripts := splitConfigs(f.configs)

	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()

	cfg, err := config.Load(
		config.WithHomeDir(home),
		config.WithWorkDir(wd),
		config.WithFiles(settings...),
	)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := app.OpenLogFile(cfg.LogFile, app.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer log.Close()
	log.Info("starting kilua %s", version)

	term, err := app.OpenTerminal(cfg.Backend, log)
	if err != nil {
		log.Error("terminal: %v", err)
		return err
	}

	application, err := app.New(app.Options{
		Config:   cfg,
		Version:  version,
		Filename: filename,
		Eval:     f.eval,
		Scripts:  scripts,
		HomeDir:  home,
		WorkDir:  wd,
		Logger:   log,
	}, term)
	if err != nil {
		log.Error("startup: %v", err)
		return err
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		log.Error("exiting: %v", err)
		return err
	}
	log.Info("bye")
	return nil
}
