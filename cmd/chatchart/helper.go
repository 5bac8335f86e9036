package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/chatcharts"
	"github.com/midbel/chatcharts/config"
	"github.com/midbel/chatcharts/logging"
)

// setup loads the configuration and prepares the logger for a command.
func setup(envfile string) (*config.Config, error) {
	cfg := config.Load(envfile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
	return cfg, nil
}

func themeOptions(cfg *config.Config, theme, palette string) ([]charts.Option, error) {
	var opts []charts.Option
	if theme == "" {
		theme = cfg.Theme
	}
	if theme != "" {
		t, err := charts.LoadThemeFile(theme)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", theme, err)
		}
		opts = append(opts, charts.WithTheme(t))
	}
	if palette == "" {
		palette = cfg.Palette
	}
	if palette != "" {
		p, ok := charts.PaletteByName(palette)
		if !ok {
			return nil, fmt.Errorf("%s: unknown palette", palette)
		}
		opts = append(opts, charts.WithPalette(p))
	}
	return opts, nil
}

func decodeFile(file string) (charts.Reply, error) {
	r, err := os.Open(file)
	if err != nil {
		return charts.Reply{}, err
	}
	defer r.Close()
	reply, err := charts.Decode(r)
	if err != nil {
		return reply, fmt.Errorf("%s: %w", file, err)
	}
	return reply, nil
}

func outputName(dir, file string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return filepath.Join(dir, base+".svg")
}
