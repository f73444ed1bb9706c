// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the configuration of the demo programs,
// set from command line flags and TOML files by the cli package,
// or opened and saved directly as TOML or YAML.
package config

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a demo program.
type Config struct {

	// Includes are other config files to include, whose
	// settings are overridden by this file.
	Includes []string

	// Title is the window title; each demo has its own default.
	Title string

	// Width is the width of the window.
	Width int `default:"800"`

	// Height is the height of the window.
	Height int `default:"800"`

	// ClearColor is the background color, as a hex value
	// (#rrggbb or #rrggbbaa) or a CSS color name. If empty,
	// the renderer default of (0.07, 0.13, 0.17) is used.
	ClearColor string

	// GLMajor is the requested OpenGL major version.
	GLMajor int `default:"3"`

	// GLMinor is the requested OpenGL minor version.
	GLMinor int `default:"3"`

	// VSync waits for the vertical blank on each frame.
	VSync bool `default:"true"`

	// Offscreen renders in software with no window,
	// for the given number of Frames.
	Offscreen bool

	// Frames is the number of frames to render when Offscreen.
	Frames int `default:"1"`

	// Output is a PNG file to save the last offscreen frame to.
	Output string

	// Debug enables verbose logging.
	Debug bool
}

// IncludesPtr returns a pointer to the Includes field, for the cli package.
func (cfg *Config) IncludesPtr() *[]string { return &cfg.Includes }

// Default returns a new Config with the default values.
func Default() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	return cfg
}

// isYAML returns true if the file name has a YAML extension.
func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// Open reads the config from the given file, over any values already
// set. The file is YAML if it has a .yaml or .yml extension, else TOML.
// A leading ~ is expanded to the home directory.
func Open(cfg *Config, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	if isYAML(fn) {
		return yaml.Unmarshal(b, cfg)
	}
	return toml.Unmarshal(b, cfg)
}

// Save writes the config to the given file, as YAML or TOML
// according to its extension, as for [Open].
func Save(cfg *Config, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	var b []byte
	if isYAML(fn) {
		b, err = yaml.Marshal(cfg)
	} else {
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0666)
}

// Size returns the window size.
func (cfg *Config) Size() image.Point {
	return image.Point{cfg.Width, cfg.Height}
}

// Background returns the parsed ClearColor, or nil if it is empty.
func (cfg *Config) Background() (color.Color, error) {
	if strings.TrimSpace(cfg.ClearColor) == "" {
		return nil, nil
	}
	return ParseColor(cfg.ClearColor)
}

// ParseColor parses a hex color (#rgb, #rrggbb or #rrggbbaa)
// or a CSS color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, fmt.Errorf("config: unknown color name %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("config: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Validate returns an error for each invalid setting.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid size %dx%d", cfg.Width, cfg.Height))
	}
	if _, err := cfg.Background(); err != nil {
		errs = append(errs, err)
	}
	if cfg.GLMajor < 3 || (cfg.GLMajor == 3 && cfg.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("config: OpenGL %d.%d is not supported: 3.3 or later is required", cfg.GLMajor, cfg.GLMinor))
	}
	if cfg.Offscreen && cfg.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: invalid frame count %d", cfg.Frames))
	}
	return errors.Join(errs...)
}
