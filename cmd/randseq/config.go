// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/randseq/scene"
)

const (
	rendererWindow   = "window"
	rendererTerminal = "terminal"
)

// appConfig is everything the run action needs. Values come from the
// built-in defaults, then the YAML file, then explicitly set flags.
type appConfig struct {
	Scene    scene.Config `yaml:",inline"`
	Renderer string       `yaml:"renderer"`
	FPS      int          `yaml:"fps"`
	Seed     uint64       `yaml:"seed"`
}

func defaultAppConfig() appConfig {
	return appConfig{
		Scene:    scene.DefaultConfig(),
		Renderer: rendererWindow,
		FPS:      60,
	}
}

func (c appConfig) validate() error {
	switch c.Renderer {
	case rendererWindow, rendererTerminal:
	default:
		return errors.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.FPS <= 0 {
		return errors.Errorf("invalid fps %d", c.FPS)
	}
	return c.Scene.Validate()
}

// flagReader is the part of *cli.Context used to read settings.
type flagReader interface {
	IsSet(name string) bool
	String(name string) string
	Int(name string) int
	Uint64(name string) uint64
}

func loadConfigFile(path string, cfg *appConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

func makeConfig(ctx flagReader) (appConfig, error) {
	cfg := defaultAppConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{widthFlag.Name, &cfg.Scene.ScreenWidth},
		{heightFlag.Name, &cfg.Scene.ScreenHeight},
		{countFlag.Name, &cfg.Scene.InitialCount},
		{minCountFlag.Name, &cfg.Scene.MinCount},
		{maxCountFlag.Name, &cfg.Scene.MaxCount},
		{fpsFlag.Name, &cfg.FPS},
	}
	for _, f := range ints {
		if ctx.IsSet(f.name) {
			*f.dst = ctx.Int(f.name)
		}
	}
	if ctx.IsSet(rendererFlag.Name) {
		cfg.Renderer = ctx.String(rendererFlag.Name)
	}
	if ctx.IsSet(seedFlag.Name) {
		cfg.Seed = ctx.Uint64(seedFlag.Name)
	}

	if err := cfg.validate(); err != nil {
		return cfg, errors.WithMessage(err, "invalid config")
	}
	return cfg, nil
}
