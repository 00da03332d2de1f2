// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/randseq/scene"
)

// fakeFlags stands in for *cli.Context; only keys present count as set.
type fakeFlags map[string]any

func (f fakeFlags) IsSet(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fakeFlags) String(name string) string {
	v, _ := f[name].(string)
	return v
}

func (f fakeFlags) Int(name string) int {
	v, _ := f[name].(int)
	return v
}

func (f fakeFlags) Uint64(name string) uint64 {
	v, _ := f[name].(uint64)
	return v
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "randseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMakeConfigDefaults(t *testing.T) {
	cfg, err := makeConfig(fakeFlags{})
	require.NoError(t, err)

	assert.Equal(t, scene.DefaultConfig(), cfg.Scene)
	assert.Equal(t, rendererWindow, cfg.Renderer)
	assert.Equal(t, 60, cfg.FPS)
	assert.Zero(t, cfg.Seed)
}

func TestMakeConfigFlags(t *testing.T) {
	cfg, err := makeConfig(fakeFlags{
		rendererFlag.Name: rendererTerminal,
		widthFlag.Name:    1024,
		countFlag.Name:    8,
		maxCountFlag.Name: 30,
		seedFlag.Name:     uint64(7),
	})
	require.NoError(t, err)

	assert.Equal(t, rendererTerminal, cfg.Renderer)
	assert.Equal(t, 1024, cfg.Scene.ScreenWidth)
	assert.Equal(t, 450, cfg.Scene.ScreenHeight)
	assert.Equal(t, 8, cfg.Scene.InitialCount)
	assert.Equal(t, 30, cfg.Scene.MaxCount)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestMakeConfigFile(t *testing.T) {
	path := writeConfig(t, `
renderer: terminal
width: 640
height: 480
count: 12
min-count: 6
fps: 30
seed: 99
`)
	cfg, err := makeConfig(fakeFlags{
		configFlag.Name: path,
		fpsFlag.Name:    15,
	})
	require.NoError(t, err)

	assert.Equal(t, rendererTerminal, cfg.Renderer)
	assert.Equal(t, 640, cfg.Scene.ScreenWidth)
	assert.Equal(t, 480, cfg.Scene.ScreenHeight)
	assert.Equal(t, 12, cfg.Scene.InitialCount)
	assert.Equal(t, 6, cfg.Scene.MinCount)
	assert.Equal(t, 20, cfg.Scene.FontSize)
	assert.Equal(t, 15, cfg.FPS, "explicit flag wins over the file")
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestMakeConfigEmptyFile(t *testing.T) {
	cfg, err := makeConfig(fakeFlags{configFlag.Name: writeConfig(t, "")})
	require.NoError(t, err)
	assert.Equal(t, defaultAppConfig(), cfg)
}

func TestMakeConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags fakeFlags
		want  string
	}{
		{"missing file", fakeFlags{configFlag.Name: filepath.Join(t.TempDir(), "nope.yaml")}, "read config"},
		{"unknown key", fakeFlags{configFlag.Name: writeConfig(t, "colour: red\n")}, "parse config"},
		{"bad renderer", fakeFlags{rendererFlag.Name: "opengl"}, `unknown renderer "opengl"`},
		{"bad fps", fakeFlags{fpsFlag.Name: 0}, "invalid fps 0"},
		{"count under min", fakeFlags{countFlag.Name: 3}, "count 3 below min count 4"},
		{"bad size", fakeFlags{heightFlag.Name: -1}, "invalid screen size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := makeConfig(tt.flags)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestReadIntFromUInt64Flag(t *testing.T) {
	v, err := readIntFromUInt64Flag(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = readIntFromUInt64Flag(^uint64(0))
	assert.Error(t, err)
}

func TestMakeSource(t *testing.T) {
	a, b := makeSource(5), makeSource(5)
	for range 10 {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.NotNil(t, makeSource(0))
}
