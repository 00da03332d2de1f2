// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sink []byte

func BenchmarkPrettyInt64Logfmt(b *testing.B) {
	buf := make([]byte, 100)
	b.ReportAllocs()
	for b.Loop() {
		sink = appendInt64(buf, rand.Int64()) //#nosec G404
	}
}

func BenchmarkPrettyUint64Logfmt(b *testing.B) {
	buf := make([]byte, 100)
	b.ReportAllocs()
	for b.Loop() {
		sink = appendUint64(buf, rand.Uint64(), false) //#nosec G404
	}
}

func TestPrettyInt64(t *testing.T) {
	tests := []struct {
		n int64
		s string
	}{
		{0, "0"},
		{10, "10"},
		{-10, "-10"},
		{99999, "99999"},
		{100000, "100,000"},
		{-100000, "-100,000"},
		{1234567, "1,234,567"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.s, string(appendInt64(nil, tt.n)))
	}
}

func TestPrettyBigInt(t *testing.T) {
	assert.Equal(t, "1,000,000", string(appendBigInt(nil, big.NewInt(1000000))))
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, "123456789012345678901234567890", string(appendBigInt(nil, huge)))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain", string(appendEscapeString(nil, "plain")))
	assert.Equal(t, `"with space"`, string(appendEscapeString(nil, "with space")))
	assert.Equal(t, `"tab\there"`, string(appendEscapeString(nil, "tab\there")))
	assert.Equal(t, "multi\nline", escapeMessage("multi\nline"))
	assert.Equal(t, `"a=b"`, escapeMessage("a=b"))
}

func TestTerminalHandler(t *testing.T) {
	var (
		buf bytes.Buffer
		lvl slog.LevelVar
	)
	lvl.Set(slog.LevelInfo)
	l := NewLogger(NewTerminalHandlerWithLevel(&buf, &lvl, false))

	l.Debug("hidden")
	l.Info("shown", "count", 21, "err", errors.New("boom"), "took", 1500*time.Millisecond)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "INFO ["), out)
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "count=21")
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "took=1.5s")
	assert.True(t, strings.HasSuffix(out, "\n"))

	buf.Reset()
	lvl.Set(LevelTrace)
	l.With("pkg", "scene").Trace("traced")
	assert.Contains(t, buf.String(), "TRACE")
	assert.Contains(t, buf.String(), "pkg=scene")
}

func TestTerminalHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandler(&buf, true))
	l.Warn("careful")
	assert.Contains(t, buf.String(), "\x1b[33mWARN \x1b[0m")
}

func TestJSONHandler(t *testing.T) {
	var (
		buf bytes.Buffer
		lvl slog.LevelVar
	)
	l := Setup(Options{Writer: &buf, Level: &lvl, JSON: true})
	defer SetDefault(NewLogger(DiscardHandler()))

	Info("hello", "n", 3)
	l.Debug("filtered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "info", entry["lvl"])
	assert.Equal(t, float64(3), entry["n"])
	assert.Contains(t, entry, "t")
}

func TestWithContextFollowsRoot(t *testing.T) {
	pkgLogger := WithContext("pkg", "test")

	var first, second bytes.Buffer
	SetDefault(NewLogger(NewTerminalHandler(&first, false)))
	pkgLogger.Info("one")
	SetDefault(NewLogger(NewTerminalHandler(&second, false)))
	pkgLogger.With("k", "v").Info("two")
	SetDefault(NewLogger(DiscardHandler()))

	assert.Contains(t, first.String(), "one")
	assert.Contains(t, first.String(), "pkg=test")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
	assert.Contains(t, second.String(), "k=v")
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(LegacyLevelCrit))
	assert.Equal(t, slog.LevelError, FromLegacyLevel(LegacyLevelError))
	assert.Equal(t, slog.LevelWarn, FromLegacyLevel(LegacyLevelWarn))
	assert.Equal(t, slog.LevelInfo, FromLegacyLevel(LegacyLevelInfo))
	assert.Equal(t, slog.LevelDebug, FromLegacyLevel(LegacyLevelDebug))
	assert.Equal(t, LevelTrace, FromLegacyLevel(LegacyLevelTrace))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
	assert.Equal(t, LevelCrit, FromLegacyLevel(-1))
}

func TestLevelStrings(t *testing.T) {
	assert.Equal(t, "warn", LevelString(slog.LevelWarn))
	assert.Equal(t, "WARN ", LevelAlignedString(slog.LevelWarn))
	assert.Equal(t, "unknown", LevelString(slog.Level(3)))
}
