package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/enemy-scaling/internal/preset"
	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func run(t *testing.T, ctx context.Context, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config-dir", dir}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, context.Background(), dir, "summary")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "level 100")
	assert.Contains(t, out, "Enemy Damage")
}

func TestSummaryJSONWithOverrides(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, context.Background(), dir, "summary", "--format", "json",
		"--level", "250", "--faction", "corpus", "--mode", "health", "--health-ability", "reave")
	require.NoError(t, err)

	var s scaling.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 250.0, s.Level)
	assert.Equal(t, scaling.ModeHealth, s.Mode)
	assert.Equal(t, "reave", s.Ability)
	assert.Positive(t, s.Shield, "corpus shields scale")
}

func TestSeriesCSV(t *testing.T) {
	out, err := run(t, context.Background(), t.TempDir(), "series", "--format", "csv", "--samples", "80", "--every", "40", "--show", "base,ehp")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "level,health,shield,armor,ehp", strings.ToLower(lines[0]))
	assert.Len(t, lines, 1+2+1)
}

func TestSeriesRejectsUnknownCurve(t *testing.T) {
	_, err := run(t, context.Background(), t.TempDir(), "series", "--show", "sparkles")
	assert.ErrorContains(t, err, "sparkles")
}

func TestCompareJSON(t *testing.T) {
	out, err := run(t, context.Background(), t.TempDir(), "compare", "--metric", "shield", "--factions", "grineer,corpus", "--samples", "80", "--format", "json")
	require.NoError(t, err)

	var c scaling.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, scaling.MetricShield, c.Metric)
	require.Len(t, c.Lines, 2)
	assert.Len(t, c.Levels, 80)
}

func TestCompareErrors(t *testing.T) {
	_, err := run(t, context.Background(), t.TempDir(), "compare", "--factions", "orokin")
	assert.ErrorIs(t, err, preset.ErrInvalidPreset)

	_, err = run(t, context.Background(), t.TempDir(), "compare", "--metric", "speed")
	assert.ErrorContains(t, err, "unknown metric")
}

func TestPresetSaveListAndAB(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, context.Background(), dir, "preset", "save", "steel", "--difficulty", "steel", "--label", "Steel Path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "presets", "steel.yaml"))

	_, err = run(t, context.Background(), dir, "preset", "save", "grineer-100")
	require.NoError(t, err)

	out, err = run(t, context.Background(), dir, "preset", "list")
	require.NoError(t, err)
	assert.Equal(t, "grineer-100\nsteel\n", out)

	out, err = run(t, context.Background(), dir, "ab", "--a", "grineer-100", "--b", "steel", "--metric", "health", "--samples", "80", "--format", "json")
	require.NoError(t, err)
	var c scaling.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	require.Len(t, c.Lines, 2)
	assert.Equal(t, "Preset A", c.Lines[0].Label)
	assert.Equal(t, "B: Steel Path", c.Lines[1].Label)
	last := len(c.Levels) - 1
	assert.Greater(t, c.Lines[1].Values[last], c.Lines[0].Values[last], "steel path has more health")
}

func TestABUnknownPreset(t *testing.T) {
	_, err := run(t, context.Background(), t.TempDir(), "ab", "--a", "x", "--b", "y")
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestInvalidPresetFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "presets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "presets", "default.yaml"), []byte("enemy:\n  difficulty: nightmare\n"), 0o644))

	_, err := run(t, context.Background(), dir, "summary")
	require.ErrorIs(t, err, preset.ErrInvalidPreset)
	assert.ErrorContains(t, err, "enemy.difficulty")
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, context.Background(), t.TempDir(), "--log-level", "loud", "summary")
	assert.ErrorContains(t, err, "--log-level")
}

func TestWatchRendersUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	out, err := run(t, ctx, t.TempDir(), "watch", "--interval", "20ms")
	require.NoError(t, err)
	assert.Contains(t, out, "# default")
}
