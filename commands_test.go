package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	used := filepath.Join(dir, "used.txt")
	extra := filepath.Join(dir, "extra.txt")
	require.NoError(t, os.WriteFile(used, []byte("crane\nblast\ncivic\ncloud\nchess\ncomfy\nzebra\n"), 0644))
	require.NoError(t, os.WriteFile(extra, []byte("cubic\n"), 0644))
	return &config.Config{
		LogLevel:       "warn",
		UsedWordsFile:  used,
		ExtraWordsFile: extra,
		Color:          config.ColorAuto,
		DailySalt:      "test_salt",
	}
}

func run(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errw)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errw.String(), err
}

func TestPlayCommand_Lost(t *testing.T) {
	stdin := "crane\nblast\ncloud\npinky\nmoist\nfjord\n"
	out, _, err := run(t, testConfig(t), stdin, "play", "--answer", "zebra")
	require.NoError(t, err)
	assert.Contains(t, out, "The answer was zebra.")
	assert.NotContains(t, out, "\x1B[")
}

func TestPlayCommand_WonWithColor(t *testing.T) {
	out, _, err := run(t, testConfig(t), "crane\nzebra\n", "play", "--answer", "zebra", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "You got it in 2!")
	assert.Contains(t, out, "\x1B[43m")
}

func TestPlayCommand_StrictAndDaily(t *testing.T) {
	cfg := testConfig(t)
	// six of the seven answers: the daily word is either guessed or it is zebra
	stdin := "qqqqq\ncrane\nblast\ncivic\ncloud\nchess\ncomfy\n"
	out, errw, err := run(t, cfg, stdin, "play", "--daily", "--strict")
	require.NoError(t, err)
	assert.Contains(t, errw, "not in word list")
	assert.True(t, strings.Contains(out, "You got it in") || strings.Contains(out, "The answer was zebra."))
}

func TestPlayCommand_StrictAcceptsAnswerOutsideLists(t *testing.T) {
	out, errw, err := run(t, testConfig(t), "qzqzq\n", "play", "--strict", "--answer", "qzqzq")
	require.NoError(t, err)
	assert.Contains(t, out, "You got it in 1!")
	assert.Empty(t, errw)
}

func TestPlayCommand_BadAnswerFlag(t *testing.T) {
	_, _, err := run(t, testConfig(t), "", "play", "--answer", "zebras")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--answer")
}

func TestSolveCommand_EndOfInputIsAnError(t *testing.T) {
	out, _, err := run(t, testConfig(t), "C!r!a!n!e\n", "solve", "--more-words")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out, "(8 candidates)")
	assert.Contains(t, out, "(4 candidates)")
	last := out[strings.LastIndex(out, "Suggestions"):]
	for _, w := range []string{"civic", "cloud", "comfy", "cubic"} {
		assert.Contains(t, last, w)
	}
	assert.NotContains(t, last, "crane")
}

func TestSolveCommand_InvalidColor(t *testing.T) {
	_, _, err := run(t, testConfig(t), "", "solve", "--color", "plaid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
