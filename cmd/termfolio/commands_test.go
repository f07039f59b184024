package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/termfolio/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	configPath, themeFlag, resumeDir, resumeName, resumeB64, forceInit = "", "", "", "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigPathFlag(t *testing.T) {
	out, err := execute(t, "", "config", "path", "--config", "/tmp/x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.yaml\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "", "config", "init", "--config", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Profile.Name, cfg.Profile.Name)

	out, err := execute(t, "", "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "mobile_max_width: 768")
}

func TestConfigInitDeclinedKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\ntheme: light\n"), 0600))

	out, err := execute(t, "n\n", "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "Config left unchanged")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\ntheme: light\n", string(data))
}

func TestThemeFlagIsPersistent(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("theme"))

	_, err := execute(t, "", "config", "path", "--config", "/tmp/x.yaml", "--theme", "light")
	require.NoError(t, err)
	assert.Equal(t, "light", themeFlag)
}

func TestResumeSave(t *testing.T) {
	dir := t.TempDir()
	b64 := filepath.Join(dir, "cv.b64")
	require.NoError(t, os.WriteFile(b64, []byte(base64.StdEncoding.EncodeToString([]byte("doc"))), 0600))

	out, err := execute(t, "", "resume", "save",
		"--config", filepath.Join(dir, "missing.yaml"),
		"--b64", b64, "--dir", dir, "--name", "cv.docx")
	require.NoError(t, err)
	assert.Contains(t, out, "CV saved")

	data, err := os.ReadFile(filepath.Join(dir, "cv.docx"))
	require.NoError(t, err)
	assert.Equal(t, "doc", string(data))
}

func TestResumeSaveUnavailable(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "resume", "save",
		"--config", filepath.Join(dir, "missing.yaml"),
		"--b64", filepath.Join(dir, "none.b64"), "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "FAILED")
}
