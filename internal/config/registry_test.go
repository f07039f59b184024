package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	require.NoError(t, err)

	assert.NotEmpty(t, configDir)
	assert.Contains(t, configDir, "termfolio")

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" {
			assert.Contains(t, configDir, ".config")
		}
	}
}

func TestGetConfigDirHonoursXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "termfolio"), got)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(configPath))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := Default()
	want.Theme = "light"
	want.Skills = []Skill{{Name: "Go", Percent: 99}}

	require.NoError(t, want.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# termfolio configuration"))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must not remain")
}

func TestParsePartialFileFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\ntheme: light\nlayout:\n  mobile_max_width: 640\n"))
	require.NoError(t, err)

	d := Default()
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 640, cfg.Layout.MobileMaxWidth)
	assert.Equal(t, d.Layout.CellWidth, cfg.Layout.CellWidth)
	assert.Equal(t, d.Profile, cfg.Profile)
	assert.Equal(t, d.Typewriter, cfg.Typewriter)
	assert.NoError(t, cfg.Validate())
}

func TestParseRejectsVersion(t *testing.T) {
	_, err := Parse([]byte("version: 2\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("version: [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Theme = "blue"
	cfg.Skills = append(cfg.Skills, Skill{Name: "Bad", Percent: 120})
	cfg.Layout.CellWidth = 0
	cfg.Profile.Roles = nil

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
	assert.Contains(t, err.Error(), "skills[5].percent")
}

func TestDurations(t *testing.T) {
	cfg := Default()
	assert.EqualValues(t, 100_000_000, cfg.Typewriter.TypeDelay())
	assert.EqualValues(t, 55_000_000, cfg.Typewriter.DeleteDelay())
	assert.EqualValues(t, 1_600_000_000, cfg.Typewriter.Hold())
	assert.EqualValues(t, 2_500_000_000, cfg.Contact.ResetDelay())
}
