package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "", ""
	fromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
	})

	assert.Equal(t, "0123456-dirty", Commit)
	assert.Equal(t, "dev-20260301", Version)
}

func TestFull(t *testing.T) {
	assert.Contains(t, Full(), "(commit: ")
}
