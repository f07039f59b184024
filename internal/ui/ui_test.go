package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultRender(t *testing.T) {
	out := NewSuccessResult("CV saved").
		SetWidth(80).
		AddDetail("Path", "/tmp/cv.docx").
		AddDetail("Size", "12 KB").
		Render()

	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "CV saved")
	assert.Less(t, strings.Index(out, "Path"), strings.Index(out, "Size"), "details keep their order")
}

func TestFailureRender(t *testing.T) {
	out := NewFailureResult("Could not save CV", errors.New("disk full"), "Try --dir").SetWidth(80).Render()

	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Try --dir")
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Save CV", "termfolio resume save")
	h.Width = 70

	out := h.String()
	assert.Contains(t, out, "SAVE CV")
	assert.Contains(t, out, "termfolio resume save")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tt.input), &out, "Overwrite config", []string{"The file exists"})
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Overwrite config")
	}
}
