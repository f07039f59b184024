// Package resume decodes the embedded base64 CV and saves it as a document.
//
// The encoded document is injected at build time:
//
//	go build -ldflags="-X github.com/muurk/termfolio/internal/resume.Encoded=$(base64 -w0 cv.docx)"
//
// or read from the file named in the config (resume.b64_path).
package resume

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Encoded is the base64 document injected by the build.
var Encoded = ""

// DefaultFileName is the name the document is saved under.
const DefaultFileName = "Christopher_Muturi_Murimi_CV.docx"

// MIMEType is the document type of the saved file.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ErrUnavailable is returned when no encoded document is present.
var ErrUnavailable = errors.New("CV not available")

// Source locates the encoded document.
type Source struct {
	Encoded string // takes precedence
	Path    string // file holding base64 text
}

// Load returns the encoded text from src.
func (src Source) Load() (string, error) {
	if strings.TrimSpace(src.Encoded) != "" {
		return src.Encoded, nil
	}
	if src.Path == "" {
		return "", ErrUnavailable
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", ErrUnavailable
	}
	return string(data), nil
}

// Decode turns base64 text into document bytes. Whitespace is ignored.
func Decode(b64 string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, b64)
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CV: %w", err)
	}
	return data, nil
}

// Save writes data to dir/name atomically and returns the final path.
func Save(dir, name string, data []byte) (string, error) {
	if name == "" {
		name = DefaultFileName
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CV: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save CV: %w", err)
	}
	return path, nil
}

// Downloader ties a source to a destination.
type Downloader struct {
	Source   Source
	Dir      string
	FileName string
}

// Download loads, decodes and saves the document in one step.
func (d Downloader) Download() (string, error) {
	b64, err := d.Source.Load()
	if err != nil {
		return "", err
	}
	data, err := Decode(b64)
	if err != nil {
		return "", err
	}
	return Save(d.Dir, d.FileName, data)
}
