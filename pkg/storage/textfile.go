package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	headerPrefix  = "Extracted Notes - "
	trailerMarker = "--- End of Extracted Notes ---"

	fileNamePattern = "notes_2006-01-02_15-04-05.txt"
)

// FileName builds the timestamped default name for a staged notes file,
// e.g. "notes_2024-01-01_00-00-00.txt".
func FileName(t time.Time) string {
	return t.Format(fileNamePattern)
}

// Format renders the staged file layout: a header line carrying the capture
// timestamp, the raw text body, and a trailing marker line. No structured
// format, no versioning.
func Format(text string, timestamp string) string {
	var b strings.Builder
	b.WriteString(headerPrefix)
	b.WriteString(timestamp)
	b.WriteString("\n\n")
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(trailerMarker)
	b.WriteString("\n")
	return b.String()
}

// TextFileStore persists extracted note texts as plain files under a base
// directory (the local stand-in for the original cloud bucket).
type TextFileStore struct {
	baseDir string
}

func NewTextFileStore(baseDir string) *TextFileStore {
	if baseDir == "" {
		baseDir = "uploads/extracted_texts"
	}
	return &TextFileStore{baseDir: baseDir}
}

func (s *TextFileStore) BaseDir() string {
	return s.baseDir
}

// Save writes the staged file and returns the path it was stored at.
// fileName must be a bare name; path separators are rejected to keep writes
// inside the base directory.
func (s *TextFileStore) Save(fileName, text, timestamp string) (string, error) {
	if fileName == "" {
		fileName = FileName(time.Now())
	}
	if strings.ContainsAny(fileName, `/\`) || fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("invalid file name: %s", fileName)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	path := filepath.Join(s.baseDir, fileName)
	if err := os.WriteFile(path, []byte(Format(text, timestamp)), 0o644); err != nil {
		return "", fmt.Errorf("write text file: %w", err)
	}

	return path, nil
}
