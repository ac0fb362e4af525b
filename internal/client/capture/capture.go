package capture

import (
	"fmt"
	"os"
	"time"
)

// CapturedImage is one photographed page of notes. A retake produces a new
// value that supersedes the previous one.
type CapturedImage struct {
	Path      string
	Timestamp time.Time
}

// FromFile captures an existing image file. The CLI stand-in for the camera.
func FromFile(path string) (CapturedImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return CapturedImage{}, fmt.Errorf("capture image: %w", err)
	}
	if info.IsDir() {
		return CapturedImage{}, fmt.Errorf("capture image: %s is a directory", path)
	}
	return CapturedImage{
		Path:      path,
		Timestamp: time.Now(),
	}, nil
}
