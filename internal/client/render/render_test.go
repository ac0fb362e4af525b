package render

import (
	"bytes"
	"errors"
	"testing"

	"student-notes-ai/internal/dto"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	return New(&buf), &buf
}

func TestCompletionSuccessShowsNotesAndSourcesInOrder(t *testing.T) {
	r, buf := newTestRenderer()

	r.Completion(&dto.CompletionResponse{
		Success:        true,
		CompletedNotes: "# Photosynthesis\nPlants use light.",
		Sources:        []string{"Academic reference 1", "Academic reference 2"},
		OriginalText:   "photosynthesis - plants use light",
	})

	out := buf.String()
	assert.Contains(t, out, "# Photosynthesis")
	assert.Contains(t, out, "Academic reference 1")
	assert.Contains(t, out, "Academic reference 2")
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("Academic reference 1")),
		bytes.Index(buf.Bytes(), []byte("Academic reference 2")),
	)
}

func TestCompletionFailureShowsErrorVerbatimAndNoNotes(t *testing.T) {
	r, buf := newTestRenderer()

	r.Completion(&dto.CompletionResponse{
		Success:        false,
		Error:          "quota exceeded",
		CompletedNotes: "stale notes that must not appear",
	})

	out := buf.String()
	assert.Contains(t, out, "quota exceeded")
	assert.NotContains(t, out, "stale notes that must not appear")
}

func TestUploadSuccess(t *testing.T) {
	r, buf := newTestRenderer()

	r.Upload(&dto.TextUploadResponse{
		Success: true,
		FileId:  "f1",
		Message: "Text uploaded successfully",
		Url:     "http://localhost:8080/uploads/f1",
	})

	out := buf.String()
	assert.Contains(t, out, "f1")
	assert.Contains(t, out, "http://localhost:8080/uploads/f1")
}

func TestUploadFailureShowsMessage(t *testing.T) {
	r, buf := newTestRenderer()

	r.Upload(&dto.TextUploadResponse{
		Success: false,
		Message: "Failed to upload text",
	})

	assert.Contains(t, buf.String(), "Failed to upload text")
}

func TestTransportFailureIsLabelled(t *testing.T) {
	r, buf := newTestRenderer()

	r.TransportFailure(errors.New("dial tcp: connection refused"))

	out := buf.String()
	assert.Contains(t, out, "Connection failed")
	assert.Contains(t, out, "connection refused")
}
