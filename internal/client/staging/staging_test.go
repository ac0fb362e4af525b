package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmptyRecognitionUsesPlaceholder(t *testing.T) {
	s := New("")
	assert.Equal(t, Placeholder, s.Text())
	assert.NotEmpty(t, s.Text())
}

func TestNewNonEmptyRecognitionPassesThrough(t *testing.T) {
	s := New("photosynthesis - plants use light")
	assert.Equal(t, "photosynthesis - plants use light", s.Text())
}

func TestToggleEditCommitsDraft(t *testing.T) {
	s := New("original")

	s.ToggleEdit()
	assert.True(t, s.Editing())
	assert.Equal(t, "original", s.Text(), "draft seeded with current text")

	s.SetDraft("edited by hand")
	assert.Equal(t, "edited by hand", s.Text())

	s.ToggleEdit()
	assert.False(t, s.Editing())
	assert.Equal(t, "edited by hand", s.Text(), "leaving edit mode commits the draft")
}

func TestEditOverwritesRecognitionResult(t *testing.T) {
	s := New("")
	s.ToggleEdit()
	s.SetDraft("manually entered notes")
	s.ToggleEdit()

	assert.Equal(t, "manually entered notes", s.Text())

	// Toggling again without changes keeps the committed text.
	s.ToggleEdit()
	s.ToggleEdit()
	assert.Equal(t, "manually entered notes", s.Text())
}

func TestSetDraftOutsideEditModeIsNoop(t *testing.T) {
	s := New("keep me")
	s.SetDraft("should be ignored")
	assert.Equal(t, "keep me", s.Text())
}
