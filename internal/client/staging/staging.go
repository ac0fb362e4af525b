package staging

// Placeholder is shown when recognition finds no text. The staged text is
// never empty; the user edits the placeholder away manually.
const Placeholder = "No text recognized. Switch to edit mode to enter your notes manually."

// Stage holds the extracted text between recognition and upload. It is
// either read-only (displaying the authoritative text) or in edit mode
// (accumulating a draft). Leaving edit mode commits the draft.
type Stage struct {
	text    string
	draft   string
	editing bool
}

// New stages raw recognition output. Empty input is replaced with the
// placeholder; anything else passes through unchanged.
func New(recognized string) *Stage {
	if recognized == "" {
		recognized = Placeholder
	}
	return &Stage{text: recognized}
}

// Text returns the authoritative staged text. While editing it returns the
// current draft, so the display always tracks what the user sees.
func (s *Stage) Text() string {
	if s.editing {
		return s.draft
	}
	return s.text
}

func (s *Stage) Editing() bool {
	return s.editing
}

// SetDraft replaces the in-progress edit. No-op outside edit mode.
func (s *Stage) SetDraft(text string) {
	if s.editing {
		s.draft = text
	}
}

// ToggleEdit flips between read-only and edit mode. Entering edit seeds the
// draft with the current text; leaving edit commits the draft as the new
// authoritative text, overwriting the recognition result.
func (s *Stage) ToggleEdit() {
	if s.editing {
		s.text = s.draft
		s.editing = false
		return
	}
	s.draft = s.text
	s.editing = true
}
