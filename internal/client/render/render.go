package render

import (
	"fmt"
	"io"

	"student-notes-ai/internal/dto"

	"github.com/fatih/color"
)

// Renderer writes pipeline results to the terminal. Server-reported errors
// are shown verbatim; transport failures are labelled as such so the two are
// never confused.
type Renderer struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	heading *color.Color
	dim     *color.Color
}

func New(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		heading: color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.Faint),
	}
}

// Completion renders a completion response. On failure only the server's
// error text is shown; any completedNotes in a failed payload is not
// authoritative and is dropped.
func (r *Renderer) Completion(res *dto.CompletionResponse) {
	if !res.Success {
		r.failure.Fprintln(r.out, res.Error)
		return
	}

	r.heading.Fprintln(r.out, "Completed Notes")
	fmt.Fprintln(r.out, res.CompletedNotes)

	if len(res.Sources) > 0 {
		r.heading.Fprintln(r.out, "Sources")
		for _, src := range res.Sources {
			fmt.Fprintf(r.out, "  - %s\n", src)
		}
	}
}

func (r *Renderer) Upload(res *dto.TextUploadResponse) {
	if !res.Success {
		r.failure.Fprintln(r.out, res.Message)
		return
	}

	r.success.Fprintf(r.out, "Uploaded: %s\n", res.FileId)
	if res.Url != "" {
		r.dim.Fprintf(r.out, "  %s\n", res.Url)
	}
}

// TransportFailure renders a network-level failure, distinct from anything
// the server said.
func (r *Renderer) TransportFailure(err error) {
	r.failure.Fprintf(r.out, "Connection failed: %v\n", err)
}

func (r *Renderer) Info(format string, args ...interface{}) {
	r.dim.Fprintf(r.out, format+"\n", args...)
}
