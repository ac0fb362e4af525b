package flow

import (
	"fmt"
	"sync"
)

// State is one step of the capture-to-completion pipeline.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateRecognizing
	StateStaged
	StateUploading
	StateCompleting
	StateRendered
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateRecognizing:
		return "recognizing"
	case StateStaged:
		return "staged"
	case StateUploading:
		return "uploading"
	case StateCompleting:
		return "completing"
	case StateRendered:
		return "rendered"
	case StateErrored:
		return "errored"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Flow enforces the pipeline order
// Idle -> Capturing -> Recognizing -> Staged -> (Uploading|Completing) ->
// Rendered, with Errored reachable from every async step. Errored and
// Rendered are terminal until Restart.
//
// Async steps hand out a token; a callback resolving with a stale token
// (the flow moved on, or a newer attempt started) is discarded without
// mutating anything.
type Flow struct {
	mu      sync.Mutex
	state   State
	attempt uint64
	err     error
}

func New() *Flow {
	return &Flow{state: StateIdle}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the failure that moved the flow to Errored, nil otherwise.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// StartCapture begins a capture. Allowed from Idle, or from Staged when
// retaking; the retake supersedes the previous capture.
func (f *Flow) StartCapture() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIdle && f.state != StateStaged {
		return f.invalidTransition(StateCapturing)
	}
	f.state = StateCapturing
	f.attempt++
	return nil
}

func (f *Flow) FinishCapture() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateCapturing {
		return f.invalidTransition(StateRecognizing)
	}
	f.state = StateRecognizing
	return nil
}

func (f *Flow) FinishRecognition() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateRecognizing {
		return f.invalidTransition(StateStaged)
	}
	f.state = StateStaged
	return nil
}

// StartUpload moves Staged -> Uploading and returns the attempt token the
// eventual Resolve call must present.
func (f *Flow) StartUpload() (uint64, error) {
	return f.startAsync(StateUploading)
}

// StartCompletion moves Staged -> Completing and returns the attempt token.
func (f *Flow) StartCompletion() (uint64, error) {
	return f.startAsync(StateCompleting)
}

func (f *Flow) startAsync(next State) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateStaged {
		return 0, f.invalidTransition(next)
	}
	f.state = next
	f.attempt++
	return f.attempt, nil
}

// Resolve finishes an async step. A nil err lands on Rendered, a non-nil err
// on Errored. Returns false without side effects when the token is stale.
func (f *Flow) Resolve(token uint64, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token != f.attempt {
		return false
	}
	if f.state != StateUploading && f.state != StateCompleting {
		return false
	}
	if err != nil {
		f.state = StateErrored
		f.err = err
		return true
	}
	f.state = StateRendered
	return true
}

// Fail forces the flow into Errored from any non-terminal state. Used for
// failures inside synchronous steps (capture or recognition).
func (f *Flow) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateErrored {
		return
	}
	f.state = StateErrored
	f.err = err
	f.attempt++
}

// Restart resets a terminal flow back to Idle.
func (f *Flow) Restart() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateRendered && f.state != StateErrored {
		return f.invalidTransition(StateIdle)
	}
	f.state = StateIdle
	f.err = nil
	f.attempt++
	return nil
}

func (f *Flow) invalidTransition(to State) error {
	return fmt.Errorf("invalid transition %s -> %s", f.state, to)
}
