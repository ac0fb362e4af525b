package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceToStaged(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.StartCapture())
	require.NoError(t, f.FinishCapture())
	require.NoError(t, f.FinishRecognition())
}

func TestHappyPathCompletion(t *testing.T) {
	f := New()
	assert.Equal(t, StateIdle, f.State())

	advanceToStaged(t, f)
	assert.Equal(t, StateStaged, f.State())

	token, err := f.StartCompletion()
	require.NoError(t, err)
	assert.Equal(t, StateCompleting, f.State())

	assert.True(t, f.Resolve(token, nil))
	assert.Equal(t, StateRendered, f.State())
	assert.NoError(t, f.Err())
}

func TestUploadFailureLandsOnErrored(t *testing.T) {
	f := New()
	advanceToStaged(t, f)

	token, err := f.StartUpload()
	require.NoError(t, err)
	assert.Equal(t, StateUploading, f.State())

	boom := errors.New("connection refused")
	assert.True(t, f.Resolve(token, boom))
	assert.Equal(t, StateErrored, f.State())
	assert.Equal(t, boom, f.Err())
}

func TestInvalidTransitionsRejected(t *testing.T) {
	f := New()

	assert.Error(t, f.FinishCapture())
	assert.Error(t, f.FinishRecognition())
	_, err := f.StartUpload()
	assert.Error(t, err)
	_, err = f.StartCompletion()
	assert.Error(t, err)
	assert.Error(t, f.Restart())

	assert.Equal(t, StateIdle, f.State())
}

func TestStaleCallbackDiscarded(t *testing.T) {
	f := New()
	advanceToStaged(t, f)

	stale, err := f.StartUpload()
	require.NoError(t, err)

	// The user abandons the upload and errors the flow, then restarts and
	// stages a new attempt.
	f.Fail(errors.New("cancelled"))
	require.NoError(t, f.Restart())
	advanceToStaged(t, f)
	fresh, err := f.StartCompletion()
	require.NoError(t, err)

	// The abandoned upload callback lands late. Nothing moves.
	assert.False(t, f.Resolve(stale, nil))
	assert.Equal(t, StateCompleting, f.State())

	assert.True(t, f.Resolve(fresh, nil))
	assert.Equal(t, StateRendered, f.State())
}

func TestResolveAfterTerminalIsDiscarded(t *testing.T) {
	f := New()
	advanceToStaged(t, f)

	token, err := f.StartCompletion()
	require.NoError(t, err)
	require.True(t, f.Resolve(token, nil))

	// Duplicate resolution of the same token mutates nothing.
	assert.False(t, f.Resolve(token, errors.New("late failure")))
	assert.Equal(t, StateRendered, f.State())
	assert.NoError(t, f.Err())
}

func TestRetakeFromStaged(t *testing.T) {
	f := New()
	advanceToStaged(t, f)

	// Retake supersedes the previous capture.
	require.NoError(t, f.StartCapture())
	assert.Equal(t, StateCapturing, f.State())
}

func TestRestartClearsError(t *testing.T) {
	f := New()
	f.StartCapture()
	f.Fail(errors.New("camera unavailable"))
	assert.Equal(t, StateErrored, f.State())

	require.NoError(t, f.Restart())
	assert.Equal(t, StateIdle, f.State())
	assert.NoError(t, f.Err())
}
