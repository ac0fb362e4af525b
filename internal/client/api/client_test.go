package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-notes-ai/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteNotesHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/complete-notes", r.URL.Path)

		var req dto.CompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "photosynthesis - plants use light", req.ExtractedText)

		json.NewEncoder(w).Encode(dto.CompletionResponse{
			Success:        true,
			CompletedNotes: "# Photosynthesis\n\nPlants convert light energy...",
			Sources:        []string{"doc1"},
			OriginalText:   req.ExtractedText,
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	res, err := client.CompleteNotes(context.Background(), &dto.CompletionRequest{
		ExtractedText: "photosynthesis - plants use light",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "# Photosynthesis\n\nPlants convert light energy...", res.CompletedNotes)
	assert.Equal(t, []string{"doc1"}, res.Sources)
	assert.Equal(t, "photosynthesis - plants use light", res.OriginalText)
}

func TestCompleteNotesServerFailureIsNotATransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.CompletionResponse{
			Success: false,
			Error:   "quota exceeded",
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	res, err := client.CompleteNotes(context.Background(), &dto.CompletionRequest{
		ExtractedText: "anything",
	})
	require.NoError(t, err, "server-reported failure must come back as a response")

	assert.False(t, res.Success)
	assert.Equal(t, "quota exceeded", res.Error)
	assert.Empty(t, res.CompletedNotes)
}

func TestTransportErrorOnUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(Config{BaseURL: srv.URL})
	res, err := client.CompleteNotes(context.Background(), &dto.CompletionRequest{
		ExtractedText: "anything",
	})

	require.Error(t, err)
	assert.Nil(t, res)

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestTransportErrorOnUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream gateway error</html>"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.CompleteNotes(context.Background(), &dto.CompletionRequest{
		ExtractedText: "anything",
	})

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestUploadTextEchoesFileId(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload-text", r.URL.Path)

		var req dto.TextUploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(dto.TextUploadResponse{
			Success: true,
			FileId:  "f1",
			Message: "Text uploaded successfully",
			Url:     "http://example.com/uploads/f1",
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	res, err := client.UploadText(context.Background(), &dto.TextUploadRequest{
		Text:     "some notes",
		FileName: "f1",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "f1", res.FileId)
}

func TestSearchLiterature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/search-literature", r.URL.Path)

		var req dto.SearchLiteratureRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "mitochondria", req.Query)

		json.NewEncoder(w).Encode(dto.SearchLiteratureResponse{
			Success: true,
			Results: []dto.LiteratureResult{
				{Text: "The mitochondrion is...", Metadata: map[string]interface{}{"title": "Cell Biology"}},
			},
			Count: 1,
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	res, err := client.SearchLiterature(context.Background(), &dto.SearchLiteratureRequest{Query: "mitochondria"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Cell Biology", res.Results[0].Metadata["title"])
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(dto.HealthResponse{Status: "healthy", Timestamp: "2024-01-01T00:00:00Z"})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	res, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", res.Status)
}
