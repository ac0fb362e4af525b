package embedding

// EmbeddingProvider defines the interface for generating text embeddings.
// taskType distinguishes document vs query embeddings for providers that
// support it ("RETRIEVAL_DOCUMENT", "RETRIEVAL_QUERY").
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}

type EmbeddingRequestContentPart struct {
	Text string `json:"text"`
}

type EmbeddingRequestContent struct {
	Parts []EmbeddingRequestContentPart `json:"parts"`
}

type EmbeddingRequest struct {
	Model    string                  `json:"model"`
	Content  EmbeddingRequestContent `json:"content"`
	TaskType string                  `json:"task_type,omitempty"`
}

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}
