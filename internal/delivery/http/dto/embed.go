package dto

type EmbedRequest struct {
	Text string `json:"text"`
}

type EmbedResponse struct {
	Text               string    `json:"text"`
	EmbeddingDimension int       `json:"embedding_dimension"`
	EmbeddingSample    []float64 `json:"embedding_sample"`
}

type HealthResponse struct {
	Status      string          `json:"status"`
	Service     string          `json:"service"`
	Version     string          `json:"version"`
	ModelLoaded bool            `json:"model_loaded"`
	Checks      map[string]bool `json:"checks"`
}
