package backend

import "fmt"

// UploadResult is the response to a PDF upload.
type UploadResult struct {
	Message       string         `json:"message"`
	ChunksCreated int            `json:"chunks_created"`
	ChunkTypes    map[string]int `json:"chunk_types"`
}

// AskRequest is the body of an /ask call.
type AskRequest struct {
	Question  string `json:"question"`
	ChunkType string `json:"chunk_type,omitempty"`
	NResults  int    `json:"n_results,omitempty"`
}

// Source describes where one answer chunk came from.
type Source struct {
	Source    string `json:"source"`
	Author    string `json:"author"`
	ChunkType string `json:"chunk_type"`
	Keywords  string `json:"keywords"`
	Position  int    `json:"position"`
}

// AskResult holds parallel answer/source/score arrays. The arrays are
// indexed by result position but may be unevenly sized; consumers must
// tolerate a missing sources[i] or confidence_scores[i].
type AskResult struct {
	Question         string    `json:"question"`
	Answers          []string  `json:"answers"`
	Sources          []Source  `json:"sources"`
	ConfidenceScores []float64 `json:"confidence_scores"`
}

// StatsResult describes the backend's chunk collection.
type StatsResult struct {
	TotalChunks           int            `json:"total_chunks"`
	ChunkTypeDistribution map[string]int `json:"chunk_type_distribution"`
	SourceDistribution    map[string]int `json:"source_distribution"`
}

// OrganelleInfo is the fact card attached to one analysis result.
type OrganelleInfo struct {
	Name      string `json:"name"`
	Function  string `json:"function"`
	Structure string `json:"structure"`
	FunFact   string `json:"fun_fact"`
	Diseases  string `json:"diseases"`
}

// Analysis is one image's classification result.
type Analysis struct {
	Filename     string        `json:"filename"`
	Organelle    OrganelleInfo `json:"organelle"`
	DetectedText []string      `json:"detected_text"`
	Confidence   float64       `json:"confidence"`
}

// ValidationError reports a client-side rejection; no request was sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// APIError reports a backend-provided error message or a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}
