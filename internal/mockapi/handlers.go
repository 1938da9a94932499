package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/omaressa123/RAG-BioL/internal/logger"
	"github.com/omaressa123/RAG-BioL/internal/organelle"
)

// MaxUploadBytes caps a single PDF upload.
const MaxUploadBytes = 50 * 1024 * 1024

// Handler serves the BioLens HTTP contract backed by an in-memory store.
type Handler struct {
	store *Store
}

// NewHandler creates a handler over the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Post("/ask", h.Ask)
	r.Get("/stats", h.Stats)
	r.Delete("/clear", h.Clear)
	r.Post("/api/analyze", h.Analyze)
}

// Upload accepts a multipart "pdf" field, chunks its text content, and
// indexes the chunks.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No selected file")
		return
	}
	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		writeError(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}
	if header.Size > MaxUploadBytes {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	// The mock indexes the raw bytes as text rather than running a real
	// PDF extractor.
	created, byType := h.store.Add(header.Filename, "Unknown", string(data))
	logger.Info("indexed upload",
		zap.String("source", header.Filename),
		zap.Int("chunks", created))

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Successfully processed " + header.Filename,
		"chunks_created": created,
		"chunk_types":    byType,
	})
}

// Ask searches the store and returns the parallel answer arrays.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question  string `json:"question"`
		ChunkType string `json:"chunk_type"`
		NResults  int    `json:"n_results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	matches := h.store.Search(req.Question, req.ChunkType, req.NResults)

	answers := []string{}
	sources := []map[string]any{}
	scores := []float64{}
	for _, m := range matches {
		answers = append(answers, m.Chunk.Text)
		sources = append(sources, map[string]any{
			"source":     m.Chunk.Source,
			"author":     m.Chunk.Author,
			"chunk_type": m.Chunk.ChunkType,
			"keywords":   m.Chunk.Keywords,
			"position":   m.Chunk.Position,
		})
		scores = append(scores, m.Confidence)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"question":          req.Question,
		"answers":           answers,
		"sources":           sources,
		"confidence_scores": scores,
	})
}

// Stats reports collection counts and distributions.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	total, byType, bySource := h.store.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"total_chunks":            total,
		"chunk_type_distribution": byType,
		"source_distribution":     bySource,
	})
}

// Clear wipes the collection.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Collection cleared",
	})
}

// Analyze classifies each uploaded image by filename keywords and returns
// the matching organelle fact card.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No files provided")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "No files provided")
		return
	}

	results := []map[string]any{}
	for _, header := range files {
		kind := organelle.Classify(header.Filename)
		facts := organelle.Info(kind)
		results = append(results, map[string]any{
			"filename": header.Filename,
			"organelle": map[string]any{
				"name":      facts.Name,
				"function":  facts.Function,
				"structure": facts.Structure,
				"fun_fact":  facts.FunFact,
				"diseases":  facts.Diseases,
			},
			"detected_text": []string{facts.Name, "identified from image label"},
			"confidence":    0.92,
		})
	}

	logger.Info("analyzed images", zap.Int("count", len(files)))
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
