package mockapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/omaressa123/RAG-BioL/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func newTestServer() (*httptest.Server, *Store) {
	store := NewStore()
	r := chi.NewRouter()
	NewHandler(store).RegisterRoutes(r)
	return httptest.NewServer(r), store
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestUploadIndexesChunks(t *testing.T) {
	srv, store := newTestServer()
	defer srv.Close()

	text := "The mitochondria produces ATP through respiration.\n\n" +
		"What is the role of the nucleus? It stores DNA.\n\n" +
		"For example, lysosomes are used to digest waste."
	body, contentType := multipartBody(t, "pdf", "biology.pdf", text)

	resp, err := http.Post(srv.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Message       string         `json:"message"`
		ChunksCreated int            `json:"chunks_created"`
		ChunkTypes    map[string]int `json:"chunk_types"`
	}
	decode(t, resp, &result)

	if result.ChunksCreated != 3 {
		t.Errorf("chunks_created = %d, want 3", result.ChunksCreated)
	}
	if result.ChunkTypes["concept"] != 1 || result.ChunkTypes["question"] != 1 || result.ChunkTypes["application"] != 1 {
		t.Errorf("chunk_types = %v, want one of each", result.ChunkTypes)
	}
	if !strings.Contains(result.Message, "biology.pdf") {
		t.Errorf("message %q does not name the source", result.Message)
	}

	total, _, bySource := store.Stats()
	if total != 3 || bySource["biology.pdf"] != 3 {
		t.Errorf("store has total=%d bySource=%v", total, bySource)
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	body, contentType := multipartBody(t, "pdf", "notes.txt", "plain text")
	resp, err := http.Post(srv.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var payload struct {
		Error string `json:"error"`
	}
	decode(t, resp, &payload)
	if payload.Error == "" {
		t.Error("expected an error payload")
	}
}

func TestUploadRejectsMissingField(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	body, contentType := multipartBody(t, "document", "biology.pdf", "text")
	resp, err := http.Post(srv.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAskReturnsRankedMatches(t *testing.T) {
	srv, store := newTestServer()
	defer srv.Close()

	store.Add("cells.pdf", "Unknown",
		"Mitochondria generate ATP energy for the cell.\n\n"+
			"The golgi apparatus packages proteins.")

	payload := `{"question": "how does the mitochondria generate energy"}`
	resp, err := http.Post(srv.URL+"/ask", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Question         string           `json:"question"`
		Answers          []string         `json:"answers"`
		Sources          []map[string]any `json:"sources"`
		ConfidenceScores []float64        `json:"confidence_scores"`
	}
	decode(t, resp, &result)

	if len(result.Answers) == 0 {
		t.Fatal("expected at least one answer")
	}
	if !strings.Contains(result.Answers[0], "Mitochondria") {
		t.Errorf("top answer = %q, want the mitochondria chunk", result.Answers[0])
	}
	if len(result.Sources) != len(result.Answers) || len(result.ConfidenceScores) != len(result.Answers) {
		t.Errorf("array lengths differ: %d answers, %d sources, %d scores",
			len(result.Answers), len(result.Sources), len(result.ConfidenceScores))
	}
	if result.ConfidenceScores[0] <= 0 || result.ConfidenceScores[0] > 1 {
		t.Errorf("confidence = %f, want in (0, 1]", result.ConfidenceScores[0])
	}
}

func TestAskFiltersChunkType(t *testing.T) {
	srv, store := newTestServer()
	defer srv.Close()

	store.Add("cells.pdf", "Unknown",
		"Ribosomes build proteins from amino acids.\n\n"+
			"What are ribosomes made of? Proteins and RNA.")

	payload := `{"question": "ribosomes proteins", "chunk_type": "question"}`
	resp, err := http.Post(srv.URL+"/ask", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	var result struct {
		Sources []map[string]any `json:"sources"`
	}
	decode(t, resp, &result)

	for _, src := range result.Sources {
		if src["chunk_type"] != "question" {
			t.Errorf("chunk_type = %v, want question only", src["chunk_type"])
		}
	}
	if len(result.Sources) == 0 {
		t.Error("expected the question chunk to match")
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/ask", "application/json", strings.NewReader(`{"question": "  "}`))
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatsAndClear(t *testing.T) {
	srv, store := newTestServer()
	defer srv.Close()

	store.Add("a.pdf", "Unknown", "The cell membrane controls transport.")
	store.Add("b.pdf", "Unknown", "Chloroplasts carry out photosynthesis.")

	resp, err := http.Get(srv.URL + "/stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var stats struct {
		TotalChunks        int            `json:"total_chunks"`
		SourceDistribution map[string]int `json:"source_distribution"`
	}
	decode(t, resp, &stats)
	if stats.TotalChunks != 2 {
		t.Errorf("total_chunks = %d, want 2", stats.TotalChunks)
	}
	if stats.SourceDistribution["a.pdf"] != 1 || stats.SourceDistribution["b.pdf"] != 1 {
		t.Errorf("source_distribution = %v", stats.SourceDistribution)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/clear", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	total, _, _ := store.Stats()
	if total != 0 {
		t.Errorf("store not empty after clear: %d chunks", total)
	}
}

func TestAnalyzeClassifiesByFilename(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, name := range []string{"mitochondria_micrograph.png", "unlabeled.jpg"} {
		part, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("creating part: %v", err)
		}
		part.Write([]byte("fake image bytes"))
	}
	w.Close()

	resp, err := http.Post(srv.URL+"/api/analyze", w.FormDataContentType(), buf)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Results []struct {
			Filename  string `json:"filename"`
			Organelle struct {
				Name string `json:"name"`
			} `json:"organelle"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	decode(t, resp, &result)

	if len(result.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(result.Results))
	}
	if result.Results[0].Organelle.Name != "Mitochondria" {
		t.Errorf("first organelle = %q, want Mitochondria", result.Results[0].Organelle.Name)
	}
	if result.Results[1].Organelle.Name != "Nucleus" {
		t.Errorf("fallback organelle = %q, want Nucleus", result.Results[1].Organelle.Name)
	}
	if result.Results[0].Confidence <= 0 {
		t.Error("expected positive confidence")
	}
}

func TestAnalyzeRejectsEmptyForm(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	w.WriteField("ignored", "x")
	w.Close()

	resp, err := http.Post(srv.URL+"/api/analyze", w.FormDataContentType(), buf)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
