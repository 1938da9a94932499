// Package backend is the typed HTTP client for the BioLens analysis and
// question-answering service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client-side upload limits, enforced before any request is sent.
const (
	MaxPDFBytes   = 50 * 1024 * 1024
	MaxImageBytes = 10 * 1024 * 1024
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Client talks to the BioLens backend. All operations are single attempts;
// failures are terminal for that call and the caller decides whether to
// re-trigger.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// UploadPDF validates and uploads a PDF for chunking and indexing.
// Validation failures return a *ValidationError without touching the
// network.
func (c *Client) UploadPDF(ctx context.Context, path string) (*UploadResult, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, &ValidationError{Reason: "only PDF files are allowed"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > MaxPDFBytes {
		return nil, &ValidationError{Reason: fmt.Sprintf("file exceeds %dMB limit", MaxPDFBytes/(1024*1024))}
	}

	body, contentType, err := multipartFile("pdf", path)
	if err != nil {
		return nil, err
	}

	var result UploadResult
	if err := c.do(ctx, http.MethodPost, "/upload", contentType, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ask performs a semantic question against the indexed chunks.
func (c *Client) Ask(ctx context.Context, req AskRequest) (*AskResult, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, &ValidationError{Reason: "question is required"}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	var result AskResult
	if err := c.do(ctx, http.MethodPost, "/ask", "application/json", bytes.NewReader(payload), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats fetches collection statistics.
func (c *Client) Stats(ctx context.Context) (*StatsResult, error) {
	var result StatsResult
	if err := c.do(ctx, http.MethodGet, "/stats", "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Clear deletes the entire chunk collection.
func (c *Client) Clear(ctx context.Context) error {
	var result struct{}
	return c.do(ctx, http.MethodDelete, "/clear", "", nil, &result)
}

// AnalyzeImages validates and uploads images for organelle classification.
func (c *Client) AnalyzeImages(ctx context.Context, paths []string) ([]Analysis, error) {
	if len(paths) == 0 {
		return nil, &ValidationError{Reason: "no images provided"}
	}
	for _, p := range paths {
		if !imageExtensions[strings.ToLower(filepath.Ext(p))] {
			return nil, &ValidationError{Reason: fmt.Sprintf("%s is not a supported image type", filepath.Base(p))}
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if info.Size() > MaxImageBytes {
			return nil, &ValidationError{Reason: fmt.Sprintf("%s exceeds %dMB limit", filepath.Base(p), MaxImageBytes/(1024*1024))}
		}
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for _, p := range paths {
		if err := appendFilePart(writer, "files", p); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	var result struct {
		Results []Analysis `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/analyze", writer.FormDataContentType(), buf, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// do issues one request and decodes the response, mapping non-2xx statuses
// and `{error}` payloads to *APIError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	// A backend-reported error can arrive with any status code
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func multipartFile(field, path string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	if err := appendFilePart(writer, field, path); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf, writer.FormDataContentType(), nil
}

func appendFilePart(writer *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copying %s: %w", path, err)
	}
	return nil
}
