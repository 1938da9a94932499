// Package mockapi implements the BioLens wire contract as a self-contained
// in-memory backend for offline development. Retrieval quality is not the
// point; fidelity to the response shapes is.
package mockapi

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Chunk is one stored text fragment with its classification metadata.
type Chunk struct {
	ID        string
	Text      string
	Source    string
	Author    string
	ChunkType string
	Keywords  string
	Position  int
}

// Match is a ranked search result.
type Match struct {
	Chunk      Chunk
	Confidence float64
}

// Store is an in-memory chunk collection guarded by a mutex.
type Store struct {
	mu     sync.RWMutex
	chunks []Chunk
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add ingests text as classified chunks under the given source name and
// returns the per-type counts.
func (s *Store) Add(source, author, text string) (created int, byType map[string]int) {
	pieces := splitChunks(text)
	byType = map[string]int{"concept": 0, "question": 0, "application": 0}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, piece := range pieces {
		chunkType := classifyChunk(piece)
		byType[chunkType]++
		s.chunks = append(s.chunks, Chunk{
			ID:        "chunk_" + uuid.NewString(),
			Text:      piece,
			Source:    source,
			Author:    author,
			ChunkType: chunkType,
			Keywords:  extractKeywords(piece),
			Position:  i,
		})
	}
	return len(pieces), byType
}

// Search returns up to n chunks ranked by query-term overlap, optionally
// filtered by chunk type.
func (s *Store) Search(query, chunkType string, n int) []Match {
	if n <= 0 {
		n = 5
	}
	terms := tokenize(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Match
	for _, c := range s.chunks {
		if chunkType != "" && c.ChunkType != chunkType {
			continue
		}
		score := overlap(terms, tokenize(c.Text))
		if score > 0 {
			matches = append(matches, Match{Chunk: c, Confidence: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Stats reports total count and per-type / per-source distributions.
func (s *Store) Stats() (total int, byType, bySource map[string]int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType = map[string]int{}
	bySource = map[string]int{}
	for _, c := range s.chunks {
		byType[c.ChunkType]++
		bySource[c.Source]++
	}
	return len(s.chunks), byType, bySource
}

// Clear discards every chunk.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
}

// splitChunks breaks text into roughly paragraph-sized pieces.
func splitChunks(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		for len(para) > 600 {
			cut := strings.LastIndex(para[:600], ". ")
			if cut < 100 {
				cut = 600
			} else {
				cut++
			}
			out = append(out, strings.TrimSpace(para[:cut]))
			para = strings.TrimSpace(para[cut:])
		}
		if para != "" {
			out = append(out, para)
		}
	}
	return out
}

var questionMarkers = []string{"what is", "what are", "how does", "how do", "why does", "why do", "?"}

var applicationMarkers = []string{"for example", "used to", "used in", "applied", "in practice", "such as"}

// classifyChunk assigns a chunk type by marker phrases: question markers
// first, then application markers, concept as the default.
func classifyChunk(text string) string {
	lower := strings.ToLower(text)
	for _, m := range questionMarkers {
		if strings.Contains(lower, m) {
			return "question"
		}
	}
	for _, m := range applicationMarkers {
		if strings.Contains(lower, m) {
			return "application"
		}
	}
	return "concept"
}

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"to": true, "in": true, "is": true, "are": true, "that": true, "this": true,
	"it": true, "as": true, "for": true, "with": true, "on": true, "by": true,
	"be": true, "from": true, "at": true, "its": true, "was": true, "were": true,
}

func tokenize(text string) map[string]bool {
	terms := map[string]bool{}
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(w) > 1 && !stopwords[w] {
			terms[w] = true
		}
	}
	return terms
}

// overlap scores how much of the query vocabulary appears in the chunk.
func overlap(query, doc map[string]bool) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for t := range query {
		if doc[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}

// extractKeywords returns up to five of the longest distinct terms.
func extractKeywords(text string) string {
	var words []string
	for w := range tokenize(text) {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	if len(words) > 5 {
		words = words[:5]
	}
	sort.Strings(words)
	return strings.Join(words, ", ")
}
