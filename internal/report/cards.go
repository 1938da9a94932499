// Package report turns typed backend results into display models, and
// renders those models to HTML or plain text. Building the model never
// fails: missing or misaligned response fields degrade to placeholders.
package report

import (
	"fmt"
	"sort"

	"github.com/omaressa123/RAG-BioL/internal/backend"
)

// UnknownLabel is the placeholder shown when a parallel-array entry is
// missing for an answer.
const UnknownLabel = "unknown"

// AnswerCard is the display model for one QA answer.
type AnswerCard struct {
	Index       int
	Answer      string
	SourceLabel string
	ChunkType   string
	Keywords    string
	Confidence  string
}

// AnswerCards builds one card per answer. Sources and confidence scores are
// parallel arrays that may be shorter than the answers; absent entries
// render as placeholders rather than failing.
func AnswerCards(result *backend.AskResult) []AnswerCard {
	cards := make([]AnswerCard, 0, len(result.Answers))
	for i, answer := range result.Answers {
		card := AnswerCard{
			Index:       i + 1,
			Answer:      answer,
			SourceLabel: UnknownLabel,
			ChunkType:   UnknownLabel,
			Keywords:    "",
			Confidence:  "n/a",
		}
		if i < len(result.Sources) {
			src := result.Sources[i]
			if src.Source != "" {
				card.SourceLabel = src.Source
				if src.Author != "" {
					card.SourceLabel = fmt.Sprintf("%s (%s)", src.Source, src.Author)
				}
			}
			if src.ChunkType != "" {
				card.ChunkType = src.ChunkType
			}
			card.Keywords = src.Keywords
		}
		if i < len(result.ConfidenceScores) {
			card.Confidence = fmt.Sprintf("%.0f%%", result.ConfidenceScores[i]*100)
		}
		cards = append(cards, card)
	}
	return cards
}

// SourceRow is one entry in the stats source table.
type SourceRow struct {
	Name  string
	Count int
}

// StatsView is the display model for collection statistics.
type StatsView struct {
	TotalChunks  int
	Concepts     int
	Questions    int
	Applications int
	Sources      []SourceRow
}

// BuildStatsView fills every count, defaulting to zero when the backend
// omits a distribution entry or the whole map.
func BuildStatsView(result *backend.StatsResult) StatsView {
	view := StatsView{
		TotalChunks:  result.TotalChunks,
		Concepts:     result.ChunkTypeDistribution["concept"],
		Questions:    result.ChunkTypeDistribution["question"],
		Applications: result.ChunkTypeDistribution["application"],
	}

	for name, count := range result.SourceDistribution {
		view.Sources = append(view.Sources, SourceRow{Name: name, Count: count})
	}
	sort.Slice(view.Sources, func(i, j int) bool {
		if view.Sources[i].Count != view.Sources[j].Count {
			return view.Sources[i].Count > view.Sources[j].Count
		}
		return view.Sources[i].Name < view.Sources[j].Name
	})
	return view
}

// AnalysisCard is the display model for one analyzed image.
type AnalysisCard struct {
	Filename     string
	Name         string
	Function     string
	Structure    string
	FunFact      string
	Diseases     string
	DetectedText []string
	Confidence   string
}

// AnalysisCards builds one card per analysis result.
func AnalysisCards(results []backend.Analysis) []AnalysisCard {
	cards := make([]AnalysisCard, 0, len(results))
	for _, r := range results {
		name := r.Organelle.Name
		if name == "" {
			name = UnknownLabel
		}
		cards = append(cards, AnalysisCard{
			Filename:     r.Filename,
			Name:         name,
			Function:     r.Organelle.Function,
			Structure:    r.Organelle.Structure,
			FunFact:      r.Organelle.FunFact,
			Diseases:     r.Organelle.Diseases,
			DetectedText: r.DetectedText,
			Confidence:   fmt.Sprintf("%.1f%%", r.Confidence*100),
		})
	}
	return cards
}
