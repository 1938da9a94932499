package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/omaressa123/RAG-BioL/internal/backend"
)

func TestAnswerCardsMisalignedArrays(t *testing.T) {
	// Three answers, two sources, two scores: the third card must render
	// with placeholders, never fail
	result := &backend.AskResult{
		Answers: []string{"first", "second", "third"},
		Sources: []backend.Source{
			{Source: "Biology 101", Author: "Campbell", ChunkType: "concept", Keywords: "cells"},
			{Source: "Cell Atlas", ChunkType: "question"},
		},
		ConfidenceScores: []float64{0.9, 0.5},
	}

	cards := AnswerCards(result)
	if len(cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(cards))
	}

	if cards[0].SourceLabel != "Biology 101 (Campbell)" {
		t.Errorf("card 0 source = %q", cards[0].SourceLabel)
	}
	if cards[0].Confidence != "90%" {
		t.Errorf("card 0 confidence = %q, want 90%%", cards[0].Confidence)
	}
	if cards[1].SourceLabel != "Cell Atlas" {
		t.Errorf("card 1 source = %q", cards[1].SourceLabel)
	}

	third := cards[2]
	if third.ChunkType != UnknownLabel {
		t.Errorf("card 2 chunk type = %q, want %q", third.ChunkType, UnknownLabel)
	}
	if third.SourceLabel != UnknownLabel {
		t.Errorf("card 2 source = %q, want %q", third.SourceLabel, UnknownLabel)
	}
	if third.Confidence != "n/a" {
		t.Errorf("card 2 confidence = %q, want placeholder", third.Confidence)
	}
}

func TestAnswerCardsEmptyResult(t *testing.T) {
	cards := AnswerCards(&backend.AskResult{})
	if len(cards) != 0 {
		t.Errorf("cards = %d, want 0", len(cards))
	}
}

func TestBuildStatsViewEmptyDistribution(t *testing.T) {
	view := BuildStatsView(&backend.StatsResult{TotalChunks: 0})

	if view.Concepts != 0 || view.Questions != 0 || view.Applications != 0 {
		t.Errorf("expected all-zero counts, got %+v", view)
	}
	if len(view.Sources) != 0 {
		t.Errorf("expected no source rows, got %d", len(view.Sources))
	}
}

func TestBuildStatsViewSortsSources(t *testing.T) {
	view := BuildStatsView(&backend.StatsResult{
		TotalChunks: 10,
		ChunkTypeDistribution: map[string]int{
			"concept": 6, "question": 3, "application": 1,
		},
		SourceDistribution: map[string]int{
			"b.pdf": 3, "a.pdf": 3, "big.pdf": 4,
		},
	})

	if view.Concepts != 6 || view.Questions != 3 || view.Applications != 1 {
		t.Errorf("counts = %+v", view)
	}
	want := []string{"big.pdf", "a.pdf", "b.pdf"}
	for i, row := range view.Sources {
		if row.Name != want[i] {
			t.Errorf("source[%d] = %q, want %q", i, row.Name, want[i])
		}
	}
}

func TestAnalysisCards(t *testing.T) {
	cards := AnalysisCards([]backend.Analysis{
		{
			Filename: "mito.png",
			Organelle: backend.OrganelleInfo{
				Name:     "Mitochondria",
				Function: "Produces ATP",
			},
			DetectedText: []string{"Mitochondria"},
			Confidence:   0.923,
		},
		{Filename: "blank.png"},
	})

	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	if cards[0].Confidence != "92.3%" {
		t.Errorf("confidence = %q, want 92.3%%", cards[0].Confidence)
	}
	if cards[1].Name != UnknownLabel {
		t.Errorf("empty organelle name = %q, want %q", cards[1].Name, UnknownLabel)
	}
}

func TestWriteAnalysisHTML(t *testing.T) {
	cards := AnalysisCards([]backend.Analysis{
		{
			Filename:   "mito.png",
			Organelle:  backend.OrganelleInfo{Name: "Mitochondria", FunFact: "Own DNA <really>"},
			Confidence: 0.9,
		},
	})

	var buf bytes.Buffer
	if err := WriteAnalysisHTML(&buf, cards); err != nil {
		t.Fatalf("WriteAnalysisHTML: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Mitochondria") {
		t.Error("report missing organelle name")
	}
	// html/template must escape markup in backend-provided text
	if strings.Contains(out, "<really>") {
		t.Error("unescaped backend text in HTML output")
	}
	if !strings.Contains(out, "&lt;really&gt;") {
		t.Error("expected escaped fun fact text")
	}
}

func TestFormatAnswersPlaceholders(t *testing.T) {
	out := FormatAnswers(AnswerCards(&backend.AskResult{
		Answers: []string{"only answer"},
	}))
	if !strings.Contains(out, UnknownLabel) {
		t.Errorf("terminal output missing %q placeholder:\n%s", UnknownLabel, out)
	}
}

func TestFormatStatsZeroCounts(t *testing.T) {
	out := FormatStats(BuildStatsView(&backend.StatsResult{}))
	for _, want := range []string{"concept:     0", "question:    0", "application: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
