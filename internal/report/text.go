package report

import (
	"fmt"
	"strings"
)

// FormatAnswers renders answer cards for terminal output.
func FormatAnswers(cards []AnswerCard) string {
	if len(cards) == 0 {
		return "No answers found.\n"
	}

	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, "Answer %d (%s, confidence %s)\n", c.Index, c.ChunkType, c.Confidence)
		fmt.Fprintf(&b, "  %s\n", c.Answer)
		fmt.Fprintf(&b, "  Source: %s\n", c.SourceLabel)
		if c.Keywords != "" {
			fmt.Fprintf(&b, "  Keywords: %s\n", c.Keywords)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatStats renders the stats view for terminal output.
func FormatStats(view StatsView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total chunks: %d\n", view.TotalChunks)
	fmt.Fprintf(&b, "  concept:     %d\n", view.Concepts)
	fmt.Fprintf(&b, "  question:    %d\n", view.Questions)
	fmt.Fprintf(&b, "  application: %d\n", view.Applications)
	if len(view.Sources) > 0 {
		b.WriteString("Sources:\n")
		for _, s := range view.Sources {
			fmt.Fprintf(&b, "  %-40s %d\n", s.Name, s.Count)
		}
	}
	return b.String()
}

// FormatUploadSummary renders an upload result for terminal output.
func FormatUploadSummary(chunksCreated int, chunkTypes map[string]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Created %d chunks\n", chunksCreated)
	for _, t := range []string{"concept", "question", "application"} {
		fmt.Fprintf(&b, "  %-12s %d\n", t, chunkTypes[t])
	}
	return b.String()
}
