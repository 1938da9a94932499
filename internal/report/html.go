package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
)

var analysisTemplate = template.Must(template.New("analysis").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>BioLens Analysis Report</title>
<style>
body { font-family: sans-serif; background: #0b0d17; color: #e8e8f0; margin: 2em; }
.card { background: #161a2e; border-radius: 8px; padding: 1.2em 1.5em; margin-bottom: 1.2em; }
.card h2 { margin-top: 0; color: #8fb4ff; }
.confidence { color: #6fdc8c; font-weight: bold; }
.label { color: #9aa0b8; }
</style>
</head>
<body>
<h1>Analysis Report</h1>
{{range .}}
<div class="card">
  <h2>{{.Name}} <span class="confidence">{{.Confidence}}</span></h2>
  <p><span class="label">File:</span> {{.Filename}}</p>
  <p><span class="label">Structure:</span> {{.Structure}}</p>
  <p><span class="label">Function:</span> {{.Function}}</p>
  <p><span class="label">Diseases:</span> {{.Diseases}}</p>
  <p><span class="label">Fun fact:</span> {{.FunFact}}</p>
  {{if .DetectedText}}<p><span class="label">Detected text:</span> {{range .DetectedText}}{{.}} {{end}}</p>{{end}}
</div>
{{end}}
</body>
</html>
`))

// WriteAnalysisHTML renders analysis cards as a standalone HTML report.
func WriteAnalysisHTML(w io.Writer, cards []AnalysisCard) error {
	if err := analysisTemplate.Execute(w, cards); err != nil {
		return fmt.Errorf("rendering analysis report: %w", err)
	}
	return nil
}

// SaveAnalysisHTML writes the report to a file.
func SaveAnalysisHTML(path string, cards []AnalysisCard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteAnalysisHTML(f, cards)
}
