package report

import (
	"encoding/json"
	"io"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

// Document is the machine-readable report, suitable for CI pipelines and
// follow-up tooling.
type Document struct {
	Records  []Record            `json:"records"`
	Problems []string            `json:"problems"`
	Analysis Analysis            `json:"analysis"`
	Features map[string]Analysis `json:"features"`
}

// Record is one resolved step.
type Record struct {
	Feature        string   `json:"feature"`
	Scenario       string   `json:"scenario"`
	Keyword        string   `json:"keyword"`
	Text           string   `json:"text"`
	Classification string   `json:"classification"`
	Candidates     []string `json:"candidates,omitempty"`
}

// Analysis holds resolution counts.
type Analysis struct {
	TotalSteps int `json:"total_steps"`
	Matched    int `json:"matched"`
	Unmatched  int `json:"unmatched"`
	Ambiguous  int `json:"ambiguous"`
}

// NewDocument assembles a Document from a run's records, structural
// problems, and summary.
func NewDocument(records []resolve.ResolutionRecord, problems []error, summary resolve.Summary) Document {
	document := Document{
		Records:  make([]Record, 0, len(records)),
		Problems: make([]string, 0, len(problems)),
		Analysis: analysis(summary.Global),
		Features: make(map[string]Analysis, len(summary.ByFeature)),
	}

	for _, record := range records {
		document.Records = append(document.Records, Record{
			Feature:        record.Step.FeatureID,
			Scenario:       record.Step.ScenarioID,
			Keyword:        string(record.Step.Keyword),
			Text:           record.Step.Text,
			Classification: record.Classification.String(),
			Candidates:     record.Candidates,
		})
	}
	for _, problem := range problems {
		document.Problems = append(document.Problems, problem.Error())
	}
	for featureID, counts := range summary.ByFeature {
		document.Features[featureID] = analysis(counts)
	}

	return document
}

func analysis(counts resolve.Counts) Analysis {
	return Analysis{
		TotalSteps: counts.Total,
		Matched:    counts.Matched,
		Unmatched:  counts.Unmatched,
		Ambiguous:  counts.Ambiguous,
	}
}

// Write serializes the document as indented JSON.
func (d Document) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d)
}
