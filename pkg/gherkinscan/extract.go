package gherkinscan

import (
	"strings"

	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

// ExtractRawLines flattens a Gherkin document into raw step lines in source
// order, one line per step.
//
// Background steps (feature-level, and rule-level for scenarios inside a
// rule) are emitted once per scenario, ahead of the scenario's own steps
// and under that scenario's id, mirroring how a runner would execute them.
// But and * keywords are normalized to And before the catalog builder sees
// them.
//
// When tags is non-nil, scenarios whose merged feature/rule/scenario tags
// do not satisfy the expression are skipped entirely.
func ExtractRawLines(document *messages.GherkinDocument, featureID string, tags tagexpressions.Evaluatable) []resolve.RawLine {
	lines := make([]resolve.RawLine, 0)
	if document == nil || document.Feature == nil {
		return lines
	}

	feature := document.Feature
	featureTags := tagNames(feature.Tags)

	var featureBackground *messages.Background
	for _, child := range feature.Children {
		switch {
		case child.Background != nil:
			featureBackground = child.Background

		case child.Scenario != nil:
			if !accepted(tags, featureTags, nil, tagNames(child.Scenario.Tags)) {
				continue
			}
			lines = appendScenario(lines, featureID, child.Scenario, featureBackground, nil)

		case child.Rule != nil:
			ruleTags := tagNames(child.Rule.Tags)
			var ruleBackground *messages.Background
			for _, ruleChild := range child.Rule.Children {
				switch {
				case ruleChild.Background != nil:
					ruleBackground = ruleChild.Background
				case ruleChild.Scenario != nil:
					if !accepted(tags, featureTags, ruleTags, tagNames(ruleChild.Scenario.Tags)) {
						continue
					}
					lines = appendScenario(lines, featureID, ruleChild.Scenario, featureBackground, ruleBackground)
				}
			}
		}
	}

	return lines
}

func appendScenario(lines []resolve.RawLine, featureID string, scenario *messages.Scenario, backgrounds ...*messages.Background) []resolve.RawLine {
	for _, background := range backgrounds {
		if background == nil {
			continue
		}
		for _, step := range background.Steps {
			lines = append(lines, rawLine(step, scenario.Id, featureID))
		}
	}
	for _, step := range scenario.Steps {
		lines = append(lines, rawLine(step, scenario.Id, featureID))
	}
	return lines
}

func rawLine(step *messages.Step, scenarioID, featureID string) resolve.RawLine {
	return resolve.RawLine{
		Keyword:    normalizeKeyword(step.Keyword),
		Text:       step.Text,
		ScenarioID: scenarioID,
		FeatureID:  featureID,
	}
}

// normalizeKeyword maps a raw Gherkin keyword (with its trailing space) to
// the resolver's keyword set. But and * are continuations like And.
func normalizeKeyword(raw string) resolve.Keyword {
	switch strings.TrimSpace(raw) {
	case "Given":
		return resolve.KeywordGiven
	case "When":
		return resolve.KeywordWhen
	case "Then":
		return resolve.KeywordThen
	case "And", "But", "*":
		return resolve.KeywordAnd
	default:
		// Left for the catalog builder to reject.
		return resolve.Keyword(strings.TrimSpace(raw))
	}
}

func tagNames(tags []*messages.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func accepted(evaluator tagexpressions.Evaluatable, tagGroups ...[]string) bool {
	if evaluator == nil {
		return true
	}
	merged := make([]string, 0)
	for _, group := range tagGroups {
		merged = append(merged, group...)
	}
	return evaluator.Evaluate(merged)
}
