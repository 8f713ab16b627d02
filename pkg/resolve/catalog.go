package resolve

import "strings"

// BuildCatalog normalizes raw scenario lines into a flat list of steps.
//
// Each And line inherits the keyword of the nearest preceding line in the
// same scenario; a ScenarioID change resets the inheritance chain. Input
// order is preserved and no deduplication is performed: one Step per valid
// input line.
//
// A scenario that opens with And, or that contains a line with empty text,
// is malformed: all of its lines are dropped from the catalog and a
// *MalformedScenarioError is appended to the returned error slice. Lines of
// other scenarios are unaffected.
func BuildCatalog(lines []RawLine) ([]Step, []error) {
	steps := make([]Step, 0, len(lines))
	var errs []error

	var (
		currentScenario string
		lastKeyword     Keyword
		scenarioStart   int // index into steps where the current scenario began
		scenarioBad     bool
	)

	failScenario := func(line RawLine, reason string) {
		if !scenarioBad {
			errs = append(errs, &MalformedScenarioError{
				ScenarioID: line.ScenarioID,
				FeatureID:  line.FeatureID,
				Reason:     reason,
			})
			steps = steps[:scenarioStart]
			scenarioBad = true
		}
	}

	for i, line := range lines {
		if i == 0 || line.ScenarioID != currentScenario {
			currentScenario = line.ScenarioID
			lastKeyword = ""
			scenarioStart = len(steps)
			scenarioBad = false
		}
		if scenarioBad {
			continue
		}

		text := strings.TrimSpace(line.Text)
		if text == "" {
			failScenario(line, "step with empty text")
			continue
		}

		keyword := line.Keyword
		if keyword == KeywordAnd {
			if lastKeyword == "" {
				failScenario(line, "And step with no preceding Given/When/Then")
				continue
			}
			keyword = lastKeyword
		} else if !keyword.IsConcrete() {
			failScenario(line, "unknown keyword "+string(line.Keyword))
			continue
		}
		lastKeyword = keyword

		steps = append(steps, Step{
			Keyword:    keyword,
			Text:       text,
			ScenarioID: line.ScenarioID,
			FeatureID:  line.FeatureID,
		})
	}

	return steps, errs
}
