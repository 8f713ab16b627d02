package resolve

// Resolve evaluates every step against every compiled matcher and produces
// one ResolutionRecord per step, in step order.
//
// A matcher is a candidate for a step only when its keyword equals the
// step's keyword and its anchored predicate accepts the step's text; a
// When-kind definition never satisfies a Then step, even on identical text.
// Candidates are emitted in matcher input order and ambiguity is reported,
// never resolved: picking one of several matching definitions changes test
// semantics in a way only a human should decide.
//
// Resolve is pure and deterministic. It cannot fail: zero, one, or many
// matches are the three first-class outcomes, not error conditions.
func Resolve(steps []Step, matchers []*CompiledMatcher) []ResolutionRecord {
	records := make([]ResolutionRecord, 0, len(steps))

	for _, step := range steps {
		var candidates []string
		for _, m := range matchers {
			if m.Keyword != step.Keyword {
				continue
			}
			if m.Matches(step.Text) {
				candidates = append(candidates, m.SourceRef)
			}
		}
		records = append(records, ResolutionRecord{
			Step:           step,
			Classification: classify(len(candidates)),
			Candidates:     candidates,
		})
	}

	return records
}

func classify(candidates int) Classification {
	switch {
	case candidates == 0:
		return Unmatched
	case candidates == 1:
		return Matched
	default:
		return Ambiguous
	}
}

// Summarize reduces a record sequence to per-feature and global counts.
func Summarize(records []ResolutionRecord) Summary {
	summary := Summary{ByFeature: make(map[string]Counts)}

	for _, record := range records {
		counts := summary.ByFeature[record.Step.FeatureID]
		counts.Total++
		summary.Global.Total++

		switch record.Classification {
		case Unmatched:
			counts.Unmatched++
			summary.Global.Unmatched++
		case Matched:
			counts.Matched++
			summary.Global.Matched++
		case Ambiguous:
			counts.Ambiguous++
			summary.Global.Ambiguous++
		}

		summary.ByFeature[record.Step.FeatureID] = counts
	}

	return summary
}
