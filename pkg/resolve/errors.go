package resolve

import "fmt"

// MalformedScenarioError reports a scenario whose catalog could not be
// built, typically an And step with no preceding concrete keyword. It is
// fatal for that scenario only; other scenarios in the same run still build.
type MalformedScenarioError struct {
	ScenarioID string
	FeatureID  string
	Reason     string
}

func (e *MalformedScenarioError) Error() string {
	return fmt.Sprintf("malformed scenario %s in %s: %s", e.ScenarioID, e.FeatureID, e.Reason)
}

// InvalidPatternError reports a definition pattern that failed to compile:
// either a regex-kind pattern that is not valid regex syntax, or an
// expression-kind pattern referencing an unrecognized placeholder. The
// pattern is excluded from the matcher set; the run continues without it.
type InvalidPatternError struct {
	Pattern DefinitionPattern
	Reason  string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	msg := fmt.Sprintf("invalid %s pattern %q (%s): %s", e.Pattern.Kind, e.Pattern.RawPattern, e.Pattern.SourceRef, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
