package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Mojo-Solo/stepcheck/internal/report"
	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

func scanners(t *testing.T, lines []resolve.RawLine, patterns []resolve.DefinitionPattern) (*MockFeatureScanner, *MockDefinitionScanner) {
	t.Helper()
	controller := gomock.NewController(t)

	features := NewMockFeatureScanner(controller)
	features.
		EXPECT().
		ScanFeatures(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(lines, nil).
		AnyTimes()

	definitions := NewMockDefinitionScanner(controller)
	definitions.
		EXPECT().
		ScanDefinitions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(patterns, nil).
		AnyTimes()

	return features, definitions
}

func TestRun(t *testing.T) {
	lines := []resolve.RawLine{
		{Keyword: resolve.KeywordGiven, Text: "I am logged in", ScenarioID: "s1", FeatureID: "login.feature"},
		{Keyword: resolve.KeywordWhen, Text: "I select 3 tickets", ScenarioID: "s1", FeatureID: "login.feature"},
	}

	t.Run("returns ExitOK when everything matches", func(t *testing.T) {
		features, definitions := scanners(t, lines, []resolve.DefinitionPattern{
			resolve.NewDefinitionPattern(resolve.KeywordGiven, "I am logged in", "auth.ts:5"),
			resolve.NewDefinitionPattern(resolve.KeywordWhen, "I select {int} tickets", "cart.ts:9"),
		})

		code, err := Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{})

		require.NoError(t, err)
		require.Equal(t, ExitOK, code)
	})

	t.Run("unmatched steps are pending unless strict", func(t *testing.T) {
		features, definitions := scanners(t, lines, nil)

		code, err := Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{})
		require.NoError(t, err)
		require.Equal(t, ExitOK, code)

		code, err = Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{StrictUnmatched: true})
		require.NoError(t, err)
		require.Equal(t, ExitUnmatched, code)
	})

	t.Run("ambiguity dominates unmatched", func(t *testing.T) {
		features, definitions := scanners(t, lines, []resolve.DefinitionPattern{
			resolve.NewDefinitionPattern(resolve.KeywordGiven, "I am logged in", "a.ts:1"),
			resolve.NewDefinitionPattern(resolve.KeywordGiven, `^I am logged in$`, "b.ts:1"),
		})

		code, err := Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{StrictUnmatched: true})

		require.NoError(t, err)
		require.Equal(t, ExitAmbiguous, code)
	})

	t.Run("invalid patterns are excluded and reported", func(t *testing.T) {
		features, definitions := scanners(t, lines, []resolve.DefinitionPattern{
			resolve.NewDefinitionPattern(resolve.KeywordGiven, "I am logged in", "a.ts:1"),
			resolve.NewDefinitionPattern(resolve.KeywordWhen, "I select {amount} tickets", "a.ts:2"),
		})

		var out strings.Builder
		reporter := report.NewConsoleReporter(&out, false)

		code, err := Run(context.Background(), features, definitions, reporter, Options{})

		require.NoError(t, err)
		require.Equal(t, ExitOK, code)
		require.Contains(t, out.String(), "{amount}")
		require.Contains(t, out.String(), "? When I select 3 tickets")
	})

	t.Run("writes the JSON report", func(t *testing.T) {
		features, definitions := scanners(t, lines, nil)
		jsonPath := filepath.Join(t.TempDir(), "report.json")

		_, err := Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{JSONPath: jsonPath})
		require.NoError(t, err)

		data, err := os.ReadFile(jsonPath)
		require.NoError(t, err)

		var document report.Document
		require.NoError(t, json.Unmarshal(data, &document))
		require.Equal(t, 2, document.Analysis.TotalSteps)
		require.Equal(t, 2, document.Analysis.Unmatched)
	})

	t.Run("writes stubs for unmatched steps", func(t *testing.T) {
		features, definitions := scanners(t, lines, nil)
		stubsPath := filepath.Join(t.TempDir(), "steps_stubs.go")

		_, err := Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{StubsPath: stubsPath})
		require.NoError(t, err)

		data, err := os.ReadFile(stubsPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "// @step When `I select {int} tickets`")
		require.Contains(t, string(data), "func WhenISelectIntTickets(arg1 int) error")
	})

	t.Run("scan failures return ExitRunError", func(t *testing.T) {
		controller := gomock.NewController(t)

		features := NewMockFeatureScanner(controller)
		features.
			EXPECT().
			ScanFeatures(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no such directory"))
		definitions := NewMockDefinitionScanner(controller)

		code, err := Run(context.Background(), features, definitions, report.NewNoopReporter(), Options{})

		require.Error(t, err)
		require.Equal(t, ExitRunError, code)
	})

	t.Run("malformed scenarios do not abort the run", func(t *testing.T) {
		badLines := append([]resolve.RawLine{
			{Keyword: resolve.KeywordAnd, Text: "orphan", ScenarioID: "s0", FeatureID: "login.feature"},
		}, lines...)
		features, definitions := scanners(t, badLines, []resolve.DefinitionPattern{
			resolve.NewDefinitionPattern(resolve.KeywordGiven, "I am logged in", "a.ts:1"),
			resolve.NewDefinitionPattern(resolve.KeywordWhen, "I select {int} tickets", "a.ts:2"),
		})

		var out strings.Builder
		reporter := report.NewConsoleReporter(&out, false)

		code, err := Run(context.Background(), features, definitions, reporter, Options{StrictUnmatched: true})

		require.NoError(t, err)
		require.Equal(t, ExitOK, code)
		require.Contains(t, out.String(), "malformed scenario s0")
	})
}
