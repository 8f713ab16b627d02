package gherkinscan

import (
	"os"
	"testing"

	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/stretchr/testify/require"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

func TestSearchFeatureFilesIn(t *testing.T) {
	t.Run("finds feature files recursively", func(t *testing.T) {
		files, err := SearchFeatureFilesIn([]string{"testdata"})

		require.NoError(t, err)
		require.Equal(t, []string{
			"testdata/checkout.feature",
			"testdata/rules/refunds.feature",
		}, files)
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		_, err := SearchFeatureFilesIn([]string{"testdata/missing"})
		require.Error(t, err)
	})
}

func parseTestFeature(t *testing.T, path string) []resolve.RawLine {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	document, err := ParseGherkinFile(file)
	require.NoError(t, err)
	return ExtractRawLines(document, path, nil)
}

func TestExtractRawLines(t *testing.T) {
	t.Run("emits background steps per scenario and normalizes But", func(t *testing.T) {
		lines := parseTestFeature(t, "testdata/checkout.feature")

		var texts []string
		var keywords []resolve.Keyword
		for _, line := range lines {
			texts = append(texts, line.Text)
			keywords = append(keywords, line.Keyword)
		}

		require.Equal(t, []string{
			"I am logged in",
			"I select 3 tickets",
			`I click "Buy"`,
			`I should see "Order confirmed"`,
			"I am logged in",
			"I open the cart",
			"I do not select any tickets",
			"the cart is empty",
		}, texts)

		require.Equal(t, []resolve.Keyword{
			resolve.KeywordGiven,
			resolve.KeywordWhen,
			resolve.KeywordAnd,
			resolve.KeywordThen,
			resolve.KeywordGiven,
			resolve.KeywordWhen,
			resolve.KeywordAnd, // But
			resolve.KeywordThen,
		}, keywords)

		// Background lines carry the id of the scenario they precede.
		require.Equal(t, lines[1].ScenarioID, lines[0].ScenarioID)
		require.Equal(t, lines[5].ScenarioID, lines[4].ScenarioID)
		require.NotEqual(t, lines[0].ScenarioID, lines[4].ScenarioID)
	})

	t.Run("feeds the catalog builder cleanly", func(t *testing.T) {
		lines := parseTestFeature(t, "testdata/checkout.feature")

		steps, errs := resolve.BuildCatalog(lines)

		require.Empty(t, errs)
		require.Len(t, steps, 8)
		// And inherited When across the background boundary.
		require.Equal(t, resolve.KeywordWhen, steps[2].Keyword)
	})

	t.Run("handles rule-level backgrounds", func(t *testing.T) {
		lines := parseTestFeature(t, "testdata/rules/refunds.feature")

		var texts []string
		for _, line := range lines {
			texts = append(texts, line.Text)
		}

		require.Equal(t, []string{
			"a paid order exists",
			"I request a refund",
			"the refund is accepted",
		}, texts)
	})

	t.Run("filters scenarios by tag expression", func(t *testing.T) {
		file, err := os.Open("testdata/checkout.feature")
		require.NoError(t, err)
		defer file.Close()

		document, err := ParseGherkinFile(file)
		require.NoError(t, err)

		evaluator, err := tagexpressions.Parse("@smoke")
		require.NoError(t, err)

		lines := ExtractRawLines(document, "checkout.feature", evaluator)

		require.Len(t, lines, 4)
		require.Equal(t, "I select 3 tickets", lines[1].Text)
	})

	t.Run("inherits feature tags", func(t *testing.T) {
		file, err := os.Open("testdata/checkout.feature")
		require.NoError(t, err)
		defer file.Close()

		document, err := ParseGherkinFile(file)
		require.NoError(t, err)

		evaluator, err := tagexpressions.Parse("@checkout")
		require.NoError(t, err)

		lines := ExtractRawLines(document, "checkout.feature", evaluator)
		require.Len(t, lines, 8)
	})

	t.Run("returns no lines for a nil document", func(t *testing.T) {
		require.Empty(t, ExtractRawLines(nil, "x.feature", nil))
	})
}
