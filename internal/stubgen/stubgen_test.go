package stubgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

func TestSuggestPattern(t *testing.T) {
	t.Run("replaces quoted spans with string placeholders", func(t *testing.T) {
		require.Equal(t, `I fill in {string} with {string}`, SuggestPattern(`I fill in "Email" with "a@b.com"`))
	})

	t.Run("replaces bare numerics", func(t *testing.T) {
		require.Equal(t, "I select {int} tickets", SuggestPattern("I select 3 tickets"))
		require.Equal(t, "the total is {float} dollars", SuggestPattern("the total is 12.50 dollars"))
	})

	t.Run("handles adjacent numbers", func(t *testing.T) {
		require.Equal(t, "I move from {int} to {int}", SuggestPattern("I move from 1 to 2"))
	})

	t.Run("does not touch digits inside words", func(t *testing.T) {
		require.Equal(t, "I open the 2nd tab", SuggestPattern("I open the 2nd tab"))
	})

	t.Run("quoted numerals stay strings", func(t *testing.T) {
		require.Equal(t, "I select {string} tickets", SuggestPattern(`I select "3" tickets`))
	})
}

func TestFuncName(t *testing.T) {
	require.Equal(t, "WhenISelectIntTickets", FuncName(resolve.KeywordWhen, "I select {int} tickets"))
	require.Equal(t, "ThenIShouldSeeString", FuncName(resolve.KeywordThen, "I should see {string}"))
}

func TestBuildOutput(t *testing.T) {
	unmatched := func(keyword resolve.Keyword, text string) resolve.ResolutionRecord {
		return resolve.ResolutionRecord{
			Step:           resolve.Step{Keyword: keyword, Text: text, ScenarioID: "s", FeatureID: "f"},
			Classification: resolve.Unmatched,
		}
	}

	t.Run("dedupes by keyword and suggested pattern", func(t *testing.T) {
		output := BuildOutput("steps", []resolve.ResolutionRecord{
			unmatched(resolve.KeywordWhen, `I select 3 tickets`),
			unmatched(resolve.KeywordWhen, `I select 5 tickets`),
			unmatched(resolve.KeywordThen, `I select 5 tickets`),
		})

		require.Len(t, output.Stubs, 2)
		require.Equal(t, "I select {int} tickets", output.Stubs[0].Pattern)
		require.Equal(t, resolve.KeywordWhen, output.Stubs[0].Keyword)
		require.Equal(t, resolve.KeywordThen, output.Stubs[1].Keyword)
	})

	t.Run("skips matched and ambiguous records", func(t *testing.T) {
		output := BuildOutput("steps", []resolve.ResolutionRecord{
			{
				Step:           resolve.Step{Keyword: resolve.KeywordGiven, Text: "I am logged in"},
				Classification: resolve.Matched,
				Candidates:     []string{"a.ts:1"},
			},
		})
		require.Empty(t, output.Stubs)
	})
}

func TestOutput_Generate(t *testing.T) {
	expected := `package steps

import "errors"

// @step When ` + "`I select {int} tickets`" + `
func WhenISelectIntTickets(arg1 int) error {
	return errors.New("pending step")
}
`

	t.Run("generates scannable stub functions", func(t *testing.T) {
		output := Output{
			PackageName: "steps",
			Stubs: []Stub{
				{Keyword: resolve.KeywordWhen, Pattern: "I select {int} tickets", FuncName: "WhenISelectIntTickets"},
			},
		}

		builder := &strings.Builder{}
		err := output.Generate(builder)

		require.NoError(t, err)
		require.Equal(t, expected, builder.String())
	})
}

func TestPackageName(t *testing.T) {
	t.Run("prefers the package clause of existing files", func(t *testing.T) {
		require.Equal(t, "existing", PackageName("testdata/withpkg"))
	})

	t.Run("falls back to the module base name", func(t *testing.T) {
		require.Equal(t, "ticket_shop", PackageName("testdata/modonly"))
	})

	t.Run("falls back to the directory name", func(t *testing.T) {
		require.Equal(t, "empty_dir", PackageName("testdata/empty-dir"))
	})
}
