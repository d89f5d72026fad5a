package document_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/chainseq/pkg/document"
	"github.com/johnjamespj/chainseq/pkg/sequence"
)

func mustDoc(t *testing.T, fields map[string]any) *document.Document {
	t.Helper()
	d, err := document.FromMap(fields)
	require.NoError(t, err)
	return d
}

func people(t *testing.T) *sequence.Chain[*document.Document] {
	t.Helper()
	return sequence.Of(
		mustDoc(t, map[string]any{"name": "ana", "team": "core", "age": 41}),
		mustDoc(t, map[string]any{"name": "bo", "team": "infra", "age": 28}),
		mustDoc(t, map[string]any{"name": "cy", "team": "core", "age": 35}),
	)
}

func TestDocumentRoundTrip(t *testing.T) {
	d := mustDoc(t, map[string]any{"name": "ana", "age": 41})

	decoded := document.FromBytes(d.Bytes())
	got, err := decoded.Eval("name")
	require.NoError(t, err)
	require.Equal(t, "ana", got)
}

func TestEvalBadExpression(t *testing.T) {
	d := mustDoc(t, map[string]any{"name": "ana"})
	_, err := d.Eval("name ][")
	require.Error(t, err)
}

func TestMatcher(t *testing.T) {
	match, err := document.Matcher("age > 30")
	require.NoError(t, err)

	got := people(t).Where(match)
	names := sequence.Map(got, func(d *document.Document) string {
		v, _ := d.Eval("name")
		return v.(string)
	})
	require.Equal(t, []string{"ana", "cy"}, names.ToList())
}

func TestMatcherNonBooleanResult(t *testing.T) {
	match, err := document.Matcher("name")
	require.NoError(t, err)
	require.False(t, match(mustDoc(t, map[string]any{"name": "ana"})))
	require.False(t, match(nil))
}

func TestMatcherBadExpression(t *testing.T) {
	_, err := document.Matcher("age >")
	require.Error(t, err)
}

func TestTextKeyDeduplication(t *testing.T) {
	team, err := document.TextKey("team")
	require.NoError(t, err)

	firstPerTeam := sequence.DistinctBy(people(t), team)
	teams := sequence.Map(firstPerTeam, team)
	require.Equal(t, []string{"core", "infra"}, teams.ToList())
}

func TestTextKeySort(t *testing.T) {
	name, err := document.TextKey("name")
	require.NoError(t, err)

	sorted := sequence.DescendingByText(people(t), name)
	names := sequence.Map(sorted, name)
	require.Equal(t, []string{"cy", "bo", "ana"}, names.ToList())
}

func TestNumberKeyMax(t *testing.T) {
	age, err := document.NumberKey("age")
	require.NoError(t, err)

	oldest, ok := sequence.Max(people(t), age)
	require.True(t, ok)

	name, err := oldest.Eval("name")
	require.NoError(t, err)
	require.Equal(t, "ana", name)
}

func TestNumberKeyMissingField(t *testing.T) {
	height, err := document.NumberKey("height")
	require.NoError(t, err)
	require.Zero(t, height(mustDoc(t, map[string]any{"name": "ana"})))
	require.Zero(t, height(nil))
}
