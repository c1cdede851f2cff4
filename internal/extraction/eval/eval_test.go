package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oboegaki/receiptext/internal/extraction"
)

func TestRunBuiltinFixtures(t *testing.T) {
	ex := extraction.New(extraction.DefaultConfig())
	summary := Run(ex, Fixtures())

	require.Len(t, summary.Results, len(Fixtures()))

	for _, r := range summary.Results {
		assert.True(t, r.DateOK, "fixture %s: date mismatch, got %+v", r.Name, r.Got)
		assert.True(t, r.AmountOK, "fixture %s: amount mismatch, got %+v", r.Name, r.Got)
		assert.True(t, r.NotesOK, "fixture %s: notes mismatch, got %+v", r.Name, r.Got)
	}

	assert.Equal(t, 1.0, summary.DateAccuracy)
	assert.Equal(t, 1.0, summary.AmountAccuracy)
	assert.Equal(t, 1.0, summary.NotesAccuracy)
	assert.InDelta(t, 1.0, summary.OverallScore, 1e-9)
}

func TestRunScoresMisses(t *testing.T) {
	ex := extraction.New(extraction.DefaultConfig())
	fixtures := []GroundTruth{
		{
			Name: "wrong-on-purpose",
			Text: "2025/09/10\n合計 ¥500",
			Date: "1999-01-01",
		},
	}

	summary := Run(ex, fixtures)
	require.Len(t, summary.Results, 1)
	assert.False(t, summary.Results[0].DateOK)
	assert.False(t, summary.Results[0].AmountOK) // truth says absent, engine finds 500
	assert.True(t, summary.Results[0].NotesOK)
	assert.Equal(t, 0.0, summary.DateAccuracy)
	assert.Equal(t, 0.20, summary.OverallScore)
}

func TestRunEmptyFixtureSet(t *testing.T) {
	ex := extraction.New(extraction.DefaultConfig())
	summary := Run(ex, nil)
	assert.Empty(t, summary.Results)
	assert.Equal(t, 0.0, summary.OverallScore)
}

func TestWriteReport(t *testing.T) {
	ex := extraction.New(extraction.DefaultConfig())
	summary := Run(ex, Fixtures())

	var buf bytes.Buffer
	summary.WriteReport(&buf)

	out := buf.String()
	assert.Contains(t, out, "FIXTURE")
	assert.Contains(t, out, "jp-convenience-store")
	assert.Contains(t, out, "accuracy")
	assert.NotContains(t, out, "MISS")
}
