// Package eval measures the extraction engine against ground-truth
// fixtures. It exists to answer "did this rule change make real receipts
// better or worse" with numbers instead of anecdotes.
package eval

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/oboegaki/receiptext/internal/extraction"
)

// GroundTruth is the expected extraction output for one fixture.
type GroundTruth struct {
	Name   string
	Text   string
	Date   string
	Amount *int64
	Notes  string
}

// FixtureResult holds per-field outcomes for one fixture.
type FixtureResult struct {
	Name     string
	Got      extraction.Result
	DateOK   bool
	AmountOK bool
	NotesOK  bool
}

// Summary aggregates fixture results into per-field accuracies and a
// weighted overall score.
type Summary struct {
	Results        []FixtureResult
	DateAccuracy   float64
	AmountAccuracy float64
	NotesAccuracy  float64
	OverallScore   float64
}

// Run executes the extractor over every fixture and scores the output.
func Run(ex *extraction.Extractor, fixtures []GroundTruth) *Summary {
	s := &Summary{}
	var dateOK, amountOK, notesOK int

	for _, f := range fixtures {
		got := ex.Extract(f.Text)
		r := FixtureResult{
			Name:     f.Name,
			Got:      got,
			DateOK:   got.Date == f.Date,
			AmountOK: amountMatch(got.Amount, f.Amount),
			NotesOK:  strings.TrimSpace(got.Notes) == strings.TrimSpace(f.Notes),
		}
		if r.DateOK {
			dateOK++
		}
		if r.AmountOK {
			amountOK++
		}
		if r.NotesOK {
			notesOK++
		}
		s.Results = append(s.Results, r)
	}

	n := len(fixtures)
	if n > 0 {
		s.DateAccuracy = float64(dateOK) / float64(n)
		s.AmountAccuracy = float64(amountOK) / float64(n)
		s.NotesAccuracy = float64(notesOK) / float64(n)
	}
	s.OverallScore = 0.40*s.DateAccuracy + 0.40*s.AmountAccuracy + 0.20*s.NotesAccuracy
	return s
}

func amountMatch(got, want *int64) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}
	return *got == *want
}

// WriteReport renders the summary as an aligned table.
func (s *Summary) WriteReport(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIXTURE\tDATE\tAMOUNT\tNOTES")
	for _, r := range s.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, mark(r.DateOK), mark(r.AmountOK), mark(r.NotesOK))
	}
	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintf(tw, "accuracy\t%.2f\t%.2f\t%.2f\n", s.DateAccuracy, s.AmountAccuracy, s.NotesAccuracy)
	fmt.Fprintf(tw, "overall\t%.2f\t\t\n", s.OverallScore)
	tw.Flush()
}

func mark(ok bool) string {
	if ok {
		return "ok"
	}
	return "MISS"
}
