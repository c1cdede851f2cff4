// Package extraction turns raw OCR receipt transcripts into structured
// bookkeeping fields: transaction date, total amount, and a merchant note.
// Extraction is a pure, best-effort heuristic pass over noisy single-column
// text; it never fails, it only leaves fields absent.
package extraction

import "time"

const dateLayout = "2006-01-02"

// Result is the structured output of one extraction call.
// Date is always populated; a missing date is masked with the current date
// rather than left ambiguous downstream. Amount and Notes are nil/empty
// when undetected.
type Result struct {
	Date   string `json:"date"`
	Amount *int64 `json:"amount,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Extractor runs the date, amount and notes extractors over a normalized
// line sequence. It is stateless across calls and safe for concurrent use.
type Extractor struct {
	cfg Config
	now func() time.Time
}

// New creates an Extractor. Zero Config fields fall back to defaults.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg.withDefaults(), now: time.Now}
}

// Extract is a convenience wrapper using the default configuration.
func Extract(raw string) Result {
	return New(DefaultConfig()).Extract(raw)
}

// Extract converts one OCR transcript into a Result. Identical input
// always yields identical output. A fault inside any sub-extractor is
// absorbed and downgraded to "field absent".
func (e *Extractor) Extract(raw string) Result {
	lines := NormalizeLines(raw, e.cfg.CanonicalizeGlyphs)

	var res Result

	if t, ok := e.safeDate(lines); ok {
		res.Date = t.Format(dateLayout)
	} else {
		res.Date = e.now().Format(dateLayout)
	}

	if v, ok := e.safeAmount(lines); ok {
		res.Amount = &v
	}

	if notes, ok := e.safeNotes(lines); ok {
		res.Notes = notes
	}

	return res
}

// The safe* wrappers keep a panicking sub-extractor from escaping the
// extraction boundary; the affected field simply comes back absent.

func (e *Extractor) safeDate(lines []string) (t time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()
	return e.extractDate(lines)
}

func (e *Extractor) safeAmount(lines []string) (v int64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = 0, false
		}
	}()
	return e.extractAmount(lines)
}

func (e *Extractor) safeNotes(lines []string) (notes string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			notes, ok = "", false
		}
	}()
	return e.extractNotes(lines)
}
