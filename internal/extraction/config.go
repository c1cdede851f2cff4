package extraction

import "time"

const (
	defaultYearPivot      = 50
	defaultRolloverWindow = 30 * 24 * time.Hour
	defaultNotesScanLines = 5
	defaultNotesMinLen    = 2
	defaultNotesMaxLen    = 30
)

// Config holds the tunable heuristics of the extraction engine. Start from
// DefaultConfig and override; zero numeric fields are replaced with
// defaults by New.
type Config struct {
	// YearPivot windows two-digit years: a value >= YearPivot is read as
	// 1900+value, anything below as 2000+value.
	YearPivot int

	// RolloverWindow bounds how far in the past a bare month/day date may
	// fall before the year is rolled forward by one.
	RolloverWindow time.Duration

	// NotesScanLines is how many leading lines are considered for the
	// merchant note.
	NotesScanLines int

	// NotesMinLen and NotesMaxLen bound the accepted note length in runes.
	NotesMinLen int
	NotesMaxLen int

	// CanonicalizeGlyphs folds OCR-garbled currency glyphs and full-width
	// characters before matching. Disabled only for pre-normalized input.
	CanonicalizeGlyphs bool
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		YearPivot:          defaultYearPivot,
		RolloverWindow:     defaultRolloverWindow,
		NotesScanLines:     defaultNotesScanLines,
		NotesMinLen:        defaultNotesMinLen,
		NotesMaxLen:        defaultNotesMaxLen,
		CanonicalizeGlyphs: true,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.YearPivot <= 0 {
		c.YearPivot = d.YearPivot
	}
	if c.RolloverWindow <= 0 {
		c.RolloverWindow = d.RolloverWindow
	}
	if c.NotesScanLines <= 0 {
		c.NotesScanLines = d.NotesScanLines
	}
	if c.NotesMinLen <= 0 {
		c.NotesMinLen = d.NotesMinLen
	}
	if c.NotesMaxLen <= 0 {
		c.NotesMaxLen = d.NotesMaxLen
	}
	return c
}
