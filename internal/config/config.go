// Package config loads engine tunables from a TOML file. The heuristics'
// pivots and windows are deliberate configuration, not literals: the
// two-digit-year pivot and the month/day rollover window are both
// ambiguous by nature and deployments may want to move them.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/oboegaki/receiptext/internal/extraction"
)

// fileConfig mirrors the TOML schema. Pointer fields distinguish "absent"
// from zero so a partial file overrides only the keys it names.
type fileConfig struct {
	YearPivot          *int  `toml:"year_pivot"`
	RolloverWindowDays *int  `toml:"rollover_window_days"`
	NotesScanLines     *int  `toml:"notes_scan_lines"`
	NotesMinLen        *int  `toml:"notes_min_len"`
	NotesMaxLen        *int  `toml:"notes_max_len"`
	CanonicalizeGlyphs *bool `toml:"canonicalize_glyphs"`
}

// Load reads cfg from path. An empty path or a missing file yields the
// engine defaults.
func Load(path string) (extraction.Config, error) {
	cfg := extraction.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.YearPivot != nil {
		cfg.YearPivot = *fc.YearPivot
	}
	if fc.RolloverWindowDays != nil {
		cfg.RolloverWindow = time.Duration(*fc.RolloverWindowDays) * 24 * time.Hour
	}
	if fc.NotesScanLines != nil {
		cfg.NotesScanLines = *fc.NotesScanLines
	}
	if fc.NotesMinLen != nil {
		cfg.NotesMinLen = *fc.NotesMinLen
	}
	if fc.NotesMaxLen != nil {
		cfg.NotesMaxLen = *fc.NotesMaxLen
	}
	if fc.CanonicalizeGlyphs != nil {
		cfg.CanonicalizeGlyphs = *fc.CanonicalizeGlyphs
	}

	return cfg, nil
}
