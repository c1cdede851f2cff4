package extraction

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeLines splits raw OCR text into trimmed, non-empty lines in
// document order. When fold is true, full-width variants are folded to
// their canonical width (１→1, ￥→¥, half-width kana to full-width) and a
// backslash, the usual OCR misread of the yen sign, becomes ¥.
func NormalizeLines(raw string, fold bool) []string {
	if raw == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if fold {
			line = canonicalizeGlyphs(line)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func canonicalizeGlyphs(line string) string {
	line = width.Fold.String(line)
	return strings.ReplaceAll(line, `\`, "¥")
}
