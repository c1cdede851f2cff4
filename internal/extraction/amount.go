package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// AmountCandidate is one monetary figure found in the transcript, with the
// line it came from.
type AmountCandidate struct {
	Value int64
	Line  string
}

var amountPatterns = []*regexp.Regexp{
	// Keyword-anchored: a total/subtotal word, optional currency marker,
	// then a digit group.
	regexp.MustCompile(`(?i)(?:合計|小計|総額|総計|金額|お買上げ?|total|subtotal|amount)\s*[:：]?\s*[¥$]?\s*(\d[\d,]*)`),
	// Currency-symbol-anchored.
	regexp.MustCompile(`[¥$]\s*(\d[\d,]*)`),
	// Unit-suffix-anchored.
	regexp.MustCompile(`(\d[\d,]*)\s*円`),
}

// extractAmount scans every line against all amount patterns and keeps the
// largest valid candidate. A receipt's grand total dominates its line items
// and tax lines, so the maximum is the authoritative figure.
func (e *Extractor) extractAmount(lines []string) (int64, bool) {
	candidates := amountCandidates(lines)
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0].Value
	for _, c := range candidates[1:] {
		if c.Value > best {
			best = c.Value
		}
	}
	return best, true
}

// amountCandidates collects every parsable monetary token across all lines.
func amountCandidates(lines []string) []AmountCandidate {
	var out []AmountCandidate
	for _, line := range lines {
		for _, re := range amountPatterns {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				v, ok := parseDigitGroup(m[1])
				if !ok {
					continue
				}
				out = append(out, AmountCandidate{Value: v, Line: line})
			}
		}
	}
	return out
}

// parseDigitGroup strips thousands separators and parses a non-negative
// integer. Malformed groups are discarded, not reported.
func parseDigitGroup(s string) (int64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
