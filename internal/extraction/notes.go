package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// businessKeywords mark a line as merchant-name-like. Japanese entries
// cover shop suffixes and entity designations; English entries cover the
// common trade words.
var businessKeywords = []string{
	"株式会社", "有限会社", "(株)", "(有)",
	"商店", "書店", "薬局", "食堂", "酒店", "売店",
	"ストア", "マート", "マーケット", "スーパー", "コンビニ",
	"カフェ", "レストラン", "ショップ", "センター",
	"店", "堂", "屋", "軒", "亭",
	"store", "shop", "mart", "market", "super",
	"cafe", "coffee", "restaurant", "bakery", "pharmacy",
	"co.", "ltd", "inc", "corp",
}

var (
	// Receipt/invoice header words never name the merchant.
	notesHeaderRe = regexp.MustCompile(`(?i)領収書|領収証|レシート|請求書|明細|御計算書|receipt|invoice|statement`)
	// Embedded date-like tokens.
	notesDateRe = regexp.MustCompile(`\d{1,2}[/\-.月]\d{1,2}|\d{4}年|\d{4}[/\-.]\d{1,2}`)
	// Currency-amount tokens and total keywords.
	notesAmountRe = regexp.MustCompile(`(?i)[¥$]\s*\d|\d\s*円|合計|小計|金額|total|subtotal`)
)

// extractNotes scans a bounded prefix of the transcript for a
// merchant-name-like line: plausible length, at least one business-entity
// keyword, and no header/date/amount tokens.
func (e *Extractor) extractNotes(lines []string) (string, bool) {
	limit := e.cfg.NotesScanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		n := utf8.RuneCountInString(line)
		if n < e.cfg.NotesMinLen || n > e.cfg.NotesMaxLen {
			continue
		}
		if !containsBusinessKeyword(line) {
			continue
		}
		if notesHeaderRe.MatchString(line) || notesDateRe.MatchString(line) || notesAmountRe.MatchString(line) {
			continue
		}
		return formatNotes(line), true
	}
	return "", false
}

func containsBusinessKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range businessKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// formatNotes tidies a matched merchant line for display: Latin words are
// title-cased, everything else passes through untouched.
func formatNotes(line string) string {
	caser := cases.Title(language.English)
	words := strings.Fields(line)
	for i, w := range words {
		if isASCIIWord(w) && len(w) > 2 {
			words[i] = caser.String(strings.ToLower(w))
		}
	}
	return strings.Join(words, " ")
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
