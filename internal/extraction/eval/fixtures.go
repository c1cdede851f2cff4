package eval

// Fixtures returns the built-in ground-truth set. Dates are explicit
// four-digit years so results do not depend on the wall clock.
func Fixtures() []GroundTruth {
	return []GroundTruth{
		{
			Name:   "jp-convenience-store",
			Text:   "ファミリーマート渋谷店\n2025年9月10日\nおにぎり ¥150\nお茶 ¥120\n合計 ¥270",
			Date:   "2025-09-10",
			Amount: amt(270),
			Notes:  "ファミリーマート渋谷店",
		},
		{
			Name:   "jp-restaurant-unit-suffix",
			Text:   "さくら食堂\n東京都新宿区\n2025/08/01\nランチセット 900円\nコーヒー 300円\n小計 1,200円",
			Date:   "2025-08-01",
			Amount: amt(1200),
			Notes:  "さくら食堂",
		},
		{
			Name:   "en-coffee-shop",
			Text:   "MORNING CUP COFFEE SHOP\n123 MAIN ST\n09/10/2025\nLATTE $5\nMUFFIN $4\nTOTAL $9",
			Date:   "2025-09-10",
			Amount: amt(9),
			Notes:  "Morning Cup Coffee Shop",
		},
		{
			Name:   "jp-garbled-yen-glyph",
			Text:   "領収書\n2024-12-24\n金額 \\3,980",
			Date:   "2024-12-24",
			Amount: amt(3980),
			Notes:  "",
		},
		{
			Name:   "date-only",
			Text:   "お買上明細\n2025.01.05",
			Date:   "2025-01-05",
			Amount: nil,
			Notes:  "",
		},
	}
}

func amt(v int64) *int64 {
	return &v
}
