package composer

// Config holds the fixed text of the brief. Sections without a data source yet print placeholders.
type Config struct {
	FXLine            string // ① FX, basis and foreign flows (no free source yet)
	NBFILine          string // ② non-bank financial intermediation headlines
	RetailLine        string // ③ Korea/Japan retail flows (under observation)
	CryptoUnavailable string // ⑤ shown when any price is missing
	FortuneWindow     string // ⑥ fortune window printed in the section title
	MaxHighlights     int    // ④ maximum number of feed lines in the report
}

// DefaultConfig creates a new Config object with default values.
func DefaultConfig() *Config {
	return &Config{
		FXLine:            "USD/KRW: N/A, 3M KRW-USD basis: N/A, 외국인 주식/채권: N/A",
		NBFILine:          "NBFI 리스크 헤드라인/중앙은행 노트: N/A (무료 요약 단계)",
		RetailLine:        "한·일 리테일 흐름: 해외 ETF/레버리지 관심 지속 (요약치 관측 중)",
		CryptoUnavailable: "크립토: N/A (API 제한/지연 가능)",
		FortuneWindow:     "7/3",
		MaxHighlights:     6,
	}
}
