// Package oracle produces the daily fortune table.
//
// The scores are placeholders: every year gets the same record until real scoring exists.
// Only Year differs between records.
package oracle

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Fortune is the record printed for one birth year.
type Fortune struct {
	Year        int    `json:"year"`
	Total       int    `json:"total"`
	Money       int    `json:"money"`
	Love        int    `json:"love"`
	Health      int    `json:"health"`
	Advice      string `json:"advice"`
	LuckyNumber int    `json:"lucky_number"`
	LuckyColor  string `json:"lucky_color"`
	OneLiner    string `json:"one_liner"`
}

// placeholder holds the values shared by every year.
var placeholder = Fortune{
	Total:       70,
	Money:       65,
	Love:        68,
	Health:      72,
	Advice:      "속도보다 방향. 오늘은 점검/정리 우선.",
	LuckyNumber: 7,
	LuckyColor:  "네이비",
	OneLiner:    "균형과 절제가 성과를 만든다.",
}

// Daily returns one fortune per year, in the given order.
func Daily(years []int) []Fortune {
	return lo.Map(years, func(y int, _ int) Fortune {
		f := placeholder
		f.Year = y
		return f
	})
}

// Lines renders the fortune as the three report lines.
func (f Fortune) Lines() []string {
	return []string{
		fmt.Sprintf("- %d년생 — 총운 %d / 재물 %d / 애정 %d / 건강 %d", f.Year, f.Total, f.Money, f.Love, f.Health),
		fmt.Sprintf("  · 조언: %s | 행운 숫자: %d | 색상: %s", f.Advice, f.LuckyNumber, f.LuckyColor),
		fmt.Sprintf("  · 한 줄: %s", f.OneLiner),
	}
}

// Label joins the two-digit years for the section title, e.g. "64·66·67·74".
func Label(years []int) string {
	return strings.Join(lo.Map(years, func(y int, _ int) string {
		return fmt.Sprintf("%02d", y%100)
	}), "·")
}
