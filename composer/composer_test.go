package composer

import (
	"strings"
	"testing"
	"time"

	"github.com/samgozman/orc-brief/oracle"
	"github.com/samgozman/orc-brief/pkg/kst"
	"github.com/samgozman/orc-brief/scavenger/coins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestComposer_Compose(t *testing.T) {
	date := time.Date(2026, time.October, 16, 7, 0, 0, 0, kst.Location)

	tests := []struct {
		name  string
		brief *Brief
		want  string
	}{
		{
			name: "full brief",
			brief: &Brief{
				Date: date,
				Tech: []string{
					"Go 1.23 is out — https://go.dev/blog/go1.23",
					"[RSS ERROR] https://down.example/rss: connection refused",
				},
				Crypto:   coins.Quote{BTC: ptr(65000), ETH: ptr(3200)},
				Fortunes: oracle.Daily([]int{1964, 1974}),
			},
			want: "2026-10-16 (Fri) KST 아침 인텔 10–15줄 요약\n" +
				"① 환율·베이시스·외국인: USD/KRW: N/A, 3M KRW-USD basis: N/A, 외국인 주식/채권: N/A\n" +
				"② NBFI 헤드라인/중앙은행: NBFI 리스크 헤드라인/중앙은행 노트: N/A (무료 요약 단계)\n" +
				"③ 한국/일본 리테일: 한·일 리테일 흐름: 해외 ETF/레버리지 관심 지속 (요약치 관측 중)\n" +
				"④ 기술센싱 하이라이트:\n" +
				"   - Go 1.23 is out — https://go.dev/blog/go1.23\n" +
				"   - [RSS ERROR] https://down.example/rss: connection refused\n" +
				"⑤ 크립토: BTC: $65,000, ETH: $3,200 (Coingecko)\n" +
				"⑥ 운세(7/3) — 64·74\n" +
				"- 1964년생 — 총운 70 / 재물 65 / 애정 68 / 건강 72\n" +
				"  · 조언: 속도보다 방향. 오늘은 점검/정리 우선. | 행운 숫자: 7 | 색상: 네이비\n" +
				"  · 한 줄: 균형과 절제가 성과를 만든다.\n" +
				"- 1974년생 — 총운 70 / 재물 65 / 애정 68 / 건강 72\n" +
				"  · 조언: 속도보다 방향. 오늘은 점검/정리 우선. | 행운 숫자: 7 | 색상: 네이비\n" +
				"  · 한 줄: 균형과 절제가 성과를 만든다.",
		},
		{
			name: "nothing fetched",
			brief: &Brief{
				Date: date,
			},
			want: "2026-10-16 (Fri) KST 아침 인텔 10–15줄 요약\n" +
				"① 환율·베이시스·외국인: USD/KRW: N/A, 3M KRW-USD basis: N/A, 외국인 주식/채권: N/A\n" +
				"② NBFI 헤드라인/중앙은행: NBFI 리스크 헤드라인/중앙은행 노트: N/A (무료 요약 단계)\n" +
				"③ 한국/일본 리테일: 한·일 리테일 흐름: 해외 ETF/레버리지 관심 지속 (요약치 관측 중)\n" +
				"④ 기술센싱 하이라이트:\n" +
				"⑤ 크립토: 크립토: N/A (API 제한/지연 가능)\n" +
				"⑥ 운세(7/3) — ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewComposer().Compose(tt.brief)
			if got != tt.want {
				t.Errorf("Compose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposer_Compose_capsHighlights(t *testing.T) {
	tech := make([]string, 9)
	for i := range tech {
		tech[i] = "item"
	}
	got := Compose(&Brief{Date: time.Now(), Tech: tech})

	assert.Equal(t, 6, strings.Count(got, "\n   - item"))
}

func TestComposer_Compose_utcDateIsPrintedInKST(t *testing.T) {
	// 20:00 UTC is already the next morning in Seoul
	got := Compose(&Brief{Date: time.Date(2026, time.October, 15, 20, 0, 0, 0, time.UTC)})
	header, _, _ := strings.Cut(got, "\n")

	assert.Equal(t, "2026-10-16 (Fri) KST 아침 인텔 10–15줄 요약", header)
}

func TestComposer_cryptoLine(t *testing.T) {
	tests := []struct {
		name  string
		quote coins.Quote
		want  string
	}{
		{
			name:  "whole numbers",
			quote: coins.Quote{BTC: ptr(65000), ETH: ptr(3200)},
			want:  "BTC: $65,000, ETH: $3,200 (Coingecko)",
		},
		{
			name:  "fractions are kept",
			quote: coins.Quote{BTC: ptr(104250.5), ETH: ptr(999.25)},
			want:  "BTC: $104,250.5, ETH: $999.25 (Coingecko)",
		},
		{
			name:  "missing eth",
			quote: coins.Quote{BTC: ptr(65000)},
			want:  "크립토: N/A (API 제한/지연 가능)",
		},
		{
			name:  "fetch failed",
			quote: coins.Quote{},
			want:  "크립토: N/A (API 제한/지연 가능)",
		},
	}
	c := NewComposer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.cryptoLine(tt.quote))
		})
	}
}
