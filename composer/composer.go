package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/samgozman/orc-brief/oracle"
	"github.com/samgozman/orc-brief/pkg/kst"
	"github.com/samgozman/orc-brief/scavenger/coins"
)

// Brief is everything the report is made of. Failed sources are already reduced to
// placeholders by their producers: diagnostic feed lines and an empty quote.
type Brief struct {
	Date     time.Time        // Date labels the report, printed in KST
	Tech     []string         // Tech holds the rendered feed lines
	Crypto   coins.Quote      // Crypto is the BTC/ETH quote, possibly incomplete
	Fortunes []oracle.Fortune // Fortunes holds one record per configured birth year
}

// Composer turns a Brief into the report text.
type Composer struct {
	Config *Config
}

// NewComposer creates a Composer with the default texts.
func NewComposer() *Composer {
	return &Composer{Config: DefaultConfig()}
}

// Compose is shorthand for NewComposer().Compose(b).
func Compose(b *Brief) string {
	return NewComposer().Compose(b)
}

// Compose renders the report. It never fails: every missing value has a placeholder.
func (c *Composer) Compose(b *Brief) string {
	lines := []string{
		fmt.Sprintf("%s 아침 인텔 10–15줄 요약", dateLabel(b.Date)),
		fmt.Sprintf("① 환율·베이시스·외국인: %s", c.Config.FXLine),
		fmt.Sprintf("② NBFI 헤드라인/중앙은행: %s", c.Config.NBFILine),
		fmt.Sprintf("③ 한국/일본 리테일: %s", c.Config.RetailLine),
		"④ 기술센싱 하이라이트:",
	}

	tech := b.Tech
	if len(tech) > c.Config.MaxHighlights {
		tech = tech[:c.Config.MaxHighlights]
	}
	for _, item := range tech {
		lines = append(lines, "   - "+item)
	}

	lines = append(lines, fmt.Sprintf("⑤ 크립토: %s", c.cryptoLine(b.Crypto)))

	years := lo.Map(b.Fortunes, func(f oracle.Fortune, _ int) int { return f.Year })
	lines = append(lines, fmt.Sprintf("⑥ 운세(%s) — %s", c.Config.FortuneWindow, oracle.Label(years)))
	lines = append(lines, lo.FlatMap(b.Fortunes, func(f oracle.Fortune, _ int) []string {
		return f.Lines()
	})...)

	return strings.Join(lines, "\n")
}

// cryptoLine prints both prices or the placeholder if either one is missing.
func (c *Composer) cryptoLine(q coins.Quote) string {
	if !q.Complete() {
		return c.Config.CryptoUnavailable
	}
	return fmt.Sprintf("BTC: $%s, ETH: $%s (Coingecko)", humanize.Commaf(*q.BTC), humanize.Commaf(*q.ETH))
}

// dateLabel formats the header date, e.g. "2026-10-16 (Fri) KST".
func dateLabel(t time.Time) string {
	return t.In(kst.Location).Format("2006-01-02 (Mon)") + " KST"
}
