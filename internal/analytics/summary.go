package analytics

import (
	"fmt"
	"strings"

	"jizhang/internal/core"
)

// buildSummary renders the narrative sentence: period, total, count and
// per-record average, then the top category with its share, then the
// runner-up when at least two categories exist.
func buildSummary(period core.Period, total float64, count int, detail []core.CategoryDetail) string {
	avg := core.Round2(total / float64(count))

	var b strings.Builder
	fmt.Fprintf(&b, "%s共消费 %s 元，共 %d 笔，日均 %s 元。",
		summaryPeriodText(period), core.FormatAmount(core.Round2(total)), count, core.FormatAmount(avg))

	top := detail[0]
	fmt.Fprintf(&b, "支出最多的是 %s 类，共 %s 元，占比 %d%%。",
		top.Category, core.FormatAmount(top.Amount), top.Percentage)

	if len(detail) > 1 {
		second := detail[1]
		fmt.Fprintf(&b, "其次是 %s 类，%s 元。", second.Category, core.FormatAmount(second.Amount))
	}
	return b.String()
}

// summaryPeriodText differs from the result's period label for the
// all-time window: the narrative says 累计 where the label says 全部时间.
func summaryPeriodText(period core.Period) string {
	switch period {
	case core.PeriodAll:
		return "累计"
	case core.PeriodWeek:
		return "近7天"
	default:
		return "本月"
	}
}
