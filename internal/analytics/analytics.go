// Package analytics aggregates expense records into period summaries:
// totals, per-category breakdown, daily trend and a narrative sentence.
// Results are derived values, recomputed from scratch on every call.
package analytics

import (
	"math"
	"sort"
	"time"

	"jizhang/internal/core"
)

const emptySummary = "暂无消费数据"

// Analyze summarizes records over the given period, relative to now.
func Analyze(records []core.ExpenseRecord, period core.Period) core.AnalysisResult {
	return AnalyzeAt(records, period, time.Now())
}

// AnalyzeAt is Analyze with an explicit reference time.
func AnalyzeAt(records []core.ExpenseRecord, period core.Period, ref time.Time) core.AnalysisResult {
	filtered := filterByPeriod(records, period, ref)
	label := periodLabel(period)

	if len(filtered) == 0 {
		return core.AnalysisResult{
			Period:         label,
			Summary:        emptySummary,
			CategoryDetail: []core.CategoryDetail{},
			TrendData:      []core.TrendPoint{},
		}
	}

	var total float64
	for _, r := range filtered {
		total += r.Amount
	}
	count := len(filtered)

	detail := categoryBreakdown(filtered, total)
	trend := dailyTrend(filtered, ref)

	return core.AnalysisResult{
		Period:         label,
		TotalAmount:    core.Round2(total),
		Count:          count,
		AvgAmount:      core.Round2(total / float64(count)),
		CategoryDetail: detail,
		TrendData:      trend,
		Summary:        buildSummary(period, total, count, detail),
	}
}

// filterByPeriod keeps records strictly after the period cutoff. The week
// cutoff is the reference instant minus seven days; the month cutoff is the
// day before the first of the reference month, so records on or after the
// first are kept. Records whose date does not parse never pass a cutoff.
func filterByPeriod(records []core.ExpenseRecord, period core.Period, ref time.Time) []core.ExpenseRecord {
	var cutoff time.Time
	switch period {
	case core.PeriodWeek:
		cutoff = ref.AddDate(0, 0, -7)
	case core.PeriodMonth:
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		cutoff = monthStart.AddDate(0, 0, -1)
	default:
		out := make([]core.ExpenseRecord, len(records))
		copy(out, records)
		return out
	}

	var out []core.ExpenseRecord
	for _, r := range records {
		d, err := time.ParseInLocation(core.DateLayout, r.Date, ref.Location())
		if err != nil {
			continue
		}
		if d.After(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// categoryBreakdown accumulates per-category sums in encounter order, then
// sorts descending by rounded amount. The sort is stable so ties keep
// encounter order. Percentages are integer-rounded shares of the raw total.
func categoryBreakdown(records []core.ExpenseRecord, total float64) []core.CategoryDetail {
	type bucket struct {
		amount float64
		count  int
	}
	sums := make(map[core.Category]*bucket)
	var order []core.Category
	for _, r := range records {
		b, ok := sums[r.Category]
		if !ok {
			b = &bucket{}
			sums[r.Category] = b
			order = append(order, r.Category)
		}
		b.amount += r.Amount
		b.count++
	}

	detail := make([]core.CategoryDetail, 0, len(order))
	for _, c := range order {
		b := sums[c]
		detail = append(detail, core.CategoryDetail{
			Category:   c,
			Amount:     core.Round2(b.amount),
			Count:      b.count,
			Percentage: int(math.Round(b.amount / total * 100)),
		})
	}
	sort.SliceStable(detail, func(i, j int) bool {
		return detail[i].Amount > detail[j].Amount
	})
	return detail
}

// dailyTrend accumulates per-day sums and sorts them by actual calendar
// date, not by the lexical order of the month-day display form.
func dailyTrend(records []core.ExpenseRecord, ref time.Time) []core.TrendPoint {
	type day struct {
		date   string
		when   time.Time
		amount float64
	}
	sums := make(map[string]*day)
	var order []*day
	for _, r := range records {
		d, ok := sums[r.Date]
		if !ok {
			when, err := time.ParseInLocation(core.DateLayout, r.Date, ref.Location())
			if err != nil {
				when = time.Time{}
			}
			d = &day{date: r.Date, when: when}
			sums[r.Date] = d
			order = append(order, d)
		}
		d.amount += r.Amount
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].when.Before(order[j].when)
	})

	trend := make([]core.TrendPoint, 0, len(order))
	for _, d := range order {
		display := d.date
		if !d.when.IsZero() {
			display = d.when.Format(core.TrendDateLayout)
		}
		trend = append(trend, core.TrendPoint{Date: display, Amount: core.Round2(d.amount)})
	}
	return trend
}

func periodLabel(period core.Period) string {
	switch period {
	case core.PeriodAll:
		return "全部时间"
	case core.PeriodWeek:
		return "近7天"
	default:
		return "本月"
	}
}
