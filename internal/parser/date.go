package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"jizhang/internal/core"
)

// Explicit date patterns, tried in priority order after the relative-time
// scan. Captured groups are read positionally, month before day; a three
// group match carries an explicit year, a two group match borrows the
// reference year.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})[-/年](\d{1,2})[-/月](\d{1,2})日?`),
	regexp.MustCompile(`(\d{1,2})[-/月](\d{1,2})日?`),
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`),
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})`),
}

// ResolveDate maps raw text to a YYYY-MM-DD date string relative to ref.
//
// Relative keywords are checked first in fixed table order; only 今天/昨天/前天
// style keywords resolve to a date. Week and month keywords are recognized
// but resolve to nothing, and the scan keeps going. Explicit patterns come
// next; out-of-range components are not validated and roll over into the
// adjacent month the way time.Date normalizes them. When nothing matches,
// the reference date itself is returned.
func ResolveDate(text string, ref time.Time) string {
	for _, entry := range timeTable {
		for _, keyword := range entry.keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			switch entry.concept {
			case timeToday:
				return ref.Format(core.DateLayout)
			case timeYesterday:
				return ref.AddDate(0, 0, -1).Format(core.DateLayout)
			case timeDayBeforeYesterday:
				return ref.AddDate(0, 0, -2).Format(core.DateLayout)
			}
		}
	}

	for _, pattern := range datePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		nums := make([]int, 0, len(m)-1)
		for _, g := range m[1:] {
			n, _ := strconv.Atoi(g)
			nums = append(nums, n)
		}
		var d time.Time
		if len(nums) == 3 {
			d = time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, ref.Location())
		} else {
			d = time.Date(ref.Year(), time.Month(nums[0]), nums[1], 0, 0, 0, 0, ref.Location())
		}
		return d.Format(core.DateLayout)
	}

	return ref.Format(core.DateLayout)
}
