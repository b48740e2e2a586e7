package parser

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"today keyword", "今天吃饭", "2024-03-15"},
		{"today alt keyword", "今日消费", "2024-03-15"},
		{"yesterday keyword", "昨天买菜", "2024-03-14"},
		{"day before yesterday", "前天打车", "2024-03-13"},
		{"relative wins over explicit", "昨天3月1日", "2024-03-14"},
		{"full iso date", "2024-03-15吃饭", "2024-03-15"},
		{"full slash date", "2024/3/5吃饭", "2024-03-05"},
		{"chinese full date", "2023年3月15日聚餐", "2023-03-15"},
		{"chinese month day", "3月8日看电影", "2024-03-08"},
		{"dash month day", "3-8打车", "2024-03-08"},
		{"slash month day", "3/8打车", "2024-03-08"},
		{"week keyword resolves nothing", "本周开销不少", "2024-03-15"},
		{"week keyword does not block explicit date", "本周2023年1月5日的账", "2023-01-05"},
		{"month keyword resolves nothing", "上个月的事了", "2024-03-15"},
		{"no date at all", "吃饭", "2024-03-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDate(tt.text, ref); got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Out-of-range month and day components are not validated; they roll over
// into the adjacent period, matching the behavior of the system this engine
// replaces.
func TestResolveDateRollover(t *testing.T) {
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		text string
		want string
	}{
		{"2024年13月5日", "2025-01-05"},
		{"2024-02-30", "2024-03-01"},
		{"13月5日", "2025-01-05"},
	}
	for _, tc := range tests {
		if got := ResolveDate(tc.text, ref); got != tc.want {
			t.Errorf("ResolveDate(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

// Month-day patterns are tried before month/day/year, so the trailing year
// of an American-style date is ignored in favor of the reference year.
func TestResolveDatePatternPriority(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := ResolveDate("3/15/2024", ref); got != "2025-03-15" {
		t.Errorf("ResolveDate(3/15/2024) = %q, want 2025-03-15", got)
	}
}
