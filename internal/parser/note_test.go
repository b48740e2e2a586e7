package parser

import "testing"

func TestExtractNote(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		amounts []float64
		want    string
	}{
		{
			name:    "everything recognized falls back to category default",
			text:    "今天吃饭花了35元",
			amounts: []float64{35},
			want:    "餐饮消费",
		},
		{
			name:    "residual survives",
			text:    "请同事吃饭花了200元在海底捞",
			amounts: []float64{200},
			want:    "请事在海底捞", // 同 is stripped as a connective, taking the first occurrence
		},
		{
			name:    "spaced amount pattern",
			text:    "买咖啡 15 元",
			amounts: []float64{15},
			want:    "餐饮消费",
		},
		{
			name:    "transport default",
			text:    "打车30元",
			amounts: []float64{30},
			want:    "交通出行",
		},
		{
			name:    "other default",
			text:    "付了100元",
			amounts: []float64{100},
			want:    "其他支出",
		},
		{
			name:    "decimal amount embedded in pattern",
			text:    "买咖啡12.5元",
			amounts: []float64{12.5},
			want:    "餐饮消费",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractNote(tt.text, tt.amounts); got != tt.want {
				t.Errorf("ExtractNote(%q, %v) = %q, want %q", tt.text, tt.amounts, got, tt.want)
			}
		})
	}
}

// Amount patterns must be stripped before keywords. The value 35 inside
// "花了35" would survive if the filler verb 花了 were removed first.
func TestExtractNoteAmountBeforeKeywords(t *testing.T) {
	got := ExtractNote("看病花了35", []float64{35})
	if got != "医疗支出" {
		t.Errorf("ExtractNote = %q, want 医疗支出", got)
	}
}

func TestExtractNoteNeverBlank(t *testing.T) {
	inputs := []string{"", "35", "今天", "吃", "x"}
	for _, in := range inputs {
		if got := ExtractNote(in, []float64{35}); got == "" {
			t.Errorf("ExtractNote(%q) returned empty note", in)
		}
	}
}
