package core

import (
	"errors"
	"testing"
)

func TestExpenseRecordValidate(t *testing.T) {
	valid := ExpenseRecord{Date: "2024-03-15", Amount: 35, Category: CategoryFood, Note: "午餐"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid record: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r ExpenseRecord) ExpenseRecord
		want   error
	}{
		{"zero amount", func(r ExpenseRecord) ExpenseRecord { r.Amount = 0; return r }, ErrInvalidAmount},
		{"negative amount", func(r ExpenseRecord) ExpenseRecord { r.Amount = -3; return r }, ErrInvalidAmount},
		{"unknown category", func(r ExpenseRecord) ExpenseRecord { r.Category = "snacks"; return r }, ErrInvalidCategory},
		{"blank note", func(r ExpenseRecord) ExpenseRecord { r.Note = "   "; return r }, ErrEmptyNote},
		{"bad date", func(r ExpenseRecord) ExpenseRecord { r.Date = "15/03/2024"; return r }, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mutate(valid).Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"all", PeriodAll},
		{"week", PeriodWeek},
		{"month", PeriodMonth},
		{" month ", PeriodMonth},
		{"", PeriodAll},
		{"year", PeriodAll},
	}
	for _, tc := range tests {
		if got := ParsePeriod(tc.in); got != tc.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
