package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical date form exchanged at every boundary.
const DateLayout = "2006-01-02"

// TrendDateLayout is the compact month-day form used for trend display.
const TrendDateLayout = "01-02"

// Category is one of the closed set of expense categories.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryHousing       Category = "housing"
	CategoryMedical       Category = "medical"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// Categories lists every category. CategoryOther is the fallback for text
// that matches no keyword and is never matched directly.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHousing,
	CategoryMedical,
	CategoryEducation,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Period selects the analysis window.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod maps a raw selector to a Period. Anything unrecognized
// falls back to PeriodAll.
func ParsePeriod(s string) Period {
	switch Period(strings.TrimSpace(s)) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodAll
	}
}

type (
	// ExpenseRecord is a single structured spending event.
	ExpenseRecord struct {
		Date     string   `json:"date"` // YYYY-MM-DD, no time component
		Amount   float64  `json:"amount"`
		Category Category `json:"category"`
		Note     string   `json:"note"`
	}

	// CategoryDetail is one row of the per-category breakdown.
	CategoryDetail struct {
		Category   Category `json:"category"`
		Amount     float64  `json:"amount"`
		Count      int      `json:"count"`
		Percentage int      `json:"percentage"`
	}

	// TrendPoint is the spending total of a single day.
	TrendPoint struct {
		Date   string  `json:"date"` // display form MM-DD
		Amount float64 `json:"amount"`
	}

	// AnalysisResult is the derived summary of a record set over a period.
	// It is recomputed on every call and never cached.
	AnalysisResult struct {
		Period         string           `json:"period"`
		TotalAmount    float64          `json:"totalAmount"`
		Count          int              `json:"count"`
		AvgAmount      float64          `json:"avgAmount"`
		CategoryDetail []CategoryDetail `json:"categoryDetail"`
		TrendData      []TrendPoint     `json:"trendData"`
		Summary        string           `json:"summary"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyNote       = errors.New("empty note")
)

// Validate checks the record invariants: positive amount, a category from
// the closed set, a non-blank note and a well-formed date.
func (r ExpenseRecord) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !r.Category.Valid() {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(r.Note) == "" {
		return ErrEmptyNote
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
