package charts

import (
	"bytes"
	"testing"

	"jizhang/internal/core"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestTrendChart(t *testing.T) {
	g := NewGenerator()
	result := core.AnalysisResult{
		TrendData: []core.TrendPoint{
			{Date: "03-10", Amount: 35},
			{Date: "03-11", Amount: 20.5},
			{Date: "03-12", Amount: 80},
		},
	}

	png, err := g.TrendChart(result)
	if err != nil {
		t.Fatalf("TrendChart: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Errorf("TrendChart output is not a PNG")
	}
}

func TestTrendChartFlatSeries(t *testing.T) {
	g := NewGenerator()
	tests := []struct {
		name  string
		trend []core.TrendPoint
	}{
		{"single day", []core.TrendPoint{{Date: "03-15", Amount: 30}}},
		{"equal days", []core.TrendPoint{
			{Date: "03-14", Amount: 25},
			{Date: "03-15", Amount: 25},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := g.TrendChart(core.AnalysisResult{TrendData: tt.trend})
			if err != nil {
				t.Fatalf("TrendChart: %v", err)
			}
			if !bytes.HasPrefix(png, pngHeader) {
				t.Errorf("TrendChart output is not a PNG")
			}
		})
	}
}

func TestTrendChartNoData(t *testing.T) {
	g := NewGenerator()
	png, err := g.TrendChart(core.AnalysisResult{})
	if err != nil {
		t.Fatalf("TrendChart: %v", err)
	}
	if png != nil {
		t.Errorf("TrendChart on empty result = %d bytes, want nil", len(png))
	}
}

func TestCategoryChart(t *testing.T) {
	g := NewGenerator()
	result := core.AnalysisResult{
		CategoryDetail: []core.CategoryDetail{
			{Category: core.CategoryFood, Amount: 60, Count: 3, Percentage: 75},
			{Category: core.CategoryTransport, Amount: 20, Count: 1, Percentage: 25},
		},
	}

	png, err := g.CategoryChart(result)
	if err != nil {
		t.Fatalf("CategoryChart: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Errorf("CategoryChart output is not a PNG")
	}
}

func TestCategoryChartNoData(t *testing.T) {
	g := NewGenerator()
	png, err := g.CategoryChart(core.AnalysisResult{})
	if err != nil {
		t.Fatalf("CategoryChart: %v", err)
	}
	if png != nil {
		t.Errorf("CategoryChart on empty result = %d bytes, want nil", len(png))
	}
}
