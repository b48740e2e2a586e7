// Package charts renders analysis results as PNG images.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"jizhang/internal/core"
)

// Generator renders charts from analysis results.
type Generator struct{}

// NewGenerator creates a chart generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// TrendChart renders the daily trend as a bar chart, one bar per day in the
// order the result carries them. Returns nil bytes when there is no data.
func (g *Generator) TrendChart(result core.AnalysisResult) ([]byte, error) {
	if len(result.TrendData) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(result.TrendData))
	var maxAmount float64
	for _, p := range result.TrendData {
		bars = append(bars, chart.Value{
			Label: p.Date,
			Value: p.Amount,
		})
		if p.Amount > maxAmount {
			maxAmount = p.Amount
		}
	}

	graph := chart.BarChart{
		Width:    800,
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.Style{
			FontSize: 10,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
			// An explicit range keeps flat series renderable: with every
			// bar at the same height the derived range would be zero.
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxAmount * 1.1,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryChart renders the category breakdown as a pie chart. Slice labels
// carry the category code and its percentage share. Returns nil bytes when
// there is no data.
func (g *Generator) CategoryChart(result core.AnalysisResult) ([]byte, error) {
	if len(result.CategoryDetail) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(result.CategoryDetail))
	for _, d := range result.CategoryDetail {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %d%%", d.Category, d.Percentage),
			Value: d.Amount,
		})
	}

	pie := chart.PieChart{
		Width:  600,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    30,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
		Values: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}
