package output

import (
	"fmt"
	"os"

	"github.com/hausgo/housing-calculator/internal/domain"
	"github.com/vicanso/go-charts/v2"
)

// RenderComparisonChart renders the cumulative net position of every active
// scenario across the horizon as a PNG line chart.
func RenderComparisonChart(cmp *domain.Comparison) ([]byte, error) {
	results := cmp.Active()
	if len(results) == 0 {
		return nil, fmt.Errorf("no scenarios to chart")
	}

	horizon := cmp.Assumptions.TimeHorizonYears
	xLabels := make([]string, 0, horizon)
	for year := 1; year <= horizon; year++ {
		xLabels = append(xLabels, fmt.Sprintf("Y%d", year))
	}

	values := make([][]float64, 0, len(results))
	names := make([]string, 0, len(results))
	var yMin, yMax float64
	for _, r := range results {
		series := make([]float64, 0, horizon)
		for _, yb := range r.Years {
			v := yb.Cumulative.InexactFloat64()
			series = append(series, v)
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
		values = append(values, series)
		names = append(names, r.Strategy.DisplayName())
	}

	padding := (yMax - yMin) * 0.05
	if padding == 0 {
		padding = 1
	}
	yMin -= padding
	yMax += padding

	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Net position by year (%d-year horizon)", horizon)),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: names,
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}

// WriteComparisonChart renders the chart and writes it to a file.
func WriteComparisonChart(cmp *domain.Comparison, filename string) error {
	buf, err := RenderComparisonChart(cmp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", filename, err)
	}
	return nil
}
