package renderer

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	portfolio "github.com/jan-milacek/bogglehead-portfolio-simulator"
)

// GrowthChart renders the portfolio value and the cumulative contributions
// of one run as a line-chart PNG.
func GrowthChart(res *portfolio.Result) ([]byte, error) {
	n := res.Trajectory.Len()
	labels := make([]string, 0, n)
	values := make([]float64, 0, n)
	contributed := make([]float64, 0, n)
	var yMin, yMax float64
	for p := range res.Trajectory.Points() {
		labels = append(labels, p.Date.Format("2006-01-02"))
		values = append(values, p.Value)
		contributed = append(contributed, p.Contributed)
		if len(values) == 1 {
			yMin, yMax = p.Value, p.Value
		}
		for _, v := range [2]float64{p.Value, p.Contributed} {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	if n < 2 {
		return nil, fmt.Errorf("not enough points to chart: %w", portfolio.ErrDegenerateSeries)
	}

	pad := (yMax - yMin) * 0.05
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	painter, err := charts.LineRender(
		[][]float64{values, contributed},
		charts.TitleTextOptionFunc(fmt.Sprintf("%s Growth", res.Name)),
		charts.LegendLabelsOptionFunc([]string{"Portfolio Value", "Total Contributions"}),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: 10,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(500),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot render chart: %w", err)
	}
	return painter.Bytes()
}
