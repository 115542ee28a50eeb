package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"se-server/models/forecast"
)

// PlotForecast renders an HTML line chart of a stored forecast run: the
// historical series and the predicted continuation share one time axis.
func PlotForecast(result *forecast.ForecastResult, w io.Writer) error {
	timestamps := make([]string, len(result.Points))
	historical := make([]opts.LineData, len(result.Points))
	predicted := make([]opts.LineData, len(result.Points))

	for i, p := range result.Points {
		timestamps[i] = p.Timestamp
		if p.Historical != nil {
			historical[i] = opts.LineData{Value: *p.Historical}
			predicted[i] = opts.LineData{Value: "-"}
		} else {
			historical[i] = opts.LineData{Value: "-"}
			predicted[i] = opts.LineData{Value: p.Predicted}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Load Forecast",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Load forecast: %s", result.Name),
			Subtitle: fmt.Sprintf("method=%s horizon=%d", result.Method, result.Horizon),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	line.SetXAxis(timestamps).
		AddSeries("Historical", historical).
		AddSeries("Forecast", predicted,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering forecast chart: %w", err)
	}
	return nil
}
