package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"footballer-app/internal/domain/metric"
	"footballer-app/internal/usecase/report"
)

func f64(v float64) *float64  { return &v }
func date(s string) time.Time { t, _ := time.Parse(time.DateOnly, s); return t }

func entries() []metric.Endurance {
	return []metric.Endurance{
		{ID: 1, FootballerID: 100, RunningDistance: f64(8.2), AverageSpeed: f64(11.0), CreatedAt: date("2026-03-15")},
		{ID: 2, FootballerID: 100, RunningDistance: nil, AverageSpeed: f64(12.5), CreatedAt: date("2026-03-16")},
		{ID: 3, FootballerID: 100, RunningDistance: f64(9.4), AverageSpeed: f64(11.8), CreatedAt: date("2026-03-17")},
	}
}

func TestParseTemplate(t *testing.T) {
	for _, tag := range []string{"line", "bar", "scatter", "radar", "box", "regression"} {
		tpl, err := report.ParseTemplate(tag)
		require.NoError(t, err)
		require.Equal(t, report.Template(tag), tpl)
	}

	_, err := report.ParseTemplate("pie")
	require.ErrorIs(t, err, report.ErrUnknownTemplate)
}

func TestFormatSeries(t *testing.T) {
	data, err := report.FormatSeries(entries(), []string{"running_distance", "average_speed"})
	require.NoError(t, err)

	require.Equal(t, []string{"2026-03-15", "2026-03-16", "2026-03-17"}, data.X)
	require.Len(t, data.Series, 2)

	distance := data.Series["running_distance"]
	require.Len(t, distance, 3)
	require.Equal(t, 8.2, *distance[0])
	// Незаданная точка остаётся null, а не нулём
	require.Nil(t, distance[1])
	require.Equal(t, 9.4, *distance[2])
}

func TestFormatSeries_NoData(t *testing.T) {
	_, err := report.FormatSeries([]metric.Endurance{}, []string{"running_distance"})
	require.ErrorIs(t, err, report.ErrNoData)
}

func TestFormatSeries_UnknownMetric(t *testing.T) {
	_, err := report.FormatSeries(entries(), []string{"bench_press"})
	require.ErrorIs(t, err, report.ErrUnknownMetric)

	_, err = report.FormatSeries(entries(), nil)
	require.ErrorIs(t, err, report.ErrUnknownMetric)
}

func TestAverage(t *testing.T) {
	avg := report.Average([]*float64{f64(2), nil, f64(4)})
	require.NotNil(t, avg)
	require.InDelta(t, 3.0, *avg, 1e-9)

	require.Nil(t, report.Average([]*float64{nil, nil}))
	require.Nil(t, report.Average(nil))
}

func TestTrendLine(t *testing.T) {
	// y = 2x + 1 по индексам 0..3
	slope, intercept, ok := report.TrendLine([]*float64{f64(1), f64(3), f64(5), f64(7)})
	require.True(t, ok)
	require.InDelta(t, 2.0, slope, 1e-9)
	require.InDelta(t, 1.0, intercept, 1e-9)
}

func TestTrendLine_SkipsNils(t *testing.T) {
	// nil-точка не ломает регрессию по оставшимся точкам той же прямой
	slope, intercept, ok := report.TrendLine([]*float64{f64(1), nil, f64(5), f64(7)})
	require.True(t, ok)
	require.InDelta(t, 2.0, slope, 1e-9)
	require.InDelta(t, 1.0, intercept, 1e-9)
}

func TestTrendLine_NotEnoughPoints(t *testing.T) {
	_, _, ok := report.TrendLine([]*float64{f64(1)})
	require.False(t, ok)

	_, _, ok = report.TrendLine([]*float64{nil, nil, f64(1)})
	require.False(t, ok)

	_, _, ok = report.TrendLine(nil)
	require.False(t, ok)
}
