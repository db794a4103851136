package report

import (
	"context"
	"errors"
	"time"

	"footballer-app/internal/domain/metric"
)

// Ошибки построителя отчётов.
var (
	// ErrNoData возвращается, когда за запрошенный период нет ни одной записи.
	ErrNoData = errors.New("no data for requested range")

	// ErrUnknownTemplate возвращается при неизвестном теге шаблона графика.
	// Это ошибка вызывающей стороны (HTTP 400), а не сбой сервера.
	ErrUnknownTemplate = errors.New("unknown chart template")

	// ErrUnknownMetric возвращается, когда запрошенная метрика домену неизвестна.
	ErrUnknownMetric = errors.New("unknown metric name")
)

// Template — тег шаблона графика, который умеет рисовать внешний рендерер.
type Template string

const (
	TemplateLine       Template = "line"
	TemplateBar        Template = "bar"
	TemplateScatter    Template = "scatter"
	TemplateRadar      Template = "radar"
	TemplateBox        Template = "box"
	TemplateRegression Template = "regression"
)

// ParseTemplate возвращает шаблон по строковому тегу.
func ParseTemplate(s string) (Template, error) {
	switch Template(s) {
	case TemplateLine, TemplateBar, TemplateScatter, TemplateRadar, TemplateBox, TemplateRegression:
		return Template(s), nil
	}
	return "", ErrUnknownTemplate
}

// SeriesData — структура, которую потребляет внешний рендерер графиков:
// упорядоченные даты по оси X и ряд значений на каждую метрику.
// Незаданные значения передаются как null — подстановку умолчаний
// решает потребитель, а не этот слой.
type SeriesData struct {
	X      []string              `json:"x"`
	Series map[string][]*float64 `json:"series"`
}

// Renderer — внешний исполнитель отрисовки: принимает подготовленный ряд
// и тег шаблона, возвращает путь к сохранённому артефакту изображения.
type Renderer interface {
	Render(ctx context.Context, domain metric.Domain, tpl Template, data *SeriesData) (string, error)
}

// FormatSeries преобразует записи измерений в формат рендерера.
// entries должны быть упорядочены по возрастанию даты (контракт Series).
// Возвращает ErrNoData для пустого входа и ErrUnknownMetric для метрики,
// которой нет в схеме домена.
func FormatSeries[E metric.Entry](entries []E, metrics []string) (*SeriesData, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}
	if len(metrics) == 0 {
		return nil, ErrUnknownMetric
	}

	data := &SeriesData{
		X:      make([]string, 0, len(entries)),
		Series: make(map[string][]*float64, len(metrics)),
	}

	for _, e := range entries {
		data.X = append(data.X, e.EntryDate().Format(time.DateOnly))
	}

	for _, name := range metrics {
		values := make([]*float64, 0, len(entries))
		for _, e := range entries {
			v, ok := e.Value(name)
			if !ok {
				return nil, ErrUnknownMetric
			}
			values = append(values, v)
		}
		data.Series[name] = values
	}

	return data, nil
}

// Average возвращает среднее заданных значений ряда; nil-точки пропускаются.
// Возвращает nil, если задано ни одного значения.
func Average(values []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// TrendLine вычисляет линию тренда методом наименьших квадратов по индексам
// точек ряда (x = 0, 1, 2, ...); nil-точки пропускаются.
// ok == false, когда точек меньше двух или все x совпадают.
func TrendLine(values []*float64) (slope, intercept float64, ok bool) {
	var sumX, sumY, sumXY, sumXX float64
	var n int

	for i, v := range values {
		if v == nil {
			continue
		}
		x := float64(i)
		sumX += x
		sumY += *v
		sumXY += x * *v
		sumXX += x * x
		n++
	}

	if n < 2 {
		return 0, 0, false
	}

	den := float64(n)*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, false
	}

	slope = (float64(n)*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / float64(n)
	return slope, intercept, true
}
