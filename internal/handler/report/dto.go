package report

// BuildRequest описывает запрос на построение отчёта-графика.
// Пустой список metrics означает набор метрик домена по умолчанию.
type BuildRequest struct {
	FootballerID int64    `json:"footballer_id" binding:"required"`
	GraphType    string   `json:"graph_type" binding:"required"`
	Metrics      []string `json:"metrics"`
	From         string   `json:"from"`
	To           string   `json:"to"`
}

// MetricStats — сводная статистика одного ряда отчёта.
type MetricStats struct {
	Average   *float64 `json:"average"`
	Slope     *float64 `json:"slope,omitempty"`
	Intercept *float64 `json:"intercept,omitempty"`
}

// BuildResponse — результат построения отчёта: путь к изображению
// и сводная статистика по каждой метрике.
type BuildResponse struct {
	Path  string                 `json:"path"`
	Stats map[string]MetricStats `json:"stats"`
}
