package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"footballer-app/internal/config"
	"footballer-app/internal/domain/metric"
	"footballer-app/internal/usecase/report"
)

// HTTPRenderer отправляет подготовленный ряд внешнему сервису отрисовки графиков
// и возвращает путь к сохранённому изображению.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRenderer создаёт рендерер поверх HTTP API сервиса отрисовки.
func NewHTTPRenderer(cfg *config.ReportConfig) *HTTPRenderer {
	return &HTTPRenderer{
		baseURL: cfg.RendererURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type renderRequest struct {
	Domain   string             `json:"domain"`
	Template string             `json:"template"`
	Data     *report.SeriesData `json:"data"`
}

type renderResponse struct {
	Path string `json:"path"`
}

// Render выполняет запрос к сервису отрисовки.
// Ошибки сети и невалидный ответ возвращаются как есть, оборачивание в
// прикладные коды — дело вызывающего handler'а.
func (r *HTTPRenderer) Render(ctx context.Context, domain metric.Domain, tpl report.Template, data *report.SeriesData) (string, error) {
	body, err := json.Marshal(renderRequest{
		Domain:   string(domain),
		Template: string(tpl),
		Data:     data,
	})
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации запроса рендеринга: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса рендеринга: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка запроса к сервису отрисовки: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("сервис отрисовки вернул статус %d: %s", resp.StatusCode, string(payload))
	}

	var out renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ошибка разбора ответа сервиса отрисовки: %w", err)
	}
	if out.Path == "" {
		return "", fmt.Errorf("сервис отрисовки вернул пустой путь к артефакту")
	}

	return out.Path, nil
}
