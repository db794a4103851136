package report

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/metric"
	"footballer-app/internal/handler/middleware"
	"footballer-app/internal/handler/response"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
	metricuc "footballer-app/internal/usecase/metric"
	reportuc "footballer-app/internal/usecase/report"
)

// Handler строит отчёты-графики по записям измерений.
// Для каждого домена данные достаёт соответствующий сервис измерений
// (с его проверками доступа), подготовленный ряд уходит внешнему рендереру.
type Handler struct {
	physical    *metricuc.Service[metric.Physical, metric.PhysicalPatch]
	conditional *metricuc.Service[metric.Conditional, metric.ConditionalPatch]
	endurance   *metricuc.Service[metric.Endurance, metric.EndurancePatch]
	renderer    reportuc.Renderer
}

// NewHandler создаёт report handler.
func NewHandler(
	physical *metricuc.Service[metric.Physical, metric.PhysicalPatch],
	conditional *metricuc.Service[metric.Conditional, metric.ConditionalPatch],
	endurance *metricuc.Service[metric.Endurance, metric.EndurancePatch],
	renderer reportuc.Renderer,
) *Handler {
	return &Handler{
		physical:    physical,
		conditional: conditional,
		endurance:   endurance,
		renderer:    renderer,
	}
}

// Build обрабатывает POST /reports/:domain.
func (h *Handler) Build(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	dom, ok := metric.ParseDomain(c.Param("domain"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid_domain", "Неизвестный домен измерений", nil)
		return
	}

	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	tpl, err := reportuc.ParseTemplate(req.GraphType)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_graph_type", "Неизвестный тип графика", nil)
		return
	}

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_date", "Некорректная дата, ожидается YYYY-MM-DD", nil)
		return
	}

	metrics := req.Metrics
	if len(metrics) == 0 {
		metrics = metric.DefaultMetrics(dom)
	}

	data, err := h.formatSeries(c.Request.Context(), dom, ident, req.FootballerID, from, to, metrics)
	if err != nil {
		h.writeError(c, err, req.FootballerID)
		return
	}

	path, err := h.renderer.Render(c.Request.Context(), dom, tpl, data)
	if err != nil {
		log.Printf("renderer error in Build: domain=%s footballer_id=%d err=%v", dom, req.FootballerID, err)
		response.Error(c, http.StatusBadGateway, "renderer_unavailable", "Сервис отрисовки недоступен", nil)
		return
	}

	c.JSON(http.StatusOK, BuildResponse{
		Path:  path,
		Stats: buildStats(data, tpl),
	})
}

// formatSeries достаёт записи нужного домена и приводит их к формату рендерера.
func (h *Handler) formatSeries(
	ctx context.Context,
	dom metric.Domain,
	ident identity.Identity,
	footballerID int64,
	from, to *time.Time,
	metrics []string,
) (*reportuc.SeriesData, error) {
	switch dom {
	case metric.DomainPhysical:
		entries, err := h.physical.Series(ctx, ident, footballerID, from, to)
		if err != nil {
			return nil, err
		}
		return reportuc.FormatSeries(entries, metrics)
	case metric.DomainConditional:
		entries, err := h.conditional.Series(ctx, ident, footballerID, from, to)
		if err != nil {
			return nil, err
		}
		return reportuc.FormatSeries(entries, metrics)
	case metric.DomainEndurance:
		entries, err := h.endurance.Series(ctx, ident, footballerID, from, to)
		if err != nil {
			return nil, err
		}
		return reportuc.FormatSeries(entries, metrics)
	}
	return nil, reportuc.ErrNoData
}

// buildStats считает сводную статистику по каждому ряду.
// Параметры линии тренда добавляются только для регрессионного графика.
func buildStats(data *reportuc.SeriesData, tpl reportuc.Template) map[string]MetricStats {
	stats := make(map[string]MetricStats, len(data.Series))
	for name, values := range data.Series {
		s := MetricStats{Average: reportuc.Average(values)}
		if tpl == reportuc.TemplateRegression {
			if slope, intercept, ok := reportuc.TrendLine(values); ok {
				s.Slope = &slope
				s.Intercept = &intercept
			}
		}
		stats[name] = s
	}
	return stats
}

// parseRange разбирает опциональные границы периода.
func parseRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		t, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

// writeError маппит ошибки построения отчёта в HTTP-ответы.
func (h *Handler) writeError(c *gin.Context, err error, footballerID int64) {
	switch {
	case errors.Is(err, authz.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "access_denied", "Нет доступа к этому футболисту", nil)
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "footballer_not_found", "Футболист не найден", nil)
	case errors.Is(err, reportuc.ErrNoData):
		response.Error(c, http.StatusNotFound, "no_data", "Нет данных за запрошенный период", nil)
	case errors.Is(err, reportuc.ErrUnknownMetric):
		response.Error(c, http.StatusBadRequest, "unknown_metric", "Неизвестная метрика", nil)
	default:
		log.Printf("internal error in Build: footballer_id=%d err=%v", footballerID, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
	}
}
