package metric

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"footballer-app/internal/domain/identity"
	"footballer-app/internal/domain/metric"
	"footballer-app/internal/handler/middleware"
	"footballer-app/internal/handler/response"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
	metricuc "footballer-app/internal/usecase/metric"
)

// Handler — generic HTTP-обработчик операций над записями измерений.
// Один и тот же код обслуживает все три домена; E/P — типы записи и патча.
// missingByDate — необязательный хук: если задан, ByDate при отсутствии записи
// за день возвращает построенный им ответ вместо 404 (используется
// кондиционным доменом, отдающим пустую заготовку).
type Handler[E metric.Entry, P metric.Patch[E]] struct {
	svc           *metricuc.Service[E, P]
	missingByDate func(footballerID int64, day time.Time) any
}

// NewHandler создаёт обработчик для домена, который обслуживает svc.
func NewHandler[E metric.Entry, P metric.Patch[E]](svc *metricuc.Service[E, P]) *Handler[E, P] {
	return &Handler[E, P]{svc: svc}
}

// WithMissingByDate задаёт ответ-заготовку для ByDate при отсутствии записи.
func (h *Handler[E, P]) WithMissingByDate(build func(footballerID int64, day time.Time) any) *Handler[E, P] {
	h.missingByDate = build
	return h
}

// identity извлекает identity или отвечает 401.
func (h *Handler[E, P]) identity(c *gin.Context) (identity.Identity, bool) {
	ident, exists := middleware.IdentityFromContext(c)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return identity.Identity{}, false
	}
	return ident, true
}

// footballerID разбирает path-параметр footballer_id или отвечает 400.
func footballerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("footballer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_footballer_id", "Некорректный идентификатор футболиста", nil)
		return 0, false
	}
	return id, true
}

// entryID разбирает path-параметр entry_id или отвечает 400.
func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("entry_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_entry_id", "Некорректный идентификатор записи", nil)
		return 0, false
	}
	return id, true
}

// parseDate разбирает дату в формате YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// Series возвращает записи футболиста за период.
// Границы периода задаются query-параметрами from/to (YYYY-MM-DD, включительно).
func (h *Handler[E, P]) Series(c *gin.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}
	fid, ok := footballerID(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid_date", "Некорректная дата from, ожидается YYYY-MM-DD", nil)
			return
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid_date", "Некорректная дата to, ожидается YYYY-MM-DD", nil)
			return
		}
		to = &t
	}

	entries, err := h.svc.Series(c.Request.Context(), ident, fid, from, to)
	if err != nil {
		h.writeError(c, err, fid)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// ByDate возвращает запись футболиста за календарный день.
func (h *Handler[E, P]) ByDate(c *gin.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}
	fid, ok := footballerID(c)
	if !ok {
		return
	}

	day, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_date", "Некорректная дата, ожидается YYYY-MM-DD", nil)
		return
	}

	entry, err := h.svc.ByDate(c.Request.Context(), ident, fid, day)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) && h.missingByDate != nil {
			c.JSON(http.StatusOK, h.missingByDate(fid, day))
			return
		}
		h.writeError(c, err, fid)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Add создаёт новую запись за день из query-параметра date (по умолчанию — сегодня).
func (h *Handler[E, P]) Add(c *gin.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}
	fid, ok := footballerID(c)
	if !ok {
		return
	}

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	var asOf *time.Time
	if s := c.Query("date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid_date", "Некорректная дата, ожидается YYYY-MM-DD", nil)
			return
		}
		asOf = &t
	}

	entry, err := h.svc.Add(c.Request.Context(), ident, fid, patch, asOf)
	if err != nil {
		h.writeError(c, err, fid)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Update применяет частичное обновление к записи.
func (h *Handler[E, P]) Update(c *gin.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}
	eid, ok := entryID(c)
	if !ok {
		return
	}

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), ident, eid, patch)
	if err != nil {
		h.writeError(c, err, eid)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete удаляет запись.
func (h *Handler[E, P]) Delete(c *gin.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}
	eid, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), ident, eid); err != nil {
		h.writeError(c, err, eid)
		return
	}

	c.Status(http.StatusNoContent)
}

// History возвращает последние записи футболиста (query-параметр limit).
func (h *Handler[E, P]) History(c *gin.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}
	fid, ok := footballerID(c)
	if !ok {
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "invalid_limit", "Некорректный лимит истории", nil)
			return
		}
		limit = v
	}

	entries, err := h.svc.History(c.Request.Context(), ident, fid, limit)
	if err != nil {
		h.writeError(c, err, fid)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// writeError маппит ошибки usecase-слоя в HTTP-ответы.
func (h *Handler[E, P]) writeError(c *gin.Context, err error, subjectID int64) {
	switch {
	case errors.Is(err, authz.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "access_denied", "Нет доступа к этому футболисту", nil)
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "entry_not_found", "Запись не найдена", nil)
	case errors.Is(err, repo.ErrDuplicateEntry):
		response.Error(c, http.StatusConflict, "entry_already_exists", "Запись за этот день уже существует", nil)
	case errors.Is(err, metricuc.ErrEmptyPatch):
		response.Error(c, http.StatusBadRequest, "empty_patch", "Не задано ни одно поле для обновления", nil)
	default:
		log.Printf("internal error in %s handler: subject_id=%d err=%v", h.svc.Domain(), subjectID, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
	}
}
