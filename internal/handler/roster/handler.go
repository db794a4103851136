package roster

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"footballer-app/internal/handler/middleware"
	"footballer-app/internal/handler/response"
	repo "footballer-app/internal/repository/interfaces"
	"footballer-app/internal/usecase/authz"
	rosteruc "footballer-app/internal/usecase/roster"
)

// Handler обрабатывает HTTP-запросы навигации по справочнику:
// лиги → команды → футболисты.
type Handler struct {
	rosters rosteruc.Service
}

// NewHandler создаёт новый roster handler.
func NewHandler(rosters rosteruc.Service) *Handler {
	return &Handler{rosters: rosters}
}

// ListLeagues возвращает список всех лиг.
func (h *Handler) ListLeagues(c *gin.Context) {
	leagues, err := h.rosters.ListLeagues(c.Request.Context())
	if err != nil {
		log.Printf("internal error in ListLeagues: err=%v", err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leagues": leagues})
}

// ListTeams возвращает команды лиги, доступные текущему пользователю.
func (h *Handler) ListTeams(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	leagueID := c.Param("league_id")
	if leagueID == "" {
		response.Error(c, http.StatusBadRequest, "invalid_league_id", "Не указан идентификатор лиги", nil)
		return
	}

	teams, err := h.rosters.ListTeams(c.Request.Context(), leagueID, id)
	if err != nil {
		log.Printf("internal error in ListTeams: league_id=%s user_id=%d err=%v", leagueID, id.UserID, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// ListFootballers возвращает состав команды.
// Отказ в доступе возвращается явно как 403, а не как пустой список.
func (h *Handler) ListFootballers(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	teamID, err := strconv.ParseInt(c.Param("team_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_team_id", "Некорректный идентификатор команды", nil)
		return
	}

	footballers, err := h.rosters.ListFootballers(c.Request.Context(), teamID, id)
	if err != nil {
		if errors.Is(err, authz.ErrAccessDenied) {
			response.Error(c, http.StatusForbidden, "access_denied", "Нет доступа к этой команде", nil)
			return
		}
		log.Printf("internal error in ListFootballers: team_id=%d user_id=%d err=%v", teamID, id.UserID, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"footballers": footballers})
}

// GetFootballer возвращает карточку футболиста, если он доступен пользователю.
func (h *Handler) GetFootballer(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	footballerID, err := strconv.ParseInt(c.Param("footballer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_footballer_id", "Некорректный идентификатор футболиста", nil)
		return
	}

	footballer, err := h.rosters.GetFootballer(c.Request.Context(), footballerID, id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			response.Error(c, http.StatusNotFound, "footballer_not_found", "Футболист не найден", nil)
		case errors.Is(err, authz.ErrAccessDenied):
			response.Error(c, http.StatusForbidden, "access_denied", "Нет доступа к этому футболисту", nil)
		default:
			log.Printf("internal error in GetFootballer: footballer_id=%d user_id=%d err=%v", footballerID, id.UserID, err)
			response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		}
		return
	}

	c.JSON(http.StatusOK, footballer)
}
