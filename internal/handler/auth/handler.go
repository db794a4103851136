package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "footballer-app/internal/domain/user"
	"footballer-app/internal/handler/middleware"
	"footballer-app/internal/handler/response"
	repo "footballer-app/internal/repository/interfaces"
	authuc "footballer-app/internal/usecase/auth"
)

// Handler обрабатывает HTTP-запросы, связанные с аутентификацией и профилем.
type Handler struct {
	auth authuc.Service
}

// NewHandler создаёт новый AuthHandler.
func NewHandler(auth authuc.Service) *Handler {
	return &Handler{auth: auth}
}

// Register обрабатывает регистрацию пользователя.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	input := authuc.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.Role(req.Role),
		Club:      req.Club,
		TeamID:    req.TeamID,
		AccessKey: req.AccessKey,
	}

	user, token, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailExists):
			log.Printf("email conflict in Register: email=%s err=%v", req.Email, err)
			response.Error(c, http.StatusConflict, "email_already_exists", "Указанный email уже используется", nil)
		case errors.Is(err, repo.ErrUsernameExists):
			log.Printf("username conflict in Register: username=%s err=%v", req.Username, err)
			response.Error(c, http.StatusConflict, "username_already_exists", "Указанный логин уже используется", nil)
		default:
			log.Printf("internal error in Register: email=%s username=%s err=%v", req.Email, req.Username, err)
			response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Login обрабатывает вход пользователя по логину/паролю.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidCredentials) {
			// Не раскрываем, что именно неверно
			response.Error(c, http.StatusUnauthorized, "invalid_credentials", "Неверный логин или пароль", nil)
			return
		}
		log.Printf("internal error in Login: username=%s err=%v", req.Username, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Logout помечает сессию пользователя завершённой.
func (h *Handler) Logout(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), id.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user_not_found", "Пользователь не найден", nil)
			return
		}
		log.Printf("internal error in Logout: user_id=%d err=%v", id.UserID, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me возвращает профиль текущего пользователя вместе с назначенной командой.
func (h *Handler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	user, team, err := h.auth.ProfileWithTeam(c.Request.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user_not_found", "Пользователь не найден", nil)
			return
		}
		log.Printf("internal error in Me: user_id=%d err=%v", id.UserID, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		User: toUserResponse(user),
		Team: team,
	})
}

// UpdateMe применяет частичное обновление профиля текущего пользователя.
func (h *Handler) UpdateMe(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	input := authuc.ProfileUpdateInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Club:            req.Club,
		TeamID:          req.TeamID,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), id.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			response.Error(c, http.StatusNotFound, "user_not_found", "Пользователь не найден", nil)
		case errors.Is(err, repo.ErrEmailExists):
			response.Error(c, http.StatusConflict, "email_already_exists", "Указанный email уже используется", nil)
		case errors.Is(err, authuc.ErrCurrentPasswordInvalid):
			response.Error(c, http.StatusBadRequest, "invalid_current_password", "Текущий пароль указан неверно", nil)
		default:
			log.Printf("internal error in UpdateMe: user_id=%d err=%v", id.UserID, err)
			response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		}
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
