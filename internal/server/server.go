package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"footballer-app/internal/cleanup"
	"footballer-app/internal/config"
	"footballer-app/internal/database"
	"footballer-app/internal/domain/metric"
	"footballer-app/internal/domain/user"
	authhandler "footballer-app/internal/handler/auth"
	"footballer-app/internal/handler/health"
	metrichandler "footballer-app/internal/handler/metric"
	"footballer-app/internal/handler/middleware"
	reporthandler "footballer-app/internal/handler/report"
	rosterhandler "footballer-app/internal/handler/roster"
	"footballer-app/internal/render"
	pgrepo "footballer-app/internal/repository/postgres"
	authuc "footballer-app/internal/usecase/auth"
	"footballer-app/internal/usecase/authz"
	metricuc "footballer-app/internal/usecase/metric"
	rosteruc "footballer-app/internal/usecase/roster"
	jwtsvc "footballer-app/pkg/jwt"
	"footballer-app/pkg/logger"
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config

	jwtService jwtsvc.Service
	janitor    *cleanup.Janitor

	authHandler        *authhandler.Handler
	rosterHandler      *rosterhandler.Handler
	physicalHandler    *metrichandler.PhysicalHandler
	conditionalHandler *metrichandler.ConditionalHandler
	enduranceHandler   *metrichandler.EnduranceHandler
	reportHandler      *reporthandler.Handler
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config, db *database.DB) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
	}

	// Инициализируем зависимости один раз
	gormDB := db.DB
	appLog := logger.Default()

	userRepo := pgrepo.NewUserRepository(gormDB)
	rosterRepo := pgrepo.NewRosterRepository(gormDB)
	physicalRepo := pgrepo.NewMetricRepository[metric.Physical](gormDB)
	conditionalRepo := pgrepo.NewMetricRepository[metric.Conditional](gormDB)
	enduranceRepo := pgrepo.NewMetricRepository[metric.Endurance](gormDB)

	s.jwtService = jwtsvc.NewService(&cfg.JWT)

	engine := authz.NewEngine(rosterRepo)

	authService := authuc.NewService(userRepo, rosterRepo, s.jwtService)
	rosterService := rosteruc.NewService(rosterRepo, engine)
	physicalService := metricuc.NewService[metric.Physical, metric.PhysicalPatch](metric.DomainPhysical, physicalRepo, engine)
	conditionalService := metricuc.NewService[metric.Conditional, metric.ConditionalPatch](metric.DomainConditional, conditionalRepo, engine)
	enduranceService := metricuc.NewService[metric.Endurance, metric.EndurancePatch](metric.DomainEndurance, enduranceRepo, engine)

	renderer := render.NewHTTPRenderer(&cfg.Report)

	s.authHandler = authhandler.NewHandler(authService)
	s.rosterHandler = rosterhandler.NewHandler(rosterService)
	s.physicalHandler = metrichandler.NewPhysicalHandler(physicalService)
	s.conditionalHandler = metrichandler.NewConditionalHandler(conditionalService)
	s.enduranceHandler = metrichandler.NewEnduranceHandler(enduranceService)
	s.reportHandler = reporthandler.NewHandler(physicalService, conditionalService, enduranceService, renderer)

	s.janitor = cleanup.NewJanitor(userRepo, appLog, &cfg.Cleanup)

	// Настраиваем middleware и роуты
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery middleware - должен быть первым для перехвата паник
	s.router.Use(middleware.Recovery())

	// RequestID middleware - идентификатор каждого запроса
	s.router.Use(middleware.RequestID())

	// Logger middleware - логирование всех запросов
	s.router.Use(middleware.LoggerStructured())

	// CORS middleware - настройка CORS
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupAuthRoutes()
	s.setupRosterRoutes()
	s.setupMetricRoutes()
	s.setupReportRoutes()
}

// setupHealthRoutes настраивает health-check эндпоинты.
func (s *Server) setupHealthRoutes() {
	healthHandler := health.NewHandler(s.db, s.cfg.AppEnv)
	// GET /health — базовый health-check сервера (жив ли процесс).
	s.router.GET("/health", healthHandler.Health)
	// GET /health/db — проверка доступности базы данных.
	s.router.GET("/health/db", healthHandler.HealthDB)
}

// setupAuthRoutes настраивает эндпоинты аутентификации и профиля.
func (s *Server) setupAuthRoutes() {
	v1 := s.router.Group("/api/v1")

	// GET /api/v1/ — корневой эндпоинт API v1, возвращает версию и базовую информацию.
	v1.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Footballer App API v1",
			"version": "1.0.0",
		})
	})

	authGroup := v1.Group("/auth")
	{
		// POST /api/v1/auth/register — регистрация нового пользователя.
		authGroup.POST("/register", s.authHandler.Register)
		// POST /api/v1/auth/login — вход по логину/паролю.
		authGroup.POST("/login", s.authHandler.Login)
	}

	protected := v1.Group("/auth")
	protected.Use(middleware.Auth(s.jwtService))
	{
		// POST /api/v1/auth/logout — завершение сессии текущего пользователя.
		protected.POST("/logout", s.authHandler.Logout)
	}

	userGroup := v1.Group("/users")
	userGroup.Use(middleware.Auth(s.jwtService))
	{
		// GET /api/v1/users/me — профиль текущего пользователя с его командой.
		userGroup.GET("/me", s.authHandler.Me)
		// PUT /api/v1/users/me — частичное обновление профиля.
		userGroup.PUT("/me", s.authHandler.UpdateMe)
	}
}

// setupRosterRoutes настраивает эндпоинты справочника лиг/команд/футболистов.
func (s *Server) setupRosterRoutes() {
	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.Auth(s.jwtService))

	// GET /api/v1/leagues — список всех лиг.
	v1.GET("/leagues", s.rosterHandler.ListLeagues)
	// GET /api/v1/leagues/:league_id/teams — команды лиги, доступные пользователю.
	v1.GET("/leagues/:league_id/teams", s.rosterHandler.ListTeams)
	// GET /api/v1/teams/:team_id/footballers — состав команды.
	v1.GET("/teams/:team_id/footballers", s.rosterHandler.ListFootballers)
	// GET /api/v1/footballers/:footballer_id — карточка футболиста.
	v1.GET("/footballers/:footballer_id", s.rosterHandler.GetFootballer)
}

// setupMetricRoutes настраивает эндпоинты трёх доменов измерений.
// Схема роутов одинакова для каждого домена.
func (s *Server) setupMetricRoutes() {
	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.Auth(s.jwtService))

	registerMetricRoutes(v1.Group("/physical"), s.physicalHandler)
	registerMetricRoutes(v1.Group("/conditional"), s.conditionalHandler)
	registerMetricRoutes(v1.Group("/endurance"), s.enduranceHandler)
}

// registerMetricRoutes вешает стандартный набор операций домена на группу.
// Операции записи доступны только тренерам (администраторы проходят всегда).
func registerMetricRoutes[E metric.Entry, P metric.Patch[E]](g *gin.RouterGroup, h *metrichandler.Handler[E, P]) {
	// GET /footballers/:footballer_id — записи футболиста за период (?from=&to=).
	g.GET("/footballers/:footballer_id", h.Series)
	// GET /footballers/:footballer_id/by-date/:date — запись за календарный день.
	g.GET("/footballers/:footballer_id/by-date/:date", h.ByDate)
	// GET /footballers/:footballer_id/history — последние записи (?limit=).
	g.GET("/footballers/:footballer_id/history", h.History)

	coachOnly := middleware.RequireRole(string(user.RoleCoach))
	// POST /footballers/:footballer_id — новая запись за день (?date=, по умолчанию сегодня).
	g.POST("/footballers/:footballer_id", coachOnly, h.Add)
	// PUT /entries/:entry_id — частичное обновление записи.
	g.PUT("/entries/:entry_id", coachOnly, h.Update)
	// DELETE /entries/:entry_id — удаление записи.
	g.DELETE("/entries/:entry_id", coachOnly, h.Delete)
}

// setupReportRoutes настраивает эндпоинты построения отчётов.
func (s *Server) setupReportRoutes() {
	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.Auth(s.jwtService))

	// POST /api/v1/reports/:domain — построить график по записям домена.
	v1.POST("/reports/:domain", s.reportHandler.Build)
}

// Start запускает HTTP сервер с graceful shutdown
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Запускаем фоновую очистку устаревших сессий
	if err := s.janitor.Start(); err != nil {
		return fmt.Errorf("ошибка запуска планировщика очистки: %w", err)
	}

	// Канал для получения сигналов ОС
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Канал для ошибок запуска сервера
	serverErr := make(chan error, 1)

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("HTTP сервер запущен на %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	// Ожидаем либо сигнал для graceful shutdown, либо ошибку запуска
	select {
	case err := <-serverErr:
		log.Printf("Ошибка запуска сервера: %v", err)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		s.janitor.Stop()
		return err
	case sig := <-quit:
		log.Printf("Получен сигнал %v для остановки сервера...", sig)
	}

	// Создаем контекст с таймаутом для graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Останавливаем сервер и фоновые задачи
	s.janitor.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Println("HTTP сервер успешно остановлен")
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
