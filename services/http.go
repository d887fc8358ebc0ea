package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/lac-hong-legacy/name_api/docs"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/middleware"
	"github.com/lac-hong-legacy/name_api/services/handlers"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/rs/zerolog/log"
)

type HttpService struct {
	appContext.DefaultService

	authMw          *AuthMiddleware
	rateLimitSvc    *RateLimitService
	localizationSvc *LocalizationService
	favoriteSvc     *FavoriteService
	monitoringSvc   *MonitoringService
	shield          *middleware.BurstShield

	port           int
	allowedOrigin  string
	proxyHeader    string
	trustedProxies []string
	app            *fiber.App
	stopJanitor    context.CancelFunc
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *appContext.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.allowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	if svc.allowedOrigin == "" {
		svc.allowedOrigin = "*"
	}

	// forwarding headers are only honored from these peers
	svc.proxyHeader = os.Getenv("PROXY_HEADER")
	svc.trustedProxies = shared.ParseTrustedProxies(os.Getenv("TRUSTED_PROXIES"))

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authMw = svc.Service(AUTH_MIDDLEWARE_SVC).(*AuthMiddleware)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.localizationSvc = svc.Service(LOCALIZATION_SVC).(*LocalizationService)
	svc.favoriteSvc = svc.Service(FAVORITE_SVC).(*FavoriteService)
	if monitoring, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoringSvc = monitoring
	}

	svc.shield = middleware.BurstShieldFromEnv()
	if svc.shield != nil {
		var janitorCtx context.Context
		janitorCtx, svc.stopJanitor = context.WithCancel(context.Background())
		svc.shield.StartJanitor(janitorCtx, 2*time.Minute)
	}

	svc.app = svc.newApp()

	log.Info().Int("port", svc.port).Msg("HTTP server listening")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.stopJanitor != nil {
		svc.stopJanitor()
	}
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) newApp() *fiber.App {
	app := fiber.New(shared.ProxyConfig(fiber.Config{
		AppName:               SERVICE_NAME,
		DisableStartupMessage: true,
		JSONEncoder:           shared.JSONMarshal,
		JSONDecoder:           shared.JSONUnmarshal,
		ErrorHandler:          svc.HandleError,
	}, svc.proxyHeader, svc.trustedProxies))

	app.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: svc.allowedOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))
	if svc.monitoringSvc != nil {
		app.Use(MonitoringMiddleware(svc.monitoringSvc))
	}
	if svc.shield != nil {
		app.Use(svc.shield.Handler())
	}

	localizationHandler := handlers.NewLocalizationHandler(svc.localizationSvc)
	favoriteHandler := handlers.NewFavoriteHandler(svc.favoriteSvc)
	rateLimitHandler := handlers.NewRateLimitHandler(svc.rateLimitSvc)

	//Validation endpoints
	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1", svc.authMw.OptionalAuth())
	v1.Get("/ping", svc.ping)
	v1.Get("/health", svc.health)

	// every localization, feed and favorites call consumes a slot
	gate := svc.rateLimitSvc.RateLimit()

	localizations := v1.Group("/localizations", gate)
	localizations.Post("/", localizationHandler.Create)
	localizations.Get("/recent", localizationHandler.ListRecent)
	localizations.Get("/:id", localizationHandler.GetByID)

	favorites := v1.Group("/favorites", gate)
	favorites.Post("/", favoriteHandler.Add)
	favorites.Delete("/:favoriteId", favoriteHandler.Remove)

	users := v1.Group("/users", gate)
	users.Get("/:userId/favorites", favoriteHandler.ListForUser)

	v1.Post("/rate-limit/check", rateLimitHandler.Check)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(nil, "Page not found")
	})

	return app
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseOK(c, "pong")
}

// @Summary Health
// @Description Reports service liveness
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (svc *HttpService) health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

func (svc *HttpService) HandleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok && appErr.StatusCode >= 500 {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return shared.ResponseError(c, err)
}
