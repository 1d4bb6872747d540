package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"brainvault/internal/config"
	"brainvault/internal/errors"
	"brainvault/internal/handler"
	"brainvault/internal/middleware"
)

const bodyLimit = "12M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *zap.Logger,
	authMiddleware echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	contentHandler *handler.ContentHandler,
	brainHandler *handler.BrainHandler,
) {
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.Validator = handler.NewCustomValidator()

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/signin", authHandler.Signin)
	api.POST("/token/refresh", authHandler.Refresh)
	api.GET("/brain/:shareLink", brainHandler.Get, publicRateLimit(cfg.PublicRateLimit))

	// Secured routes (require JWT authentication)
	secured := api.Group("", authMiddleware)
	secured.POST("/signout", authHandler.Signout)

	secured.POST("/content", contentHandler.Create)
	secured.GET("/content", contentHandler.List)
	secured.DELETE("/content", contentHandler.Delete)
	secured.GET("/content/:id/download", contentHandler.Download)

	secured.POST("/brain/share", brainHandler.Share)
}

// publicRateLimit limits anonymous share link lookups per client IP.
func publicRateLimit(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Message: "unable to identify client",
				Code:    "FORBIDDEN",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Message: "too many requests",
				Code:    "RATE_LIMITED",
			})
		},
	})
}
