package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dealerreview/docs"
	"dealerreview/internal/auth"
	"dealerreview/internal/config"
	"dealerreview/internal/handler"
	"dealerreview/internal/logger"
	"dealerreview/internal/metrics"
	"dealerreview/internal/service"
)

// BasePath is the prefix every API route is mounted under.
const BasePath = "/djangoapp"

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Logger      logger.ILogger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Tokens      *auth.SessionTokenService
	AuthService service.AuthService

	AuthHandler    *handler.AuthHandler
	DealerHandler  *handler.DealerHandler
	ReviewHandler  *handler.ReviewHandler
	CatalogHandler *handler.CatalogHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, deps Deps) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.Recover())
	e.Use(instrument(deps.Metrics))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if deps.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, sessionMiddleware(deps.Tokens, deps.AuthService, deps.Logger)...)

	// Identity
	api.POST("/login", deps.AuthHandler.Login)
	api.GET("/logout", deps.AuthHandler.Logout)
	api.POST("/logout", deps.AuthHandler.Logout)
	api.POST("/register", deps.AuthHandler.Register)

	// Dealers and reviews
	api.GET("/get_dealers", deps.DealerHandler.ListDealers)
	api.GET("/get_dealers/:state", deps.DealerHandler.ListDealers)
	api.GET("/dealer/:id", deps.DealerHandler.GetDealer)
	api.GET("/reviews/dealer/:id", deps.DealerHandler.DealerReviews)
	api.GET("/analyze/:text", deps.DealerHandler.AnalyzeSentiment)
	api.POST("/add_review", deps.ReviewHandler.AddReview)

	// Catalog
	api.GET("/get_cars", deps.CatalogHandler.GetCars)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
