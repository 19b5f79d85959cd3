package router

import (
	"errors"
	"strconv"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dealerreview/internal/auth"
	"dealerreview/internal/logger"
	"dealerreview/internal/metrics"
	"dealerreview/internal/service"
)

// sessionMiddleware resolves the caller's session from the session cookie.
// A missing, invalid or revoked token leaves the request anonymous.
func sessionMiddleware(tokens *auth.SessionTokenService, authService service.AuthService, log logger.ILogger) []echo.MiddlewareFunc {
	parseToken := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ContextKey:  auth.TokenContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Parse(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})

	resolveSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(auth.TokenContextKey).(*auth.Claims)
			if !ok {
				return next(c)
			}

			session, err := authService.ResolveSession(c.Request().Context(), claims.ID)
			switch {
			case err == nil:
				c.Set(auth.SessionContextKey, session)
			case !errors.Is(err, auth.ErrSessionNotFound):
				log.Warning("session lookup failed", logger.String("session_id", claims.ID), logger.Error(err))
			}
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{parseToken, resolveSession}
}

func requestLogger(log logger.ILogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []logger.Field{
				logger.String("method", v.Method),
				logger.String("uri", v.URI),
				logger.Int("status", v.Status),
				logger.Duration("latency", v.Latency),
				logger.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, logger.Error(v.Error))
			}
			if v.Status >= 500 {
				log.Error("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// instrument records request counts and latency by route template.
func instrument(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = 500
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start))
			return err
		}
	}
}
