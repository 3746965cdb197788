// Package api holds the public HTTP server: routing, middleware and
// the translation of application errors to HTTP responses.
package api

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"

	"github.com/enviark/weather/config"
	weathererr "github.com/enviark/weather/errors"
	"github.com/enviark/weather/metrics"
	"github.com/enviark/weather/providers"
	"github.com/enviark/weather/service"
	"github.com/enviark/weather/web"
)

// Response bodies for the two request-level failures.
const (
	methodNotAllowedBody = "This method is not allowed"
	notFoundBody         = "The page you requested could not be found"
)

// Server represents the public HTTP server and its handlers
type Server struct {
	router      *gin.Engine
	config      *config.Config
	weather     providers.WeatherProvider
	geo         providers.GeoResolver
	httpMetrics *metrics.HTTPMetrics
	httpServer  *http.Server

	// now is replaceable in tests to pin the local date.
	now func() time.Time
}

// NewServer creates and configures the public server.
func NewServer(
	cfg *config.Config,
	tmpl *template.Template,
	weather providers.WeatherProvider,
	geo providers.GeoResolver,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	server := &Server{
		router:      router,
		config:      cfg,
		weather:     weather,
		geo:         geo,
		httpMetrics: metrics.NewHTTPMetrics(),
		now:         time.Now,
	}

	router.Use(gin.Recovery())
	router.Use(server.requestIDMiddleware())
	router.Use(requestLogMiddleware())
	router.Use(server.metricsMiddleware())
	router.Use(methodGuardMiddleware())

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.getWeatherView)
	s.router.GET("/bg-image.jpg", s.getBackgroundImage)
	s.router.GET("/style.css", s.getStyles)
	s.router.GET("/feather.min.js", s.getFeatherScript)

	s.router.NoRoute(func(c *gin.Context) {
		s.handleError(c, weathererr.NewNotFoundError(notFoundBody))
	})
}

// Start begins serving on the configured port. The handler is wrapped
// with gzip response compression for compressible content types.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Server.Port),
		Handler: gzhttp.GzipHandler(s.router),
	}
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// requestIDMiddleware tags every request with a UUID, echoed in the
// X-Request-ID response header and attached to log lines.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}

func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		s.httpMetrics.Record(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// methodGuardMiddleware rejects every non-GET request before any
// other processing.
func methodGuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.String(http.StatusMethodNotAllowed, methodNotAllowedBody)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) getWeatherView(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	location, err := s.geo.Resolve(ctx, c.ClientIP())
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("requesting weather",
		"lat", location.Latitude,
		"lon", location.Longitude,
		"city", location.City,
		"country", location.CountryName,
		"request_id", c.GetString("request_id"),
	)

	units := service.ResolveUnits(c.Query("units"))

	snapshot, err := s.weather.GetSnapshot(ctx, location.Latitude, location.Longitude, units)
	if err != nil {
		s.handleError(c, err)
		return
	}

	view, err := service.BuildTemplateContext(snapshot, *location, s.now(), units)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", view)
}

// getBackgroundImage serves the embedded image matching the client's
// current season. The season depends on the client's hemisphere, so
// this route resolves the location exactly as the weather view does.
func (s *Server) getBackgroundImage(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	location, err := s.geo.Resolve(ctx, c.ClientIP())
	if err != nil {
		s.handleError(c, err)
		return
	}

	season := service.SeasonFor(location.Latitude, s.now().Month())
	c.Data(http.StatusOK, "image/jpeg", web.SeasonImage(season))
}

func (s *Server) getStyles(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", web.Styles)
}

func (s *Server) getFeatherScript(c *gin.Context) {
	c.Data(http.StatusOK, "text/javascript; charset=utf-8", web.FeatherJS)
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.config.Server.RequestTimeout())
}

// handleError maps application errors to HTTP responses. User-visible
// bodies stay terse; the raw error detail only reaches the log.
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case weathererr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case weathererr.MethodNotAllowedError:
			statusCode = http.StatusMethodNotAllowed
			message = appErr.Message
		case weathererr.LocationError:
			statusCode = http.StatusBadGateway
			message = "location could not be determined"
		case weathererr.UpstreamNetworkError, weathererr.UpstreamStatusError, weathererr.UpstreamDecodeError:
			statusCode = http.StatusBadGateway
			message = "weather service unavailable"
		case weathererr.UpstreamTimeoutError:
			statusCode = http.StatusGatewayTimeout
			message = "weather service unavailable"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"status", statusCode,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
		)
	}

	c.String(statusCode, message)
}
