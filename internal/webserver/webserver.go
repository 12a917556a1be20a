package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/GuimaraesZ/workshop/config"
)

// WebServer wraps the echo instance with the application's middleware stack:
// jsoniter serialization, CORS, static uploads and the global error boundary.
type WebServer struct {
	root *echo.Echo
	cfg  *config.AppConfig
}

func NewWebServer(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.System.Debug
	e.JSONSerializer = JsoniterSerializer{}
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-User-Id"},
	}))
	e.Use(requestLogger)

	// Uploaded images are served straight from disk.
	e.Static("/uploads", cfg.Web.UploadDir)

	return &WebServer{root: e, cfg: cfg}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		zap.L().Info("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	}
}

// Echo exposes the underlying router for route registration and tests.
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

func (ws *WebServer) GET(path string, h echo.HandlerFunc)    { ws.root.GET(path, h) }
func (ws *WebServer) POST(path string, h echo.HandlerFunc)   { ws.root.POST(path, h) }
func (ws *WebServer) PUT(path string, h echo.HandlerFunc)    { ws.root.PUT(path, h) }
func (ws *WebServer) DELETE(path string, h echo.HandlerFunc) { ws.root.DELETE(path, h) }

// Start blocks serving HTTP until ctx is cancelled, then shuts down
// gracefully.
func (ws *WebServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", ws.cfg.Web.Host, ws.cfg.Web.Port)
	zap.S().Infof("starting webserver on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := ws.root.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return ws.root.Shutdown(shutdownCtx)
	}
}
