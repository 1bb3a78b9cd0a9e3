package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logandonley/fontlist/internal/app"
	"github.com/logandonley/fontlist/internal/logging"
)

// maxArgsBytes bounds the JSON arguments accepted for one command
const maxArgsBytes = 1 << 20

// RouterConfig holds what the router needs to serve requests
type RouterConfig struct {
	App          *app.App
	AllowOrigins []string
	Logger       *slog.Logger
}

// NewRouter builds the gin engine serving the bridge endpoints
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if len(cfg.AllowOrigins) > 0 {
		router.Use(corsMiddleware(cfg.AllowOrigins))
	}

	h := &handler{app: cfg.App}
	router.GET("/healthz", h.health)
	router.GET("/commands", h.commands)
	router.POST("/invoke/:command", h.invoke)

	return router
}

type handler struct {
	app *app.App
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) health(c *gin.Context) {
	count := 0
	for range h.app.Catalog().All() {
		count++
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "fonts": count})
}

func (h *handler) commands(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Commands())
}

func (h *handler) invoke(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxArgsBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "reading request body: " + err.Error()})
		return
	}
	if len(body) > maxArgsBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return
	}

	var args json.RawMessage
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if !json.Valid(trimmed) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "request body is not valid JSON"})
			return
		}
		args = trimmed
	}

	result, err := h.app.Invoke(c.Request.Context(), c.Param("command"), args)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, app.ErrUnknownCommand) {
			status = http.StatusNotFound
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
