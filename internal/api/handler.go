package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sales-browser/internal/service"
	"sales-browser/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains HTTP handlers
type Handler struct {
	salesService *service.SalesService
	db           Pinger
	limits       PageLimits
	logger       *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(salesService *service.SalesService, db Pinger, limits PageLimits) *Handler {
	return &Handler{
		salesService: salesService,
		db:           db,
		limits:       limits,
		logger:       util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(loggingMiddleware(h.logger))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/sales", h.listSales)
		api.GET("/filter-options", h.filterOptions)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck reports ready only while the database answers
func (h *Handler) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"time":   time.Now().Unix(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listSales handles the paginated sales query
func (h *Handler) listSales(c *gin.Context) {
	params, err := parseListSalesParams(c, h.limits)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			util.RequestValidationFailures.WithLabelValues(verr.Field).Inc()
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	resp, err := h.salesService.ListSales(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Error fetching sales",
			zap.String("request_id", requestID(c)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch sales data",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// filterOptions handles the distinct filter values query
func (h *Handler) filterOptions(c *gin.Context) {
	options, err := h.salesService.GetFilterOptions(c.Request.Context())
	if err != nil {
		h.logger.Error("Error fetching filter options",
			zap.String("request_id", requestID(c)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch filter options",
		})
		return
	}

	c.JSON(http.StatusOK, options)
}
