package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mosaicerp/mosaic_backend/config"
	"github.com/mosaicerp/mosaic_backend/i18n"
	"github.com/mosaicerp/mosaic_backend/middlewares"
	"github.com/mosaicerp/mosaic_backend/reports"
	"github.com/mosaicerp/mosaic_backend/utils"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8080"

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()
	router := newRouter(logger)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithField("error", err.Error()).Fatal("server stopped")
		}
	}()

	// Listen first, connect after: the container has to answer health checks
	// before the database is reachable.
	config.ConnectDatabaseWithRetry()
	config.ConnectRedis()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithField("error", err.Error()).Error("shutdown failed")
	}
}

func newRouter(logger *logrus.Logger) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Correlation-Id")
	router.Use(cors.New(corsConfig))
	router.Use(middlewares.CorrelationMiddleware())
	router.Use(middlewares.AuthMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reportGroup := router.Group("/reports")
	{
		reportGroup.GET("/finance-robot", func(c *gin.Context) {
			report, err := reports.GetFinanceRobotReport(c.Request.Context())
			if err != nil {
				respondReportError(c, logger, "GetFinanceRobotReport", err)
				return
			}
			c.JSON(http.StatusOK, report)
		})

		reportGroup.GET("/health-check", func(c *gin.Context) {
			report, err := reports.GetHealthCheckReport(c.Request.Context())
			if err != nil {
				respondReportError(c, logger, "GetHealthCheckReport", err)
				return
			}
			c.JSON(http.StatusOK, report)
		})

		reportGroup.GET("/health-check/export", func(c *gin.Context) {
			f, err := reports.ExportHealthCheckExcel(c.Request.Context())
			if err != nil {
				respondReportError(c, logger, "ExportHealthCheckExcel", err)
				return
			}
			c.Header("Content-Disposition", `attachment; filename="health-check.xlsx"`)
			c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			if err := f.Write(c.Writer); err != nil {
				config.LogError(logger, "server", "ExportHealthCheckExcel", "write response", nil, err)
			}
		})

		reportGroup.GET("/cashflow-forecast", func(c *gin.Context) {
			forecast, err := reports.GetCashFlowForecast(c.Request.Context())
			if err != nil {
				respondReportError(c, logger, "GetCashFlowForecast", err)
				return
			}
			c.JSON(http.StatusOK, forecast)
		})

		reportGroup.POST("/translation", func(c *gin.Context) {
			var req struct {
				Source      map[string]any `json:"source" binding:"required"`
				Translation map[string]any `json:"translation" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, i18n.Analyze(req.Source, req.Translation))
		})
	}

	return router
}

func respondReportError(c *gin.Context, logger *logrus.Logger, funcName string, err error) {
	if errors.Is(err, utils.ErrorBusinessIdRequired) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	config.LogError(logger, "server", funcName, "generate report", nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
}
