package http

import (
	"github.com/gin-gonic/gin"

	"github.com/s4daharu/novel-apps-sub001/internal/audit"
	"github.com/s4daharu/novel-apps-sub001/internal/services"
)

// RouterConfig carries all router dependencies, improving testability
// and reducing parameter count.
type RouterConfig struct {
	Service        *services.ConversionService
	Auditor        *audit.Auditor
	AuditDir       string
	MaxArchiveSize int64
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.AuditDir, cfg.Version)
	router.GET("/health", healthController.Status)

	convertController := NewBackupConvertController(cfg.Service, cfg.Auditor, cfg.MaxArchiveSize)
	api := router.Group("/api")
	api.POST("/backup/from-zip", convertController.Convert)

	return router
}
