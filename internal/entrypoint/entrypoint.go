package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/s4daharu/novel-apps-sub001/internal/audit"
	"github.com/s4daharu/novel-apps-sub001/internal/config"
	http_controllers "github.com/s4daharu/novel-apps-sub001/internal/http"
	"github.com/s4daharu/novel-apps-sub001/internal/services"
)

// Serve starts the HTTP server and blocks until an interrupt arrives,
// then shuts down gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the conversion service, audit trail and router, then serves.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting novel-apps v%s", version)

	var auditor *audit.Auditor
	if cfg.Audit.Enabled {
		auditor = audit.NewAuditor(cfg.Audit.Dir)
	} else {
		log.Printf("WARNING: audit trail is disabled; conversion requests will not be recorded")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Service:        services.NewConversionService(),
		Auditor:        auditor,
		AuditDir:       cfg.Audit.Dir,
		MaxArchiveSize: cfg.Upload.MaxArchiveBytes,
		Version:        version,
	})

	Serve(router, cfg)
}
