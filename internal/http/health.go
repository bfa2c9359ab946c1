package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	auditDir string
	version  string
}

func NewHealthController(auditDir, version string) *HealthController {
	return &HealthController{
		auditDir: auditDir,
		version:  version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check the audit directory can be created and written to
	if h.auditDir != "" {
		if err := os.MkdirAll(h.auditDir, 0755); err != nil {
			checks["audit_dir"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["audit_dir"] = "ok"
		}
	} else {
		checks["audit_dir"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
