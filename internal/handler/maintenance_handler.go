package handler

import (
	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/middleware"
	"github.com/devranjit/salontraining-server-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles shared-secret guarded maintenance triggers
type MaintenanceHandler struct {
	bin *service.RecycleBinService
}

// NewMaintenanceHandler creates a MaintenanceHandler
func NewMaintenanceHandler(bin *service.RecycleBinService) *MaintenanceHandler {
	return &MaintenanceHandler{bin: bin}
}

// Sweep handles POST /api/maintenance/recycle-bin/sweep. Idempotent:
// overlapping schedulers hitting it back to back purge each expired
// item exactly once.
func (h *MaintenanceHandler) Sweep(c *gin.Context) {
	result, err := h.bin.Sweep(c.Request.Context())
	if err != nil {
		respondError(c, err, "Sweep failed")
		return
	}
	middleware.RecordSweep(result.Warned, result.Purged)
	common.SuccessResponse(c, result)
}
