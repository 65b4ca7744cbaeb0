package handler

import (
	"net/http"
	"strconv"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/middleware"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// EntityHandler is the generic admin surface over registered entity
// kinds: load, update, moderate, soft-delete. Public CRUD lives in the
// site API, not here.
type EntityHandler struct {
	entities *service.EntityService
}

// NewEntityHandler creates an EntityHandler
func NewEntityHandler(entities *service.EntityService) *EntityHandler {
	return &EntityHandler{entities: entities}
}

func (h *EntityHandler) parseTarget(c *gin.Context) (registry.EntityType, uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entity id", err)
		return "", 0, false
	}
	return registry.EntityType(c.Param("type")), id, true
}

func actorFrom(c *gin.Context) service.Actor {
	return service.Actor{
		ID:    middleware.GetUserID(c),
		Name:  middleware.GetUserName(c),
		Email: middleware.GetUserEmail(c),
	}
}

// Get handles GET /api/admin/entities/:type/:id
func (h *EntityHandler) Get(c *gin.Context) {
	entityType, id, ok := h.parseTarget(c)
	if !ok {
		return
	}
	record, err := h.entities.Get(c.Request.Context(), entityType, id)
	if err != nil {
		respondError(c, err, "Failed to load record")
		return
	}
	common.SuccessResponse(c, record)
}

// Update handles PUT /api/admin/entities/:type/:id
func (h *EntityHandler) Update(c *gin.Context) {
	entityType, id, ok := h.parseTarget(c)
	if !ok {
		return
	}

	var fields domain.Snapshot
	if err := c.ShouldBindJSON(&fields); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(fields) == 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "No fields to update", nil)
		return
	}

	record, err := h.entities.Update(c.Request.Context(), entityType, id, fields, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to update record")
		return
	}
	common.SuccessResponse(c, record)
}

// ChangeStatus handles POST /api/admin/entities/:type/:id/status
func (h *EntityHandler) ChangeStatus(c *gin.Context) {
	entityType, id, ok := h.parseTarget(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.entities.ChangeStatus(c.Request.Context(), entityType, id, req.Status, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to change status")
		return
	}
	common.SuccessResponse(c, record)
}

// Delete handles DELETE /api/admin/entities/:type/:id
func (h *EntityHandler) Delete(c *gin.Context) {
	entityType, id, ok := h.parseTarget(c)
	if !ok {
		return
	}

	item, err := h.entities.Delete(c.Request.Context(), entityType, id, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to delete record")
		return
	}
	common.SuccessResponse(c, gin.H{
		"message":    "Record moved to recycle bin",
		"item_id":    item.ID,
		"expires_at": item.ExpiresAt,
	})
}
