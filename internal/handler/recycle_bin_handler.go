package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/devranjit/salontraining-server-sub001/internal/service"
	"github.com/devranjit/salontraining-server-sub001/pkg/cache"
	"github.com/gin-gonic/gin"
)

// RecycleBinHandler handles admin recycle bin endpoints
type RecycleBinHandler struct {
	bin   *service.RecycleBinService
	cache *cache.Service
}

// NewRecycleBinHandler creates a RecycleBinHandler
func NewRecycleBinHandler(bin *service.RecycleBinService, cacheSvc *cache.Service) *RecycleBinHandler {
	return &RecycleBinHandler{bin: bin, cache: cacheSvc}
}

// List handles GET /api/admin/recycle-bin
func (h *RecycleBinHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = common.NormalizePagination(page, limit)

	filter := repository.BinFilter{
		EntityType: c.Query("entity_type"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}
	if v := c.Query("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartDate = &t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.AddDate(0, 0, 1).Add(-time.Second)
			filter.EndDate = &end
		}
	}

	items, total, err := h.bin.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list recycle bin")
		return
	}
	common.SuccessWithMeta(c, items, common.NewMeta(filter.Page, filter.Limit, total))
}

// Restore handles POST /api/admin/recycle-bin/:id/restore
func (h *RecycleBinHandler) Restore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid item id", err)
		return
	}

	record, err := h.bin.Restore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to restore item")
		return
	}
	common.SuccessResponse(c, record)
}

// Purge handles DELETE /api/admin/recycle-bin/:id
func (h *RecycleBinHandler) Purge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid item id", err)
		return
	}

	if err := h.bin.Purge(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to permanently delete item")
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Item permanently deleted"})
}

// BulkPurge handles POST /api/admin/recycle-bin/bulk-delete
func (h *RecycleBinHandler) BulkPurge(c *gin.Context) {
	var req struct {
		ItemIDs []uint64 `json:"item_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	purged, failed := h.bin.BulkPurge(c.Request.Context(), req.ItemIDs)
	common.SuccessResponse(c, gin.H{
		"purged": purged,
		"failed": failed,
	})
}

// EntityTypes handles GET /api/admin/recycle-bin/entity-types
func (h *RecycleBinHandler) EntityTypes(c *gin.Context) {
	const cacheKey = "lifecycle:entity_types"

	var types []string
	if !h.cache.GetJSON(c.Request.Context(), cacheKey, &types) {
		for _, t := range h.bin.EntityTypes() {
			types = append(types, string(t))
		}
		h.cache.SetJSON(c.Request.Context(), cacheKey, types, time.Hour)
	}
	common.SuccessResponse(c, types)
}
