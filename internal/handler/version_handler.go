package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/middleware"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/devranjit/salontraining-server-sub001/internal/service"
	"github.com/devranjit/salontraining-server-sub001/pkg/cache"
	"github.com/gin-gonic/gin"
)

// VersionHandler handles admin version history endpoints
type VersionHandler struct {
	versions *service.VersionService
	cache    *cache.Service
}

// NewVersionHandler creates a VersionHandler
func NewVersionHandler(versions *service.VersionService, cacheSvc *cache.Service) *VersionHandler {
	return &VersionHandler{versions: versions, cache: cacheSvc}
}

// ListForEntity handles GET /api/admin/versions/:type/:id
func (h *VersionHandler) ListForEntity(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entity id", err)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = common.NormalizePagination(page, limit)

	versions, total, err := h.versions.List(c.Request.Context(), registry.EntityType(c.Param("type")), entityID, page, limit)
	if err != nil {
		respondError(c, err, "Failed to list versions")
		return
	}
	common.SuccessWithMeta(c, versions, common.NewMeta(page, limit, total))
}

// ListRecent handles GET /api/admin/versions/recent
func (h *VersionHandler) ListRecent(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = common.NormalizePagination(page, limit)

	filter := repository.VersionFilter{
		EntityType: c.Query("entity_type"),
		ChangeType: c.Query("change_type"),
		Page:       page,
		Limit:      limit,
	}
	versions, total, err := h.versions.ListRecent(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list recent versions")
		return
	}
	common.SuccessWithMeta(c, versions, common.NewMeta(filter.Page, filter.Limit, total))
}

// Get handles GET /api/admin/versions/item/:versionId
func (h *VersionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("versionId"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid version id", err)
		return
	}

	version, err := h.versions.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Version not found")
		return
	}
	common.SuccessResponse(c, version)
}

// Restore handles POST /api/admin/versions/item/:versionId/restore
func (h *VersionHandler) Restore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("versionId"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid version id", err)
		return
	}

	record, err := h.versions.Restore(c.Request.Context(), id, service.RestoreOptions{
		RestoredBy:      middleware.GetUserID(c),
		RestoredByName:  middleware.GetUserName(c),
		RestoredByEmail: middleware.GetUserEmail(c),
	})
	if err != nil {
		respondError(c, err, "Failed to restore version")
		return
	}
	common.SuccessResponse(c, record)
}

// Compare handles GET /api/admin/versions/compare?from=&to=
func (h *VersionHandler) Compare(c *gin.Context) {
	from, err1 := strconv.ParseUint(c.Query("from"), 10, 64)
	to, err2 := strconv.ParseUint(c.Query("to"), 10, 64)
	if err1 != nil || err2 != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "from and to version ids are required", nil)
		return
	}

	diffs, err := h.versions.Compare(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to compare versions")
		return
	}
	if diffs == nil {
		diffs = []domain.FieldDiff{}
	}
	common.SuccessResponse(c, diffs)
}

// Stats handles GET /api/admin/versions/stats
func (h *VersionHandler) Stats(c *gin.Context) {
	const cacheKey = "lifecycle:version_stats"

	var stats domain.VersionStats
	if h.cache.GetJSON(c.Request.Context(), cacheKey, &stats) {
		common.SuccessResponse(c, stats)
		return
	}

	fresh, err := h.versions.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute stats")
		return
	}
	h.cache.SetJSON(c.Request.Context(), cacheKey, fresh, 5*time.Minute)
	common.SuccessResponse(c, fresh)
}
