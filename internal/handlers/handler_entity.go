package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entityHandler handles HTTP requests for organizational books.
type entityHandler struct {
	entityService portssvc.EntitySvcFacade
}

func newEntityHandler(entityService portssvc.EntitySvcFacade) *entityHandler {
	return &entityHandler{entityService: entityService}
}

func registerEntityRoutes(
	rg *gin.RouterGroup,
	entitySvc portssvc.EntitySvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	assetSvc portssvc.AssetSvcFacade,
	liabilitySvc portssvc.LiabilitySvcFacade,
	snapshotSvc portssvc.SnapshotSvcFacade,
	reportingSvc portssvc.ReportingSvcFacade,
) {
	h := newEntityHandler(entitySvc)

	entities := rg.Group("/entities")
	{
		entities.POST("", h.createEntity)
		entities.GET("", h.listEntities)
		entities.GET("/:entityID", h.getEntity)
		entities.PATCH("/:entityID", h.renameEntity)
		entities.DELETE("/:entityID", h.deleteEntity)
	}

	registerEntityLedgerRoutes(entities, ledgerSvc)
	registerEntityAssetRoutes(entities, assetSvc)
	registerEntityLiabilityRoutes(entities, liabilitySvc)
	registerReportingRoutes(entities, snapshotSvc, reportingSvc)
}

// createEntity godoc
// @Summary Create an entity
// @Description Creates a new organizational book owned by the caller
// @Tags entities
// @Accept json
// @Produce json
// @Param entity body dto.CreateEntityRequest true "Entity"
// @Success 201 {object} domain.Entity
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /entities [post]
func (h *entityHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), ownerUserID, req)
	if err != nil {
		respondServiceError(c, logger, err, "create entity")
		return
	}

	logger.Info("Entity created", slog.String("entity_id", entity.EntityID))
	c.JSON(http.StatusCreated, entity)
}

// listEntities godoc
// @Summary List entities
// @Description Lists every entity owned by the caller
// @Tags entities
// @Produce json
// @Success 200 {array} domain.Entity
// @Router /entities [get]
func (h *entityHandler) listEntities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entities, err := h.entityService.ListEntities(c.Request.Context(), ownerUserID)
	if err != nil {
		respondServiceError(c, logger, err, "list entities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entities": entities})
}

// getEntity godoc
// @Summary Get an entity
// @Tags entities
// @Produce json
// @Param entityID path string true "Entity ID"
// @Success 200 {object} domain.Entity
// @Failure 404 {object} map[string]string "Not found"
// @Router /entities/{entityID} [get]
func (h *entityHandler) getEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entity, err := h.entityService.GetEntity(c.Request.Context(), ownerUserID, c.Param("entityID"))
	if err != nil {
		respondServiceError(c, logger, err, "get entity")
		return
	}

	c.JSON(http.StatusOK, entity)
}

// renameEntity godoc
// @Summary Rename an entity
// @Description Updates the display name, the only mutable entity field
// @Tags entities
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param rename body dto.RenameEntityRequest true "New name"
// @Success 200 {object} domain.Entity
// @Router /entities/{entityID} [patch]
func (h *entityHandler) renameEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RenameEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RenameEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entity, err := h.entityService.RenameEntity(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "rename entity")
		return
	}

	c.JSON(http.StatusOK, entity)
}

// deleteEntity godoc
// @Summary Delete an entity
// @Description Deletes an entity and its entire event history. Requires confirm=<entityID> as a query parameter.
// @Tags entities
// @Param entityID path string true "Entity ID"
// @Param confirm query string true "Must equal the entity ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Missing confirmation"
// @Router /entities/{entityID} [delete]
func (h *entityHandler) deleteEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	// Destructive and unrecoverable, so the caller has to echo the ID back.
	if c.Query("confirm") != entityID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion requires confirm=" + entityID})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.entityService.DeleteEntity(c.Request.Context(), ownerUserID, entityID); err != nil {
		respondServiceError(c, logger, err, "delete entity")
		return
	}

	logger.Info("Entity deleted", slog.String("entity_id", entityID))
	c.Status(http.StatusNoContent)
}
