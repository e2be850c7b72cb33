package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests for asset satellites.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(assetService portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: assetService}
}

func registerEntityAssetRoutes(entities *gin.RouterGroup, assetSvc portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetSvc)

	entities.POST("/:entityID/assets", h.acquireAsset)
	entities.GET("/:entityID/assets", h.listAssetValuations)
}

func registerAssetRoutes(rg *gin.RouterGroup, assetSvc portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetSvc)

	assets := rg.Group("/assets")
	{
		assets.GET("/:assetID/valuation", h.getAssetValuation)
		assets.POST("/:assetID/dispose", h.disposeAsset)
	}
}

// acquireAsset godoc
// @Summary Acquire an asset
// @Description Records an ASSET_ACQUIRED event and the asset record in one atomic operation
// @Tags assets
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param asset body dto.AcquireAssetRequest true "Asset"
// @Success 201 {object} domain.Asset
// @Router /entities/{entityID}/assets [post]
func (h *assetHandler) acquireAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AcquireAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AcquireAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.AcquireAsset(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "acquire asset")
		return
	}

	logger.Info("Asset acquired", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, asset)
}

// listAssetValuations godoc
// @Summary List asset valuations
// @Description Lists an entity's assets valued as of a date (default now)
// @Tags assets
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param asOf query string false "Valuation date (YYYY-MM-DD)"
// @Param includeDisposed query bool false "Include disposed assets"
// @Success 200 {array} domain.AssetValuation
// @Router /entities/{entityID}/assets [get]
func (h *assetHandler) listAssetValuations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}
	includeDisposed := c.Query("includeDisposed") == "true"

	valuations, err := h.assetService.ListAssetValuations(c.Request.Context(), ownerUserID, c.Param("entityID"), asOf, includeDisposed)
	if err != nil {
		respondServiceError(c, logger, err, "list asset valuations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": valuations})
}

// getAssetValuation godoc
// @Summary Get an asset valuation
// @Description Returns the asset with accumulated depreciation and book value as of a date
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param asOf query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} domain.AssetValuation
// @Router /assets/{assetID}/valuation [get]
func (h *assetHandler) getAssetValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}

	valuation, err := h.assetService.GetAssetValuation(c.Request.Context(), ownerUserID, c.Param("assetID"), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "get asset valuation")
		return
	}

	c.JSON(http.StatusOK, valuation)
}

// disposeAsset godoc
// @Summary Dispose of an asset
// @Description Records an ASSET_DISPOSED event for the proceeds and closes the asset
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param disposal body dto.DisposeAssetRequest true "Disposal"
// @Success 201 {object} domain.EconomicEvent
// @Router /assets/{assetID}/dispose [post]
func (h *assetHandler) disposeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DisposeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for DisposeAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.assetService.DisposeAsset(c.Request.Context(), ownerUserID, c.Param("assetID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "dispose asset")
		return
	}

	logger.Info("Asset disposed", slog.String("asset_id", c.Param("assetID")), slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, event)
}

// parseDateQuery reads a YYYY-MM-DD query parameter, falling back to def when
// absent. On a malformed value it writes a 400 and reports false.
func parseDateQuery(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}
