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

// liabilityHandler handles HTTP requests for liability satellites.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
}

func newLiabilityHandler(liabilityService portssvc.LiabilitySvcFacade) *liabilityHandler {
	return &liabilityHandler{liabilityService: liabilityService}
}

func registerEntityLiabilityRoutes(entities *gin.RouterGroup, liabilitySvc portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(liabilitySvc)

	entities.POST("/:entityID/liabilities", h.incurLiability)
	entities.GET("/:entityID/liabilities", h.listLiabilityValuations)
}

func registerLiabilityRoutes(rg *gin.RouterGroup, liabilitySvc portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(liabilitySvc)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.GET("/:liabilityID/valuation", h.getLiabilityValuation)
		liabilities.POST("/:liabilityID/payments", h.recordPayment)
	}
}

// incurLiability godoc
// @Summary Incur a liability
// @Description Records a LIABILITY_INCURRED event and the liability record in one atomic operation
// @Tags liabilities
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param liability body dto.IncurLiabilityRequest true "Liability"
// @Success 201 {object} domain.Liability
// @Router /entities/{entityID}/liabilities [post]
func (h *liabilityHandler) incurLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IncurLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for IncurLiability", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.IncurLiability(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "incur liability")
		return
	}

	logger.Info("Liability incurred", slog.String("liability_id", liability.LiabilityID))
	c.JSON(http.StatusCreated, liability)
}

// listLiabilityValuations godoc
// @Summary List liability valuations
// @Description Lists an entity's liabilities with accrued interest as of a date (default now)
// @Tags liabilities
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param asOf query string false "Valuation date (YYYY-MM-DD)"
// @Param includeExtinguished query bool false "Include extinguished liabilities"
// @Success 200 {array} domain.LiabilityValuation
// @Router /entities/{entityID}/liabilities [get]
func (h *liabilityHandler) listLiabilityValuations(c *gin.Context) {
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
	includeExtinguished := c.Query("includeExtinguished") == "true"

	valuations, err := h.liabilityService.ListLiabilityValuations(c.Request.Context(), ownerUserID, c.Param("entityID"), asOf, includeExtinguished)
	if err != nil {
		respondServiceError(c, logger, err, "list liability valuations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liabilities": valuations})
}

// getLiabilityValuation godoc
// @Summary Get a liability valuation
// @Description Returns the liability with accrued interest and outstanding balance as of a date
// @Tags liabilities
// @Produce json
// @Param liabilityID path string true "Liability ID"
// @Param asOf query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} domain.LiabilityValuation
// @Router /liabilities/{liabilityID}/valuation [get]
func (h *liabilityHandler) getLiabilityValuation(c *gin.Context) {
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

	valuation, err := h.liabilityService.GetLiabilityValuation(c.Request.Context(), ownerUserID, c.Param("liabilityID"), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "get liability valuation")
		return
	}

	c.JSON(http.StatusOK, valuation)
}

// recordPayment godoc
// @Summary Record a liability payment
// @Description Records a LIABILITY_SETTLED event; a payment clearing the balance extinguishes the liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param liabilityID path string true "Liability ID"
// @Param payment body dto.LiabilityPaymentRequest true "Payment"
// @Success 201 {object} domain.LiabilityValuation
// @Router /liabilities/{liabilityID}/payments [post]
func (h *liabilityHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LiabilityPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	valuation, err := h.liabilityService.RecordPayment(c.Request.Context(), ownerUserID, c.Param("liabilityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "record payment")
		return
	}

	logger.Info("Liability payment recorded", slog.String("liability_id", c.Param("liabilityID")))
	c.JSON(http.StatusCreated, valuation)
}
