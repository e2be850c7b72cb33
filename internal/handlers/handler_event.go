package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests for the event log.
type eventHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newEventHandler(ledgerService portssvc.LedgerSvcFacade) *eventHandler {
	return &eventHandler{ledgerService: ledgerService}
}

// registerEntityLedgerRoutes attaches the recording endpoints under an entity.
func registerEntityLedgerRoutes(entities *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newEventHandler(ledgerSvc)

	entities.POST("/:entityID/events", h.recordEvent)
	entities.POST("/:entityID/events/archetype", h.recordArchetypeEvent)
	entities.GET("/:entityID/events", h.listEvents)
	entities.POST("/:entityID/income", h.addIncome)
	entities.POST("/:entityID/expenses", h.addExpense)
}

// registerEventRoutes attaches the event-scoped endpoints.
func registerEventRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newEventHandler(ledgerSvc)

	events := rg.Group("/events")
	{
		events.GET("/:eventID", h.getEvent)
		events.POST("/:eventID/void-income", h.voidIncome)
		events.POST("/:eventID/void-expense", h.voidExpense)
	}
}

// recordEvent godoc
// @Summary Record a raw economic event
// @Description Validates and atomically persists an event with caller-supplied effects
// @Tags events
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param event body dto.RecordEventRequest true "Event and effects"
// @Success 201 {object} domain.EconomicEvent
// @Failure 400 {object} map[string]string "Unbalanced or invalid effects"
// @Router /entities/{entityID}/events [post]
func (h *eventHandler) recordEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.ledgerService.RecordEconomicEvent(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "record event")
		return
	}

	logger.Info("Event recorded", slog.String("event_id", event.EventID), slog.String("event_type", string(event.EventType)))
	c.JSON(http.StatusCreated, event)
}

// recordArchetypeEvent godoc
// @Summary Record an event through a catalog archetype
// @Description Expands a named archetype into a balanced effect set and records it
// @Tags events
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param event body dto.ArchetypeEventRequest true "Archetype and amount"
// @Success 201 {object} domain.EconomicEvent
// @Router /entities/{entityID}/events/archetype [post]
func (h *eventHandler) recordArchetypeEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ArchetypeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordArchetypeEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.ledgerService.RecordArchetypeEvent(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "record archetype event")
		return
	}

	logger.Info("Archetype event recorded", slog.String("event_id", event.EventID), slog.String("archetype", req.Archetype))
	c.JSON(http.StatusCreated, event)
}

// addIncome godoc
// @Summary Record income
// @Description Records earned revenue with its tax recognition in one atomic operation
// @Tags events
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param income body dto.AddIncomeRequest true "Income"
// @Success 201 {object} domain.EconomicEvent
// @Router /entities/{entityID}/income [post]
func (h *eventHandler) addIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AddIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.ledgerService.AddIncome(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "add income")
		return
	}

	logger.Info("Income recorded", slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, event)
}

// addExpense godoc
// @Summary Record an expense
// @Description Records an incurred expense with its recognition in one atomic operation
// @Tags events
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param expense body dto.AddExpenseRequest true "Expense"
// @Success 201 {object} domain.EconomicEvent
// @Router /entities/{entityID}/expenses [post]
func (h *eventHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.ledgerService.AddExpense(c.Request.Context(), ownerUserID, c.Param("entityID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "add expense")
		return
	}

	logger.Info("Expense recorded", slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, event)
}

// getEvent godoc
// @Summary Get an event with its effects
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} map[string]any "Event and effects"
// @Failure 404 {object} map[string]string "Not found"
// @Router /events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, effects, err := h.ledgerService.GetEvent(c.Request.Context(), ownerUserID, c.Param("eventID"))
	if err != nil {
		respondServiceError(c, logger, err, "get event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "effects": effects})
}

// listEvents godoc
// @Summary List an entity's events
// @Description Lists events newest first with limit/offset paging
// @Tags events
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.EconomicEvent
// @Router /entities/{entityID}/events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	events, err := h.ledgerService.ListEvents(c.Request.Context(), ownerUserID, c.Param("entityID"), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "list events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// voidIncome godoc
// @Summary Void an income event
// @Description Records a reversing REVENUE_DEFERRED event; the original row is untouched
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param void body dto.VoidEventRequest true "Reason"
// @Success 201 {object} domain.EconomicEvent
// @Router /events/{eventID}/void-income [post]
func (h *eventHandler) voidIncome(c *gin.Context) {
	h.void(c, h.ledgerService.VoidIncome, "void income")
}

// voidExpense godoc
// @Summary Void an expense event
// @Description Records a reversing EXPENSE_REVERSED event; the original row is untouched
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param void body dto.VoidEventRequest true "Reason"
// @Success 201 {object} domain.EconomicEvent
// @Router /events/{eventID}/void-expense [post]
func (h *eventHandler) voidExpense(c *gin.Context) {
	h.void(c, h.ledgerService.VoidExpense, "void expense")
}

func (h *eventHandler) void(c *gin.Context, voidFn func(ctx context.Context, ownerUserID, eventID, reason string) (*domain.EconomicEvent, error), action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VoidEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for void", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := voidFn(c.Request.Context(), ownerUserID, c.Param("eventID"), req.Reason)
	if err != nil {
		respondServiceError(c, logger, err, action)
		return
	}

	logger.Info("Event voided", slog.String("reversing_event_id", event.EventID))
	c.JSON(http.StatusCreated, event)
}
