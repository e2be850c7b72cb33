package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for snapshots and derived reports.
type reportingHandler struct {
	snapshotService  portssvc.SnapshotSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(snapshotSvc portssvc.SnapshotSvcFacade, reportingSvc portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		snapshotService:  snapshotSvc,
		reportingService: reportingSvc,
	}
}

func registerReportingRoutes(entities *gin.RouterGroup, snapshotSvc portssvc.SnapshotSvcFacade, reportingSvc portssvc.ReportingSvcFacade) {
	h := newReportingHandler(snapshotSvc, reportingSvc)

	entities.GET("/:entityID/snapshot", h.getSnapshot)

	reports := entities.Group("/:entityID/reports")
	{
		reports.GET("/cashflow", h.cashFlow)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/tax-summary", h.taxSummary)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

// getSnapshot godoc
// @Summary Get the entity's financial snapshot
// @Description Aggregates the full effect history into running axis totals
// @Tags reports
// @Produce json
// @Param entityID path string true "Entity ID"
// @Success 200 {object} domain.Snapshot
// @Router /entities/{entityID}/snapshot [get]
func (h *reportingHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.snapshotService.GetSnapshot(c.Request.Context(), ownerUserID, c.Param("entityID"))
	if err != nil {
		respondServiceError(c, logger, err, "get snapshot")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// cashFlow godoc
// @Summary Cash flow report
// @Description Daily cash movements with running balance over [from, to]
// @Tags reports
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} domain.CashFlowReport
// @Router /entities/{entityID}/reports/cashflow [get]
func (h *reportingHandler) cashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, ok := parseReportWindow(c)
	if !ok {
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), ownerUserID, c.Param("entityID"), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "build cash flow report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// incomeStatement godoc
// @Summary Income statement
// @Description Income, expenses and net income over [from, to]
// @Tags reports
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} domain.IncomeStatement
// @Router /entities/{entityID}/reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, ok := parseReportWindow(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), ownerUserID, c.Param("entityID"), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "build income statement")
		return
	}

	c.JSON(http.StatusOK, report)
}

// taxSummary godoc
// @Summary Tax summary
// @Description Income, deductible expenses and effective tax base for a calendar year
// @Tags reports
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param year query int false "Calendar year, defaults to the current year"
// @Success 200 {object} domain.TaxSummary
// @Router /entities/{entityID}/reports/tax-summary [get]
func (h *reportingHandler) taxSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 || parsed > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
	}

	report, err := h.reportingService.TaxSummary(c.Request.Context(), ownerUserID, c.Param("entityID"), year)
	if err != nil {
		respondServiceError(c, logger, err, "build tax summary")
		return
	}

	c.JSON(http.StatusOK, report)
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Cash, asset book values and liability balances as of a date
// @Tags reports
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param asOf query string false "Valuation date (YYYY-MM-DD), defaults to now"
// @Success 200 {object} domain.BalanceSheet
// @Router /entities/{entityID}/reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
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

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), ownerUserID, c.Param("entityID"), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "build balance sheet")
		return
	}

	c.JSON(http.StatusOK, report)
}

// parseReportWindow reads the required from/to query parameters. The to bound is
// widened to the end of its day so a whole-day window includes that day's events.
func parseReportWindow(c *gin.Context) (time.Time, time.Time, bool) {
	from, ok := parseDateQuery(c, "from", time.Time{})
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := parseDateQuery(c, "to", time.Time{})
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if from.IsZero() || to.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to dates are required"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return time.Time{}, time.Time{}, false
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, true
}
