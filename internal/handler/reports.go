package handler

import (
	"ranchops/internal/infra"
	"ranchops/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportsHandler renders downloadable PDF reports.
type ReportsHandler struct {
	finance     service.FinanceService
	storagePath string
}

func NewReportsHandler(finance service.FinanceService, storagePath string) *ReportsHandler {
	return &ReportsHandler{finance: finance, storagePath: storagePath}
}

// FinancialSummaryPDF generates and streams a financial summary report over
// the same optional inclusive date range as the JSON endpoint.
func (h *ReportsHandler) FinancialSummaryPDF(c *gin.Context) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	summary, err := h.finance.Summary(c.Request.Context(), currentUserID(c), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	rangeLabel := "All transactions"
	switch {
	case start != nil && end != nil:
		rangeLabel = start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
	case start != nil:
		rangeLabel = "From " + start.Format("2006-01-02")
	case end != nil:
		rangeLabel = "Through " + end.Format("2006-01-02")
	}

	filePath, err := infra.GenerateFinancialSummaryPDF(summary, rangeLabel, h.storagePath)
	if err != nil {
		respondError(c, err)
		return
	}

	c.FileAttachment(filePath, "financial_summary.pdf")
}
