package handler

import (
	"net/http"
	"time"

	"ranchops/internal/apierror"
	"ranchops/internal/dto"
	"ranchops/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionsHandler struct{ svc service.FinanceService }

func NewTransactionsHandler(svc service.FinanceService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

func (h *TransactionsHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateTransaction(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TransactionsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListTransactions(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransactionsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetTransaction(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransactionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateTransaction(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTransaction(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary aggregates transactions over an optional inclusive date range:
// GET /financial-summary?start_date=2026-01-01&end_date=2026-01-31
func (h *TransactionsHandler) Summary(c *gin.Context) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), currentUserID(c), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseDateQuery reads an optional "2006-01-02" query parameter. Writes a 400
// and returns false on a malformed value.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+": expected YYYY-MM-DD"))
		return nil, false
	}
	return &t, true
}
