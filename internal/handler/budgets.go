package handler

import (
	"net/http"

	"ranchops/internal/apierror"
	"ranchops/internal/dto"
	"ranchops/internal/service"

	"github.com/gin-gonic/gin"
)

type BudgetsHandler struct{ svc service.BudgetService }

func NewBudgetsHandler(svc service.BudgetService) *BudgetsHandler {
	return &BudgetsHandler{svc: svc}
}

func (h *BudgetsHandler) Create(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BudgetsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BudgetsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BudgetsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BudgetsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Status reports spend against target for every active budget:
// GET /budget-status?period=monthly (period optional).
func (h *BudgetsHandler) Status(c *gin.Context) {
	period := c.Query("period")
	switch period {
	case "", "weekly", "monthly", "quarterly", "yearly":
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Invalid period: expected weekly, monthly, quarterly or yearly"))
		return
	}
	resp, err := h.svc.Statuses(c.Request.Context(), currentUserID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
