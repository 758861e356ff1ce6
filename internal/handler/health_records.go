package handler

import (
	"net/http"

	"ranchops/internal/apierror"
	"ranchops/internal/dto"
	"ranchops/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HealthRecordsHandler struct{ svc service.HealthRecordService }

func NewHealthRecordsHandler(svc service.HealthRecordService) *HealthRecordsHandler {
	return &HealthRecordsHandler{svc: svc}
}

func (h *HealthRecordsHandler) Create(c *gin.Context) {
	var req dto.CreateHealthRecordRequest
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

func (h *HealthRecordsHandler) List(c *gin.Context) {
	// Optional ?animal_id= filter narrows the list to one animal's history.
	if raw := c.Query("animal_id"); raw != "" {
		animalID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid animal_id"))
			return
		}
		resp, err := h.svc.ListByAnimal(c.Request.Context(), currentUserID(c), animalID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HealthRecordsHandler) Get(c *gin.Context) {
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

func (h *HealthRecordsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateHealthRecordRequest
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

func (h *HealthRecordsHandler) Delete(c *gin.Context) {
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
