package handlers

import (
	"net/http"

	"floodwatch/database"
	"floodwatch/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

type DamageHandler struct {
	service *database.DamageService
}

func NewDamageHandler(service *database.DamageService) *DamageHandler {
	return &DamageHandler{service: service}
}

func (h *DamageHandler) List(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		log.Errorf("Error listing damage reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *DamageHandler) Create(c *gin.Context) {
	args := &models.DamageReportArgs{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in damage report create call: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if args.MissingRequired() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if errs := args.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields", "fields": errs})
		return
	}

	record, err := h.service.CreateReport(c.Request.Context(), args.Record())
	if err != nil {
		log.Errorf("Error creating damage report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create damage report"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *DamageHandler) Update(c *gin.Context) {
	args := &models.DamageReportArgs{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in damage report update call: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if args.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: id"})
		return
	}
	if errs := args.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields", "fields": errs})
		return
	}

	record, err := h.service.UpdateReport(c.Request.Context(), args)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Damage report not found"})
		return
	}
	if err != nil {
		log.Errorf("Error updating damage report %d: %v", args.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update damage report",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *DamageHandler) Delete(c *gin.Context) {
	var args models.DeleteArgs
	if err := c.ShouldBindJSON(&args); err != nil || args.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: id"})
		return
	}

	err := h.service.DeleteReport(c.Request.Context(), args.Id)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Damage report not found"})
		return
	}
	if err != nil {
		log.Errorf("Error deleting damage report %d: %v", args.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete damage report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Damage report deleted successfully"})
}
