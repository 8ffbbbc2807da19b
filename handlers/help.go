package handlers

import (
	"net/http"

	"floodwatch/database"
	"floodwatch/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

type HelpHandler struct {
	service *database.HelpService
}

func NewHelpHandler(service *database.HelpService) *HelpHandler {
	return &HelpHandler{service: service}
}

func (h *HelpHandler) List(c *gin.Context) {
	requests, err := h.service.ListRequests(c.Request.Context())
	if err != nil {
		log.Errorf("Error listing help requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching help requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *HelpHandler) Create(c *gin.Context) {
	args := &models.HelpRequestArgs{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in help request create call: %v", err)
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

	record, err := h.service.CreateRequest(c.Request.Context(), args.Record())
	if err != nil {
		log.Errorf("Error creating help request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating help request"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *HelpHandler) Update(c *gin.Context) {
	args := &models.HelpRequestArgs{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in help request update call: %v", err)
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

	record, err := h.service.UpdateRequest(c.Request.Context(), args)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Help request not found"})
		return
	}
	if err != nil {
		log.Errorf("Error updating help request %d: %v", args.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error updating help request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *HelpHandler) Delete(c *gin.Context) {
	var args models.DeleteArgs
	if err := c.ShouldBindJSON(&args); err != nil || args.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: id"})
		return
	}

	err := h.service.DeleteRequest(c.Request.Context(), args.Id)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Help request not found"})
		return
	}
	if err != nil {
		log.Errorf("Error deleting help request %d: %v", args.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting help request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Help request deleted successfully"})
}
