package handlers

import (
	"net/http"
	"strconv"

	"floodwatch/database"
	"floodwatch/models"
	"floodwatch/uploads"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// FloodHandler exposes CRUD over flood status reports. Create and update
// accept multipart bodies because a report may carry an image.
type FloodHandler struct {
	service *database.FloodService
	files   *uploads.FileStore
}

func NewFloodHandler(service *database.FloodService, files *uploads.FileStore) *FloodHandler {
	return &FloodHandler{service: service, files: files}
}

func (h *FloodHandler) List(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		log.Errorf("Error listing flood reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func formField(c *gin.Context, name string) *string {
	if v, ok := c.GetPostForm(name); ok {
		return &v
	}
	return nil
}

func (h *FloodHandler) Create(c *gin.Context) {
	args := &models.FloodReportArgs{
		ReporterName: formField(c, "reporterName"),
		PhoneNumber:  formField(c, "phoneNumber"),
		Address:      formField(c, "address"),
		FloodStatus:  formField(c, "floodStatus"),
	}

	if args.MissingRequired() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if errs := args.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields", "fields": errs})
		return
	}

	var imagePath string
	if fh, err := c.FormFile("image"); err == nil {
		imagePath, err = h.files.SaveUpload(fh)
		if err != nil {
			log.Errorf("Error storing flood report image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		args.ImagePath = &imagePath
	}

	record, err := h.service.CreateReport(c.Request.Context(), args.Record())
	if err != nil {
		// Creation is all-or-nothing; don't leave an orphaned file behind.
		if rmErr := h.files.Remove(imagePath); rmErr != nil {
			log.Warnf("Failed to remove orphaned upload %s: %v", imagePath, rmErr)
		}
		log.Errorf("Error creating flood report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *FloodHandler) Update(c *gin.Context) {
	idStr := c.PostForm("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing report ID"})
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	args := &models.FloodReportArgs{
		Id:           id,
		ReporterName: formField(c, "reporterName"),
		PhoneNumber:  formField(c, "phoneNumber"),
		Address:      formField(c, "address"),
		FloodStatus:  formField(c, "floodStatus"),
	}
	if errs := args.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields", "fields": errs})
		return
	}

	var oldImagePath string
	if fh, err := c.FormFile("image"); err == nil {
		prior, err := h.service.GetReport(c.Request.Context(), id)
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		if err != nil {
			log.Errorf("Error fetching flood report %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
			return
		}
		oldImagePath = prior.ImagePath

		imagePath, err := h.files.SaveUpload(fh)
		if err != nil {
			log.Errorf("Error storing flood report image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		args.ImagePath = &imagePath
	}

	record, err := h.service.UpdateReport(c.Request.Context(), args)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		log.Errorf("Error updating flood report %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	// The record now points at the new file; the replaced one is dead weight.
	if oldImagePath != "" {
		if err := h.files.Remove(oldImagePath); err != nil {
			log.Warnf("Failed to remove replaced image %s for report %d: %v", oldImagePath, id, err)
		}
	}

	c.JSON(http.StatusOK, record)
}

func (h *FloodHandler) Delete(c *gin.Context) {
	var args models.DeleteArgs
	if err := c.ShouldBindJSON(&args); err != nil || args.Id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing report ID"})
		return
	}

	imagePath, err := h.service.DeleteReport(c.Request.Context(), args.Id)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		log.Errorf("Error deleting flood report %d: %v", args.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	// Best effort; a missing or stubborn file never blocks record deletion.
	if err := h.files.Remove(imagePath); err != nil {
		log.Warnf("Failed to remove image %s for report %d: %v", imagePath, args.Id, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
