package controllers

import (
	"net/http"
	"strconv"
	"time"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"
	"recruitment-agency-api/services"
	"recruitment-agency-api/utils"

	"github.com/gin-gonic/gin"
)

// GetCVs lists candidate records with optional filters.
func GetCVs(c *gin.Context) {
	query := config.DB.Model(&models.CV{}).
		Preload("Booking").
		Preload("Contract").
		Where("delete_at IS NULL")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if nationality := c.Query("nationality"); nationality != "" {
		query = query.Where("nationality = ?", nationality)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("full_name LIKE ? OR full_name_arabic LIKE ? OR reference_code LIKE ? OR passport_number LIKE ?",
			like, like, like, like)
	}

	var cvs []models.CV
	if err := query.Order("update_at DESC").Find(&cvs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cvs, "count": len(cvs)})
}

// GetCV returns one candidate record.
func GetCV(c *gin.Context) {
	cv, ok := findCV(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cv})
}

// CreateCV creates a single candidate record directly (outside the import flow).
func CreateCV(c *gin.Context) {
	var fields models.CandidateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name is required"})
		return
	}
	if fields.Email != nil && !utils.ValidateEmail(*fields.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	actorID := currentUserID(c)
	cv := models.CV{Status: models.CVStatusNew, CreatedByID: &actorID, UpdatedByID: &actorID}
	fields.ApplyTo(&cv)

	if err := config.DB.Create(&cv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create candidate"})
		return
	}

	services.NewActivityService(config.DB).Record(&models.ActivityLog{
		UserID:      actorID,
		CVID:        &cv.ID,
		Action:      models.ActionCVCreated,
		Description: "Candidate created: " + cv.FullName,
		TargetName:  cv.FullName,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": cv})
}

// UpdateCV applies a partial update to a candidate record.
func UpdateCV(c *gin.Context) {
	cv, ok := findCV(c)
	if !ok {
		return
	}

	var fields models.CandidateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields.Email != nil && !utils.ValidateEmail(*fields.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	actorID := currentUserID(c)
	fields.ApplyTo(cv)
	cv.UpdatedByID = &actorID

	if err := config.DB.Save(cv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate"})
		return
	}

	services.NewActivityService(config.DB).Record(&models.ActivityLog{
		UserID:      actorID,
		CVID:        &cv.ID,
		Action:      models.ActionCVUpdated,
		Description: "Candidate updated: " + cv.FullName,
		TargetName:  cv.FullName,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cv})
}

// DeleteCV soft-deletes a record. Admin only; refuses while a booking or
// contract still references it.
func DeleteCV(c *gin.Context) {
	cv, ok := findCV(c)
	if !ok {
		return
	}
	if cv.Booking != nil || cv.Contract != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate has an active booking or contract"})
		return
	}

	if err := config.DB.Model(cv).Update("delete_at", time.Now()).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete candidate"})
		return
	}

	actorID := currentUserID(c)
	services.NewActivityService(config.DB).Record(&models.ActivityLog{
		UserID:      actorID,
		CVID:        &cv.ID,
		Action:      models.ActionCVDeleted,
		Description: "Candidate deleted: " + cv.FullName,
		TargetName:  cv.FullName,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Candidate deleted"})
}

// ChangeCVStatus sets the status explicitly, keeping it consistent with the
// record's booking/contract associations.
func ChangeCVStatus(c *gin.Context) {
	cv, ok := findCV(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Status {
	case models.CVStatusNew:
		if cv.Booking != nil || cv.Contract != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot set NEW while a booking or contract exists"})
			return
		}
	case models.CVStatusBooked:
		if cv.Booking == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot set BOOKED without a booking"})
			return
		}
	case models.CVStatusHired, models.CVStatusReturned:
		if cv.Contract == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot set " + req.Status + " without a contract"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + req.Status})
		return
	}

	actorID := currentUserID(c)
	oldStatus := cv.Status
	cv.Status = req.Status
	cv.UpdatedByID = &actorID

	if err := config.DB.Save(cv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change status"})
		return
	}

	services.NewActivityService(config.DB).Record(&models.ActivityLog{
		UserID:      actorID,
		CVID:        &cv.ID,
		Action:      models.ActionCVStatusChanged,
		Description: "Status changed for " + cv.FullName,
		OldStatus:   &oldStatus,
		NewStatus:   &cv.Status,
		TargetName:  cv.FullName,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cv})
}

// GetGallery is the public listing of available candidates: trimmed fields,
// NEW records only.
func GetGallery(c *gin.Context) {
	query := config.DB.Model(&models.CV{}).
		Where("delete_at IS NULL AND status = ?", models.CVStatusNew)
	if nationality := c.Query("nationality"); nationality != "" {
		query = query.Where("nationality = ?", nationality)
	}

	var cvs []models.CV
	if err := query.Order("create_at DESC").Find(&cvs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}

	items := make([]models.GalleryCV, 0, len(cvs))
	for i := range cvs {
		items = append(items, cvs[i].ToGallery())
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": len(items)})
}

// GetGalleryCV returns one public candidate profile.
func GetGalleryCV(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return
	}

	var cv models.CV
	if err := config.DB.Where("cv_id = ? AND delete_at IS NULL AND status = ?", id, models.CVStatusNew).
		First(&cv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cv.ToGallery()})
}

func findCV(c *gin.Context) (*models.CV, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return nil, false
	}

	var cv models.CV
	if err := config.DB.Preload("Booking").Preload("Contract").
		Where("cv_id = ? AND delete_at IS NULL", id).
		First(&cv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return nil, false
	}
	return &cv, true
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}
