package controllers

import (
	"log"
	"net/http"
	"strconv"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"
	"recruitment-agency-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBookings lists all bookings with their candidates.
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Preload("CV").Preload("BookedBy").
		Order("booked_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings, "count": len(bookings)})
}

// CreateBooking reserves a candidate for a client. The CV must be free and
// its status moves to BOOKED in the same transaction.
func CreateBooking(c *gin.Context) {
	var req struct {
		CVID           uint    `json:"cv_id" binding:"required"`
		IdentityNumber string  `json:"identity_number" binding:"required"`
		Notes          *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.IdentityNumber) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identity number must be at least 10 characters"})
		return
	}

	var cv models.CV
	if err := config.DB.Preload("Booking").Preload("Contract").
		Where("cv_id = ? AND delete_at IS NULL", req.CVID).First(&cv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if cv.Booking != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate is already booked"})
		return
	}
	if cv.Contract != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate is already hired"})
		return
	}

	actorID := currentUserID(c)
	booking := models.Booking{
		CVID:           cv.ID,
		IdentityNumber: req.IdentityNumber,
		Notes:          req.Notes,
		BookedByID:     actorID,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&cv).Updates(map[string]interface{}{
			"status":        models.CVStatusBooked,
			"updated_by_id": actorID,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	activity := services.NewActivityService(config.DB)
	activity.Record(&models.ActivityLog{
		UserID:         actorID,
		CVID:           &cv.ID,
		Action:         models.ActionCVBooked,
		Description:    "Candidate booked: " + cv.FullName,
		IdentityNumber: &req.IdentityNumber,
		Notes:          req.Notes,
		TargetName:     cv.FullName,
	})
	activity.Notify(actorID, "Candidate booked", cv.FullName+" was booked for a client.", "success", &cv.ID)
	notifyBookingByMail(cv.FullName, req.IdentityNumber)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Candidate booked", "data": booking})
}

// DeleteBooking releases a booking and returns the candidate to NEW.
func DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("CV").First(&booking, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	actorID := currentUserID(c)
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.CV{}).Where("cv_id = ?", booking.CVID).Updates(map[string]interface{}{
			"status":        models.CVStatusNew,
			"updated_by_id": actorID,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to release booking"})
		return
	}

	activity := services.NewActivityService(config.DB)
	activity.Record(&models.ActivityLog{
		UserID:         actorID,
		CVID:           &booking.CVID,
		Action:         models.ActionBookingReleased,
		Description:    "Booking released for " + booking.CV.FullName,
		IdentityNumber: &booking.IdentityNumber,
		TargetName:     booking.CV.FullName,
	})
	activity.Notify(actorID, "Booking released", booking.CV.FullName+" is available again.", "warning", &booking.CVID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking released"})
}

func notifyBookingByMail(candidateName, identityNumber string) {
	to := mailRecipients()
	if len(to) == 0 {
		return
	}
	html := "<p>Candidate <b>" + candidateName + "</b> was booked (client identity " + identityNumber + ").</p>"
	if err := config.SendMail(to, "Candidate booked: "+candidateName, html); err != nil {
		log.Printf("booking mail: %v", err)
	}
}
