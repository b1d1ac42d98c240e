package controllers

import (
	"net/http"
	"strconv"
	"time"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the current user's notification feed.
func GetNotifications(c *gin.Context) {
	userID := currentUserID(c)

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", userID).
		Order("create_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": notifications, "unread": unread})
}

// MarkNotificationRead marks one of the current user's notifications read.
func MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	userID := currentUserID(c)

	now := time.Now()
	res := config.DB.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetActivityLog lists recent audit entries, optionally filtered by CV.
func GetActivityLog(c *gin.Context) {
	query := config.DB.Model(&models.ActivityLog{}).Preload("User").Order("create_at DESC").Limit(200)
	if cvID := c.Query("cv_id"); cvID != "" {
		query = query.Where("cv_id = ?", cvID)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var entries []models.ActivityLog
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries, "count": len(entries)})
}
