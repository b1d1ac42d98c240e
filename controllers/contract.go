package controllers

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"
	"recruitment-agency-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetContracts lists all contracts with their candidates.
func GetContracts(c *gin.Context) {
	var contracts []models.Contract
	if err := config.DB.Preload("CV").Preload("CreatedBy").
		Order("create_at DESC").Find(&contracts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contracts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contracts, "count": len(contracts)})
}

// CreateContract hires a candidate. An existing booking is consumed and the
// CV moves to HIRED.
func CreateContract(c *gin.Context) {
	var req struct {
		CVID           uint    `json:"cv_id" binding:"required"`
		IdentityNumber string  `json:"identity_number" binding:"required"`
		ContractDate   *string `json:"contract_date"`
		Salary         *string `json:"salary"`
		Notes          *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cv models.CV
	if err := config.DB.Preload("Booking").Preload("Contract").
		Where("cv_id = ? AND delete_at IS NULL", req.CVID).First(&cv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if cv.Contract != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate already has a contract"})
		return
	}

	actorID := currentUserID(c)
	contract := models.Contract{
		CVID:           cv.ID,
		IdentityNumber: req.IdentityNumber,
		Salary:         req.Salary,
		Notes:          req.Notes,
		Status:         models.ContractStatusActive,
		CreatedByID:    actorID,
	}
	if req.ContractDate != nil {
		if t, err := time.Parse("2006-01-02", *req.ContractDate); err == nil {
			contract.ContractDate = &t
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if cv.Booking != nil {
			if err := tx.Delete(cv.Booking).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}
		return tx.Model(&cv).Updates(map[string]interface{}{
			"status":        models.CVStatusHired,
			"updated_by_id": actorID,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract"})
		return
	}

	activity := services.NewActivityService(config.DB)
	activity.Record(&models.ActivityLog{
		UserID:         actorID,
		CVID:           &cv.ID,
		Action:         models.ActionContractCreated,
		Description:    "Contract created for " + cv.FullName,
		IdentityNumber: &req.IdentityNumber,
		Notes:          req.Notes,
		TargetName:     cv.FullName,
	})
	activity.Notify(actorID, "Contract created", cv.FullName+" was hired.", "success", &cv.ID)
	notifyContractByMail(cv.FullName)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contract created", "data": contract})
}

// TerminateContract ends a contract; the candidate becomes RETURNED.
func TerminateContract(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	var contract models.Contract
	if err := config.DB.Preload("CV").First(&contract, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}
	if contract.Status == models.ContractStatusTerminated {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contract already terminated"})
		return
	}

	actorID := currentUserID(c)
	now := time.Now()
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&contract).Updates(map[string]interface{}{
			"status":        models.ContractStatusTerminated,
			"terminated_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.CV{}).Where("cv_id = ?", contract.CVID).Updates(map[string]interface{}{
			"status":        models.CVStatusReturned,
			"updated_by_id": actorID,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to terminate contract"})
		return
	}

	activity := services.NewActivityService(config.DB)
	activity.Record(&models.ActivityLog{
		UserID:         actorID,
		CVID:           &contract.CVID,
		Action:         models.ActionContractTerminated,
		Description:    "Contract terminated for " + contract.CV.FullName,
		IdentityNumber: &contract.IdentityNumber,
		TargetName:     contract.CV.FullName,
	})
	activity.Notify(actorID, "Contract terminated", contract.CV.FullName+" was returned.", "warning", &contract.CVID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contract terminated"})
}

func notifyContractByMail(candidateName string) {
	to := mailRecipients()
	if len(to) == 0 {
		return
	}
	html := "<p>Candidate <b>" + candidateName + "</b> was hired.</p>"
	if err := config.SendMail(to, "Contract created: "+candidateName, html); err != nil {
		log.Printf("contract mail: %v", err)
	}
}

// mailRecipients reads the notification list from NOTIFY_EMAILS (comma
// separated). Empty means mail notifications are off.
func mailRecipients() []string {
	raw := strings.TrimSpace(os.Getenv("NOTIFY_EMAILS"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
