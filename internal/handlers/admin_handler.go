package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/helpers"
	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/repository"
	"github.com/vibrantyoga/api/internal/service"
)

type AdminHandler struct {
	dashboard    service.DashboardService
	settings     repository.SettingsRepository
	smtpDefaults models.SMTPSettings
}

func NewAdminHandler(dashboard service.DashboardService, settings repository.SettingsRepository, smtpDefaults models.SMTPSettings) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, settings: settings, smtpDefaults: smtpDefaults}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboard.Aggregates(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *AdminHandler) GetSMTPSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, h.smtpDefaults)
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type SMTPSettingsRequest struct {
	MailerName string `json:"mailer_name" binding:"required"`
	Host       string `json:"host" binding:"required"`
	Port       int    `json:"port" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Encryption string `json:"encryption" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *AdminHandler) UpdateSMTPSettings(c *gin.Context) {
	var req SMTPSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	settings := &models.SMTPSettings{
		MailerName: req.MailerName,
		Host:       req.Host,
		Port:       req.Port,
		Username:   req.Username,
		Email:      req.Email,
		Encryption: req.Encryption,
		Password:   req.Password,
	}
	if err := h.settings.Replace(c.Request.Context(), settings); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SMTP settings updated successfully."})
}
