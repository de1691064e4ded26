package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vibrantyoga/api/internal/helpers"
	"github.com/vibrantyoga/api/internal/middleware"
	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/service"
)

type CreateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Date         string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string   `json:"time" binding:"required"` // HH:MM
	DailyPrice   *float64 `json:"daily_price" binding:"required"`
	WeeklyPrice  *float64 `json:"weekly_price" binding:"required"`
	MonthlyPrice *float64 `json:"monthly_price" binding:"required"`
	UPIID        string   `json:"upi_id"`
	IsOnline     *bool    `json:"is_online"`
	SessionLink  string   `json:"session_link"`
	Capacity     int      `json:"capacity"`
	DeliveryMode string   `json:"delivery_mode"`
}

type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	admin := middleware.CurrentUser(c)
	if admin == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	input := service.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		DailyPrice:   *req.DailyPrice,
		WeeklyPrice:  *req.WeeklyPrice,
		MonthlyPrice: *req.MonthlyPrice,
		UPIID:        req.UPIID,
		IsOnline:     true,
		SessionLink:  req.SessionLink,
		Capacity:     50,
		DeliveryMode: models.DeliveryOnline,
	}
	if req.IsOnline != nil {
		input.IsOnline = *req.IsOnline
	}
	if req.Capacity > 0 {
		input.Capacity = req.Capacity
	}
	if req.DeliveryMode != "" {
		input.DeliveryMode = req.DeliveryMode
	}

	event, err := h.events.CreateEvent(c.Request.Context(), admin.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) UploadQRCode(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing file upload.")
		return
	}

	imageBytes, err := helpers.ReadUpload(fileHeader)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.events.AttachQRCode(c.Request.Context(), eventID, imageBytes); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "QR code uploaded successfully."})
}
