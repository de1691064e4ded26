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

type CreateBookingRequest struct {
	EventID     uuid.UUID `json:"event_id" binding:"required"`
	BookingType string    `json:"booking_type" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), user, req.EventID, req.BookingType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UploadPaymentProof(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing file upload.")
		return
	}
	utrNumber := c.PostForm("utr_number")
	if utrNumber == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing utr_number field.")
		return
	}

	imageBytes, err := helpers.ReadUpload(fileHeader)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.bookings.AttachPaymentProof(c.Request.Context(), user.ID, bookingID, imageBytes, utrNumber); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment proof uploaded successfully."})
}

func (h *BookingHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	bookings, err := h.bookings.ListBookings(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if err := h.bookings.Decide(c.Request.Context(), bookingID, req.Status, req.AdminNotes); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully."})
}
