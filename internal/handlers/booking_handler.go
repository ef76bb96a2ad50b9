package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/httpresp"
	"github.com/homebarberid/booking-api/internal/middleware"
	bookinguc "github.com/homebarberid/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	create    *bookinguc.CreateBooking
	update    *bookinguc.UpdateBooking
	cancel    *bookinguc.CancelBooking
	setStatus *bookinguc.SetBookingStatus
	get       *bookinguc.GetBooking
	listMine  *bookinguc.ListMyBookings
	listAll   *bookinguc.ListAllBookings
	delete    *bookinguc.DeleteBooking
}

func NewBookingHandler(
	create *bookinguc.CreateBooking,
	update *bookinguc.UpdateBooking,
	cancel *bookinguc.CancelBooking,
	setStatus *bookinguc.SetBookingStatus,
	get *bookinguc.GetBooking,
	listMine *bookinguc.ListMyBookings,
	listAll *bookinguc.ListAllBookings,
	del *bookinguc.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		create:    create,
		update:    update,
		cancel:    cancel,
		setStatus: setStatus,
		get:       get,
		listMine:  listMine,
		listAll:   listAll,
		delete:    del,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	BarberProfileID uint      `json:"barber_profile_id" binding:"required"`
	ServiceID       uint      `json:"service_id" binding:"required"`
	ScheduledTime   time.Time `json:"scheduled_time" binding:"required"`
	Address         string    `json:"address" binding:"required"`
	Latitude        float64   `json:"latitude" binding:"required"`
	Longitude       float64   `json:"longitude" binding:"required"`
}

type UpdateBookingRequest struct {
	ServiceID       *uint      `json:"service_id"`
	BarberProfileID *uint      `json:"barber_profile_id"`
	ScheduledTime   *time.Time `json:"scheduled_time"`
	Status          *string    `json:"status"`
	Address         *string    `json:"address"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Store(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	b, err := h.create.Execute(c.Request.Context(), bookinguc.CreateBookingInput{
		UserID:          userID,
		BarberProfileID: req.BarberProfileID,
		ServiceID:       req.ServiceID,
		ScheduledTime:   req.ScheduledTime,
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Index(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	list, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *BookingHandler) IndexAll(c *gin.Context) {
	list, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	b, err := h.update.Execute(c.Request.Context(), bookinguc.UpdateBookingInput{
		UserID:          userID,
		BookingID:       id,
		ServiceID:       req.ServiceID,
		BarberProfileID: req.BarberProfileID,
		ScheduledTime:   req.ScheduledTime,
		Status:          req.Status,
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	b, err := h.cancel.Execute(c.Request.Context(), userID, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	b, err := h.setStatus.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	if err := h.delete.Execute(c.Request.Context(), userID, id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "booking_deleted"})
}

// parseIDParam reads a numeric path param, writing the error response
// itself on failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Parameter id tidak valid.")
		return 0, false
	}
	return uint(id), true
}
