package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/httpresp"
	"github.com/homebarberid/booking-api/internal/middleware"
	"github.com/homebarberid/booking-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// --------- Requests ---------

type ScheduleRequest struct {
	Day            string `json:"day" binding:"required,oneof=senin selasa rabu kamis jumat sabtu minggu"`
	AvailableFrom  string `json:"available_from" binding:"required"`
	AvailableUntil string `json:"available_until" binding:"required"`
}

type ScheduleUpdateRequest struct {
	Day            *string `json:"day" binding:"omitempty,oneof=senin selasa rabu kamis jumat sabtu minggu"`
	AvailableFrom  *string `json:"available_from"`
	AvailableUntil *string `json:"available_until"`
}

// --------- Handlers ---------

// IndexByBarber lists a barber's declared availability windows. Open to
// any authenticated user.
func (h *ScheduleHandler) IndexByBarber(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var schedules []models.Schedule
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_profile_id = ?", barberID).
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	httpresp.List(c, schedules)
}

// IndexMine lists the acting barber's own schedule rows.
func (h *ScheduleHandler) IndexMine(c *gin.Context) {
	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	var schedules []models.Schedule
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_profile_id = ?", profile.ID).
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Store(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	s := models.Schedule{
		BarberProfileID: profile.ID,
		Day:             req.Day,
		AvailableFrom:   req.AvailableFrom,
		AvailableUntil:  req.AvailableUntil,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Gagal menyimpan jadwal.")
		return
	}

	httpresp.Created(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, ok := h.mySchedule(c, id)
	if !ok {
		return
	}

	if req.Day != nil {
		s.Day = *req.Day
	}
	if req.AvailableFrom != nil {
		s.AvailableFrom = *req.AvailableFrom
	}
	if req.AvailableUntil != nil {
		s.AvailableUntil = *req.AvailableUntil
	}

	if err := h.db.WithContext(c.Request.Context()).Save(s).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Gagal menyimpan jadwal.")
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	s, ok := h.mySchedule(c, id)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(s).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Gagal menghapus jadwal.")
		return
	}

	httpresp.OK(c, gin.H{"message": "schedule_deleted"})
}

// --------- Helpers ---------

func (h *ScheduleHandler) myBarberProfile(c *gin.Context) (*models.BarberProfile, bool) {
	userID := c.GetUint(middleware.ContextUserID)

	var profile models.BarberProfile
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		httperr.BadRequest(c, "barber_profile_missing", "Buat profil barber terlebih dahulu.")
		return nil, false
	}
	return &profile, true
}

func (h *ScheduleHandler) mySchedule(c *gin.Context, id uint) (*models.Schedule, bool) {
	profile, ok := h.myBarberProfile(c)
	if !ok {
		return nil, false
	}

	var s models.Schedule
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barber_profile_id = ?", id, profile.ID).
		First(&s).Error
	if err != nil {
		httperr.NotFound(c, "schedule_not_found", "Jadwal tidak ditemukan.")
		return nil, false
	}
	return &s, true
}
