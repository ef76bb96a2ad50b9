package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/httpresp"
	"github.com/homebarberid/booking-api/internal/middleware"
	"github.com/homebarberid/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type ServiceUpdateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
}

// --------- Handlers ---------

// Index lists all services across barbers, the customer browse endpoint.
func (h *ServiceHandler) Index(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Preload("BarberProfile").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	httpresp.List(c, services)
}

// IndexMine lists the acting barber's own services.
func (h *ServiceHandler) IndexMine(c *gin.Context) {
	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_profile_id = ?", profile.ID).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Preload("BarberProfile").
		First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Layanan tidak ditemukan.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Store(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	svc := models.Service{
		BarberProfileID: profile.ID,
		Name:            req.Name,
		Price:           req.Price,
		Description:     req.Description,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Gagal menyimpan layanan.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc, ok := h.myService(c, id)
	if !ok {
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}

	if err := h.db.WithContext(c.Request.Context()).Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Gagal menyimpan layanan.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc, ok := h.myService(c, id)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Gagal menghapus layanan.")
		return
	}

	httpresp.OK(c, gin.H{"message": "service_deleted"})
}

// --------- Helpers ---------

func (h *ServiceHandler) myBarberProfile(c *gin.Context) (*models.BarberProfile, bool) {
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

// myService loads a service and enforces ownership by the acting barber.
func (h *ServiceHandler) myService(c *gin.Context, id uint) (*models.Service, bool) {
	profile, ok := h.myBarberProfile(c)
	if !ok {
		return nil, false
	}

	var svc models.Service
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barber_profile_id = ?", id, profile.ID).
		First(&svc).Error
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Layanan tidak ditemukan.")
		return nil, false
	}
	return &svc, true
}
