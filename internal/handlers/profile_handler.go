package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/httpresp"
	"github.com/homebarberid/booking-api/internal/middleware"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/storage"
)

type ProfileHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewProfileHandler(db *gorm.DB, images *storage.ImageStore) *ProfileHandler {
	return &ProfileHandler{db: db, images: images}
}

// --------- Requests ---------

type BarberProfileRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CustomerProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// --------- Barber profile ---------

// StoreBarber creates or replaces the acting barber's profile. One
// profile per user; a second create overwrites the fields in place.
func (h *ProfileHandler) StoreBarber(c *gin.Context) {
	var req BarberProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	var profile models.BarberProfile
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		First(&profile).Error

	profile.UserID = userID
	profile.Name = req.Name
	profile.Address = req.Address
	profile.Latitude = req.Latitude
	profile.Longitude = req.Longitude

	if err == gorm.ErrRecordNotFound {
		if err := h.db.WithContext(c.Request.Context()).Create(&profile).Error; err != nil {
			httperr.Internal(c, "failed_to_create_profile", "Gagal menyimpan profil.")
			return
		}
		httpresp.Created(c, profile)
		return
	}
	if err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Gagal menyimpan profil.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) ShowMyBarber(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var profile models.BarberProfile
	err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		httperr.NotFound(c, "barber_profile_not_found", "Profil barber tidak ditemukan.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) ShowBarber(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var profile models.BarberProfile
	err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		First(&profile, id).Error
	if err != nil {
		httperr.NotFound(c, "barber_profile_not_found", "Profil barber tidak ditemukan.")
		return
	}

	httpresp.OK(c, profile)
}

// IndexBarbers lists every barber profile; this is the customer-facing
// discovery endpoint.
func (h *ProfileHandler) IndexBarbers(c *gin.Context) {
	var profiles []models.BarberProfile
	if err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Find(&profiles).Error; err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	httpresp.List(c, profiles)
}

// --------- Customer profile ---------

func (h *ProfileHandler) StoreCustomer(c *gin.Context) {
	var req CustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	var profile models.CustomerProfile
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		First(&profile).Error

	profile.UserID = userID
	profile.Name = req.Name
	profile.Address = req.Address
	profile.Phone = req.Phone

	if err == gorm.ErrRecordNotFound {
		if err := h.db.WithContext(c.Request.Context()).Create(&profile).Error; err != nil {
			httperr.Internal(c, "failed_to_create_profile", "Gagal menyimpan profil.")
			return
		}
		httpresp.Created(c, profile)
		return
	}
	if err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Gagal menyimpan profil.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) ShowMyCustomer(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var profile models.CustomerProfile
	err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		httperr.NotFound(c, "customer_profile_not_found", "Profil pelanggan tidak ditemukan.")
		return
	}

	if profile.Photo != "" {
		profile.Photo = h.images.URL(profile.Photo)
	}

	httpresp.OK(c, profile)
}

// UploadCustomerPhoto replaces the profile photo. The upload is
// re-encoded to webp before storage; the old object is removed after the
// new key is persisted.
func (h *ProfileHandler) UploadCustomerPhoto(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var profile models.CustomerProfile
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		httperr.NotFound(c, "customer_profile_not_found", "Profil pelanggan tidak ditemukan.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "File photo wajib diunggah.")
		return
	}
	defer file.Close()

	key, err := h.images.Save(c.Request.Context(), "profiles", file)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	oldKey := profile.Photo
	profile.Photo = key

	if err := h.db.WithContext(c.Request.Context()).Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Gagal menyimpan profil.")
		return
	}

	if oldKey != "" {
		_ = h.images.Delete(c.Request.Context(), oldKey)
	}

	profile.Photo = h.images.URL(key)
	httpresp.OK(c, profile)
}
