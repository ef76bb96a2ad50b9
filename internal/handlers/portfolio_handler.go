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

type PortfolioHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewPortfolioHandler(db *gorm.DB, images *storage.ImageStore) *PortfolioHandler {
	return &PortfolioHandler{db: db, images: images}
}

// --------- Handlers ---------

// IndexByBarber lists a barber's portfolio images with public URLs.
func (h *PortfolioHandler) IndexByBarber(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var items []models.Portfolio
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_profile_id = ?", barberID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	for i := range items {
		items[i].ImageURL = h.images.URL(items[i].ImageKey)
	}

	httpresp.List(c, items)
}

// Store accepts a multipart upload, normalizes it to webp and stores it
// in the bucket before the row is written.
func (h *PortfolioHandler) Store(c *gin.Context) {
	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "File image wajib diunggah.")
		return
	}
	defer file.Close()

	key, err := h.images.Save(c.Request.Context(), "portfolios", file)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	item := models.Portfolio{
		BarberProfileID: profile.ID,
		ImageKey:        key,
		Description:     c.PostForm("description"),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		// Row failed; don't leave the object orphaned.
		_ = h.images.Delete(c.Request.Context(), key)
		httperr.Internal(c, "failed_to_create_portfolio", "Gagal menyimpan portofolio.")
		return
	}

	item.ImageURL = h.images.URL(key)
	httpresp.Created(c, item)
}

type PortfolioUpdateRequest struct {
	Description string `json:"description" binding:"required"`
}

// Update edits the description; the image itself is immutable, replace
// it by deleting and re-uploading.
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PortfolioUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	var item models.Portfolio
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barber_profile_id = ?", id, profile.ID).
		First(&item).Error
	if err != nil {
		httperr.NotFound(c, "portfolio_not_found", "Portofolio tidak ditemukan.")
		return
	}

	item.Description = req.Description
	if err := h.db.WithContext(c.Request.Context()).Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_portfolio", "Gagal menyimpan portofolio.")
		return
	}

	item.ImageURL = h.images.URL(item.ImageKey)
	httpresp.OK(c, item)
}

func (h *PortfolioHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, ok := h.myBarberProfile(c)
	if !ok {
		return
	}

	var item models.Portfolio
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barber_profile_id = ?", id, profile.ID).
		First(&item).Error
	if err != nil {
		httperr.NotFound(c, "portfolio_not_found", "Portofolio tidak ditemukan.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_portfolio", "Gagal menghapus portofolio.")
		return
	}

	_ = h.images.Delete(c.Request.Context(), item.ImageKey)

	httpresp.OK(c, gin.H{"message": "portfolio_deleted"})
}

// --------- Helpers ---------

func (h *PortfolioHandler) myBarberProfile(c *gin.Context) (*models.BarberProfile, bool) {
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
