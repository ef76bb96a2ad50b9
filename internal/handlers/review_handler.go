package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/httpresp"
	"github.com/homebarberid/booking-api/internal/middleware"
	reviewuc "github.com/homebarberid/booking-api/internal/usecase/review"
)

type ReviewHandler struct {
	create  *reviewuc.CreateReview
	update  *reviewuc.UpdateReview
	delete  *reviewuc.DeleteReview
	listAll *reviewuc.ListReviews
}

func NewReviewHandler(
	create *reviewuc.CreateReview,
	update *reviewuc.UpdateReview,
	del *reviewuc.DeleteReview,
	listAll *reviewuc.ListReviews,
) *ReviewHandler {
	return &ReviewHandler{
		create:  create,
		update:  update,
		delete:  del,
		listAll: listAll,
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Review      string `json:"review" binding:"required"`
	Description string `json:"description"`
}

type UpdateReviewRequest struct {
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Review      *string `json:"review"`
	Description *string `json:"description"`
}

// --------- Handlers ---------

// Store creates the review for the booking in the path. The booking id
// comes from the URL, not the body.
func (h *ReviewHandler) Store(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	r, err := h.create.Execute(c.Request.Context(), reviewuc.CreateReviewInput{
		UserID:      userID,
		BookingID:   bookingID,
		Rating:      req.Rating,
		Review:      req.Review,
		Description: req.Description,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	r, err := h.update.Execute(c.Request.Context(), reviewuc.UpdateReviewInput{
		UserID:      userID,
		ReviewID:    id,
		Rating:      req.Rating,
		Review:      req.Review,
		Description: req.Description,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *ReviewHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	if err := h.delete.Execute(c.Request.Context(), userID, id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "review_deleted"})
}

func (h *ReviewHandler) IndexAll(c *gin.Context) {
	list, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, list)
}
