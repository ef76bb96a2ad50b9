package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/httpresp"
	"github.com/homebarberid/booking-api/internal/middleware"
	paymentuc "github.com/homebarberid/booking-api/internal/usecase/payment"
)

type PaymentHandler struct {
	record   *paymentuc.RecordPayment
	update   *paymentuc.UpdatePayment
	get      *paymentuc.GetPayment
	listAll  *paymentuc.ListAllPayments
	listMine *paymentuc.ListMyPayments
	delete   *paymentuc.DeletePayment
}

func NewPaymentHandler(
	record *paymentuc.RecordPayment,
	update *paymentuc.UpdatePayment,
	get *paymentuc.GetPayment,
	listAll *paymentuc.ListAllPayments,
	listMine *paymentuc.ListMyPayments,
	del *paymentuc.DeletePayment,
) *PaymentHandler {
	return &PaymentHandler{
		record:   record,
		update:   update,
		get:      get,
		listAll:  listAll,
		listMine: listMine,
		delete:   del,
	}
}

// --------- Requests ---------

type RecordPaymentRequest struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Status    string  `json:"status" binding:"required,oneof=pending paid failed"`
	Method    string  `json:"method" binding:"required,oneof=cash transfer qris"`
}

type UpdatePaymentRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Status *string  `json:"status" binding:"omitempty,oneof=pending paid failed"`
	Method *string  `json:"method" binding:"omitempty,oneof=cash transfer qris"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Store(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	p, err := h.record.Execute(c.Request.Context(), paymentuc.RecordPaymentInput{
		UserID:    userID,
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Status:    req.Status,
		Method:    req.Method,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *PaymentHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) Index(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	list, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *PaymentHandler) IndexAll(c *gin.Context) {
	list, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p, err := h.update.Execute(c.Request.Context(), paymentuc.UpdatePaymentInput{
		PaymentID: id,
		Amount:    req.Amount,
		Status:    req.Status,
		Method:    req.Method,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "payment_deleted"})
}
