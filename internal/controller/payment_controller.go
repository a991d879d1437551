package controller

import (
	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *service.PaymentService
}

func NewPaymentController(payments *service.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type createOrderRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
}

// CreateOrder godoc
// @Summary Open a payment order for an exam fee
// @Tags payments
// @Accept json
// @Produce json
// @Param body body createOrderRequest true "registration"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/payments/order [post]
func (c *PaymentController) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	order, err := c.Payments.CreateOrder(req.RegistrationNumber)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"order": order})
}

// Verify godoc
// @Summary Verify a payment capture
// @Description Validates the gateway callback signature; a mismatch marks the order failed
// @Tags payments
// @Accept json
// @Produce json
// @Param body body service.PaymentVerification true "capture details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/payments/verify [post]
func (c *PaymentController) Verify(ctx *gin.Context) {
	var req service.PaymentVerification
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	order, err := c.Payments.VerifyPayment(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"order": order})
}

// ListByRegistration godoc
// @Summary List a candidate's payment orders
// @Tags payments
// @Produce json
// @Param registrationId path string true "registration number"
// @Success 200 {object} map[string]interface{}
// @Router /api/payments/{registrationId} [get]
func (c *PaymentController) ListByRegistration(ctx *gin.Context) {
	orders, err := c.Payments.ListByRegistration(ctx.Param("registrationId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"orders": orders})
}
