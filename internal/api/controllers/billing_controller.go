package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payflow/internal/models/request_models"
	"payflow/internal/services"
	"payflow/pkg/utils"
)

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// CreateSubscription godoc
// @Summary Purchase a subscription
// @Description Create an active subscription and generate its first invoice
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (ctl *BillingController) CreateSubscription(c *gin.Context) {
	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customerId := c.GetString("user_id")
	if customerId == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	result, err := ctl.billingService.CreateSubscription(c.Request.Context(), customerId, req.PlanName, req.Price, req.Interval)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Subscription created successfully")
}

// CancelSubscription godoc
// @Summary Cancel a subscription
// @Description Cancel an active subscription and report the prorated refund for the unused cycle
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id} [delete]
func (ctl *BillingController) CancelSubscription(c *gin.Context) {
	subscriptionId := c.Param("id")
	if subscriptionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "subscription id is required")
		return
	}

	result, err := ctl.billingService.CancelSubscription(c.Request.Context(), subscriptionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Subscription canceled successfully")
}

// ListSubscriptions godoc
// @Summary List the authenticated customer's subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (ctl *BillingController) ListSubscriptions(c *gin.Context) {
	customerId := c.GetString("user_id")
	if customerId == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	subscriptions, err := ctl.billingService.ListSubscriptions(c.Request.Context(), customerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subscriptions, "Subscriptions fetched successfully")
}

// ProcessPayment godoc
// @Summary Charge a payment method
// @Description Attempt a one-off charge; a declined charge schedules a dunning retry notification
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.ProcessPaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments [post]
func (ctl *BillingController) ProcessPayment(c *gin.Context) {
	var req request_models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := ctl.billingService.ProcessPayment(c.Request.Context(), req.PaymentMethodID.String(), req.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Payment processed")
}
