package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payflow/internal/models/request_models"
	"payflow/internal/services"
	"payflow/pkg/utils"
)

type CustomerController struct {
	customerService services.CustomerServiceInterface
}

func NewCustomerController(customerService services.CustomerServiceInterface) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

// Register godoc
// @Summary Register a new customer
// @Description Create a new customer account
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /customers/register [post]
func (ctl *CustomerController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.customerService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Customer created successfully")
}

// Login godoc
// @Summary Login to a customer account
// @Description Authenticate a customer and return a token
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /customers/login [post]
func (ctl *CustomerController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := ctl.customerService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// Me godoc
// @Summary Get the authenticated customer
// @Tags Customers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers/me [get]
func (ctl *CustomerController) Me(c *gin.Context) {
	customerId := c.GetString("user_id")
	if customerId == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	customer, err := ctl.customerService.GetCustomer(c.Request.Context(), customerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Customer fetched successfully")
}

// GetAllCustomers godoc
// @Summary Get all customers
// @Description Fetch a list of all customers (admin only)
// @Tags Customers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers/all [get]
func (ctl *CustomerController) GetAllCustomers(c *gin.Context) {

	customers, err := ctl.customerService.GetAllCustomers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customers, "Customers fetched successfully")
}

// RegisterCard godoc
// @Summary Register a payment card
// @Description Tokenize a card for the authenticated customer; only the last 4 digits are stored
// @Tags PaymentMethods
// @Accept json
// @Produce json
// @Param request body request_models.RegisterCardRequest true "Card payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment-methods [post]
func (ctl *CustomerController) RegisterCard(c *gin.Context) {
	var req request_models.RegisterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customerId := c.GetString("user_id")
	if customerId == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	method, err := ctl.customerService.RegisterCard(c.Request.Context(), customerId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, method, "Payment method registered successfully")
}

// ListPaymentMethods godoc
// @Summary List the authenticated customer's payment methods
// @Tags PaymentMethods
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (ctl *CustomerController) ListPaymentMethods(c *gin.Context) {
	customerId := c.GetString("user_id")
	if customerId == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	methods, err := ctl.customerService.ListPaymentMethods(c.Request.Context(), customerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, methods, "Payment methods fetched successfully")
}
