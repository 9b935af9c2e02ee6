package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payflow/internal/services"
	"payflow/pkg/utils"
)

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface) *InvoiceController {
	return &InvoiceController{
		invoiceService: invoiceService,
	}
}

// GetInvoice godoc
// @Summary Get an invoice by id
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (ctl *InvoiceController) GetInvoice(c *gin.Context) {
	invoiceId := c.Param("id")
	if invoiceId == "" {
		utils.RespondError(c, http.StatusBadRequest, "invoice id is required")
		return
	}

	invoice, err := ctl.invoiceService.GetInvoiceById(c.Request.Context(), invoiceId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice fetched successfully")
}

// ListInvoices godoc
// @Summary List the authenticated customer's invoices
// @Tags Invoices
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices [get]
func (ctl *InvoiceController) ListInvoices(c *gin.Context) {
	customerId := c.GetString("user_id")
	if customerId == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	invoices, err := ctl.invoiceService.ListByCustomer(c.Request.Context(), customerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoices, "Invoices fetched successfully")
}
