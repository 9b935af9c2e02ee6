package controllers_fx

import (
	"go.uber.org/fx"
	"payflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCustomerController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewInvoiceController))
