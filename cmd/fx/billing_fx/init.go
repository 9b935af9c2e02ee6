package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"payflow/internal/repositories"
	"payflow/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideInvoiceRepo, providePaymentRepo,
	provideInvoiceService, provideDunningService, provideBillingService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideInvoiceRepo(db *gorm.DB) repositories.InvoiceRepository {
	return repositories.NewInvoiceRepository(db)
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideInvoiceService(invoiceRepo repositories.InvoiceRepository, mailService services.IMailService) services.InvoiceServiceInterface {
	return services.NewInvoiceService(invoiceRepo, mailService)
}

func provideDunningService(mailService services.IMailService) services.DunningServiceInterface {
	return services.NewDunningService(mailService)
}

func provideBillingService(
	customerRepo repositories.CustomerRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
	methodRepo repositories.PaymentMethodRepository,
	invoiceService services.InvoiceServiceInterface,
	dunningService services.DunningServiceInterface,
	gateway services.PaymentGateway,
	mailService services.IMailService,
) services.BillingServiceInterface {
	return services.NewBillingService(
		customerRepo, subscriptionRepo, paymentRepo, methodRepo,
		invoiceService, dunningService, gateway, mailService)
}
