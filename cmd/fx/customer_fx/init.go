package customer_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"payflow/internal/repositories"
	"payflow/internal/services"
)

var Module = fx.Provide(
	provideCustomerRepo, providePaymentMethodRepo, provideCustomerService)

func provideCustomerRepo(db *gorm.DB) repositories.CustomerRepository {
	return repositories.NewCustomerRepository(db)
}

func providePaymentMethodRepo(db *gorm.DB) repositories.PaymentMethodRepository {
	return repositories.NewPaymentMethodRepository(db)
}

func provideCustomerService(customerRepo repositories.CustomerRepository, methodRepo repositories.PaymentMethodRepository) services.CustomerServiceInterface {
	return services.NewCustomerService(customerRepo, methodRepo)
}
