package services

import (
	"context"
	"strings"

	"payflow/internal/models/db_models"
	"payflow/internal/models/request_models"
	"payflow/internal/models/response_models"
	"payflow/internal/repositories"
	"payflow/pkg/utils"
)

type CustomerServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetCustomer(ctx context.Context, id string) (*response_models.CustomerResponse, error)
	GetAllCustomers(ctx context.Context) ([]response_models.CustomerResponse, error)
	RegisterCard(ctx context.Context, customerId string, request request_models.RegisterCardRequest) (*response_models.PaymentMethodResponse, error)
	ListPaymentMethods(ctx context.Context, customerId string) ([]response_models.PaymentMethodResponse, error)
}

type CustomerService struct {
	customerRepo repositories.CustomerRepository
	methodRepo   repositories.PaymentMethodRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository, methodRepo repositories.PaymentMethodRepository) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		methodRepo:   methodRepo,
	}
}

func (s *CustomerService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	if strings.TrimSpace(request.Email) == "" {
		return utils.ErrValidation
	}

	existing, err := s.customerRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	customer := &db_models.Customer{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser, // default role
	}

	if err := s.customerRepo.Insert(ctx, customer); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *CustomerService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	customer, err := s.customerRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if customer == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(customer.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(customer.ID, string(customer.Role))
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*response_models.CustomerResponse, error) {

	customer, err := s.customerRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}

	return &response_models.CustomerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Role:  string(customer.Role),
	}, nil
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]response_models.CustomerResponse, error) {

	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.CustomerResponse, 0, len(customers))
	for i := range customers {
		results = append(results, response_models.CustomerResponse{
			ID:    customers[i].ID,
			Name:  customers[i].Name,
			Email: customers[i].Email,
			Role:  string(customers[i].Role),
		})
	}

	return results, nil
}

// RegisterCard keeps only the masked tail of the submitted number and a
// freshly generated opaque token; the full number is discarded here.
func (s *CustomerService) RegisterCard(ctx context.Context, customerId string, request request_models.RegisterCardRequest) (*response_models.PaymentMethodResponse, error) {

	cardNumber := strings.ReplaceAll(request.CardNumber, " ", "")
	if len(cardNumber) < 4 {
		return nil, utils.ErrValidation
	}

	customer, err := s.customerRepo.FindById(ctx, customerId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	method := &db_models.PaymentMethod{
		CustomerID: customer.ID,
		CardLast4:  cardNumber[len(cardNumber)-4:],
		Token:      token,
	}

	if err := s.methodRepo.Insert(ctx, method); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PaymentMethodResponse{
		ID:        method.ID,
		CardLast4: method.CardLast4,
	}, nil
}

func (s *CustomerService) ListPaymentMethods(ctx context.Context, customerId string) ([]response_models.PaymentMethodResponse, error) {

	methods, err := s.methodRepo.ListByCustomer(ctx, customerId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		results = append(results, response_models.PaymentMethodResponse{
			ID:        methods[i].ID,
			CardLast4: methods[i].CardLast4,
		})
	}

	return results, nil
}
