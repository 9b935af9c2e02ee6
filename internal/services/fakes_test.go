package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"payflow/internal/models/db_models"
)

// In-memory fakes shared by the service tests.

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMail struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMail) Notify(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return m.sendErr
}

type fakeCustomerRepo struct {
	customers map[string]*db_models.Customer
	findErr   error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*db_models.Customer)}
}

func (r *fakeCustomerRepo) Insert(ctx context.Context, customer *db_models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID.String()] = customer
	return nil
}

func (r *fakeCustomerRepo) FindById(ctx context.Context, id string) (*db_models.Customer, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) FindAll(ctx context.Context) ([]db_models.Customer, error) {
	var out []db_models.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*db_models.Customer, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

type fakeMethodRepo struct {
	methods   map[string]*db_models.PaymentMethod
	insertErr error
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[string]*db_models.PaymentMethod)}
}

func (r *fakeMethodRepo) Insert(ctx context.Context, method *db_models.PaymentMethod) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}
	r.methods[method.ID.String()] = method
	return nil
}

func (r *fakeMethodRepo) FindById(ctx context.Context, id string) (*db_models.PaymentMethod, error) {
	return r.methods[id], nil
}

func (r *fakeMethodRepo) ListByCustomer(ctx context.Context, customerId string) ([]db_models.PaymentMethod, error) {
	var out []db_models.PaymentMethod
	for _, m := range r.methods {
		if m.CustomerID.String() == customerId {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeSubscriptionRepo struct {
	subscriptions map[string]*db_models.Subscription
	insertErr     error
	updateErr     error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subscriptions: make(map[string]*db_models.Subscription)}
}

func (r *fakeSubscriptionRepo) Insert(ctx context.Context, subscription *db_models.Subscription) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	copied := *subscription
	r.subscriptions[subscription.ID.String()] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) FindById(ctx context.Context, id string) (*db_models.Subscription, error) {
	sub, ok := r.subscriptions[id]
	if !ok {
		return nil, nil
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, subscription *db_models.Subscription) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	copied := *subscription
	r.subscriptions[subscription.ID.String()] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) ListByCustomer(ctx context.Context, customerId string) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, sub := range r.subscriptions {
		if sub.CustomerID.String() == customerId {
			out = append(out, *sub)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	invoices  map[string]*db_models.Invoice
	insertErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*db_models.Invoice)}
}

func (r *fakeInvoiceRepo) Insert(ctx context.Context, invoice *db_models.Invoice) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID.String()] = invoice
	return nil
}

func (r *fakeInvoiceRepo) FindById(ctx context.Context, id string) (*db_models.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *db_models.Invoice) error {
	r.invoices[invoice.ID.String()] = invoice
	return nil
}

func (r *fakeInvoiceRepo) ListByCustomer(ctx context.Context, customerId string) ([]db_models.Invoice, error) {
	var out []db_models.Invoice
	for _, inv := range r.invoices {
		if inv.CustomerID.String() == customerId {
			out = append(out, *inv)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments  []*db_models.Payment
	insertErr error
}

func (r *fakePaymentRepo) Insert(ctx context.Context, payment *db_models.Payment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) ListByCustomer(ctx context.Context, customerId string) ([]db_models.Payment, error) {
	var out []db_models.Payment
	for _, p := range r.payments {
		if p.CustomerID.String() == customerId {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeGateway returns a scripted outcome.
type fakeGateway struct {
	outcome ChargeOutcome
	calls   int
}

func (g *fakeGateway) Charge(ctx context.Context, method *db_models.PaymentMethod, amount float64) ChargeOutcome {
	g.calls++
	return g.outcome
}

var errMailDown = errors.New("smtp connection refused")
