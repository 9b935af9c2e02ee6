package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"payflow/internal/models/db_models"
)

const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonGatewayTimeout    = "gateway_timeout"
)

// ChargeOutcome is the total, binary result of a charge attempt. A declined
// charge is a normal value here, not an error.
type ChargeOutcome struct {
	Succeeded  bool
	Reference  string // gateway reference, set on success
	ReasonCode string // decline reason, set on failure
}

// PaymentGateway authorizes a single charge against a tokenized instrument.
// It performs no retries; retry policy belongs to the dunning manager.
type PaymentGateway interface {
	Charge(ctx context.Context, method *db_models.PaymentMethod, amount float64) ChargeOutcome
}

// simulatedGateway stands in for a real payment network: it approves a
// configurable fraction of charges and declines the rest with
// insufficient_funds.
type simulatedGateway struct {
	successRate float64
	mu          sync.Mutex
	rng         *rand.Rand
}

func NewSimulatedGateway() PaymentGateway {
	return &simulatedGateway{
		successRate: 0.7,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSimulatedGatewayWithSource keeps the outcome deterministic for callers
// that supply a seeded source.
func NewSimulatedGatewayWithSource(successRate float64, src rand.Source) PaymentGateway {
	return &simulatedGateway{
		successRate: successRate,
		rng:         rand.New(src),
	}
}

func (g *simulatedGateway) Charge(ctx context.Context, method *db_models.PaymentMethod, amount float64) ChargeOutcome {
	if ctx.Err() != nil {
		return ChargeOutcome{Succeeded: false, ReasonCode: ReasonGatewayTimeout}
	}

	g.mu.Lock()
	roll := g.rng.Float64()
	g.mu.Unlock()

	if roll < g.successRate {
		return ChargeOutcome{
			Succeeded: true,
			Reference: "ch_" + uuid.New().String(),
		}
	}

	return ChargeOutcome{
		Succeeded:  false,
		ReasonCode: ReasonInsufficientFunds,
	}
}
