package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"payflow/internal/models/db_models"
)

func TestSimulatedGateway_AlwaysApprovesAtFullRate(t *testing.T) {
	gw := NewSimulatedGatewayWithSource(1.0, rand.NewSource(1))
	method := &db_models.PaymentMethod{CardLast4: "4242", Token: "tok_test"}

	outcome := gw.Charge(context.Background(), method, 50.00)
	require.True(t, outcome.Succeeded)
	require.True(t, strings.HasPrefix(outcome.Reference, "ch_"))
	require.Empty(t, outcome.ReasonCode)
}

func TestSimulatedGateway_DeclinesWithInsufficientFunds(t *testing.T) {
	gw := NewSimulatedGatewayWithSource(0.0, rand.NewSource(1))
	method := &db_models.PaymentMethod{CardLast4: "4242", Token: "tok_test"}

	outcome := gw.Charge(context.Background(), method, 50.00)
	require.False(t, outcome.Succeeded)
	require.Equal(t, ReasonInsufficientFunds, outcome.ReasonCode)
	require.Empty(t, outcome.Reference)
}

func TestSimulatedGateway_OutcomeIsBinaryAndTotal(t *testing.T) {
	gw := NewSimulatedGatewayWithSource(0.7, rand.NewSource(42))
	method := &db_models.PaymentMethod{CardLast4: "4242", Token: "tok_test"}

	for i := 0; i < 200; i++ {
		outcome := gw.Charge(context.Background(), method, 10.00)
		if outcome.Succeeded {
			require.NotEmpty(t, outcome.Reference)
			require.Empty(t, outcome.ReasonCode)
		} else {
			require.Equal(t, ReasonInsufficientFunds, outcome.ReasonCode)
			require.Empty(t, outcome.Reference)
		}
	}
}

func TestSimulatedGateway_CanceledContextIsTimeoutFailure(t *testing.T) {
	gw := NewSimulatedGatewayWithSource(1.0, rand.NewSource(1))
	method := &db_models.PaymentMethod{CardLast4: "4242", Token: "tok_test"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := gw.Charge(ctx, method, 50.00)
	require.False(t, outcome.Succeeded)
	require.Equal(t, ReasonGatewayTimeout, outcome.ReasonCode)
}
