package gateway_fx

import (
	"go.uber.org/fx"
	"payflow/internal/services"
)

var Module = fx.Provide(provideGateway)

// The simulated gateway approves roughly 7 of 10 charges. Swap this provider
// for a real adapter without touching the orchestrator.
func provideGateway() services.PaymentGateway {
	return services.NewSimulatedGateway()
}
