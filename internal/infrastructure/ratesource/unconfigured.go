package ratesource

import (
	"context"

	"villa_pricing/internal/usecase"
	"villa_pricing/internal/usecase/interfaces"
)

// Unconfigured is the rate source shipped until a marketplace integration
// exists. Every fetch reports usecase.ErrRateSourceNotConfigured.
type Unconfigured struct{}

var _ interfaces.IRateSource = Unconfigured{}

func (Unconfigured) FetchRates(context.Context) (map[string]float64, error) {
	return nil, usecase.ErrRateSourceNotConfigured
}
