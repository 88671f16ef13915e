package interfaces

//go:generate mockgen -source=rate_source_interface.go -destination=mocks/rate_source_interface_mock.go

import "context"

// IRateSource fetches third-party reference rates keyed by room id.
type IRateSource interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}
