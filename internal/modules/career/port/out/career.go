package out

import (
	"context"

	"technova/internal/modules/career/domain"
)

// NormalSampler draws from a normal distribution. A sampler is used by one run at a time.
type NormalSampler interface {
	Normal(mean, stddev float64) float64
}

// SamplerSource hands out a sampler for one stream of a simulation call.
// Tracks simulated together use distinct streams.
type SamplerSource interface {
	NewSampler(stream uint64) NormalSampler
}

type TrackSource interface {
	Load(ctx context.Context) ([]domain.TrackProfile, error)
}
