package out

import (
	"math/rand/v2"

	careerout "technova/internal/modules/career/port/out"
)

// GaussianSamplerSource builds PCG-backed samplers. Seed 0 draws every stream
// from process entropy; any other seed maps stream k to PCG (seed, k), so the
// same call always replays the same draws.
type GaussianSamplerSource struct {
	seed uint64
}

func NewGaussianSamplerSource(seed uint64) *GaussianSamplerSource {
	return &GaussianSamplerSource{seed: seed}
}

func (s *GaussianSamplerSource) NewSampler(stream uint64) careerout.NormalSampler {
	if s.seed == 0 {
		return gaussianSampler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return gaussianSampler{rng: rand.New(rand.NewPCG(s.seed, stream))}
}

type gaussianSampler struct {
	rng *rand.Rand
}

func (g gaussianSampler) Normal(mean, stddev float64) float64 {
	return mean + stddev*g.rng.NormFloat64()
}
