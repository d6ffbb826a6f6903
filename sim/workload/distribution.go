package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// Sampler generates non-negative integer samples (job lengths or
// inter-arrival gaps) from a seeded RNG.
type Sampler interface {
	// Sample returns a value >= the sampler's floor.
	Sample(rng *rand.Rand) int64
}

// ConstantSampler always returns the same fixed value.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// UniformSampler draws integers uniformly from [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// ExponentialSampler produces exponentially-distributed values, rounded and
// floored. Used both for Poisson arrivals (inter-arrival gaps) and for
// heavy-ish tailed job lengths.
type ExponentialSampler struct {
	mean  float64
	floor int64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	val := int64(math.Round(rng.ExpFloat64() * s.mean))
	return max(val, s.floor)
}

// GaussianSampler produces clamped Gaussian values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int64(math.Round(clamped))
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewSampler creates a Sampler from a DistSpec. floor is the smallest value
// the sampler may return (1 for lengths, 0 for inter-arrival gaps); explicit
// bounds below the floor are rejected.
func NewSampler(spec DistSpec, floor int64) (Sampler, error) {
	switch spec.Type {
	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		v := int64(spec.Params["value"])
		if v < floor {
			return nil, fmt.Errorf("constant value must be >= %d, got %d", floor, v)
		}
		return &ConstantSampler{value: v}, nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if lo < floor || hi < lo {
			return nil, fmt.Errorf("uniform bounds must satisfy %d <= min <= max, got [%d, %d]", floor, lo, hi)
		}
		return &UniformSampler{min: lo, max: hi}, nil

	case "exponential", "poisson":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("mean must be positive, got %f", spec.Params["mean"])
		}
		return &ExponentialSampler{mean: spec.Params["mean"], floor: floor}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if lo < floor || hi < lo {
			return nil, fmt.Errorf("gaussian bounds must satisfy %d <= min <= max, got [%d, %d]", floor, lo, hi)
		}
		return &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    lo,
			max:    hi,
		}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
