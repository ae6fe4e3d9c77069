/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import "math"

// NegativeBinomial samples the negative Binomial distribution as a
// Gamma mixture of Poisson distributions.
type NegativeBinomial struct {
	gamma   *Gamma
	poisson *Poisson
}

// NewNegativeBinomial returns a negative Binomial sampler drawing from n.
func NewNegativeBinomial(n *Normal) *NegativeBinomial {
	return &NegativeBinomial{
		gamma:   NewGamma(n),
		poisson: NewPoisson(n),
	}
}

// Rand returns the number of failures before the size-th success in
// trials with success probability prob.
func (nb *NegativeBinomial) Rand(size, prob float64) (float64, error) {
	if math.IsNaN(size) || size <= 0 {
		return math.NaN(), invalid("negative binomial", "size", size)
	}
	if math.IsNaN(prob) || prob <= 0 || prob > 1 {
		return math.NaN(), invalid("negative binomial", "probability", prob)
	}
	if prob == 1 {
		return 0, nil
	}
	if math.IsInf(size, 1) {
		size = math.MaxFloat64 / 2
	}
	return nb.mixture(size, (1-prob)/prob)
}

// RandMu is Rand parametrized by the mean mu = size*(1-prob)/prob.
func (nb *NegativeBinomial) RandMu(size, mu float64) (float64, error) {
	if math.IsNaN(size) || size <= 0 {
		return math.NaN(), invalid("negative binomial", "size", size)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu < 0 {
		return math.NaN(), invalid("negative binomial", "mu", mu)
	}
	if mu == 0 {
		return 0, nil
	}
	if math.IsInf(size, 1) {
		size = math.MaxFloat64 / 2
	}
	return nb.mixture(size, mu/size)
}

func (nb *NegativeBinomial) mixture(size, scale float64) (float64, error) {
	// a Gamma with an underflowed scale is a point mass at 0
	if scale == 0 {
		return 0, nil
	}
	lambda, err := nb.gamma.Rand(size, scale)
	if err != nil {
		return 0, err
	}
	return nb.poisson.Rand(lambda)
}

// Generate returns count negative Binomial deviates, recycling the size
// and probability vectors.
func (nb *NegativeBinomial) Generate(count int, size, prob []float64) ([]float64, error) {
	return generate(count, [][]float64{size, prob}, func(args []float64) (float64, error) {
		return nb.Rand(args[0], args[1])
	})
}

// GenerateMu is Generate parametrized by the mean.
func (nb *NegativeBinomial) GenerateMu(count int, size, mu []float64) ([]float64, error) {
	return generate(count, [][]float64{size, mu}, func(args []float64) (float64, error) {
		return nb.RandMu(args[0], args[1])
	})
}

// Sampler returns a Sampler of negative Binomial(size, prob) deviates.
func (nb *NegativeBinomial) Sampler(size, prob float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return nb.Rand(size, prob)
	})
}

// Geometric samples the number of failures before the first success.
type Geometric struct {
	normal  *Normal
	poisson *Poisson
}

// NewGeometric returns a geometric sampler drawing from n.
func NewGeometric(n *Normal) *Geometric {
	return &Geometric{
		normal:  n,
		poisson: NewPoisson(n),
	}
}

// Rand returns a geometric deviate with success probability p.
func (g *Geometric) Rand(p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return math.NaN(), invalid("geometric", "probability", p)
	}
	return g.poisson.Rand(g.normal.ExpRand() * ((1 - p) / p))
}

// Generate returns count geometric deviates, recycling the probability
// vector.
func (g *Geometric) Generate(count int, p []float64) ([]float64, error) {
	return generate(count, [][]float64{p}, func(args []float64) (float64, error) {
		return g.Rand(args[0])
	})
}

// Sampler returns a Sampler of geometric deviates.
func (g *Geometric) Sampler(p float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return g.Rand(p)
	})
}
