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

import (
	"math"

	"github.com/fentec-project/rmath/logger"
)

const (
	gdSqrt32 = 5.656854
	expM1    = 0.36787944117144233 // exp(-1)

	// gdTau is the lower bound of the double exponential hat
	gdTau = -0.71874483771719

	gdQ1 = 0.04166669
	gdQ2 = 0.02083148
	gdQ3 = 0.00801191
	gdQ4 = 0.00144121
	gdQ5 = -7.388e-5
	gdQ6 = 2.4511e-4
	gdQ7 = 2.424e-4

	gdA1 = 0.3333333
	gdA2 = -0.250003
	gdA3 = 0.2000062
	gdA4 = -0.1662921
	gdA5 = 0.1423657
	gdA6 = -0.1367177
	gdA7 = 0.1233795
)

// GammaConstants holds the setup of the GD algorithm for one shape.
type GammaConstants struct {
	Shape float64
	S2    float64
	S     float64
	D     float64
	Q0    float64
	B     float64
	Si    float64
	C     float64
}

func newGammaConstants(a float64) GammaConstants {
	k := GammaConstants{Shape: a}
	k.S2 = a - 0.5
	k.S = math.Sqrt(k.S2)
	k.D = gdSqrt32 - k.S*12.0

	r := 1.0 / a
	k.Q0 = ((((((gdQ7*r+gdQ6)*r+gdQ5)*r+gdQ4)*r+gdQ3)*r+gdQ2)*r + gdQ1) * r

	// piecewise fits of the hat constants
	switch {
	case a <= 3.686:
		k.B = 0.463 + k.S + 0.178*k.S2
		k.Si = 1.235
		k.C = 0.195/k.S - 0.079 + 0.16*k.S
	case a <= 13.022:
		k.B = 1.654 + 0.0076*k.S2
		k.Si = 1.68/k.S + 0.275
		k.C = 0.062/k.S + 0.024
	default:
		k.B = 1.77
		k.Si = 0.75
		k.C = 0.1515 / k.S
	}
	return k
}

// q returns the log quotient of the Gamma density and the Normal hat at t.
func (k *GammaConstants) q(t float64) float64 {
	v := t / (k.S + k.S)
	if math.Abs(v) <= 0.25 {
		return k.Q0 + 0.5*t*t*((((((gdA7*v+gdA6)*v+gdA5)*v+gdA4)*v+gdA3)*v+gdA2)*v+gdA1)*v
	}
	return k.Q0 - k.S*t + 0.25*t*t + (k.S2+k.S2)*math.Log(1.0+v)
}

// Gamma samples the Gamma distribution.
//
// Shapes below 1 use algorithm GS of J. H. Ahrens and U. Dieter,
// "Computer methods for sampling from gamma, beta, poisson and binomial
// distributions", Computing 12 (1974). Larger shapes use algorithm GD of
// J. H. Ahrens and U. Dieter, "Generating gamma variates by a modified
// rejection technique", Comm. ACM 25 (1982), whose setup is kept for the
// most recent shape.
type Gamma struct {
	normal *Normal
	cache  GammaConstants
	cached bool
}

// NewGamma returns a Gamma sampler drawing from n.
func NewGamma(n *Normal) *Gamma {
	return &Gamma{normal: n}
}

// Constants returns the GD setup of the most recent shape >= 1 and
// whether there is one.
func (g *Gamma) Constants() (GammaConstants, bool) {
	return g.cache, g.cached
}

func (g *Gamma) constants(a float64) *GammaConstants {
	if !g.cached || g.cache.Shape != a {
		g.cache = newGammaConstants(a)
		g.cached = true
		logger.Log().Debug().Float64("shape", a).Float64("q0", g.cache.Q0).Msg("gamma constants rebuilt")
	}
	return &g.cache
}

// Rand returns a Gamma deviate with the given shape and scale.
func (g *Gamma) Rand(shape, scale float64) (float64, error) {
	if math.IsNaN(shape) || math.IsInf(shape, 0) || shape <= 0 {
		return math.NaN(), invalid("gamma", "shape", shape)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return math.NaN(), invalid("gamma", "scale", scale)
	}

	if shape < 1 {
		x, err := g.gs(shape)
		return scale * x, err
	}
	x, err := g.gd(shape)
	return scale * x, err
}

func (g *Gamma) gs(a float64) (float64, error) {
	e := 1.0 + expM1*a
	for iter := 0; iter < maxIterations; iter++ {
		p := e * g.normal.UnifRand()
		if p >= 1.0 {
			x := -math.Log((e - p) / a)
			if g.normal.ExpRand() >= (1.0-a)*math.Log(x) {
				return x, nil
			}
		} else {
			x := math.Exp(math.Log(p) / a)
			if g.normal.ExpRand() >= x {
				return x, nil
			}
		}
	}
	return 0, errIterations("gamma")
}

func (g *Gamma) gd(a float64) (float64, error) {
	k := g.constants(a)

	// immediate acceptance
	t, err := g.normal.NormRand()
	if err != nil {
		return 0, err
	}
	x := k.S + 0.5*t
	ret := x * x
	if t >= 0 {
		return ret, nil
	}

	// squeeze acceptance
	u := g.normal.UnifRand()
	if k.D*u <= t*t*t {
		return ret, nil
	}

	// quotient acceptance
	if x > 0 && math.Log(1.0-u) <= k.q(t) {
		return ret, nil
	}

	// double exponential rejection
	for iter := 0; iter < maxIterations; iter++ {
		e := g.normal.ExpRand()
		u = g.normal.UnifRand()
		u = u + u - 1.0
		if u < 0.0 {
			t = k.B - k.Si*e
		} else {
			t = k.B + k.Si*e
		}
		if t < gdTau {
			continue
		}
		q := k.q(t)
		if q <= 0 {
			continue
		}
		w := math.Expm1(q)
		if k.C*math.Abs(u) <= w*math.Exp(e-0.5*t*t) {
			x = k.S + 0.5*t
			return x * x, nil
		}
	}
	return 0, errIterations("gamma")
}

// Generate returns count Gamma deviates, recycling the shape and scale
// vectors.
func (g *Gamma) Generate(count int, shape, scale []float64) ([]float64, error) {
	return generate(count, [][]float64{shape, scale}, func(args []float64) (float64, error) {
		return g.Rand(args[0], args[1])
	})
}

// Sampler returns a Sampler of Gamma(shape, scale) deviates.
func (g *Gamma) Sampler(shape, scale float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return g.Rand(shape, scale)
	})
}
