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
	pdA0 = -0.5
	pdA1 = 0.3333333
	pdA2 = -0.2500068
	pdA3 = 0.2000118
	pdA4 = -0.1661269
	pdA5 = 0.1421878
	pdA6 = -0.1384794
	pdA7 = 0.1250060

	one7  = 0.1428571428571428571
	one12 = 0.0833333333333333333
	one24 = 0.0416666666666666667

	oneSqrt2Pi = 0.398942280401432677939946059934

	// means from here on use the Normal based PD algorithm
	poissonLargeMean = 10.0

	// size of the cumulative table of the inversion method
	poissonTableLen = 36
)

var factorial = [10]float64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880}

// poissonTable is the lazily extended cumulative probability table used
// for means below 10.
type poissonTable struct {
	m  int
	l  int
	p0 float64
	p  float64
	q  float64
	pp [poissonTableLen]float64
}

// poissonHat holds the constants of the PD algorithm.
type poissonHat struct {
	s, d, bigL float64
	omega      float64
	b1, b2     float64
	c          float64
	c0, c1     float64
	c2, c3     float64
}

// PoissonConstants is the cached setup for the most recent mean.
type PoissonConstants struct {
	Mu    float64
	Large bool
	table poissonTable
	hat   poissonHat
}

func newPoissonConstants(mu float64) PoissonConstants {
	k := PoissonConstants{Mu: mu, Large: mu >= poissonLargeMean}
	if !k.Large {
		t := &k.table
		t.m = int(math.Max(1, float64(int(mu))))
		t.l = 0
		t.p0 = math.Exp(-mu)
		t.p = t.p0
		t.q = t.p0
		return k
	}

	h := &k.hat
	h.s = math.Sqrt(mu)
	h.d = 6.0 * mu * mu
	// upper bound of the point from which the Poisson probabilities
	// exceed the discrete Normal ones
	h.bigL = math.Floor(mu - 1.1484)

	h.omega = oneSqrt2Pi / h.s
	h.b1 = one24 / mu
	h.b2 = 0.3 * h.b1 * h.b1
	h.c3 = one7 * h.b1 * h.b2
	h.c2 = h.b2 - 15.0*h.c3
	h.c1 = h.b1 - 6.0*h.b2 + 45.0*h.c3
	h.c0 = 1.0 - h.b1 + 3.0*h.b2 - 15.0*h.c3
	h.c = 0.1069 / mu
	return k
}

// Poisson samples the Poisson distribution. Means below 10 use table
// lookup inversion, larger means algorithm PD of J. H. Ahrens and
// U. Dieter, "Computer generation of Poisson deviates from modified
// normal distributions", ACM Trans. Math. Software 8 (1982).
type Poisson struct {
	normal *Normal
	cache  PoissonConstants
	cached bool
}

// NewPoisson returns a Poisson sampler drawing from n.
func NewPoisson(n *Normal) *Poisson {
	return &Poisson{normal: n}
}

// Constants returns the setup of the most recent positive mean and
// whether there is one.
func (p *Poisson) Constants() (PoissonConstants, bool) {
	return p.cache, p.cached
}

func (p *Poisson) constants(mu float64) *PoissonConstants {
	if !p.cached || p.cache.Mu != mu {
		p.cache = newPoissonConstants(mu)
		p.cached = true
		logger.Log().Debug().Float64("mu", mu).Bool("large", p.cache.Large).Msg("poisson constants rebuilt")
	}
	return &p.cache
}

// Rand returns a Poisson deviate with mean mu.
func (p *Poisson) Rand(mu float64) (float64, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu < 0 {
		return math.NaN(), invalid("poisson", "mu", mu)
	}
	if mu == 0 {
		return 0, nil
	}

	k := p.constants(mu)
	if !k.Large {
		return p.inversion(&k.table, mu)
	}
	return p.pd(&k.hat, mu)
}

func (p *Poisson) inversion(t *poissonTable, mu float64) (float64, error) {
	for iter := 0; iter < maxIterations; iter++ {
		u := p.normal.UnifRand()
		if u <= t.p0 {
			return 0, nil
		}

		// look up the part of the table built so far
		if t.l > 0 {
			j := 1
			if u > 0.458 {
				j = t.m
				if t.l < j {
					j = t.l
				}
			}
			for k := j; k <= t.l; k++ {
				if u <= t.pp[k] {
					return float64(k), nil
				}
			}
			if t.l == poissonTableLen-1 {
				continue
			}
		}

		// extend the table
		for k := t.l + 1; k < poissonTableLen; k++ {
			t.p *= mu / float64(k)
			t.q += t.p
			t.pp[k] = t.q
			if u <= t.q {
				t.l = k
				return float64(k), nil
			}
		}
		t.l = poissonTableLen - 1
	}
	return 0, errIterations("poisson")
}

// f evaluates the discrete Normal and Poisson probabilities compared in
// the quotient and hat acceptance steps.
func (h *poissonHat) f(mu, pois float64) (px, py, fx, fy float64) {
	fk := pois
	difmuk := mu - fk
	if pois < 10 {
		px = -mu
		py = math.Pow(mu, pois) / factorial[int(pois)]
	} else {
		del := one12 / fk
		del = del * (1.0 - 4.8*del*del)
		v := difmuk / fk
		if math.Abs(v) <= 0.25 {
			px = fk*v*v*(((((((pdA7*v+pdA6)*v+pdA5)*v+pdA4)*v+pdA3)*v+pdA2)*v+pdA1)*v+pdA0) - del
		} else {
			px = fk*math.Log(1.0+v) - difmuk - del
		}
		py = oneSqrt2Pi / math.Sqrt(fk)
	}
	x := (0.5 - difmuk) / h.s
	xx := x * x
	fx = -0.5 * xx
	fy = h.omega * (((h.c3*xx+h.c2)*xx+h.c1)*xx + h.c0)
	return px, py, fx, fy
}

func (p *Poisson) pd(h *poissonHat, mu float64) (float64, error) {
	z, err := p.normal.NormRand()
	if err != nil {
		return 0, err
	}
	g := mu + h.s*z

	if g >= 0 {
		pois := math.Floor(g)
		// immediate acceptance
		if pois >= h.bigL {
			return pois, nil
		}
		// squeeze acceptance
		difmuk := mu - pois
		u := p.normal.UnifRand()
		if h.d*u >= difmuk*difmuk*difmuk {
			return pois, nil
		}
		// quotient acceptance
		px, py, fx, fy := h.f(mu, pois)
		if fy-u*fy <= py*math.Exp(px-fx) {
			return pois, nil
		}
	}

	// Laplace hat
	for iter := 0; iter < maxIterations; iter++ {
		e := p.normal.ExpRand()
		u := 2*p.normal.UnifRand() - 1.0
		t := 1.8 + e
		if u < 0 {
			t = 1.8 - e
		}
		// below -0.6744 the Poisson probabilities are under the Normal ones
		if t <= -0.6744 {
			continue
		}
		pois := math.Floor(mu + h.s*t)
		px, py, fx, fy := h.f(mu, pois)
		if h.c*math.Abs(u) <= py*math.Exp(px+e)-fy*math.Exp(fx+e) {
			return pois, nil
		}
	}
	return 0, errIterations("poisson")
}

// Generate returns count Poisson deviates, recycling the mean vector.
func (p *Poisson) Generate(count int, mu []float64) ([]float64, error) {
	return generate(count, [][]float64{mu}, func(args []float64) (float64, error) {
		return p.Rand(args[0])
	})
}

// Sampler returns a Sampler of Poisson deviates with mean mu.
func (p *Poisson) Sampler(mu float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return p.Rand(mu)
	})
}
