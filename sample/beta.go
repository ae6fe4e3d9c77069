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

// expMax is log(math.MaxFloat64).
var expMax = 1024 * math.Ln2

// BetaConstants holds the setup of Cheng's algorithms for one pair of
// shapes.
type BetaConstants struct {
	AA, BB float64
	// smaller and larger shape
	A, B   float64
	Alpha  float64
	Beta   float64
	Gamma  float64
	Delta  float64
	K1, K2 float64
}

func newBetaConstants(aa, bb float64) BetaConstants {
	k := BetaConstants{AA: aa, BB: bb}
	k.A = math.Min(aa, bb)
	k.B = math.Max(aa, bb)
	k.Alpha = k.A + k.B

	if k.A <= 1.0 {
		k.Beta = 1.0 / k.A
		k.Delta = 1.0 + k.B - k.A
		k.K1 = k.Delta * (0.0138889 + 0.0416667*k.A) / (k.B*k.Beta - 0.777778)
		k.K2 = 0.25 + (0.5+0.25/k.Delta)*k.A
	} else {
		k.Beta = math.Sqrt((k.Alpha - 2.0) / (2.0*k.A*k.B - k.Alpha))
		k.Gamma = k.A + 1.0/k.Beta
	}
	return k
}

// vw maps u1 onto v = beta*log(u1/(1-u1)) and w = scale*exp(v), capping
// w at the largest float64.
func (k *BetaConstants) vw(u1, scale float64) (v, w float64) {
	v = k.Beta * math.Log(u1/(1.0-u1))
	if v > expMax {
		return v, math.MaxFloat64
	}
	w = scale * math.Exp(v)
	if math.IsInf(w, 0) {
		w = math.MaxFloat64
	}
	return v, w
}

// Beta samples the Beta distribution with R. C. H. Cheng, "Generating
// beta variates with nonintegral shape parameters", Comm. ACM 21 (1978):
// algorithm BB when both shapes exceed 1, algorithm BC otherwise.
type Beta struct {
	normal *Normal
	cache  BetaConstants
	cached bool
}

// NewBeta returns a Beta sampler drawing from n.
func NewBeta(n *Normal) *Beta {
	return &Beta{normal: n}
}

// Constants returns the setup of the most recent pair of shapes and
// whether there is one.
func (b *Beta) Constants() (BetaConstants, bool) {
	return b.cache, b.cached
}

func (b *Beta) constants(aa, bb float64) *BetaConstants {
	if !b.cached || b.cache.AA != aa || b.cache.BB != bb {
		b.cache = newBetaConstants(aa, bb)
		b.cached = true
		logger.Log().Debug().Float64("a", aa).Float64("b", bb).Msg("beta constants rebuilt")
	}
	return &b.cache
}

// Rand returns a Beta deviate with shapes aa and bb.
func (b *Beta) Rand(aa, bb float64) (float64, error) {
	if math.IsNaN(aa) || math.IsInf(aa, 0) || aa <= 0 {
		return math.NaN(), invalid("beta", "shape a", aa)
	}
	if math.IsNaN(bb) || math.IsInf(bb, 0) || bb <= 0 {
		return math.NaN(), invalid("beta", "shape b", bb)
	}

	k := b.constants(aa, bb)
	if k.A <= 1.0 {
		return b.bc(k)
	}
	return b.bb(k)
}

func (b *Beta) bc(k *BetaConstants) (float64, error) {
	for iter := 0; iter < maxIterations; iter++ {
		u1 := b.normal.UnifRand()
		u2 := b.normal.UnifRand()

		var z float64
		if u1 < 0.5 {
			y := u1 * u2
			z = u1 * y
			if 0.25*u2+z-y >= k.K1 {
				continue
			}
		} else {
			z = u1 * u1 * u2
			if z <= 0.25 {
				_, w := k.vw(u1, k.B)
				return k.bcResult(w), nil
			}
			if z >= k.K2 {
				continue
			}
		}

		v, w := k.vw(u1, k.B)
		if k.Alpha*(math.Log(k.Alpha/(k.A+w))+v)-1.3862944 >= math.Log(z) {
			return k.bcResult(w), nil
		}
	}
	return 0, errIterations("beta")
}

func (k *BetaConstants) bcResult(w float64) float64 {
	if k.AA == k.A {
		return k.A / (k.A + w)
	}
	return w / (k.A + w)
}

func (b *Beta) bb(k *BetaConstants) (float64, error) {
	for iter := 0; iter < maxIterations; iter++ {
		u1 := b.normal.UnifRand()
		u2 := b.normal.UnifRand()

		v, w := k.vw(u1, k.A)
		z := u1 * u1 * u2
		r := k.Gamma*v - 1.3862944
		s := k.A + r - w
		if s+2.609438 >= 5.0*z {
			return k.bbResult(w), nil
		}
		t := math.Log(z)
		if s > t {
			return k.bbResult(w), nil
		}
		if r+k.Alpha*math.Log(k.Alpha/(k.B+w)) >= t {
			return k.bbResult(w), nil
		}
	}
	return 0, errIterations("beta")
}

func (k *BetaConstants) bbResult(w float64) float64 {
	if k.AA != k.A {
		return k.B / (k.B + w)
	}
	return w / (k.B + w)
}

// Generate returns count Beta deviates, recycling the shape vectors.
func (b *Beta) Generate(count int, aa, bb []float64) ([]float64, error) {
	return generate(count, [][]float64{aa, bb}, func(args []float64) (float64, error) {
		return b.Rand(args[0], args[1])
	})
}

// Sampler returns a Sampler of Beta(aa, bb) deviates.
func (b *Beta) Sampler(aa, bb float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return b.Rand(aa, bb)
	})
}
