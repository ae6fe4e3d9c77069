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

// binomialMaxN is the largest supported number of trials plus one.
const binomialMaxN = math.MaxInt32

// BinomialConstants holds the setup for one (n, p) pair. The BTPE
// region boundaries are only set when n*min(p, 1-p) >= 30.
type BinomialConstants struct {
	N    int
	P    float64
	BTPE bool

	// min(p, 1-p) and its complement
	p, q float64
	r, g float64
	qn   float64

	m              int
	fm, npq        float64
	xm, xl, xr     float64
	c, xll, xlr    float64
	p1, p2, p3, p4 float64
}

func newBinomialConstants(n int, pp float64) BinomialConstants {
	k := BinomialConstants{N: n, P: pp}
	k.p = math.Min(pp, 1.0-pp)
	k.q = 1.0 - k.p
	np := float64(n) * k.p
	k.r = k.p / k.q
	k.g = k.r * float64(n+1)

	if np < 30.0 {
		k.qn = math.Pow(k.q, float64(n))
		return k
	}

	k.BTPE = true
	k.fm = np + k.p
	k.m = int(k.fm)
	k.npq = np * k.q
	k.p1 = float64(int(2.195*math.Sqrt(k.npq)-4.6*k.q)) + 0.5
	k.xm = float64(k.m) + 0.5
	k.xl = k.xm - k.p1
	k.xr = k.xm + k.p1
	k.c = 0.134 + 20.5/(15.3+float64(k.m))
	al := (k.fm - k.xl) / (k.fm - k.xl*k.p)
	k.xll = al * (1.0 + 0.5*al)
	al = (k.xr - k.fm) / (k.xr * k.q)
	k.xlr = al * (1.0 + 0.5*al)
	k.p2 = k.p1 * (1.0 + k.c + k.c)
	k.p3 = k.p2 + k.c/k.xll
	k.p4 = k.p3 + k.c/k.xlr
	return k
}

// Binomial samples the Binomial distribution. When the smaller of the
// two expected counts is below 30 it inverts the distribution function
// by summation, otherwise it uses algorithm BTPE of V. Kachitvichyanukul
// and B. W. Schmeiser, "Binomial random variate generation",
// Comm. ACM 31 (1988).
type Binomial struct {
	normal *Normal
	cache  BinomialConstants
	cached bool
}

// NewBinomial returns a Binomial sampler drawing from n.
func NewBinomial(n *Normal) *Binomial {
	return &Binomial{normal: n}
}

// Constants returns the setup of the most recent (n, p) pair and
// whether there is one.
func (b *Binomial) Constants() (BinomialConstants, bool) {
	return b.cache, b.cached
}

func (b *Binomial) constants(n int, p float64) *BinomialConstants {
	if !b.cached || b.cache.N != n || b.cache.P != p {
		b.cache = newBinomialConstants(n, p)
		b.cached = true
		logger.Log().Debug().Int("n", n).Float64("p", p).Bool("btpe", b.cache.BTPE).
			Msg("binomial constants rebuilt")
	}
	return &b.cache
}

// Rand returns the number of successes in size trials with success
// probability p. size must be a whole number below 2^31 - 1.
func (b *Binomial) Rand(size, p float64) (float64, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 || size != math.Floor(size) || size >= binomialMaxN {
		return math.NaN(), invalid("binomial", "size", size)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN(), invalid("binomial", "probability", p)
	}
	if size == 0 || p == 0 {
		return 0, nil
	}
	if p == 1 {
		return size, nil
	}

	n := int(size)
	k := b.constants(n, p)

	var ix int
	var err error
	if k.BTPE {
		ix, err = b.btpe(k)
	} else {
		ix, err = b.inversion(k)
	}
	if err != nil {
		return 0, err
	}
	if p > 0.5 {
		ix = n - ix
	}
	return float64(ix), nil
}

func (b *Binomial) inversion(k *BinomialConstants) (int, error) {
	for iter := 0; iter < maxIterations; iter++ {
		ix := 0
		f := k.qn
		u := b.normal.UnifRand()
		for {
			if u < f {
				return ix, nil
			}
			// restart, the remaining mass is negligible
			if ix > 110 {
				break
			}
			u -= f
			ix++
			f *= k.g/float64(ix) - k.r
		}
	}
	return 0, errIterations("binomial")
}

func (b *Binomial) btpe(k *BinomialConstants) (int, error) {
	n := k.N
	for iter := 0; iter < maxIterations; iter++ {
		u := b.normal.UnifRand() * k.p4
		v := b.normal.UnifRand()

		// triangular region
		if u <= k.p1 {
			return int(k.xm - k.p1*v + u), nil
		}

		var ix int
		switch {
		case u <= k.p2:
			// parallelogram region
			x := k.xl + (u-k.p1)/k.c
			v = v*k.c + 1.0 - math.Abs(k.xm-x)/k.p1
			if v > 1.0 || v <= 0 {
				continue
			}
			ix = int(x)
		case u > k.p3:
			// right tail
			ix = int(k.xr - math.Log(v)/k.xlr)
			if ix > n {
				continue
			}
			v = v * (u - k.p3) * k.xlr
		default:
			// left tail
			ix = int(k.xl + math.Log(v)/k.xll)
			if ix < 0 {
				continue
			}
			v = v * (u - k.p2) * k.xll
		}

		if k.accept(ix, v) {
			return ix, nil
		}
	}
	return 0, errIterations("binomial")
}

// accept performs the final acceptance test of BTPE for candidate ix.
func (k *BinomialConstants) accept(ix int, v float64) bool {
	n, m := k.N, k.m
	d := ix - m
	if d < 0 {
		d = -d
	}
	kf := float64(d)

	if d <= 20 || kf >= k.npq/2-1 {
		// explicit evaluation
		f := 1.0
		if m < ix {
			for i := m + 1; i <= ix; i++ {
				f *= k.g/float64(i) - k.r
			}
		} else if m > ix {
			for i := ix + 1; i <= m; i++ {
				f /= k.g/float64(i) - k.r
			}
		}
		return v <= f
	}

	// squeeze with bounds on log(f(x))
	amaxp := (kf / k.npq) * ((kf*(kf/3.0+0.625)+0.1666666666666)/k.npq + 0.5)
	ynorm := -kf * kf / (2.0 * k.npq)
	alv := math.Log(v)
	if alv < ynorm-amaxp {
		return true
	}
	if alv > ynorm+amaxp {
		return false
	}

	// Stirling's formula to machine accuracy
	x1 := float64(ix + 1)
	f1 := k.fm + 1.0
	z := float64(n+1) - k.fm
	w := float64(n-ix) + 1.0
	return alv <= k.xm*math.Log(f1/x1)+
		(float64(n-m)+0.5)*math.Log(z/w)+
		float64(ix-m)*math.Log(w*k.p/(x1*k.q))+
		stirlingTail(f1)+stirlingTail(z)+stirlingTail(x1)+stirlingTail(w)
}

func stirlingTail(x float64) float64 {
	x2 := x * x
	return (13860. - (462.-(132.-(99.-140./x2)/x2)/x2)/x2) / x / 166320.
}

// Generate returns count Binomial deviates, recycling the size and
// probability vectors.
func (b *Binomial) Generate(count int, size, p []float64) ([]float64, error) {
	return generate(count, [][]float64{size, p}, func(args []float64) (float64, error) {
		return b.Rand(args[0], args[1])
	})
}

// Sampler returns a Sampler of Binomial(size, p) deviates.
func (b *Binomial) Sampler(size, p float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return b.Rand(size, p)
	})
}
