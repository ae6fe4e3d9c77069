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

// expQ[k-1] = sum_{i=1..k} ln(2)^i / i!
var expQ = [16]float64{
	0.6931471805599453,
	0.9333736875190459,
	0.9888777961838675,
	0.9984959252914960040,
	0.9998292811061389,
	0.9999833164100727,
	0.9999985508193641,
	0.9999998906925558,
	0.9999999924734159,
	0.9999999995283275,
	0.9999999999728814,
	0.9999999999985598,
	0.9999999999999289,
	0.9999999999999968,
	0.9999999999999999,
	1.0000000000000000,
}

// ExpRand returns a standard exponential deviate using algorithm SA of
// J. H. Ahrens and U. Dieter, "Computer methods for sampling from the
// exponential and normal distributions", Comm. ACM 15 (1972).
func (n *Normal) ExpRand() float64 {
	a := 0.0
	u := n.engine.UnifRand()
	for u <= 0.0 || u >= 1.0 {
		u = n.engine.UnifRand()
	}
	for {
		u += u
		if u > 1.0 {
			break
		}
		a += expQ[0]
	}
	u -= 1.0

	if u <= expQ[0] {
		return a + u
	}

	i := 0
	ustar := n.engine.UnifRand()
	umin := ustar
	for {
		ustar = n.engine.UnifRand()
		if umin > ustar {
			umin = ustar
		}
		i++
		if u <= expQ[i] {
			break
		}
	}
	return a + umin*expQ[0]
}

// Exponential samples the exponential distribution.
type Exponential struct {
	normal *Normal
}

// NewExponential returns an exponential sampler drawing from n.
func NewExponential(n *Normal) *Exponential {
	return &Exponential{normal: n}
}

// Rand returns an exponential deviate with the given rate. An infinite
// rate gives 0.
func (e *Exponential) Rand(rate float64) (float64, error) {
	if math.IsNaN(rate) || rate <= 0 {
		return math.NaN(), invalid("exponential", "rate", rate)
	}
	scale := 1 / rate
	if scale == 0 {
		return 0, nil
	}
	return scale * e.normal.ExpRand(), nil
}

// Generate returns count exponential deviates, recycling the rate vector.
func (e *Exponential) Generate(count int, rate []float64) ([]float64, error) {
	return generate(count, [][]float64{rate}, func(args []float64) (float64, error) {
		return e.Rand(args[0])
	})
}

// Sampler returns a Sampler of exponential deviates with the given rate.
func (e *Exponential) Sampler(rate float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return e.Rand(rate)
	})
}
