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

package normal

import (
	"math"

	"github.com/pkg/errors"
)

// Quantile returns the value x with CDF(x, mu, sigma, lowerTail, logP) = p.
// Probabilities of 0 and 1 map to the infinite limits; probabilities
// outside of [0, 1] (or positive log probabilities) are rejected.
func Quantile(p, mu, sigma float64, lowerTail, logP bool) (float64, error) {
	if math.IsNaN(p) || math.IsNaN(mu) || math.IsNaN(sigma) {
		return p + mu + sigma, nil
	}

	if logP {
		switch {
		case p > 0:
			return math.NaN(), errors.Wrapf(ErrInvalidParameter, "normal: log probability %v", p)
		case p == 0:
			return boundary(lowerTail, math.Inf(1)), nil
		case math.IsInf(p, -1):
			return boundary(lowerTail, math.Inf(-1)), nil
		}
	} else {
		switch {
		case p < 0 || p > 1:
			return math.NaN(), errors.Wrapf(ErrInvalidParameter, "normal: probability %v", p)
		case p == 0:
			return boundary(lowerTail, math.Inf(-1)), nil
		case p == 1:
			return boundary(lowerTail, math.Inf(1)), nil
		}
	}

	if sigma < 0 {
		return math.NaN(), errors.Wrapf(ErrInvalidParameter, "normal: sigma %v", sigma)
	}
	if sigma == 0 {
		return mu, nil
	}

	pLower := lowerProb(p, lowerTail, logP)
	q := pLower - 0.5

	var val float64
	if math.Abs(q) <= 0.425 {
		r := 0.180625 - q*q
		val = q * horner(r, qCentralNum[:]) / horner(r, qCentralDen[:])
		return mu + sigma*val, nil
	}

	// r = min(p, 1-p) < 0.075
	var r float64
	if q > 0 {
		r = upperProb(p, lowerTail, logP)
	} else {
		r = pLower
	}

	if logP && ((lowerTail && q <= 0) || (!lowerTail && q > 0)) {
		r = math.Sqrt(-p)
	} else {
		r = math.Sqrt(-math.Log(r))
	}

	if r <= 5 {
		r -= 1.6
		val = horner(r, qNearNum[:]) / horner(r, qNearDen[:])
	} else {
		r -= 5
		val = horner(r, qFarNum[:]) / horner(r, qFarDen[:])
	}
	if q < 0 {
		val = -val
	}
	return mu + sigma*val, nil
}

// Rational approximations of Wichura's AS241, coefficients from the
// highest power down.
var (
	qCentralNum = [...]float64{
		2509.0809287301226727, 33430.575583588128105, 67265.770927008700853,
		45921.953931549871457, 13731.693765509461125, 1971.5909503065514427,
		133.14166789178437745, 3.387132872796366608,
	}
	qCentralDen = [...]float64{
		5226.495278852545925, 28729.085735721942674, 39307.89580009271061,
		21213.794301586595867, 5394.1960214247511077, 687.1870074920579083,
		42.313330701600911252, 1.0,
	}
	qNearNum = [...]float64{
		7.7454501427834140764e-4, 0.0227238449892691845833, 0.24178072517745061177,
		1.27045825245236838258, 3.64784832476320460504, 5.7694972214606914055,
		4.6303378461565452959, 1.42343711074968357734,
	}
	qNearDen = [...]float64{
		1.05075007164441684324e-9, 5.475938084995344946e-4, 0.0151986665636164571966,
		0.14810397642748007459, 0.68976733498510000455, 1.6763848301838038494,
		2.05319162663775882187, 1.0,
	}
	qFarNum = [...]float64{
		2.01033439929228813265e-7, 2.71155556874348757815e-5, 0.0012426609473880784386,
		0.026532189526576123093, 0.29656057182850489123, 1.7848265399172913358,
		5.4637849111641143699, 6.6579046435011037772,
	}
	qFarDen = [...]float64{
		2.04426310338993978564e-15, 1.4215117583164458887e-7, 1.8463183175100546818e-5,
		7.868691311456132591e-4, 0.0148753612908506148525, 0.13692988092273580531,
		0.59983220655588793769, 1.0,
	}
)

// horner evaluates the polynomial with coefficients c, highest power
// first, at x.
func horner(x float64, c []float64) float64 {
	v := c[0]
	for _, ci := range c[1:] {
		v = v*x + ci
	}
	return v
}

func boundary(lowerTail bool, limit float64) float64 {
	if lowerTail {
		return limit
	}
	return -limit
}

// lowerProb converts p to a plain lower tail probability.
func lowerProb(p float64, lowerTail, logP bool) float64 {
	switch {
	case logP && lowerTail:
		return math.Exp(p)
	case logP:
		return -math.Expm1(p)
	case lowerTail:
		return p
	default:
		return 0.5 - p + 0.5
	}
}

// upperProb converts p to a plain upper tail probability.
func upperProb(p float64, lowerTail, logP bool) float64 {
	switch {
	case logP && lowerTail:
		return -math.Expm1(p)
	case logP:
		return math.Exp(p)
	case lowerTail:
		return 0.5 - p + 0.5
	default:
		return p
	}
}
