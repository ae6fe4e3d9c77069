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

	"github.com/fentec-project/rmath/internal"
	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned when sigma is negative or a
// probability lies outside of its domain.
var ErrInvalidParameter = internal.ErrInvalidParameter

const (
	// split between the central and the moderate region
	cdfCentral = 0.67448975

	// split between the moderate and the asymptotic region, sqrt(32)
	cdfModerate = 5.656854249492380195206754896838

	// beyond ±cdfLowerLimit the smaller tail underflows to 0
	cdfLowerLimit = 37.5193

	oneSqrt2Pi = 0.398942280401432677939946059934 // 1/sqrt(2*pi)
	lnSqrt2Pi  = 0.918938533204672741780329736406 // log(sqrt(2*pi))
)

var (
	cdfA = [5]float64{
		2.2352520354606839287,
		161.02823106855587881,
		1067.6894854603709582,
		18154.981253343561249,
		0.065682337918207449113,
	}
	cdfB = [4]float64{
		47.20258190468824187,
		976.09855173777669322,
		10260.932208618978205,
		45507.789335026729956,
	}
	cdfC = [9]float64{
		0.39894151208813466764,
		8.8831497943883759412,
		93.506656132177855979,
		597.27027639480026226,
		2494.5375852903726711,
		6848.1904505362823326,
		11602.651437647350124,
		9842.7148383839780218,
		1.0765576773720192317e-8,
	}
	cdfD = [8]float64{
		22.266688044328115691,
		235.38790178262499861,
		1519.377599407554805,
		6485.558298266760755,
		18615.571640885098091,
		34900.952721145977266,
		38912.003286093271411,
		19685.429676859990727,
	}
	cdfP = [6]float64{
		0.21589853405795699,
		0.1274011611602473639,
		0.022235277870649807,
		0.001421619193227893466,
		2.9112874951168792e-5,
		0.02307344176494017303,
	}
	cdfQ = [5]float64{
		1.28426009614491121,
		0.468238212480865118,
		0.0659881378689285515,
		0.00378239633202758244,
		7.29751555083966205e-5,
	}
)

// CDFBoth returns the lower tail P[X <= x] and the upper tail P[X > x]
// of the standard Normal distribution, or their natural logarithms when
// logP is set. The smaller of the two is computed directly and the
// larger one as its complement.
func CDFBoth(x float64, logP bool) (lower, upper float64) {
	if math.IsNaN(x) {
		return x, x
	}

	eps := epsilon * 0.5
	y := math.Abs(x)

	switch {
	case y <= cdfCentral:
		var xnum, xden float64
		if y > eps {
			xsq := x * x
			xnum = cdfA[4] * xsq
			xden = xsq
			for i := 0; i < 3; i++ {
				xnum = (xnum + cdfA[i]) * xsq
				xden = (xden + cdfB[i]) * xsq
			}
		}
		temp := x * (xnum + cdfA[3]) / (xden + cdfB[3])
		lower, upper = 0.5+temp, 0.5-temp
		if logP {
			lower, upper = math.Log(lower), math.Log(upper)
		}
		return lower, upper

	case y <= cdfModerate:
		xnum := cdfC[8] * y
		xden := y
		for i := 0; i < 7; i++ {
			xnum = (xnum + cdfC[i]) * y
			xden = (xden + cdfD[i]) * y
		}
		temp := (xnum + cdfC[7]) / (xden + cdfD[7])
		lower, upper = tails(y, temp, logP)

	case (logP && y < 1e170) || (-cdfLowerLimit < x && x < cdfLowerLimit):
		xsq := 1.0 / (x * x)
		xnum := cdfP[5] * xsq
		xden := xsq
		for i := 0; i < 4; i++ {
			xnum = (xnum + cdfP[i]) * xsq
			xden = (xden + cdfQ[i]) * xsq
		}
		temp := xsq * (xnum + cdfP[4]) / (xden + cdfQ[4])
		temp = (oneSqrt2Pi - temp) / y
		lower, upper = tails(x, temp, logP)

	default:
		if x > 0 {
			return one(logP), zero(logP)
		}
		return zero(logP), one(logP)
	}

	if x > 0 {
		lower, upper = upper, lower
	}
	return lower, upper
}

// tails evaluates exp(-x^2/2) * r and its complement. The square is split
// at a multiple of 1/16 so that no precision is lost to cancellation.
func tails(x, r float64, logP bool) (small, large float64) {
	xsq := math.Trunc(x*16) / 16
	del := (x - xsq) * (x + xsq)
	if logP {
		small = -xsq*xsq*0.5 - del*0.5 + math.Log(r)
		large = math.Log1p(-math.Exp(-xsq*xsq*0.5) * math.Exp(-del*0.5) * r)
		return small, large
	}
	small = math.Exp(-xsq*xsq*0.5) * math.Exp(-del*0.5) * r
	return small, 1.0 - small
}

// CDF returns the distribution function of N(mu, sigma^2) at q, for the
// lower tail P[X <= q] or the upper tail P[X > q], optionally on the log
// scale.
func CDF(q, mu, sigma float64, lowerTail, logP bool) (float64, error) {
	if math.IsNaN(q) || math.IsNaN(mu) || math.IsNaN(sigma) {
		return q + mu + sigma, nil
	}
	if math.IsInf(q, 0) && mu == q {
		return math.NaN(), nil
	}
	if sigma < 0 {
		return math.NaN(), errors.Wrapf(ErrInvalidParameter, "normal: sigma %v", sigma)
	}

	if sigma == 0 {
		return step(q < mu, lowerTail, logP), nil
	}
	x := (q - mu) / sigma
	if math.IsInf(x, 0) {
		return step(q < mu, lowerTail, logP), nil
	}

	lower, upper := CDFBoth(x, logP)
	if lowerTail {
		return lower, nil
	}
	return upper, nil
}

// step returns the value of a point mass distribution function.
func step(below, lowerTail, logP bool) float64 {
	if below == lowerTail {
		return zero(logP)
	}
	return one(logP)
}

const epsilon = 2.220446049250313e-16

func zero(logP bool) float64 {
	if logP {
		return math.Inf(-1)
	}
	return 0
}

func one(logP bool) float64 {
	if logP {
		return 0
	}
	return 1
}
