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

// beyond this standardized distance the density underflows to 0
var densityUnderflow = math.Sqrt(-2 * math.Ln2 * float64(-1021+1-53))

// Density returns the density of N(mu, sigma^2) at x, or its logarithm.
func Density(x, mu, sigma float64, log bool) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(mu) || math.IsNaN(sigma) {
		return x + mu + sigma, nil
	}
	if math.IsInf(sigma, 0) {
		return zero(log), nil
	}
	if math.IsInf(x, 0) && mu == x {
		return math.NaN(), nil
	}
	if sigma < 0 {
		return math.NaN(), errors.Wrapf(ErrInvalidParameter, "normal: sigma %v", sigma)
	}
	if sigma == 0 {
		if x == mu {
			return math.Inf(1), nil
		}
		return zero(log), nil
	}

	z := math.Abs((x - mu) / sigma)
	if math.IsInf(z, 0) || z >= 2*math.Sqrt(math.MaxFloat64) {
		return zero(log), nil
	}
	if log {
		return -(lnSqrt2Pi + 0.5*z*z + math.Log(sigma)), nil
	}
	if z < 5 {
		return oneSqrt2Pi * math.Exp(-0.5*z*z) / sigma, nil
	}
	if z > densityUnderflow {
		return 0, nil
	}

	// split z so that z1*z1 is exact
	z1 := math.Ldexp(math.RoundToEven(math.Ldexp(z, 16)), -16)
	z2 := z - z1
	return oneSqrt2Pi / sigma * (math.Exp(-0.5*z1*z1) * math.Exp((-0.5*z2-z1)*z2)), nil
}
