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

const (
	krA  = 2.216035867166471
	krC1 = 0.398942280401433
	krC2 = 0.180025191068563
)

func krG(x float64) float64 {
	return krC1*math.Exp(-x*x/2.0) - krC2*(krA-x)
}

// kindermanRamage implements A. J. Kinderman and J. G. Ramage,
// "Computer generation of normal random variables", JASA 71 (1976),
// with the region boundaries corrected by J. Leydold.
func (n *Normal) kindermanRamage() (float64, error) {
	u1 := n.engine.UnifRand()
	if u1 < 0.884070402298758 {
		u2 := n.engine.UnifRand()
		return krA * (1.131131635444180*u1 + u2 - 1), nil
	}

	for iter := 0; iter < maxIterations; iter++ {
		u2 := n.engine.UnifRand()
		u3 := n.engine.UnifRand()
		lo, hi := math.Min(u2, u3), math.Max(u2, u3)

		switch {
		case u1 >= 0.973310954173898:
			// tail
			tt := krA*krA - 2*math.Log(u3)
			if u2*u2 < (krA*krA)/tt {
				if u1 < 0.986655477086949 {
					return math.Sqrt(tt), nil
				}
				return -math.Sqrt(tt), nil
			}

		case u1 >= 0.958720824790463:
			// region 3
			tt := krA - 0.630834801921960*lo
			if hi <= 0.755591531667601 || 0.034240503750111*math.Abs(u2-u3) <= krG(tt) {
				return signed(tt, u2 < u3), nil
			}

		case u1 >= 0.911312780288703:
			// region 2
			tt := 0.479727404222441 + 1.105473661022070*lo
			if hi <= 0.872834976671790 || 0.049264496342790*math.Abs(u2-u3) <= krG(tt) {
				return signed(tt, u2 < u3), nil
			}

		default:
			// region 1
			tt := 0.479727404222441 - 0.595507138015940*lo
			if tt < 0 {
				continue
			}
			if hi <= 0.805577924423817 || 0.053377549506886*math.Abs(u2-u3) <= krG(tt) {
				return signed(tt, u2 < u3), nil
			}
		}
	}
	return 0, errIterations("normal")
}

func signed(x float64, positive bool) float64 {
	if positive {
		return x
	}
	return -x
}
