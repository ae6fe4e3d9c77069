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

var (
	adA = [32]float64{
		0.0000000, 0.03917609, 0.07841241, 0.1177699,
		0.1573107, 0.19709910, 0.23720210, 0.2776904,
		0.3186394, 0.36012990, 0.40225010, 0.4450965,
		0.4887764, 0.53340970, 0.57913220, 0.6260990,
		0.6744898, 0.72451440, 0.77642180, 0.8305109,
		0.8871466, 0.94678180, 1.00999000, 1.0775160,
		1.1503490, 1.22985900, 1.31801100, 1.4177970,
		1.5341210, 1.67594000, 1.86273200, 2.1538750,
	}
	adD = [31]float64{
		0.0000000, 0.0000000, 0.0000000, 0.0000000,
		0.0000000, 0.2636843, 0.2425085, 0.2255674,
		0.2116342, 0.1999243, 0.1899108, 0.1812252,
		0.1736014, 0.1668419, 0.1607967, 0.1553497,
		0.1504094, 0.1459026, 0.1417700, 0.1379632,
		0.1344418, 0.1311722, 0.1281260, 0.1252791,
		0.1226109, 0.1201036, 0.1177417, 0.1155119,
		0.1134023, 0.1114027, 0.1095039,
	}
	adT = [31]float64{
		7.673828e-4, 0.002306870, 0.003860618, 0.005438454,
		0.007050699, 0.008708396, 0.010423570, 0.012209530,
		0.014081250, 0.016055790, 0.018152900, 0.020395730,
		0.022811770, 0.025434070, 0.028302960, 0.031468220,
		0.034992330, 0.038954830, 0.043458780, 0.048640350,
		0.054683340, 0.061842220, 0.070479830, 0.081131950,
		0.094624440, 0.112300100, 0.136498000, 0.171688600,
		0.227624100, 0.330498000, 0.584703100,
	}
	adH = [31]float64{
		0.03920617, 0.03932705, 0.03950999, 0.03975703,
		0.04007093, 0.04045533, 0.04091481, 0.04145507,
		0.04208311, 0.04280748, 0.04363863, 0.04458932,
		0.04567523, 0.04691571, 0.04833487, 0.04996298,
		0.05183859, 0.05401138, 0.05654656, 0.05953130,
		0.06308489, 0.06737503, 0.07264544, 0.07926471,
		0.08781922, 0.09930398, 0.11555990, 0.14043440,
		0.18361420, 0.27900160, 0.70104740,
	}
)

// ahrensDieter implements algorithm FL of J. H. Ahrens and U. Dieter,
// "Extensions of Forsythe's method for random sampling from the normal
// distribution", Math. Comput. 27 (1973). The 32 intervals of the center
// are sampled from tables, the tail beyond a[31] by repeated doubling.
func (n *Normal) ahrensDieter() (float64, error) {
	u1 := n.engine.UnifRand()
	s := 0.0
	if u1 > 0.5 {
		s = 1.0
	}
	u1 = u1 + u1 - s
	u1 *= 32.0
	i := int(u1)
	if i == 32 {
		i = 31
	}

	var aa, w float64
	if i != 0 {
		// center
		u2 := u1 - float64(i)
		aa = adA[i-1]
		accepted := false
		for iter := 0; !accepted && u2 <= adT[i-1]; iter++ {
			if iter >= maxIterations {
				return 0, errIterations("normal")
			}
			u1 = n.engine.UnifRand()
			w = u1 * (adA[i] - aa)
			tt := (w*0.5 + aa) * w
			for {
				if u2 > tt {
					accepted = true
					break
				}
				u1 = n.engine.UnifRand()
				if u2 < u1 {
					break
				}
				tt = u1
				u2 = n.engine.UnifRand()
			}
			if !accepted {
				u2 = n.engine.UnifRand()
			}
		}
		if !accepted {
			w = (u2 - adT[i-1]) * adH[i-1]
		}
	} else {
		// tail
		i = 6
		aa = adA[31]
		for {
			u1 += u1
			if u1 >= 1.0 {
				break
			}
			if i < len(adD) {
				aa += adD[i-1]
				i++
			}
		}
		u1 -= 1.0

	tail:
		for iter := 0; ; iter++ {
			if iter >= maxIterations {
				return 0, errIterations("normal")
			}
			w = u1 * adD[i-1]
			tt := (w*0.5 + aa) * w
			for {
				u2 := n.engine.UnifRand()
				if u2 > tt {
					break tail
				}
				u1 = n.engine.UnifRand()
				if u2 < u1 {
					break
				}
				tt = u1
			}
			u1 = n.engine.UnifRand()
		}
	}

	y := aa + w
	if s == 1.0 {
		return -y, nil
	}
	return y, nil
}
