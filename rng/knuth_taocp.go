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

package rng

import "github.com/pkg/errors"

// Lagged Fibonacci generator constants from Knuth, TAOCP Vol. 2,
// section 3.6.
const (
	ktKK      = 100
	ktLL      = 37
	ktMM      = 1 << 30
	ktTT      = 70
	ktQuality = 1009
	// 2^-30
	ktScale = 9.31322574615479e-10
)

// knuthTAOCP is the subtractive lagged Fibonacci generator
// X[j] = (X[j-100] - X[j-37]) mod 2^30. The 1997 and 2002 editions
// differ only in how the initial state is derived from the seed.
type knuthTAOCP struct {
	generation

	kind  Kind
	start func(ranX *[ktKK]uint32, seed uint32)
	ranX  [ktKK]uint32
	pos   int
	buf   [ktQuality]uint32
}

func (e *knuthTAOCP) Kind() Kind   { return e.kind }
func (e *knuthTAOCP) Name() string { return e.kind.String() }

func (e *knuthTAOCP) Init(seed uint32) {
	e.start(&e.ranX, scramble(seed)%1073741821)
	e.pos = ktKK
	e.bump()
	logInit(e.kind, seed)
}

func (e *knuthTAOCP) fixupSeeds() {
	if e.pos <= 0 {
		e.pos = ktKK
	}
	if allZero(e.ranX[:]) {
		logDegenerate(e.kind)
		e.Init(fallbackSeed)
	}
}

func (e *knuthTAOCP) next() uint32 {
	if e.pos >= ktKK {
		ranArray(&e.ranX, e.buf[:])
		e.pos = 0
	}
	v := e.ranX[e.pos]
	e.pos++
	return v
}

func (e *knuthTAOCP) UnifRand() float64 {
	return fixup(float64(e.next()) * ktScale)
}

func (e *knuthTAOCP) Seed() []uint32 {
	seed := make([]uint32, ktKK+1)
	copy(seed, e.ranX[:])
	seed[ktKK] = uint32(int32(e.pos))
	return seed
}

func (e *knuthTAOCP) SetSeed(seed []uint32) error {
	if err := checkSeedLength(e.kind, seed); err != nil {
		return err
	}
	for i, w := range seed[:ktKK] {
		if w >= ktMM {
			return errors.Wrapf(ErrInvalidSeed, "%s word %d is %d, must be below 2^30", e.kind, i, w)
		}
	}
	copy(e.ranX[:], seed[:ktKK])
	e.pos = int(int32(seed[ktKK]))
	e.fixupSeeds()
	e.bump()
	return nil
}

func modDiff(x, y uint32) uint32 {
	return (x - y) & (ktMM - 1)
}

func evenize(x uint32) uint32 {
	return x & (ktMM - 2)
}

// ranArray writes len(aa) new values into aa and advances the state.
// len(aa) must be at least ktKK.
func ranArray(ranX *[ktKK]uint32, aa []uint32) {
	n := len(aa)
	var i, j int
	for j = 0; j < ktKK; j++ {
		aa[j] = ranX[j]
	}
	for ; j < n; j++ {
		aa[j] = modDiff(aa[j-ktKK], aa[j-ktLL])
	}
	for i = 0; i < ktLL; i, j = i+1, j+1 {
		ranX[i] = modDiff(aa[j-ktKK], aa[j-ktLL])
	}
	for ; i < ktKK; i, j = i+1, j+1 {
		ranX[i] = modDiff(aa[j-ktKK], ranX[i-ktLL])
	}
}

// bootstrap fills the first ktKK words of x with the cyclic shifts of
// the even part of seed+2 and makes x[1] odd.
func bootstrap(x []uint32, seed uint32) {
	ss := evenize(seed + 2)
	for j := 0; j < ktKK; j++ {
		x[j] = ss
		ss <<= 1
		if ss >= ktMM {
			ss -= ktMM - 2
		}
	}
	x[1]++
}

func unload(ranX *[ktKK]uint32, x []uint32) {
	for j := 0; j < ktLL; j++ {
		ranX[j+ktKK-ktLL] = x[j]
	}
	for j := ktLL; j < ktKK; j++ {
		ranX[j-ktLL] = x[j]
	}
}

// ranStart1997 is the initialization published with the 1997 third
// edition.
func ranStart1997(ranX *[ktKK]uint32, seed uint32) {
	var x [ktKK + ktKK - 1]uint32
	bootstrap(x[:], seed)

	ss := seed & (ktMM - 1)
	for t := ktTT - 1; t > 0; {
		// square
		for j := ktKK - 1; j > 0; j-- {
			x[j+j] = x[j]
		}
		for j := ktKK + ktKK - 2; j > ktKK-ktLL; j -= 2 {
			x[ktKK+ktKK-1-j] = evenize(x[j])
		}
		for j := ktKK + ktKK - 2; j >= ktKK; j-- {
			if x[j]&1 == 1 {
				x[j-(ktKK-ktLL)] = modDiff(x[j-(ktKK-ktLL)], x[j])
				x[j-ktKK] = modDiff(x[j-ktKK], x[j])
			}
		}
		// multiply by z
		if ss&1 == 1 {
			for j := ktKK; j > 0; j-- {
				x[j] = x[j-1]
			}
			x[0] = x[ktKK]
			if x[ktKK]&1 == 1 {
				x[ktLL] = modDiff(x[ktLL], x[ktKK])
			}
		}
		if ss != 0 {
			ss >>= 1
		} else {
			t--
		}
	}
	unload(ranX, x[:])
}

// ranStart2002 is the revised initialization from the 2002 errata,
// which also warms the generator up.
func ranStart2002(ranX *[ktKK]uint32, seed uint32) {
	var x [ktKK + ktKK - 1]uint32
	bootstrap(x[:], seed)

	ss := seed & (ktMM - 1)
	for t := ktTT - 1; t > 0; {
		// square
		for j := ktKK - 1; j > 0; j-- {
			x[j+j] = x[j]
			x[j+j-1] = 0
		}
		for j := ktKK + ktKK - 2; j >= ktKK; j-- {
			x[j-(ktKK-ktLL)] = modDiff(x[j-(ktKK-ktLL)], x[j])
			x[j-ktKK] = modDiff(x[j-ktKK], x[j])
		}
		// multiply by z
		if ss&1 == 1 {
			for j := ktKK; j > 0; j-- {
				x[j] = x[j-1]
			}
			x[0] = x[ktKK]
			x[ktLL] = modDiff(x[ktLL], x[ktKK])
		}
		if ss != 0 {
			ss >>= 1
		} else {
			t--
		}
	}
	unload(ranX, x[:])
	for j := 0; j < 10; j++ {
		ranArray(ranX, x[:])
	}
}
