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

// Mersenne Twister MT19937 constants.
const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
	temperB   = 0x9d2c5680
	temperC   = 0xefc60000
	// 2^-32
	mtScale = 2.3283064365386963e-10
)

// mersenneTwister is the 32-bit MT19937 generator of Matsumoto and
// Nishimura. The first word of the seed vector is the position in the
// state, followed by the 624 state words.
type mersenneTwister struct {
	generation

	mti int
	mt  [mtN]uint32
}

func (e *mersenneTwister) Kind() Kind   { return MersenneTwister }
func (e *mersenneTwister) Name() string { return MersenneTwister.String() }

func (e *mersenneTwister) Init(seed uint32) {
	// the position word is filled as well and then reset by the fix-up
	s := fill([]uint32{0}, scramble(seed))
	fill(e.mt[:], s)
	e.mti = mtN
	e.fixupSeeds()
	e.bump()
	logInit(MersenneTwister, seed)
}

func (e *mersenneTwister) fixupSeeds() {
	if e.mti <= 0 {
		e.mti = mtN
	}
	if allZero(e.mt[:]) {
		logDegenerate(MersenneTwister)
		e.Init(fallbackSeed)
	}
}

// sgenrand fills the state from seed with Knuth's 69069 generator.
func (e *mersenneTwister) sgenrand(seed uint32) {
	for i := 0; i < mtN; i++ {
		e.mt[i] = seed & 0xffff0000
		seed = lcg(seed)
		e.mt[i] |= (seed & 0xffff0000) >> 16
		seed = lcg(seed)
	}
	e.mti = mtN
}

func (e *mersenneTwister) twist() {
	mag01 := [2]uint32{0, matrixA}
	var y uint32
	kk := 0
	for ; kk < mtN-mtM; kk++ {
		y = (e.mt[kk] & upperMask) | (e.mt[kk+1] & lowerMask)
		e.mt[kk] = e.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (e.mt[kk] & upperMask) | (e.mt[kk+1] & lowerMask)
		e.mt[kk] = e.mt[kk+mtM-mtN] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (e.mt[mtN-1] & upperMask) | (e.mt[0] & lowerMask)
	e.mt[mtN-1] = e.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	e.mti = 0
}

func (e *mersenneTwister) genrand() float64 {
	if e.mti >= mtN {
		if e.mti == mtN+1 {
			e.sgenrand(4357)
		}
		e.twist()
	}

	y := e.mt[e.mti]
	e.mti++
	y ^= y >> 11
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	y ^= y >> 18

	return float64(y) * mtScale
}

func (e *mersenneTwister) UnifRand() float64 {
	return fixup(e.genrand())
}

func (e *mersenneTwister) Seed() []uint32 {
	seed := make([]uint32, 1+mtN)
	seed[0] = uint32(int32(e.mti))
	copy(seed[1:], e.mt[:])
	return seed
}

func (e *mersenneTwister) SetSeed(seed []uint32) error {
	if err := checkSeedLength(MersenneTwister, seed); err != nil {
		return err
	}
	e.mti = int(int32(seed[0]))
	copy(e.mt[:], seed[1:])
	e.fixupSeeds()
	e.bump()
	return nil
}
