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

// marsagliaMulticarry runs two multiply-with-carry generators and
// concatenates their low halves.
type marsagliaMulticarry struct {
	generation

	seed [2]uint32
}

func (e *marsagliaMulticarry) Kind() Kind   { return MarsagliaMulticarry }
func (e *marsagliaMulticarry) Name() string { return MarsagliaMulticarry.String() }

func (e *marsagliaMulticarry) Init(seed uint32) {
	fill(e.seed[:], scramble(seed))
	e.fixupSeeds()
	e.bump()
	logInit(MarsagliaMulticarry, seed)
}

// fixupSeeds moves the generators away from the all-zero fixed point.
func (e *marsagliaMulticarry) fixupSeeds() {
	if e.seed[0] == 0 {
		e.seed[0] = 1
	}
	if e.seed[1] == 0 {
		e.seed[1] = 1
	}
}

func (e *marsagliaMulticarry) UnifRand() float64 {
	e.seed[0] = 36969*(e.seed[0]&0xffff) + (e.seed[0] >> 16)
	e.seed[1] = 18000*(e.seed[1]&0xffff) + (e.seed[1] >> 16)
	return fixup(float64((e.seed[0]<<16)^(e.seed[1]&0xffff)) * i2_32m1)
}

func (e *marsagliaMulticarry) Seed() []uint32 {
	return append([]uint32(nil), e.seed[:]...)
}

func (e *marsagliaMulticarry) SetSeed(seed []uint32) error {
	if err := checkSeedLength(MarsagliaMulticarry, seed); err != nil {
		return err
	}
	copy(e.seed[:], seed)
	e.fixupSeeds()
	e.bump()
	return nil
}
