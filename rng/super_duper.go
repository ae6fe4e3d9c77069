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

// superDuper XORs a Tausworthe shift register generator with a
// congruential generator, following Reeds et al. (1984) with unsigned
// seeds.
type superDuper struct {
	generation

	seed [2]uint32
}

func (e *superDuper) Kind() Kind   { return SuperDuper }
func (e *superDuper) Name() string { return SuperDuper.String() }

func (e *superDuper) Init(seed uint32) {
	fill(e.seed[:], scramble(seed))
	e.fixupSeeds()
	e.bump()
	logInit(SuperDuper, seed)
}

func (e *superDuper) fixupSeeds() {
	if e.seed[0] == 0 {
		e.seed[0] = 1
	}
	// the congruential part needs an odd seed
	e.seed[1] |= 1
}

func (e *superDuper) UnifRand() float64 {
	// Tausworthe
	e.seed[0] ^= (e.seed[0] >> 15) & 0x1ffff
	e.seed[0] ^= e.seed[0] << 17
	// congruential
	e.seed[1] *= 69069
	return fixup(float64(e.seed[0]^e.seed[1]) * i2_32m1)
}

func (e *superDuper) Seed() []uint32 {
	return append([]uint32(nil), e.seed[:]...)
}

func (e *superDuper) SetSeed(seed []uint32) error {
	if err := checkSeedLength(SuperDuper, seed); err != nil {
		return err
	}
	copy(e.seed[:], seed)
	e.fixupSeeds()
	e.bump()
	return nil
}
