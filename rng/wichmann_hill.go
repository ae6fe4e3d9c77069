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

import (
	"math"

	"github.com/pkg/errors"
)

// whModuli are the moduli of the three component generators.
var whModuli = [3]uint32{30269, 30307, 30323}

// wichmannHill combines three multiplicative congruential generators
// and returns the fractional part of the sum of their outputs.
//
// B. A. Wichmann and I. D. Hill, "Algorithm AS 183: An Efficient and
// Portable Pseudo-random Number Generator", Applied Statistics 31 (1982).
type wichmannHill struct {
	generation

	seed [3]uint32
}

func (e *wichmannHill) Kind() Kind   { return WichmannHill }
func (e *wichmannHill) Name() string { return WichmannHill.String() }

func (e *wichmannHill) Init(seed uint32) {
	fill(e.seed[:], scramble(seed))
	e.fixupSeeds()
	e.bump()
	logInit(WichmannHill, seed)
}

func (e *wichmannHill) fixupSeeds() {
	// a word congruent to 0 would lock its generator at 0
	for i := range e.seed {
		e.seed[i] %= whModuli[i]
		if e.seed[i] == 0 {
			e.seed[i] = 1
		}
	}
}

func (e *wichmannHill) UnifRand() float64 {
	e.seed[0] = e.seed[0] * 171 % 30269
	e.seed[1] = e.seed[1] * 172 % 30307
	e.seed[2] = e.seed[2] * 170 % 30323
	value := float64(e.seed[0])/30269.0 + float64(e.seed[1])/30307.0 + float64(e.seed[2])/30323.0
	return fixup(value - math.Floor(value))
}

func (e *wichmannHill) Seed() []uint32 {
	return append([]uint32(nil), e.seed[:]...)
}

func (e *wichmannHill) SetSeed(seed []uint32) error {
	if err := checkSeedLength(WichmannHill, seed); err != nil {
		return err
	}
	for i, w := range seed {
		if w >= whModuli[i] {
			return errors.Wrapf(ErrInvalidSeed, "%s word %d is %d, must be below %d",
				WichmannHill, i, w, whModuli[i])
		}
	}
	copy(e.seed[:], seed)
	e.fixupSeeds()
	e.bump()
	return nil
}
