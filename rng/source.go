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

import "golang.org/x/exp/rand"

// Source adapts an Engine to rand.Source, so the helpers of rand.Rand
// (Perm, Shuffle, Intn, ...) can draw from any engine kind.
type Source struct {
	e Engine
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source drawing from e.
func NewSource(e Engine) *Source {
	return &Source{e: e}
}

// NewRand returns a rand.Rand drawing from e.
func NewRand(e Engine) *rand.Rand {
	return rand.New(NewSource(e))
}

// two32 is 2^32.
const two32 = 1 << 32

// Uint64 concatenates the leading 32 bits of two successive uniform
// draws. The draws carry 32 random bits only for Marsaglia-Multicarry,
// Super-Duper, Mersenne-Twister and L'Ecuyer-CMRG. Knuth-TAOCP draws
// are multiples of 2^-30, so the lowest two bits of each half are
// zero. Wichmann-Hill draws are fractional sums of three 15-bit
// generators and their low bits are not uniform.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.e.UnifRand() * two32)
	lo := uint64(s.e.UnifRand() * two32)
	return hi<<32 | lo
}

// Seed reinitializes the engine from the low 32 bits of seed.
func (s *Source) Seed(seed uint64) {
	s.e.Init(uint32(seed))
}
