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

// MRG32k3a constants.
const (
	lecM1   int64 = 4294967087
	lecM2   int64 = 4294944443
	lecA12  int64 = 1403580
	lecA13n int64 = 810728
	lecA21  int64 = 527612
	lecA23n int64 = 1370589
	lecNorm       = 2.328306549295727688e-10
)

// lecuyerCMRG combines two multiple recursive generators of order 3,
// P. L'Ecuyer, "Good parameters and implementations for combined
// multiple recursive random number generators", Operations Research
// 47 (1999).
type lecuyerCMRG struct {
	generation

	seed [6]uint32
}

func (e *lecuyerCMRG) Kind() Kind   { return LecuyerCMRG }
func (e *lecuyerCMRG) Name() string { return LecuyerCMRG.String() }

func (e *lecuyerCMRG) Init(seed uint32) {
	s := scramble(seed)
	for j := range e.seed {
		s = lcg(s)
		for int64(s) >= lecM2 {
			s = lcg(s)
		}
		e.seed[j] = s
	}
	e.bump()
	logInit(LecuyerCMRG, seed)
}

func (e *lecuyerCMRG) UnifRand() float64 {
	s := &e.seed

	p1 := lecA12*int64(s[1]) - lecA13n*int64(s[0])
	p1 %= lecM1
	if p1 < 0 {
		p1 += lecM1
	}
	s[0], s[1], s[2] = s[1], s[2], uint32(p1)

	p2 := lecA21*int64(s[5]) - lecA23n*int64(s[3])
	p2 %= lecM2
	if p2 < 0 {
		p2 += lecM2
	}
	s[3], s[4], s[5] = s[4], s[5], uint32(p2)

	if p1 > p2 {
		return fixup(float64(p1-p2) * lecNorm)
	}
	return fixup(float64(p1-p2+lecM1) * lecNorm)
}

func (e *lecuyerCMRG) Seed() []uint32 {
	return append([]uint32(nil), e.seed[:]...)
}

func (e *lecuyerCMRG) SetSeed(seed []uint32) error {
	if err := checkSeedLength(LecuyerCMRG, seed); err != nil {
		return err
	}
	for j := 0; j < 3; j++ {
		if int64(seed[j]) >= lecM1 {
			return errors.Wrapf(ErrInvalidSeed, "%s word %d is %d, must be below %d",
				LecuyerCMRG, j, seed[j], lecM1)
		}
		if int64(seed[j+3]) >= lecM2 {
			return errors.Wrapf(ErrInvalidSeed, "%s word %d is %d, must be below %d",
				LecuyerCMRG, j+3, seed[j+3], lecM2)
		}
	}
	copy(e.seed[:], seed)
	if allZero(e.seed[:3]) || allZero(e.seed[3:]) {
		logDegenerate(LecuyerCMRG)
		e.Init(fallbackSeed)
	}
	e.bump()
	return nil
}
