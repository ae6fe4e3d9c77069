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
	"fmt"
	"strings"

	"github.com/fentec-project/rmath/internal"
	"github.com/fentec-project/rmath/logger"
	"github.com/pkg/errors"
)

// ErrInvalidSeed is returned by SetSeed when the seed vector has the
// wrong length or holds words outside of the engine's state space.
var ErrInvalidSeed = internal.ErrInvalidSeed

// Kind identifies one of the uniform generator algorithms.
type Kind int

const (
	WichmannHill Kind = iota
	MarsagliaMulticarry
	SuperDuper
	MersenneTwister
	KnuthTAOCP
	KnuthTAOCP2002
	LecuyerCMRG
)

// Kinds lists all engine kinds in declaration order.
var Kinds = []Kind{
	WichmannHill,
	MarsagliaMulticarry,
	SuperDuper,
	MersenneTwister,
	KnuthTAOCP,
	KnuthTAOCP2002,
	LecuyerCMRG,
}

var kindNames = map[Kind]string{
	WichmannHill:        "Wichmann-Hill",
	MarsagliaMulticarry: "Marsaglia-Multicarry",
	SuperDuper:          "Super-Duper",
	MersenneTwister:     "Mersenne-Twister",
	KnuthTAOCP:          "Knuth-TAOCP",
	KnuthTAOCP2002:      "Knuth-TAOCP-2002",
	LecuyerCMRG:         "L'Ecuyer-CMRG",
}

var seedLengths = map[Kind]int{
	WichmannHill:        3,
	MarsagliaMulticarry: 2,
	SuperDuper:          2,
	MersenneTwister:     1 + mtN,
	KnuthTAOCP:          ktKK + 1,
	KnuthTAOCP2002:      ktKK + 1,
	LecuyerCMRG:         6,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// SeedLength returns the number of words in the seed vector of kind k,
// or 0 for an unknown kind.
func (k Kind) SeedLength() int {
	return seedLengths[k]
}

// ParseKind returns the kind whose name matches name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown engine kind %q", name)
}

// Engine is a seedable uniform pseudo-random number generator.
// Engines are not safe for concurrent use.
type Engine interface {
	// Kind returns the algorithm implemented by the engine.
	Kind() Kind
	// Name returns a human readable name of the algorithm.
	Name() string
	// Init derives the whole state deterministically from seed.
	Init(seed uint32)
	// UnifRand advances the state by one step and returns a value
	// strictly inside (0, 1).
	UnifRand() float64
	// Seed returns a copy of the current state vector.
	Seed() []uint32
	// SetSeed replaces the state vector. The vector must have
	// exactly Kind().SeedLength() words.
	SetSeed(seed []uint32) error
	// Generation counts the successful calls of Init and SetSeed.
	// Consumers holding values derived from earlier draws compare it
	// to detect that the stream was restarted.
	Generation() uint64
}

// generation implements Engine.Generation for embedding engines.
type generation struct {
	n uint64
}

func (g *generation) Generation() uint64 { return g.n }

func (g *generation) bump() { g.n++ }

// New returns an engine of the given kind initialized from seed.
func New(kind Kind, seed uint32) (Engine, error) {
	var e Engine
	switch kind {
	case WichmannHill:
		e = &wichmannHill{}
	case MarsagliaMulticarry:
		e = &marsagliaMulticarry{}
	case SuperDuper:
		e = &superDuper{}
	case MersenneTwister:
		e = &mersenneTwister{}
	case KnuthTAOCP:
		e = &knuthTAOCP{start: ranStart1997, kind: KnuthTAOCP}
	case KnuthTAOCP2002:
		e = &knuthTAOCP{start: ranStart2002, kind: KnuthTAOCP2002}
	case LecuyerCMRG:
		e = &lecuyerCMRG{}
	default:
		return nil, errors.Errorf("unknown engine kind %d", int(kind))
	}
	e.Init(seed)
	return e, nil
}

// UnifRand returns n successive draws of e. Values of n below 1 are
// treated as 1.
func UnifRand(e Engine, n int) []float64 {
	if n < 1 {
		n = 1
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = e.UnifRand()
	}
	return res
}

const (
	// i2_32m1 is 1/(2^32 - 1).
	i2_32m1 = 2.328306437080797e-10

	// fallbackSeed initializes engines whose seed vector was all zero.
	fallbackSeed uint32 = 4357
)

// fixup maps values on the boundary of [0, 1] strictly inside.
func fixup(x float64) float64 {
	if x <= 0.0 {
		return 0.5 * i2_32m1
	}
	if 1.0-x <= 0.0 {
		return 1.0 - 0.5*i2_32m1
	}
	return x
}

// lcg advances the seed scrambling generator by one step.
func lcg(seed uint32) uint32 {
	return 69069*seed + 1
}

// scramble performs the initial scrambling applied to every integer
// seed before it is expanded into a state vector.
func scramble(seed uint32) uint32 {
	for j := 0; j < 50; j++ {
		seed = lcg(seed)
	}
	return seed
}

// fill expands seed into dst with the scrambling generator and returns
// the last seed value.
func fill(dst []uint32, seed uint32) uint32 {
	for j := range dst {
		seed = lcg(seed)
		dst[j] = seed
	}
	return seed
}

func checkSeedLength(kind Kind, seed []uint32) error {
	if len(seed) != kind.SeedLength() {
		return errors.Wrapf(ErrInvalidSeed, "%s expects %d words, got %d",
			kind, kind.SeedLength(), len(seed))
	}
	return nil
}

func allZero(words []uint32) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

func logInit(kind Kind, seed uint32) {
	logger.Log().Debug().Str("engine", kind.String()).Uint32("seed", seed).Msg("engine initialized")
}

func logDegenerate(kind Kind) {
	logger.Log().Warn().Str("engine", kind.String()).Uint32("seed", fallbackSeed).
		Msg("all-zero seed vector replaced by fallback seed")
}
