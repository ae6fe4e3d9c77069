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

import (
	"fmt"
	"math"
	"strings"

	"github.com/fentec-project/rmath/logger"
	"github.com/fentec-project/rmath/normal"
	"github.com/fentec-project/rmath/rng"
	"github.com/pkg/errors"
)

// NormalKind selects the algorithm used to turn uniform draws into
// standard Normal deviates.
type NormalKind int

const (
	// Inversion applies the Normal quantile function to a uniform
	// value carrying 2^27 extra bits of resolution.
	Inversion NormalKind = iota
	// AhrensDieter is the 1973 table based method of Ahrens and Dieter.
	AhrensDieter
	// BoxMuller produces deviates in pairs and returns the second one
	// on the following call.
	BoxMuller
	// KindermanRamage is the 1976 method of Kinderman and Ramage with
	// the correction of J. Leydold.
	KindermanRamage
)

var normalKindNames = map[NormalKind]string{
	Inversion:       "Inversion",
	AhrensDieter:    "Ahrens-Dieter",
	BoxMuller:       "Box-Muller",
	KindermanRamage: "Kinderman-Ramage",
}

// NormalKinds lists all Normal algorithms.
var NormalKinds = []NormalKind{Inversion, AhrensDieter, BoxMuller, KindermanRamage}

func (k NormalKind) String() string {
	if name, ok := normalKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NormalKind(%d)", int(k))
}

// ParseNormalKind returns the Normal algorithm called name, ignoring case.
func ParseNormalKind(name string) (NormalKind, error) {
	for _, k := range NormalKinds {
		if strings.EqualFold(normalKindNames[k], name) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown normal kind %q", name)
}

const (
	// inversionScale is 2^27, the extra resolution of the inversion method.
	inversionScale = 134217728

	// minNormal is the smallest positive normal float64.
	minNormal = 2.2250738585072014e-308
)

// Normal samples standard Normal deviates from the uniform draws of the
// engine it is bound to. It is the root of every other sampler in this
// package: all of them draw their uniforms, exponentials and Normal
// deviates through a *Normal.
type Normal struct {
	engine rng.Engine
	kind   NormalKind

	// second deviate of the last Box-Muller pair, valid while the
	// engine generation equals bmGen
	bmKeep    float64
	bmHasKeep bool
	bmGen     uint64
}

// NewNormal binds the Normal algorithm kind to engine e.
func NewNormal(e rng.Engine, kind NormalKind) (*Normal, error) {
	if e == nil {
		return nil, errors.New("normal sampler needs an engine")
	}
	if _, ok := normalKindNames[kind]; !ok {
		return nil, errors.Errorf("unknown normal kind %d", int(kind))
	}
	return &Normal{
		engine: e,
		kind:   kind,
	}, nil
}

// Engine returns the uniform engine n draws from.
func (n *Normal) Engine() rng.Engine {
	return n.engine
}

// Kind returns the Normal algorithm of n.
func (n *Normal) Kind() NormalKind {
	return n.kind
}

// UnifRand returns one uniform draw of the bound engine.
func (n *Normal) UnifRand() float64 {
	return n.engine.UnifRand()
}

// Reseed re-initializes the bound engine from seed and drops a pending
// Box-Muller deviate, so the Normal sequence restarts exactly. Seeding
// the engine directly has the same effect on the next draw.
func (n *Normal) Reseed(seed uint32) {
	n.engine.Init(seed)
	n.reset()
}

// SetSeed replaces the state vector of the bound engine and drops a
// pending Box-Muller deviate.
func (n *Normal) SetSeed(seed []uint32) error {
	if err := n.engine.SetSeed(seed); err != nil {
		return err
	}
	n.reset()
	return nil
}

func (n *Normal) reset() {
	if n.bmHasKeep {
		logger.Log().Debug().Str("normal", n.kind.String()).Msg("pending Box-Muller deviate dropped")
	}
	n.bmKeep = 0
	n.bmHasKeep = false
}

// NormRand returns a standard Normal deviate.
func (n *Normal) NormRand() (float64, error) {
	switch n.kind {
	case AhrensDieter:
		return n.ahrensDieter()
	case BoxMuller:
		return n.boxMuller(), nil
	case KindermanRamage:
		return n.kindermanRamage()
	default:
		return n.inversion()
	}
}

// NormRandN returns count standard Normal deviates. Counts below 1
// are treated as 1.
func (n *Normal) NormRandN(count int) ([]float64, error) {
	if count < 1 {
		count = 1
	}
	res := make([]float64, count)
	for i := range res {
		v, err := n.NormRand()
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (n *Normal) inversion() (float64, error) {
	u := n.engine.UnifRand()
	u = float64(int(inversionScale*u)) + n.engine.UnifRand()
	return normal.Quantile(u/inversionScale, 0, 1, true, false)
}

func (n *Normal) boxMuller() float64 {
	if n.bmHasKeep && n.bmGen != n.engine.Generation() {
		n.reset()
	}
	if n.bmHasKeep {
		n.bmHasKeep = false
		return n.bmKeep
	}
	theta := 2 * math.Pi * n.engine.UnifRand()
	r := math.Sqrt(-2*math.Log(n.engine.UnifRand())) + 10*minNormal
	n.bmKeep = r * math.Sin(theta)
	n.bmHasKeep = true
	n.bmGen = n.engine.Generation()
	return r * math.Cos(theta)
}

// Rand returns a deviate of the Normal distribution with the given mean
// and standard deviation. A zero standard deviation or an infinite mean
// return mean unchanged.
func (n *Normal) Rand(mean, sd float64) (float64, error) {
	if math.IsNaN(mean) || math.IsInf(sd, 0) || math.IsNaN(sd) || sd < 0 {
		return math.NaN(), errors.Wrapf(ErrInvalidParameter, "normal: mean %v, sd %v", mean, sd)
	}
	if sd == 0 || math.IsInf(mean, 0) {
		return mean, nil
	}
	z, err := n.NormRand()
	if err != nil {
		return 0, err
	}
	return mean + sd*z, nil
}

// Generate returns count Normal deviates, recycling the mean and sd
// vectors over the draws.
func (n *Normal) Generate(count int, mean, sd []float64) ([]float64, error) {
	return generate(count, [][]float64{mean, sd}, func(args []float64) (float64, error) {
		return n.Rand(args[0], args[1])
	})
}

// Sampler returns a Sampler of N(mean, sd^2) deviates.
func (n *Normal) Sampler(mean, sd float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return n.Rand(mean, sd)
	})
}
