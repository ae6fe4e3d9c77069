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

package rng_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/fentec-project/rmath/rng"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Reproducible(t *testing.T) {
	for _, kind := range rng.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e1, err := rng.New(kind, 2018)
			require.NoError(t, err)
			e2, err := rng.New(kind, 2018)
			require.NoError(t, err)

			first := rng.UnifRand(e1, 5000)
			second := rng.UnifRand(e2, 5000)
			for i := range first {
				require.Equal(t, math.Float64bits(first[i]), math.Float64bits(second[i]), "draw %d differs", i)
			}

			// reseeding the same instance restarts the sequence
			e1.Init(2018)
			again := rng.UnifRand(e1, 5000)
			assert.Equal(t, first, again)

			e1.Init(2019)
			other := rng.UnifRand(e1, 5000)
			assert.NotEqual(t, first, other)
		})
	}
}

func TestEngine_OpenInterval(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10^6 draws per engine in short mode")
	}
	for _, kind := range rng.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := rng.New(kind, 7)
			require.NoError(t, err)
			for i := 0; i < 1000000; i++ {
				u := e.UnifRand()
				if u <= 0 || u >= 1 {
					t.Fatalf("draw %d is %v, outside of (0,1)", i, u)
				}
			}
		})
	}
}

func TestEngine_SeedRoundTrip(t *testing.T) {
	for _, kind := range rng.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := rng.New(kind, 123)
			require.NoError(t, err)
			rng.UnifRand(e, 17)

			seed := e.Seed()
			assert.Len(t, seed, kind.SeedLength())
			expect := rng.UnifRand(e, 300)

			require.NoError(t, e.SetSeed(seed))
			assert.Equal(t, expect, rng.UnifRand(e, 300))
		})
	}
}

func TestEngine_SetSeedWrongLength(t *testing.T) {
	for _, kind := range rng.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := rng.New(kind, 1)
			require.NoError(t, err)

			err = e.SetSeed(make([]uint32, kind.SeedLength()+1))
			assert.True(t, errors.Is(err, rng.ErrInvalidSeed))
			err = e.SetSeed(nil)
			assert.True(t, errors.Is(err, rng.ErrInvalidSeed))
		})
	}
}

func TestEngine_SeedLengths(t *testing.T) {
	var tests = []struct {
		kind   rng.Kind
		length int
		name   string
	}{
		{rng.WichmannHill, 3, "Wichmann-Hill"},
		{rng.MarsagliaMulticarry, 2, "Marsaglia-Multicarry"},
		{rng.SuperDuper, 2, "Super-Duper"},
		{rng.MersenneTwister, 625, "Mersenne-Twister"},
		{rng.KnuthTAOCP, 101, "Knuth-TAOCP"},
		{rng.KnuthTAOCP2002, 101, "Knuth-TAOCP-2002"},
		{rng.LecuyerCMRG, 6, "L'Ecuyer-CMRG"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := rng.New(test.kind, 99)
			require.NoError(t, err)
			assert.Equal(t, test.kind, e.Kind())
			assert.Equal(t, test.name, e.Name())
			assert.Len(t, e.Seed(), test.length)

			parsed, err := rng.ParseKind(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.kind, parsed)
		})
	}

	_, err := rng.ParseKind("no-such-kind")
	assert.Error(t, err)
	_, err = rng.New(rng.Kind(42), 1)
	assert.Error(t, err)
}

func TestUnifRand_Count(t *testing.T) {
	e, err := rng.New(rng.MersenneTwister, 1)
	require.NoError(t, err)

	assert.Len(t, rng.UnifRand(e, 0), 1)
	assert.Len(t, rng.UnifRand(e, -3), 1)
	assert.Len(t, rng.UnifRand(e, 12), 12)
}

func TestEngine_KnownValues(t *testing.T) {
	// first draws after RNGkind(kind); set.seed(seed); runif(3)
	var tests = []struct {
		kind   rng.Kind
		seed   uint32
		expect []float64
	}{
		{rng.WichmannHill, 1, []float64{0.12971341365353894, 0.982240726317961, 0.8267184109501959}},
		{rng.WichmannHill, 42, []float64{0.25080964353400526, 0.7618033443630398, 0.20390793930585005}},
		{rng.MarsagliaMulticarry, 1, []float64{0.006153224270360828, 0.5532339500620108, 0.09185244098581662}},
		{rng.MarsagliaMulticarry, 42, []float64{0.32313144959582274, 0.44243435245995266, 0.3247694876801151}},
		{rng.SuperDuper, 1, []float64{0.371407477970097, 0.478972323350369, 0.9636912546036044}},
		{rng.SuperDuper, 42, []float64{0.7728797301586902, 0.8384517340079068, 0.2611477957715158}},
		{rng.MersenneTwister, 1, []float64{0.2655086631421, 0.37212389963679016, 0.5728533633518964}},
		{rng.MersenneTwister, 42, []float64{0.9148060434963554, 0.9370754132978618, 0.2861395347863436}},
		{rng.KnuthTAOCP, 1, []float64{0.9313022354617719, 0.09969270043075089, 0.4885987322777512}},
		{rng.KnuthTAOCP, 42, []float64{0.016140771098434932, 0.09227208793163304, 0.5505511425435545}},
		{rng.KnuthTAOCP2002, 1, []float64{0.47016307152807735, 0.15850737318396577, 0.4828352602198722}},
		{rng.KnuthTAOCP2002, 42, []float64{0.12766297906637197, 0.5334160113707187, 0.4485457139089706}},
		{rng.LecuyerCMRG, 1, []float64{0.6775328286287442, 0.4273457228876442, 0.9103805304875483}},
		{rng.LecuyerCMRG, 42, []float64{0.17384558454153168, 0.5547400967650908, 0.48337712221370116}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s/seed=%d", test.kind, test.seed), func(t *testing.T) {
			e, err := rng.New(test.kind, test.seed)
			require.NoError(t, err)
			for i, v := range rng.UnifRand(e, len(test.expect)) {
				assert.InDelta(t, test.expect[i], v, 1e-15)
			}
		})
	}
}

func TestMarsagliaMulticarry_ZeroSeed(t *testing.T) {
	e, err := rng.New(rng.MarsagliaMulticarry, 5)
	require.NoError(t, err)
	require.NoError(t, e.SetSeed([]uint32{0, 0}))

	seed := e.Seed()
	assert.NotEqual(t, []uint32{0, 0}, seed)

	u1 := e.UnifRand()
	u2 := e.UnifRand()
	assert.NotEqual(t, seed, e.Seed(), "engine does not advance")
	assert.NotEqual(t, u1, u2)
}

func TestWichmannHill_Fixup(t *testing.T) {
	e, err := rng.New(rng.WichmannHill, 5)
	require.NoError(t, err)

	require.NoError(t, e.SetSeed([]uint32{30268, 0, 5}))
	assert.Equal(t, []uint32{30268, 1, 5}, e.Seed())

	var tests = []struct {
		seed []uint32
	}{
		{[]uint32{30269, 1, 1}},
		{[]uint32{1, 30307, 1}},
		{[]uint32{1, 1, 30323 + 5}},
	}
	for _, test := range tests {
		err := e.SetSeed(test.seed)
		assert.True(t, errors.Is(err, rng.ErrInvalidSeed), "seed %v", test.seed)
		assert.Equal(t, []uint32{30268, 1, 5}, e.Seed())
	}
}

func TestSuperDuper_Fixup(t *testing.T) {
	e, err := rng.New(rng.SuperDuper, 5)
	require.NoError(t, err)

	require.NoError(t, e.SetSeed([]uint32{0, 10}))
	assert.Equal(t, []uint32{1, 11}, e.Seed())
}

func TestMersenneTwister_Fixup(t *testing.T) {
	e, err := rng.New(rng.MersenneTwister, 5)
	require.NoError(t, err)

	require.NoError(t, e.SetSeed(make([]uint32, 625)))
	seed := e.Seed()
	assert.Equal(t, uint32(624), seed[0])
	nonZero := 0
	for _, w := range seed[1:] {
		if w != 0 {
			nonZero++
		}
	}
	assert.NotZero(t, nonZero)

	seed[0] = 0
	require.NoError(t, e.SetSeed(seed))
	assert.Equal(t, uint32(624), e.Seed()[0])
}

func TestKnuthTAOCP_InvalidWord(t *testing.T) {
	for _, kind := range []rng.Kind{rng.KnuthTAOCP, rng.KnuthTAOCP2002} {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := rng.New(kind, 5)
			require.NoError(t, err)

			seed := e.Seed()
			seed[3] = 1 << 30
			assert.True(t, errors.Is(e.SetSeed(seed), rng.ErrInvalidSeed))

			require.NoError(t, e.SetSeed(make([]uint32, 101)))
			fixed := e.Seed()
			assert.Equal(t, uint32(100), fixed[100])
			assert.NotEqual(t, make([]uint32, 100), fixed[:100])
		})
	}
}

func TestKnuthTAOCP_EditionsDiffer(t *testing.T) {
	e1997, err := rng.New(rng.KnuthTAOCP, 77)
	require.NoError(t, err)
	e2002, err := rng.New(rng.KnuthTAOCP2002, 77)
	require.NoError(t, err)

	assert.NotEqual(t, rng.UnifRand(e1997, 10), rng.UnifRand(e2002, 10))
}

func TestLecuyerCMRG_Seed(t *testing.T) {
	e, err := rng.New(rng.LecuyerCMRG, 5)
	require.NoError(t, err)

	for _, w := range e.Seed() {
		assert.Less(t, int64(w), int64(4294944443))
	}

	err = e.SetSeed([]uint32{4294967087, 1, 1, 1, 1, 1})
	assert.True(t, errors.Is(err, rng.ErrInvalidSeed))
	err = e.SetSeed([]uint32{1, 1, 1, 4294944443, 1, 1})
	assert.True(t, errors.Is(err, rng.ErrInvalidSeed))

	require.NoError(t, e.SetSeed([]uint32{0, 0, 0, 1, 2, 3}))
	assert.NotEqual(t, []uint32{0, 0, 0}, e.Seed()[:3])
}

func TestEngine_Generation(t *testing.T) {
	for _, kind := range rng.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := rng.New(kind, 3)
			require.NoError(t, err)
			g := e.Generation()
			assert.NotZero(t, g)

			rng.UnifRand(e, 10)
			assert.Equal(t, g, e.Generation())

			e.Init(3)
			assert.True(t, e.Generation() > g)
			g = e.Generation()

			assert.Error(t, e.SetSeed([]uint32{1}))
			assert.Equal(t, g, e.Generation())

			require.NoError(t, e.SetSeed(e.Seed()))
			assert.True(t, e.Generation() > g)

			g = e.Generation()
			rng.NewSource(e).Seed(3)
			assert.True(t, e.Generation() > g)
		})
	}
}
