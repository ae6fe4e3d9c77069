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

package sample_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/fentec-project/rmath/rng"
	"github.com/fentec-project/rmath/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormal_Kinds(t *testing.T) {
	for _, nk := range sample.NormalKinds {
		for _, kind := range []rng.Kind{rng.MersenneTwister, rng.WichmannHill, rng.LecuyerCMRG} {
			t.Run(fmt.Sprintf("%s/%s", nk, kind), func(t *testing.T) {
				n := newNormal(t, kind, 2018, nk)
				testSampler(t, n.Sampler(0, 1), draws, paramBounds{
					meanLow:  -0.02,
					meanHigh: 0.02,
					varLow:   0.97,
					varHigh:  1.03,
				})
			})
		}
	}
}

func TestNormal_Tails(t *testing.T) {
	// the share of draws beyond 2 standard deviations is about 4.55%
	for _, nk := range sample.NormalKinds {
		t.Run(nk.String(), func(t *testing.T) {
			n := newNormal(t, rng.MersenneTwister, 99, nk)
			vec, err := n.NormRandN(draws)
			require.NoError(t, err)
			outside := 0
			for _, v := range vec {
				if math.Abs(v) > 2 {
					outside++
				}
			}
			share := float64(outside) / draws
			assert.InDelta(t, 0.0455, share, 0.003)
		})
	}
}

func TestNormal_KnownValues(t *testing.T) {
	var tests = []struct {
		seed   uint32
		expect []float64
	}{
		{1, []float64{-0.6264538, 0.1836433, -0.8356286, 1.5952808, 0.3295078}},
		{42, []float64{1.3709584, -0.5646982, 0.3631284}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("seed=%d", test.seed), func(t *testing.T) {
			n := newNormal(t, rng.MersenneTwister, test.seed, sample.Inversion)
			vec, err := n.NormRandN(len(test.expect))
			require.NoError(t, err)
			for i := range vec {
				assert.InDelta(t, test.expect[i], vec[i], 1e-7)
			}
		})
	}
}

func TestNormal_Reseed(t *testing.T) {
	for _, nk := range sample.NormalKinds {
		t.Run(nk.String(), func(t *testing.T) {
			n := newNormal(t, rng.KnuthTAOCP2002, 7, nk)
			first, err := n.NormRandN(101)
			require.NoError(t, err)

			n.Reseed(7)
			second, err := n.NormRandN(101)
			require.NoError(t, err)
			assert.Equal(t, first, second)

			// an odd number of draws leaves a Box-Muller deviate pending,
			// the restored state must not return it
			n.Reseed(7)
			_, err = n.NormRand()
			require.NoError(t, err)
			n.Reseed(7)
			again, err := n.NormRand()
			require.NoError(t, err)
			assert.Equal(t, first[0], again)
		})
	}
}

func TestNormal_EngineReseeded(t *testing.T) {
	n := newNormal(t, rng.MersenneTwister, 7, sample.BoxMuller)
	first, err := n.NormRand()
	require.NoError(t, err)

	// two more draws leave the second deviate of a pair pending
	_, err = n.NormRandN(2)
	require.NoError(t, err)
	n.Engine().Init(7)
	again, err := n.NormRand()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	_, err = n.NormRandN(2)
	require.NoError(t, err)
	rng.NewSource(n.Engine()).Seed(7)
	again, err = n.NormRand()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	_, err = n.NormRandN(2)
	require.NoError(t, err)
	e, err := rng.New(rng.MersenneTwister, 7)
	require.NoError(t, err)
	require.NoError(t, n.Engine().SetSeed(e.Seed()))
	again, err = n.NormRand()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestNormal_SetSeed(t *testing.T) {
	n := newNormal(t, rng.MarsagliaMulticarry, 3, sample.BoxMuller)
	_, err := n.NormRand()
	require.NoError(t, err)
	seed := n.Engine().Seed()

	expect, err := n.NormRandN(10)
	require.NoError(t, err)
	_, err = n.NormRand()
	require.NoError(t, err)

	require.NoError(t, n.SetSeed(seed))
	got, err := n.NormRandN(10)
	require.NoError(t, err)
	// the first draw after SetSeed starts a fresh pair
	assert.Equal(t, expect[1:], got[:9])

	err = n.SetSeed([]uint32{1})
	assert.True(t, errors.Is(err, rng.ErrInvalidSeed))
}

func TestNormal_Rand(t *testing.T) {
	n := newNormal(t, rng.SuperDuper, 11, sample.KindermanRamage)
	testSampler(t, n.Sampler(10, 3), draws, around(10, 9, 0.03))

	v, err := n.Rand(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	v, err = n.Rand(math.Inf(1), 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	vec, err := n.Generate(5, []float64{0, 100}, []float64{0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 100, 0, 100, 0}, vec)
}

func TestNewNormal_Errors(t *testing.T) {
	_, err := sample.NewNormal(nil, sample.Inversion)
	assert.Error(t, err)

	e, err := rng.New(rng.MersenneTwister, 1)
	require.NoError(t, err)
	_, err = sample.NewNormal(e, sample.NormalKind(9))
	assert.Error(t, err)

	for _, nk := range sample.NormalKinds {
		parsed, err := sample.ParseNormalKind(nk.String())
		require.NoError(t, err)
		assert.Equal(t, nk, parsed)
	}
	_, err = sample.ParseNormalKind("Buggy")
	assert.Error(t, err)
}

func TestExponential(t *testing.T) {
	n := newNormal(t, rng.MersenneTwister, 5, sample.Inversion)
	e := sample.NewExponential(n)

	vec := testSampler(t, e.Sampler(2), draws, around(0.5, 0.25, 0.05))
	for _, v := range vec {
		require.True(t, v > 0)
	}

	v, err := e.Rand(math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestUniform(t *testing.T) {
	n := newNormal(t, rng.WichmannHill, 5, sample.Inversion)
	u := sample.NewUniformRange(n)

	vec := testSampler(t, u.Sampler(2, 5), draws, around(3.5, 0.75, 0.02))
	for _, v := range vec {
		require.True(t, v > 2 && v < 5)
	}

	v, err := u.Rand(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	unit := sample.NewUniform(n)
	testSampler(t, unit, draws, around(0.5, 1.0/12, 0.02))
}
