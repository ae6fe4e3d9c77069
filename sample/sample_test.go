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
	"testing"

	"github.com/fentec-project/rmath/rng"
	"github.com/fentec-project/rmath/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// paramBounds bounds the sample mean and variance of a sampler.
type paramBounds struct {
	meanLow  float64
	meanHigh float64
	varLow   float64
	varHigh  float64
}

// around returns bounds of relative width tol around mean and variance.
func around(mean, variance, tol float64) paramBounds {
	return paramBounds{
		meanLow:  mean - tol*abs(mean),
		meanHigh: mean + tol*abs(mean),
		varLow:   variance * (1 - tol),
		varHigh:  variance * (1 + tol),
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

const draws = 100000

func newNormal(t *testing.T, kind rng.Kind, seed uint32, nk sample.NormalKind) *sample.Normal {
	e, err := rng.New(kind, seed)
	require.NoError(t, err)
	n, err := sample.NewNormal(e, nk)
	require.NoError(t, err)
	return n
}

// testSampler draws n values from s, checks them against expect and
// returns them.
func testSampler(t *testing.T, s sample.Sampler, n int, expect paramBounds) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		v, err := s.Sample()
		require.NoError(t, err)
		vec[i] = v
	}

	me, v := stat.MeanVariance(vec, nil)
	assert.True(t, me >= expect.meanLow, "mean value %v of the distribution is too small", me)
	assert.True(t, me <= expect.meanHigh, "mean value %v of the distribution is too big", me)
	assert.True(t, v >= expect.varLow, "variance %v of the distribution is too small", v)
	assert.True(t, v <= expect.varHigh, "variance %v of the distribution is too big", v)
	return vec
}

func assertWhole(t *testing.T, vec []float64, max float64) {
	for _, v := range vec {
		if v < 0 || v > max || v != float64(int64(v)) {
			t.Fatalf("value %v is not a whole number in [0, %v]", v, max)
		}
	}
}
