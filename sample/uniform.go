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
	"math"

	"github.com/pkg/errors"
)

// UniformRange samples random values from the interval (min, max).
type UniformRange struct {
	normal *Normal
}

// NewUniformRange returns an instance of the UniformRange sampler
// drawing from n.
func NewUniformRange(n *Normal) *UniformRange {
	return &UniformRange{normal: n}
}

// Rand returns a value from the open interval (min, max), or min when
// both bounds coincide.
func (u *UniformRange) Rand(min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		return math.NaN(), errors.Wrapf(ErrInvalidParameter, "uniform: range [%v, %v]", min, max)
	}
	if min == max {
		return min, nil
	}
	v := u.normal.UnifRand()
	for v <= 0 || v >= 1 {
		v = u.normal.UnifRand()
	}
	return min + (max-min)*v, nil
}

// Generate returns count uniform values, recycling the bound vectors.
func (u *UniformRange) Generate(count int, min, max []float64) ([]float64, error) {
	return generate(count, [][]float64{min, max}, func(args []float64) (float64, error) {
		return u.Rand(args[0], args[1])
	})
}

// Sampler returns a Sampler of values from the interval (min, max).
func (u *UniformRange) Sampler(min, max float64) Sampler {
	return SamplerFunc(func() (float64, error) {
		return u.Rand(min, max)
	})
}

// Uniform samples random values from the interval (0, 1).
type Uniform struct {
	UniformRange
}

// NewUniform returns an instance of the Uniform sampler drawing from n.
func NewUniform(n *Normal) *Uniform {
	return &Uniform{UniformRange{normal: n}}
}

// Sample returns a value from (0, 1).
func (u *Uniform) Sample() (float64, error) {
	return u.Rand(0, 1)
}
