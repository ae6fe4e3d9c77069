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

package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/rmath/rng"
	"github.com/fentec-project/rmath/sample"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewRandomDetVector returns a new Vector instance with (deterministic)
// random elements from (0, 1). The elements are drawn from an engine of
// the given kind whose seed is derived from key, so the same kind and
// key always give the same vector.
func NewRandomDetVector(len int, kind rng.Kind, key *[32]byte) (Vector, error) {
	if len < 0 {
		return nil, fmt.Errorf("vector length should be non-negative")
	}
	e, err := rng.New(kind, rng.DeriveSeeds(key, 1)[0])
	if err != nil {
		return nil, err
	}

	vec := make(Vector, len)
	for i := range vec {
		vec[i] = e.UnifRand()
	}
	return vec, nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	return append(Vector(nil), v...)
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)
	return res
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound
// or is NaN.
func (v Vector) CheckBound(bound float64) error {
	for _, c := range v {
		if !(math.Abs(c) < bound) {
			return fmt.Errorf("all coordinates of a vector should be smaller than bound")
		}
	}

	return nil
}

// CheckRange checks whether all vector elements lie in [lo, hi].
func (v Vector) CheckRange(lo, hi float64) error {
	for i, c := range v {
		if !(c >= lo && c <= hi) {
			return fmt.Errorf("coordinate %d (%v) is outside of [%v, %v]", i, c, lo, hi)
		}
	}

	return nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)
	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	floats.SubTo(sub, v, other)
	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Mean returns the arithmetic mean of the elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the elements.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// Summary describes the distribution of the elements of a Vector.
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes the Summary of v. Min and Max of an empty vector
// are NaN.
func (v Vector) Summarize() Summary {
	s := Summary{
		N:   len(v),
		Min: math.NaN(),
		Max: math.NaN(),
	}
	if len(v) == 0 {
		s.Mean, s.Variance, s.StdDev = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
	s.Variance = s.StdDev * s.StdDev
	s.Min = floats.Min(v)
	s.Max = floats.Max(v)
	return s
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, yi := range v {
		parts[i] = strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
