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
	"github.com/fentec-project/rmath/internal"
	"github.com/fentec-project/rmath/logger"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned when a distribution parameter is
	// outside of its domain.
	ErrInvalidParameter = internal.ErrInvalidParameter
	// ErrInternal is returned when a rejection loop fails to accept a
	// candidate within maxIterations attempts.
	ErrInternal = internal.ErrInternal
)

// maxIterations bounds every rejection loop.
var maxIterations = 10000000

// Sampler is a source of random values from a fixed distribution.
// Samplers are used, for instance, to fill vectors with random data.
type Sampler interface {
	Sample() (float64, error)
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func() (float64, error)

// Sample calls f.
func (f SamplerFunc) Sample() (float64, error) {
	return f()
}

// generate draws n values, recycling every parameter vector in params
// so that draw i receives params[j][i % len(params[j])].
func generate(n int, params [][]float64, draw func(args []float64) (float64, error)) ([]float64, error) {
	if n < 1 {
		return []float64{}, nil
	}
	for j, p := range params {
		if len(p) == 0 {
			return nil, errors.Wrapf(ErrInvalidParameter, "parameter vector %d is empty", j)
		}
	}

	res := make([]float64, n)
	args := make([]float64, len(params))
	for i := range res {
		for j, p := range params {
			args[j] = p[i%len(p)]
		}
		v, err := draw(args)
		if err != nil {
			return nil, errors.Wrapf(err, "draw %d", i)
		}
		res[i] = v
	}
	return res, nil
}

func invalid(family, name string, value float64) error {
	return errors.Wrapf(ErrInvalidParameter, "%s: %s %v", family, name, value)
}

func errIterations(family string) error {
	logger.Log().Error().Str("sampler", family).Int("iterations", maxIterations).
		Msg("rejection loop did not accept a candidate")
	return errors.Wrapf(ErrInternal, "%s: no candidate accepted after %d iterations", family, maxIterations)
}
