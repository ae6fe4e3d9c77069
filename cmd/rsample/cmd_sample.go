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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fentec-project/rmath/data"
	"github.com/fentec-project/rmath/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// param is a positional distribution parameter. Parameters with a
// default may be omitted from the end of the command line.
type param struct {
	name string
	def  *float64
}

func required(name string) param {
	return param{name: name}
}

func optional(name string, def float64) param {
	return param{name: name, def: &def}
}

// family describes a sampling subcommand.
type family struct {
	use     string
	short   string
	params  []param
	sampler func(n *sample.Normal, args []float64) sample.Sampler
}

var families = []family{
	{
		use:    "runif",
		short:  "Uniform values on (min, max)",
		params: []param{optional("min", 0), optional("max", 1)},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewUniformRange(n).Sampler(a[0], a[1])
		},
	},
	{
		use:    "rnorm",
		short:  "Normal deviates",
		params: []param{optional("mean", 0), optional("sd", 1)},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return n.Sampler(a[0], a[1])
		},
	},
	{
		use:    "rexp",
		short:  "Exponential deviates",
		params: []param{optional("rate", 1)},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewExponential(n).Sampler(a[0])
		},
	},
	{
		use:    "rgamma",
		short:  "Gamma deviates",
		params: []param{required("shape"), optional("scale", 1)},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewGamma(n).Sampler(a[0], a[1])
		},
	},
	{
		use:    "rbeta",
		short:  "Beta deviates",
		params: []param{required("a"), required("b")},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewBeta(n).Sampler(a[0], a[1])
		},
	},
	{
		use:    "rpois",
		short:  "Poisson deviates",
		params: []param{required("lambda")},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewPoisson(n).Sampler(a[0])
		},
	},
	{
		use:    "rbinom",
		short:  "Binomial deviates",
		params: []param{required("size"), required("prob")},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewBinomial(n).Sampler(a[0], a[1])
		},
	},
	{
		use:    "rnbinom",
		short:  "Negative Binomial deviates",
		params: []param{required("size"), required("prob")},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewNegativeBinomial(n).Sampler(a[0], a[1])
		},
	},
	{
		use:    "rgeom",
		short:  "Geometric deviates",
		params: []param{required("prob")},
		sampler: func(n *sample.Normal, a []float64) sample.Sampler {
			return sample.NewGeometric(n).Sampler(a[0])
		},
	},
}

func init() {
	for _, f := range families {
		cmdMain.AddCommand(f.command())
	}
}

func (f family) command() *cobra.Command {
	needed := 0
	names := make([]string, len(f.params))
	for i, p := range f.params {
		if p.def == nil {
			needed++
			names[i] = p.name
		} else {
			names[i] = "[" + p.name + "]"
		}
	}

	return &cobra.Command{
		Use:   fmt.Sprintf("%s N %s", f.use, strings.Join(names, " ")),
		Short: f.short,
		Args:  cobra.RangeArgs(1+needed, 1+len(f.params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid count %q", args[0])
			}
			values, err := f.parse(args[1:])
			if err != nil {
				return err
			}

			n, err := newNormal()
			if err != nil {
				return err
			}
			if count < 0 {
				count = 0
			}
			vec, err := data.NewRandomVector(count, f.sampler(n, values))
			if err != nil {
				return errors.Wrap(err, f.use)
			}
			return printVector(cmd, vec)
		},
	}
}

func (f family) parse(args []string) ([]float64, error) {
	values := make([]float64, len(f.params))
	for i, p := range f.params {
		if i >= len(args) {
			values[i] = *p.def
			continue
		}
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %q", p.name, args[i])
		}
		values[i] = v
	}
	return values, nil
}

func printVector(cmd *cobra.Command, vec data.Vector) error {
	out := cmd.OutOrStdout()
	if flagMain.Summary {
		s := vec.Summarize()
		_, err := fmt.Fprintf(out, "n\t%d\nmean\t%.17g\nvariance\t%.17g\n", s.N, s.Mean, s.Variance)
		return err
	}
	for _, v := range vec {
		if _, err := fmt.Fprintf(out, "%.17g\n", v); err != nil {
			return err
		}
	}
	return nil
}
