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

	"github.com/fentec-project/rmath/normal"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdPnorm = &cobra.Command{
	Use:   "pnorm q [mean sd]",
	Short: "Normal distribution function",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return evalNormal(cmd, args, func(x, mu, sigma float64) (float64, error) {
			return normal.CDF(x, mu, sigma, !flagNormal.Upper, flagNormal.Log)
		})
	},
}

var cmdQnorm = &cobra.Command{
	Use:   "qnorm p [mean sd]",
	Short: "Normal quantile function",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return evalNormal(cmd, args, func(x, mu, sigma float64) (float64, error) {
			return normal.Quantile(x, mu, sigma, !flagNormal.Upper, flagNormal.Log)
		})
	},
}

var cmdDnorm = &cobra.Command{
	Use:   "dnorm x [mean sd]",
	Short: "Normal density",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return evalNormal(cmd, args, func(x, mu, sigma float64) (float64, error) {
			return normal.Density(x, mu, sigma, flagNormal.Log)
		})
	},
}

var flagNormal struct {
	Upper bool
	Log   bool
}

func init() {
	for _, cmd := range []*cobra.Command{cmdPnorm, cmdQnorm, cmdDnorm} {
		cmd.Flags().BoolVar(&flagNormal.Log, "log", false, "Probabilities (densities) are on the log scale")
		cmdMain.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{cmdPnorm, cmdQnorm} {
		cmd.Flags().BoolVar(&flagNormal.Upper, "upper", false, "Use the upper tail P[X > x]")
	}
}

func evalNormal(cmd *cobra.Command, args []string, f func(x, mu, sigma float64) (float64, error)) error {
	values := []float64{0, 0, 1}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid argument %q", arg)
		}
		values[i] = v
	}

	res, err := f(values[0], values[1], values[2])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.17g\n", res)
	return err
}
