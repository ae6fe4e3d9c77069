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

	"github.com/fentec-project/rmath/rng"
	"github.com/fentec-project/rmath/sample"
	"github.com/spf13/cobra"
)

var cmdSeed = &cobra.Command{
	Use:   "seed",
	Short: "Print the seed vector of the configured engine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range e.Seed() {
			if _, err := fmt.Fprintln(out, w); err != nil {
				return err
			}
		}
		return nil
	},
}

var cmdKinds = &cobra.Command{
	Use:   "kinds",
	Short: "List the engine kinds and Normal algorithms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "engines:")
		for _, k := range rng.Kinds {
			fmt.Fprintf(out, "  %-22s seed length %d\n", k, k.SeedLength())
		}
		fmt.Fprintln(out, "normal kinds:")
		for _, k := range sample.NormalKinds {
			fmt.Fprintf(out, "  %s\n", k)
		}
		return nil
	},
}

func init() {
	cmdMain.AddCommand(cmdSeed, cmdKinds)
}
