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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fentec-project/rmath/logger"
	"github.com/fentec-project/rmath/rng"
	"github.com/fentec-project/rmath/sample"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(cmdMain)
	initConfig()
	t.Cleanup(logger.Disable)

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmdMain.SetOut(out)
	cmdMain.SetErr(errOut)
	cmdMain.SetArgs(args)
	err := cmdMain.Execute()
	return out.String(), err
}

func lines(t *testing.T, out string) []float64 {
	var res []float64
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		v, err := strconv.ParseFloat(l, 64)
		require.NoError(t, err, "line %q", l)
		res = append(res, v)
	}
	return res
}

func TestRnorm_MatchesLibrary(t *testing.T) {
	out, err := execute(t, "rnorm", "5", "--seed", "42", "--kind", "Wichmann-Hill", "--normal-kind", "Box-Muller")
	require.NoError(t, err)
	got := lines(t, out)

	e, err := rng.New(rng.WichmannHill, 42)
	require.NoError(t, err)
	n, err := sample.NewNormal(e, sample.BoxMuller)
	require.NoError(t, err)
	expect, err := n.NormRandN(5)
	require.NoError(t, err)
	assert.Equal(t, expect, got)
}

func TestSampleCommands(t *testing.T) {
	var tests = []struct {
		args []string
		lo   float64
		hi   float64
	}{
		{[]string{"runif", "50", "2", "3"}, 2, 3},
		{[]string{"runif", "50"}, 0, 1},
		{[]string{"rexp", "50", "4"}, 0, 100},
		{[]string{"rgamma", "50", "2"}, 0, 100},
		{[]string{"rbeta", "50", "0.5", "2"}, 0, 1},
		{[]string{"rpois", "50", "12"}, 0, 100},
		{[]string{"rbinom", "50", "20", "0.5"}, 0, 20},
		{[]string{"rnbinom", "50", "3", "0.5"}, 0, 1000},
		{[]string{"rgeom", "50", "0.5"}, 0, 1000},
	}

	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			out, err := execute(t, test.args...)
			require.NoError(t, err)
			vec := lines(t, out)
			assert.Len(t, vec, 50)
			for _, v := range vec {
				assert.True(t, v >= test.lo && v <= test.hi, "value %v", v)
			}
		})
	}
}

func TestSampleCommands_Errors(t *testing.T) {
	_, err := execute(t, "rgamma", "5")
	assert.Error(t, err)
	_, err = execute(t, "rgamma", "5", "0")
	assert.Error(t, err)
	_, err = execute(t, "rpois", "many", "1")
	assert.Error(t, err)
	_, err = execute(t, "runif", "5", "--kind", "no-such-kind")
	assert.Error(t, err)
	_, err = execute(t, "runif", "5", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	out, err := execute(t, "rpois", "20000", "3", "--summary")
	require.NoError(t, err)

	fields := strings.Fields(out)
	require.Len(t, fields, 6)
	assert.Equal(t, "20000", fields[1])
	mean, err := strconv.ParseFloat(fields[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 3, mean, 0.1)
}

func TestNormalCommands(t *testing.T) {
	out, err := execute(t, "pnorm", "1.96")
	require.NoError(t, err)
	assert.InDelta(t, 0.975002104851780, lines(t, out)[0], 1e-14)

	out, err = execute(t, "pnorm", "1.96", "--upper")
	require.NoError(t, err)
	assert.InDelta(t, 0.024997895148220435, lines(t, out)[0], 1e-14)

	out, err = execute(t, "qnorm", "0.975", "10", "2")
	require.NoError(t, err)
	assert.InDelta(t, 10+2*1.959963984540054, lines(t, out)[0], 1e-12)

	out, err = execute(t, "dnorm", "0", "--log")
	require.NoError(t, err)
	assert.InDelta(t, -0.9189385332046727, lines(t, out)[0], 1e-15)

	_, err = execute(t, "qnorm", "2")
	assert.Error(t, err)
}

func TestSeedAndKinds(t *testing.T) {
	out, err := execute(t, "seed", "--kind", "L'Ecuyer-CMRG", "--seed", "9")
	require.NoError(t, err)
	assert.Len(t, lines(t, out), 6)

	out, err = execute(t, "kinds")
	require.NoError(t, err)
	for _, k := range rng.Kinds {
		assert.Contains(t, out, k.String())
	}
	for _, k := range sample.NormalKinds {
		assert.Contains(t, out, k.String())
	}
}

func TestConfigSources(t *testing.T) {
	reference, err := execute(t, "runif", "3", "--seed", "77", "--kind", "Super-Duper")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "rsample.yaml")
	require.NoError(t, os.WriteFile(file, []byte("kind: Super-Duper\nseed: 77\n"), 0600))
	fromFile, err := execute(t, "runif", "3", "--config", file)
	require.NoError(t, err)
	assert.Equal(t, reference, fromFile)

	t.Setenv("RSAMPLE_SEED", "77")
	t.Setenv("RSAMPLE_KIND", "Super-Duper")
	fromEnv, err := execute(t, "runif", "3")
	require.NoError(t, err)
	assert.Equal(t, reference, fromEnv)

	// flags take precedence over the environment
	other, err := execute(t, "runif", "3", "--seed", "78")
	require.NoError(t, err)
	assert.NotEqual(t, reference, other)
}
