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

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fentec-project/rmath/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	defer logger.Disable()

	var buf bytes.Buffer
	require.NoError(t, logger.Configure(&buf, "json", "info"))
	logger.Log().Debug().Msg("hidden")
	logger.Log().Info().Str("engine", "Wichmann-Hill").Msg("visible")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "Wichmann-Hill", event["engine"])
	assert.Equal(t, "visible", event["message"])
}

func TestConfigure_Plain(t *testing.T) {
	defer logger.Disable()

	var buf bytes.Buffer
	require.NoError(t, logger.Configure(&buf, "plain", "warn"))
	logger.Log().Info().Msg("hidden")
	logger.Log().Warn().Msg("fallback seed")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "fallback seed")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestConfigure_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, logger.Configure(&buf, "json", "loud"))
	assert.Error(t, logger.Configure(&buf, "xml", "info"))
	assert.Empty(t, buf.String())
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(zerolog.New(&buf))
	logger.Log().Error().Msg("recorded")
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	logger.Disable()
	logger.Log().Error().Msg("dropped")
	assert.Empty(t, buf.String())
}
