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

package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var invalidStr = "is not valid"

// ErrInvalidParameter is returned when a distribution parameter is
// non-finite, negative or otherwise outside of its domain.
var ErrInvalidParameter = errors.New(fmt.Sprintf("distribution parameter %s", invalidStr))

// ErrInvalidSeed is returned when a seed vector has the wrong length or
// holds values outside of the state space of the engine.
var ErrInvalidSeed = errors.New(fmt.Sprintf("seed vector %s", invalidStr))

// ErrInternal is returned when a rejection loop exceeds its iteration
// guard. It indicates a defect, never a regular outcome.
var ErrInternal = errors.New("rejection sampling exceeded its iteration bound")
