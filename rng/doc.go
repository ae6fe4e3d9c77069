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

// Package rng provides seedable uniform pseudo-random number generators.
//
// Seven algorithms are available behind the Engine interface:
// Wichmann-Hill, Marsaglia-Multicarry, Super-Duper, Mersenne-Twister,
// Knuth-TAOCP, Knuth-TAOCP-2002 and L'Ecuyer-CMRG. Every engine is
// initialized from an integer seed which is scrambled and expanded into
// the full state, so the same kind and seed always reproduce the same
// sequence. The state is exposed as a fixed length seed vector that can
// be read back and restored with SetSeed.
//
// Engines never return exactly 0 or 1.
package rng
