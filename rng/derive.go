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

package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// DeriveSeeds expands key into n integer seeds using the salsa20 key
// stream with an all-zero nonce. The same key always yields the same
// seeds, so a caller can hand each goroutine its own engine seeded with
// one of them.
func DeriveSeeds(key *[32]byte, n int) []uint32 {
	if n < 1 {
		return nil
	}
	in := make([]byte, 4*n) // input is initialized to zeros
	out := make([]byte, 4*n)
	nonce := make([]byte, 8)
	salsa20.XORKeyStream(out, in, nonce, key)

	seeds := make([]uint32, n)
	for i := range seeds {
		seeds[i] = binary.LittleEndian.Uint32(out[4*i : 4*i+4])
	}
	return seeds
}

// NewEngines returns n engines of the given kind, seeded with
// DeriveSeeds(key, n).
func NewEngines(kind Kind, key *[32]byte, n int) ([]Engine, error) {
	seeds := DeriveSeeds(key, n)
	engines := make([]Engine, len(seeds))
	for i, s := range seeds {
		e, err := New(kind, s)
		if err != nil {
			return nil, err
		}
		engines[i] = e
	}
	return engines, nil
}
