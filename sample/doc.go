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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Every sampler draws its randomness through a *Normal, which binds one
// of four Normal deviate algorithms to a uniform engine from package rng.
// Reseeding the Normal restarts all samplers built on top of it.
//
// The rejection samplers (Gamma, Beta, Poisson, Binomial) keep the setup
// computed for the most recent parameters and only rebuild it when the
// parameters change. The cached values are exposed through Constants.
// Samplers are not safe for concurrent use; give each goroutine its own
// engine and samplers.
//
// Each family offers Rand for a single draw, Generate for many draws with
// recycled parameter vectors, and Sampler, which binds fixed parameters
// to a value implementing the Sampler interface. Such values can be used,
// for instance, to fill vectors with the desired random data.
package sample
