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

// Package normal evaluates the Normal distribution: the cumulative
// distribution function, its inverse and the density.
//
// The CDF follows W. J. Cody, "Rational Chebyshev approximation for the
// error function", Mathematics of Computation 23 (1969), with three
// approximation regions and exact limits far out in the tails. It is
// accurate to about 18 significant digits and keeps full relative
// precision in both tails, including on the log scale.
//
// The quantile function uses Wichura's algorithm AS 241, "The
// percentage points of the Normal distribution", Applied Statistics 37
// (1988), accurate to about 1 part in 10^16.
//
// NaN arguments propagate to NaN results without an error.
package normal
