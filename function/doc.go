// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package function contains combinators that rearrange the arguments of other functions.
//
// Go has no automatic currying, so a two-argument function cannot be used directly where a
// one-argument function is expected. The functions in this package build the adapters:
//
//	double := func(x int) int { return x * 2 }
//	step := function.ApplySecond(double, seq.Map[int, int])
//	seq.Map([][]int{{1}, {2}, {3}}, step) // [[2] [4] [6]]
//
// All combinators only build closures. They never fail, and any error or panic raised by the
// wrapped function reaches the caller unchanged.
package function
