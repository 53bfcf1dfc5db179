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

package function

// Identity returns its argument.
func Identity[A any](a A) A { return a }

// Always returns a function that always returns a.
func Always[A any](a A) func() A {
	return func() A { return a }
}

// Flip returns f with its two arguments swapped: Flip(f)(b, a) == f(a, b)
func Flip[A any, B any, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}

// FirstArg turns a one-argument function into a two-argument function that only uses its first argument.
func FirstArg[A any, B any, C any](f func(A) C) func(A, B) C {
	return func(a A, _ B) C { return f(a) }
}

// SecondArg turns a one-argument function into a two-argument function that only uses its second argument.
func SecondArg[A any, B any, C any](f func(B) C) func(A, B) C {
	return func(_ A, b B) C { return f(b) }
}

// Compose (f,g) returns a function h: x -> g(f(x))
func Compose[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// ApplyFirst supplies the first argument of f: ApplyFirst(a, f)(b) == f(a, b)
func ApplyFirst[A any, B any, C any](a A, f func(A, B) C) func(B) C {
	return func(b B) C { return f(a, b) }
}

// ApplySecond supplies the second argument of f: ApplySecond(b, f)(a) == f(a, b)
//
// The bound value comes first so that a transform can be handed to a consumer taking
// (sequence, transform), e.g. ApplySecond(strings.TrimSpace, seq.Map[string, string]).
func ApplySecond[A any, B any, C any](b B, f func(A, B) C) func(A) C {
	return func(a A) C { return f(a, b) }
}

// ApplySecondErr is ApplySecond for functions that can fail. The error returned by f is returned as is.
func ApplySecondErr[A any, B any, C any](b B, f func(A, B) (C, error)) func(A) (C, error) {
	return func(a A) (C, error) { return f(a, b) }
}
