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

// Package tuple provides a 2-tuple type and functions to build, take apart and transform it.
package tuple

import "fmt"

// T2 is a pair of values. The fields are unexported, so a T2 cannot be modified after construction.
type T2[A any, B any] struct {
	first  A
	second B
}

// New returns the pair (a, b).
func New[A any, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

// Duplicate returns the pair (a, a).
func Duplicate[A any](a A) T2[A, A] {
	return T2[A, A]{first: a, second: a}
}

// First returns the first value in the pair.
func (t T2[A, B]) First() A { return t.first }

// Second returns the second value in the pair.
func (t T2[A, B]) Second() B { return t.second }

// Unpack returns both values of the pair.
func (t T2[A, B]) Unpack() (A, B) { return t.first, t.second }

func (t T2[A, B]) String() string { return fmt.Sprintf("(%v, %v)", t.first, t.second) }

// First returns the first value in t. Same as t.First(), usable as a function value.
func First[A any, B any](t T2[A, B]) A { return t.first }

// Second returns the second value in t. Same as t.Second(), usable as a function value.
func Second[A any, B any](t T2[A, B]) B { return t.second }

// Spread turns a two-argument function into a function on pairs.
func Spread[A any, B any, C any](f func(A, B) C) func(T2[A, B]) C {
	return func(t T2[A, B]) C { return f(t.first, t.second) }
}

// Pair runs f and g on the same argument and returns both results.
func Pair[A any, B any, C any](f func(A) B, g func(A) C) func(A) T2[B, C] {
	return func(a A) T2[B, C] { return T2[B, C]{first: f(a), second: g(a)} }
}

// MapFirst lifts f into a function that transforms the first value of a pair.
func MapFirst[A any, B any, C any](f func(A) C) func(T2[A, B]) T2[C, B] {
	return func(t T2[A, B]) T2[C, B] { return T2[C, B]{first: f(t.first), second: t.second} }
}

// MapSecond lifts f into a function that transforms the second value of a pair.
func MapSecond[A any, B any, C any](f func(B) C) func(T2[A, B]) T2[A, C] {
	return func(t T2[A, B]) T2[A, C] { return T2[A, C]{first: t.first, second: f(t.second)} }
}
