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

package tuple

import "github.com/awslabs/ar-go-fp/option"

// A Lens focuses on a part A of a whole S.
type Lens[S any, A any] interface {
	// Get returns the focused part, or none when s does not have one
	Get(s S) option.Optional[A]

	// Set returns a copy of s with the focused part replaced by a
	Set(a A, s S) S
}

// LensFirst is the lens on the first value of a pair
type LensFirst[A any, B any] struct{}

// Get returns the first value of t. A pair always has one.
func (LensFirst[A, B]) Get(t T2[A, B]) option.Optional[A] { return option.Some(t.first) }

// Set returns t with its first value replaced by a.
func (LensFirst[A, B]) Set(a A, t T2[A, B]) T2[A, B] { return T2[A, B]{first: a, second: t.second} }

// LensSecond is the lens on the second value of a pair
type LensSecond[A any, B any] struct{}

// Get returns the second value of t. A pair always has one.
func (LensSecond[A, B]) Get(t T2[A, B]) option.Optional[B] { return option.Some(t.second) }

// Set returns t with its second value replaced by b.
func (LensSecond[A, B]) Set(b B, t T2[A, B]) T2[A, B] { return T2[A, B]{first: t.first, second: b} }

// Over applies f to the part of s that l focuses on. If there is no such part, s is returned.
func Over[S any, A any](l Lens[S, A], f func(A) A, s S) S {
	return option.Map(l.Get(s), func(a A) S { return l.Set(f(a), s) }).ValueOr(s)
}

var (
	_ Lens[T2[int, string], int]    = LensFirst[int, string]{}
	_ Lens[T2[int, string], string] = LensSecond[int, string]{}
)
