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

// Package option defines an optional value, used where a lookup may come back empty.
package option

import (
	"fmt"
)

// Optional holds either a value of type T or nothing. The zero Optional holds nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding x.
func Some[T any](x T) Optional[T] {
	return Optional[T]{value: x, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSome returns true when o holds a value.
func (o Optional[T]) IsSome() bool { return o.ok }

// IsNone returns true when o is empty.
func (o Optional[T]) IsNone() bool { return !o.ok }

// Value returns the value held by o. It panics if o is empty.
func (o Optional[T]) Value() T {
	if !o.ok {
		panic("option: Value called on None")
	}
	return o.value
}

// ValueOr returns the value held by o, or defaultVal if o is empty.
func (o Optional[T]) ValueOr(defaultVal T) T {
	if !o.ok {
		return defaultVal
	}
	return o.value
}

// Get returns the value and whether there is one, in the comma-ok style.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the value of x. An empty x gives an empty result and f is not called.
func Map[T any, S any](x Optional[T], f func(T) S) Optional[S] {
	if !x.ok {
		return None[S]()
	}
	return Some(f(x.value))
}

// Or returns x if it holds a value, and y otherwise.
func Or[T any](x Optional[T], y Optional[T]) Optional[T] {
	if x.ok {
		return x
	}
	return y
}
