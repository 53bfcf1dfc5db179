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

// Package pipeline evaluates the steps of a config.Config over its input sequences.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/awslabs/ar-go-fp/function"
	"github.com/awslabs/ar-go-fp/internal/config"
	"github.com/awslabs/ar-go-fp/option"
	"github.com/awslabs/ar-go-fp/seq"
	"github.com/awslabs/ar-go-fp/tuple"
)

var (
	// ErrUnknownOp is returned when a step names an operation that does not exist
	ErrUnknownOp = errors.New("unknown operation")

	// ErrZeroDivisor is returned for div and mod steps with a zero argument
	ErrZeroDivisor = errors.New("zero divisor")
)

func neg(x int) int { return -x }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ops maps operation names to binary functions. The step argument is always the second argument.
var ops = map[string]func(int, int) int{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"mul": func(a, b int) int { return a * b },
	"div": func(a, b int) int { return a / b },
	"mod": func(a, b int) int { return a % b },
	"min": func(a, b int) int { return min(a, b) },
	"max": func(a, b int) int { return max(a, b) },
	// unary operations ignore the argument
	"neg": function.FirstArg[int, int](neg),
	"abs": function.FirstArg[int, int](abs),
}

// aliases are alternative names of operations in ops
var aliases = map[string]string{
	"plus":   "add",
	"minus":  "sub",
	"times":  "mul",
	"negate": "neg",
}

// known returns name if it is the name of an operation in ops
func known(name string) option.Optional[string] {
	if _, ok := ops[name]; ok {
		return option.Some(name)
	}
	return option.None[string]()
}

// Ops returns the names of the supported operations, sorted. Aliases are not included.
func Ops() []string {
	names := make(map[string]bool, len(ops))
	for name := range ops {
		names[name] = true
	}
	return seq.SortedKeys(names)
}

// Step returns the single-argument function computing op(x, s.Arg)
func Step(s config.Step) (func(int) int, error) {
	name, ok := option.Or(known(s.Op), known(aliases[s.Op])).Get()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}
	op := ops[name]
	if (name == "div" || name == "mod") && s.Arg == 0 {
		return nil, fmt.Errorf("%s: %w", s, ErrZeroDivisor)
	}
	return function.ApplySecond(s.Arg, op), nil
}

// Build composes the steps, from first to last, into one function
func Build(steps []config.Step) (func(int) int, error) {
	f := function.Identity[int]
	for i, s := range steps {
		g, err := Step(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		f = function.Compose(f, g)
	}
	return f, nil
}

// Run applies the steps of cfg to every element of every input sequence
func Run(cfg *config.Config, logger *config.LogGroup) ([][]int, error) {
	f, err := Build(cfg.Steps)
	if err != nil {
		return nil, err
	}
	logger.Debugf("built pipeline of %d steps: %v", len(cfg.Steps), cfg.Steps)

	row := function.ApplySecond(f, seq.Map[int, int])
	if cfg.Parallelism > 1 {
		row = func(a []int) []int { return seq.MapParallel(a, f, cfg.Parallelism) }
		short := seq.Filter(cfg.Input, func(a []int) bool { return len(a) < cfg.Parallelism })
		if len(short) > 0 {
			logger.Warnf("parallelism %d is larger than %d of %d input sequences",
				cfg.Parallelism, len(short), len(cfg.Input))
		}
	}

	results := seq.Map(cfg.Input, tuple.Pair(function.Identity[[]int], row))
	seq.Iter(results, func(r tuple.T2[[]int, []int]) {
		logger.Tracef("%v -> %v", r.First(), r.Second())
	})
	logger.Infof("evaluated %d sequences", len(results))
	return seq.Map(results, tuple.Second[[]int, []int]), nil
}
