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

package pipeline_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/awslabs/ar-go-fp/internal/config"
	"github.com/awslabs/ar-go-fp/internal/pipeline"
	"golang.org/x/exp/slices"
)

func eqRows(a []int, b []int) bool { return slices.Equal(a, b) }

func quietLogger(cfg *config.Config) (*config.LogGroup, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := config.NewLogGroup(cfg)
	l.SetAllOutput(buf)
	l.SetAllFlags(0)
	return l, buf
}

func TestStep(t *testing.T) {
	tests := []struct {
		step config.Step
		in   int
		want int
	}{
		{config.Step{Op: "add", Arg: 3}, 4, 7},
		{config.Step{Op: "sub", Arg: 3}, 4, 1},
		{config.Step{Op: "mul", Arg: 3}, 4, 12},
		{config.Step{Op: "div", Arg: 3}, 7, 2},
		{config.Step{Op: "mod", Arg: 3}, 7, 1},
		{config.Step{Op: "min", Arg: 3}, 7, 3},
		{config.Step{Op: "max", Arg: 3}, 7, 7},
		{config.Step{Op: "neg", Arg: 100}, 7, -7},
		{config.Step{Op: "abs"}, -7, 7},
		{config.Step{Op: "plus", Arg: 3}, 4, 7},
		{config.Step{Op: "minus", Arg: 3}, 4, 1},
		{config.Step{Op: "times", Arg: 3}, 4, 12},
		{config.Step{Op: "negate"}, 4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			f, err := pipeline.Step(tt.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f(tt.in); got != tt.want {
				t.Errorf("%s applied to %d = %d, want %d", tt.step, tt.in, got, tt.want)
			}
		})
	}
}

func TestStepErrors(t *testing.T) {
	if _, err := pipeline.Step(config.Step{Op: "pow", Arg: 2}); !errors.Is(err, pipeline.ErrUnknownOp) {
		t.Errorf("expected ErrUnknownOp, got %v", err)
	}
	if _, err := pipeline.Step(config.Step{Op: "div"}); !errors.Is(err, pipeline.ErrZeroDivisor) {
		t.Errorf("expected ErrZeroDivisor, got %v", err)
	}
	if _, err := pipeline.Step(config.Step{Op: ""}); !errors.Is(err, pipeline.ErrUnknownOp) {
		t.Errorf("expected ErrUnknownOp for an empty op, got %v", err)
	}
	_, err := pipeline.Build([]config.Step{{Op: "add", Arg: 1}, {Op: "nop"}})
	if err == nil || !strings.HasPrefix(err.Error(), "step 1:") || !errors.Is(err, pipeline.ErrUnknownOp) {
		t.Errorf("expected error on step 1, got %v", err)
	}
}

func TestBuildOrder(t *testing.T) {
	f, err := pipeline.Build([]config.Step{{Op: "add", Arg: 1}, {Op: "mul", Arg: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f(2); got != 30 {
		t.Errorf("steps must apply first to last: expected 30, got %d", got)
	}
	id, _ := pipeline.Build(nil)
	if id(5) != 5 {
		t.Errorf("no steps should be the identity")
	}
}

func TestRunDouble(t *testing.T) {
	for _, par := range []int{1, 4} {
		cfg := config.NewDefault()
		cfg.Input = [][]int{{1}, {2}, {3}}
		cfg.Steps = []config.Step{{Op: "mul", Arg: 2}}
		cfg.Parallelism = par
		logger, _ := quietLogger(cfg)

		res, err := pipeline.Run(cfg, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.EqualFunc(res, [][]int{{2}, {4}, {6}}, eqRows) {
			t.Errorf("parallelism %d: expected [[2] [4] [6]], got %v", par, res)
		}
	}
}

func TestRunLogs(t *testing.T) {
	cfg := config.NewDefault()
	cfg.LogLevel = int(config.TraceLevel)
	cfg.Input = [][]int{{1, 2}}
	cfg.Steps = []config.Step{{Op: "neg"}}
	logger, buf := quietLogger(cfg)

	if _, err := pipeline.Run(cfg, logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[DEBUG] built pipeline of 1 steps", "[TRACE] [1 2] -> [-1 -2]", "[INFO] evaluated 1 sequences"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestRunWarnsOnShortSequences(t *testing.T) {
	cfg := config.NewDefault()
	cfg.LogLevel = int(config.WarnLevel)
	cfg.Input = [][]int{{1, 2, 3, 4}, {5}, {}}
	cfg.Steps = []config.Step{{Op: "add", Arg: 1}}
	cfg.Parallelism = 4
	logger, buf := quietLogger(cfg)

	res, err := pipeline.Run(cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.EqualFunc(res, [][]int{{2, 3, 4, 5}, {6}, {}}, eqRows) {
		t.Errorf("unexpected result %v", res)
	}
	if got := buf.String(); got != "[WARN] parallelism 4 is larger than 2 of 3 input sequences\n" {
		t.Errorf("unexpected log output %q", got)
	}

	buf.Reset()
	cfg.Parallelism = 1
	if _, err := pipeline.Run(cfg, logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("sequential runs should not warn, got %q", buf.String())
	}
}

func TestOps(t *testing.T) {
	ops := pipeline.Ops()
	if !slices.IsSorted(ops) || !slices.Contains(ops, "mul") || len(ops) != 9 {
		t.Errorf("unexpected ops %v", ops)
	}
}
