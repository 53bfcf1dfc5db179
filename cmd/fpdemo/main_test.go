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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awslabs/ar-go-fp/internal/pipeline"
)

func TestRun(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := run(filepath.Join("testdata", "pipeline.yaml"), buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "[3 5]\n[7]\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRunUnknownOp(t *testing.T) {
	err := run(filepath.Join("testdata", "unknown.yaml"), &bytes.Buffer{})
	if !errors.Is(err, pipeline.ErrUnknownOp) {
		t.Fatalf("expected ErrUnknownOp, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 1") || !strings.Contains(err.Error(), `"pow"`) {
		t.Errorf("error should name the step and the operation: %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	if err := run(filepath.Join("testdata", "nope.yaml"), &bytes.Buffer{}); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestHighlight(t *testing.T) {
	marked := func(args ...any) string { return "<" + fmt.Sprint(args...) + ">" }
	err := errors.New("boom")
	if got := highlight(false, marked)("fpdemo: ", err); got != "fpdemo: boom" {
		t.Errorf("expected plain error line, got %q", got)
	}
	if got := highlight(true, marked)("fpdemo: ", err); got != "<fpdemo: boom>" {
		t.Errorf("expected highlighted error line, got %q", got)
	}
}
