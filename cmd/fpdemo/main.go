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
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/awslabs/ar-go-fp/internal/config"
	"github.com/awslabs/ar-go-fp/internal/formatutil"
	"github.com/awslabs/ar-go-fp/internal/pipeline"
	"github.com/awslabs/ar-go-fp/seq"
)

// flags
var (
	colorFlag = false
	verbose   = false
)

func init() {
	flag.BoolVar(&colorFlag, "color", false, "highlight results and errors when writing to a terminal")
	flag.BoolVar(&verbose, "v", false, "log at debug level, overrides the config log-level")
}

const usage = `Apply a pipeline of integer operations to sequences of integers.

Usage:
  fpdemo [-color] [-v] pipeline.yaml

Use the -help flag to display the options.

Example pipeline.yaml:
  input: [[1], [2], [3]]
  steps:
    - op: mul
      arg: 2
`

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, usage)
		fmt.Fprintf(os.Stderr, "\nSupported operations: %s\n", strings.Join(pipeline.Ops(), ", "))
		os.Exit(2)
	}
	if err := run(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, highlight(colorFlag, formatutil.Red)("fpdemo: ", err))
		os.Exit(1)
	}
}

// highlight returns color when enabled is set, and fmt.Sprint otherwise
func highlight(enabled bool, color func(...any) string) func(...any) string {
	if enabled {
		return color
	}
	return fmt.Sprint
}

func run(filename string, w io.Writer) error {
	cfg, err := config.Load(filename)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = int(config.DebugLevel)
	}
	logger := config.NewLogGroup(cfg)
	logger.Debugf("loaded %s", cfg.SourceFile())

	res, err := pipeline.Run(cfg, logger)
	if err != nil {
		return fmt.Errorf("could not run pipeline: %w", err)
	}

	format := highlight(colorFlag, formatutil.Green)
	seq.Iter(res, func(row []int) { fmt.Fprintln(w, format(row)) })
	return nil
}
