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

// Package config loads the pipeline documents read by fpdemo.
//
// A document is in yaml format, for example:
//
//	options:
//	  log-level: 4
//	input: [[1, 2], [3]]
//	steps:
//	  - op: mul
//	    arg: 2
//	  - op: neg
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a pipeline document: the input sequences and the steps applied to every element.
type Config struct {
	Options `yaml:"options"`

	sourceFile string

	// Input is a sequence of integer sequences
	Input [][]int `yaml:"input"`

	// Steps are applied in order to every element of every inner sequence
	Steps []Step `yaml:"steps"`
}

// Step is a binary integer operation with its second argument fixed to Arg.
type Step struct {
	Op  string `yaml:"op"`
	Arg int    `yaml:"arg"`
}

func (s Step) String() string { return fmt.Sprintf("%s %d", s.Op, s.Arg) }

type Options struct {
	// LogLevel controls the verbosity of the logs, see LogLevel. Defaults to InfoLevel.
	LogLevel int `yaml:"log-level"`

	// Parallelism is the number of goroutines used on each inner sequence. Values <= 1 run sequentially.
	Parallelism int `yaml:"parallelism"`
}

// NewDefault returns an empty default config.
func NewDefault() *Config {
	return &Config{
		Input: nil,
		Steps: nil,
		Options: Options{
			LogLevel:    int(InfoLevel),
			Parallelism: 1,
		},
	}
}

// Load reads a configuration from a file
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	cfg.sourceFile = filename
	return cfg, nil
}

// Parse reads a configuration from yaml content
func Parse(b []byte) (*Config, error) {
	cfg := NewDefault()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// If logLevel has not been specified (i.e. it is 0) set the default to Info
	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	if cfg.LogLevel < int(ErrLevel) || cfg.LogLevel > int(TraceLevel) {
		return nil, fmt.Errorf("log-level %d out of range [%d, %d]", cfg.LogLevel, ErrLevel, TraceLevel)
	}

	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 1
	}
	return cfg, nil
}

// SourceFile returns the name of the file the config was loaded from, if any
func (c Config) SourceFile() string {
	return c.sourceFile
}
