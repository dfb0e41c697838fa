// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: HCL job files: decoding, validation and translation into engine and
//       algorithm options.

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/lvgraph/algorithms"
	"github.com/katalvlaran/lvgraph/pregel"
	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	// ErrDecode indicates unreadable, malformed or schema-violating HCL.
	ErrDecode = errors.New("config: decode failed")

	// ErrInvalid indicates a well-formed file with out-of-domain values.
	ErrInvalid = errors.New("config: invalid value")
)

// PageRank defaults applied when the pagerank block or one of its
// attributes is absent.
const (
	DefaultResetProbability = 0.15
	DefaultThreshold        = 1e-4
	DefaultPageRankRounds   = 100
)

// Job is the root of a job file. Every block is optional.
type Job struct {
	Engine     *EngineBlock     `hcl:"engine,block"`
	PageRank   *PageRankBlock   `hcl:"pagerank,block"`
	Components *ComponentsBlock `hcl:"components,block"`
}

// EngineBlock configures the send/collect engine.
type EngineBlock struct {
	Workers       *int    `hcl:"workers,optional"`
	InvokeOnEmpty *bool   `hcl:"invoke_on_empty,optional"`
	Direction     *string `hcl:"direction,optional"`
	MaxIterations *int    `hcl:"max_iterations,optional"`
}

// PageRankBlock holds PageRank parameters.
type PageRankBlock struct {
	ResetProbability *float64 `hcl:"reset_probability,optional"`
	Threshold        *float64 `hcl:"threshold,optional"`
	MaxIterations    *int     `hcl:"max_iterations,optional"`
	ResultKey        *string  `hcl:"result_key,optional"`
}

// ComponentsBlock holds connected-components parameters.
type ComponentsBlock struct {
	MaxIterations *int    `hcl:"max_iterations,optional"`
	ResultKey     *string `hcl:"result_key,optional"`
}

// Load parses, decodes and validates the job file at path.
func Load(path string) (*Job, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrDecode, path, diags.Error())
	}

	return decode(file, path)
}

// Parse is Load for in-memory source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Job, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrDecode, filename, diags.Error())
	}

	return decode(file, filename)
}

func decode(file *hcl.File, name string) (*Job, error) {
	var job Job
	if diags := gohcl.DecodeBody(file.Body, nil, &job); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrDecode, name, diags.Error())
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &job, nil
}

// Validate checks every present value. Absent values are always valid.
func (j *Job) Validate() error {
	if e := j.Engine; e != nil {
		if e.Workers != nil && *e.Workers < 1 {
			return fmt.Errorf("%w: engine.workers must be >= 1 (got %d)", ErrInvalid, *e.Workers)
		}
		if e.MaxIterations != nil && *e.MaxIterations < 1 {
			return fmt.Errorf("%w: engine.max_iterations must be >= 1 (got %d)", ErrInvalid, *e.MaxIterations)
		}
		if e.Direction != nil {
			if _, err := pregel.ParseDirection(*e.Direction); err != nil {
				return fmt.Errorf("%w: engine.direction: %w", ErrInvalid, err)
			}
		}
	}
	if p := j.PageRank; p != nil {
		if r := p.ResetProbability; r != nil && (*r < 0 || *r > 1) {
			return fmt.Errorf("%w: pagerank.reset_probability %v outside [0,1]", ErrInvalid, *r)
		}
		if t := p.Threshold; t != nil && *t < 0 {
			return fmt.Errorf("%w: pagerank.threshold %v must be >= 0", ErrInvalid, *t)
		}
		if m := p.MaxIterations; m != nil && *m < 1 {
			return fmt.Errorf("%w: pagerank.max_iterations must be >= 1 (got %d)", ErrInvalid, *m)
		}
		if k := p.ResultKey; k != nil && *k == "" {
			return fmt.Errorf("%w: pagerank.result_key is empty", ErrInvalid)
		}
	}
	if c := j.Components; c != nil {
		if m := c.MaxIterations; m != nil && *m < 1 {
			return fmt.Errorf("%w: components.max_iterations must be >= 1 (got %d)", ErrInvalid, *m)
		}
		if k := c.ResultKey; k != nil && *k == "" {
			return fmt.Errorf("%w: components.result_key is empty", ErrInvalid)
		}
	}

	return nil
}

// EngineOptions translates the engine block into pregel options, preceded by
// WithLogger(log). A missing block yields only the logger.
func (j *Job) EngineOptions(log zerolog.Logger) []pregel.Option {
	opts := []pregel.Option{pregel.WithLogger(log)}
	e := j.Engine
	if e == nil {
		return opts
	}
	if e.Workers != nil {
		opts = append(opts, pregel.WithWorkers(*e.Workers))
	}
	if e.InvokeOnEmpty != nil {
		opts = append(opts, pregel.WithInvokeOnEmpty(*e.InvokeOnEmpty))
	}
	if e.Direction != nil {
		// Validate has already rejected unknown spellings.
		d, _ := pregel.ParseDirection(*e.Direction)
		opts = append(opts, pregel.WithDirection(d))
	}
	if e.MaxIterations != nil {
		opts = append(opts, pregel.WithMaxIterations(*e.MaxIterations))
	}

	return opts
}

// PageRankParams returns reset probability, threshold and round bound with
// defaults filled in.
func (j *Job) PageRankParams() (resetProb, threshold float64, maxIters int) {
	resetProb, threshold, maxIters = DefaultResetProbability, DefaultThreshold, DefaultPageRankRounds
	if p := j.PageRank; p != nil {
		if p.ResetProbability != nil {
			resetProb = *p.ResetProbability
		}
		if p.Threshold != nil {
			threshold = *p.Threshold
		}
		if p.MaxIterations != nil {
			maxIters = *p.MaxIterations
		}
	}

	return resetProb, threshold, maxIters
}

// PageRankOptions returns algorithm options for PageRank: the engine's
// worker bound, log, and the result key when set.
func (j *Job) PageRankOptions(log zerolog.Logger) []algorithms.Option {
	opts := j.algorithmOptions(log)
	if p := j.PageRank; p != nil && p.ResultKey != nil {
		opts = append(opts, algorithms.WithResultKey(*p.ResultKey))
	}

	return opts
}

// ComponentsOptions returns algorithm options for ConnectedComponents.
func (j *Job) ComponentsOptions(log zerolog.Logger) []algorithms.Option {
	opts := j.algorithmOptions(log)
	if c := j.Components; c != nil {
		if c.MaxIterations != nil {
			opts = append(opts, algorithms.WithMaxIterations(*c.MaxIterations))
		}
		if c.ResultKey != nil {
			opts = append(opts, algorithms.WithResultKey(*c.ResultKey))
		}
	}

	return opts
}

func (j *Job) algorithmOptions(log zerolog.Logger) []algorithms.Option {
	opts := []algorithms.Option{algorithms.WithLogger(log)}
	if e := j.Engine; e != nil && e.Workers != nil {
		opts = append(opts, algorithms.WithWorkers(*e.Workers))
	}

	return opts
}
