package io

import (
	"fmt"
	"io"
	"os"

	"github.com/cyclelab/tradecycle/pkg/problem"
)

// ReadProblem decodes a problem document from r in the given format.
//
// ReadProblem returns decoding errors for malformed documents; the problem
// itself is validated separately with [problem.Problem.Validate] so that a
// syntactically valid file can still be inspected programmatically before
// being rejected. ReadProblem does not close r.
func ReadProblem(r io.Reader, format problem.Format) (*problem.Problem, error) {
	return problem.Decode(r, format)
}

// ImportProblem reads the problem file at path, choosing the decoder by
// file extension (.json or .toml).
//
// ImportProblem opens the file, decodes it using [ReadProblem], and closes
// the file. Errors wrap the underlying cause with the file path for context.
func ImportProblem(path string) (*problem.Problem, error) {
	format, err := problem.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadProblem(f, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}
