// Package pkg provides the core libraries for tradecycle allocation.
//
// # Overview
//
// Tradecycle allocates indivisible objects among agents who each bring one or
// more endowed objects and rank the others in tiered preference lists. The
// pkg directory is organized into these areas:
//
//  1. [ttc] - The allocation mechanism (demand graphs, cycle trading)
//  2. [problem] - Problem definition, validation, and solving
//  3. [io] - Problem import and allocation export
//  4. [render] - Demand graph visualization (DOT, SVG)
//  5. [cache] - Result caching keyed by problem fingerprint
//
// # Architecture
//
// The typical data flow through tradecycle:
//
//	Problem file (TOML/JSON)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [ttc] package (rounds of sink reduction and cycle trading)
//	         ↓
//	    Allocation JSON / demand graph SVG
//
// # Quick Start
//
// Decode a problem and solve it:
//
//	prob, err := io.ImportProblem("flatmates.toml")
//	if err != nil {
//	    return err
//	}
//	alloc, err := prob.Solve(ttc.Options{})
//
// Supporting packages: [heapset] (dedup priority queue), [errors] (coded
// errors), [buildinfo] (version info), [observability] (instrumentation
// hooks).
package pkg
