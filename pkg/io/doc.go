// Package io provides file import and export for trade problems and their
// allocations.
//
// # Overview
//
// Problems are read from JSON or TOML documents and results are written as
// JSON. The formats are designed for:
//
//   - Hand-written problem files that stay reviewable in either syntax
//   - Integration with external tools that produce or consume allocations
//   - Deterministic output: agents and objects appear in sorted order so
//     results diff cleanly between runs
//
// # Problem Format
//
// A JSON problem document has an "agents" object and a "priorities" object:
//
//	{
//	  "agents": {
//	    "ann": {"endowments": ["r0"], "preferences": [["r1", "r2"]]},
//	    "bob": {"endowments": ["r1"], "preferences": [["r0"], ["r1"]]}
//	  },
//	  "priorities": {"r0": 0, "r1": 1, "r2": 2}
//	}
//
// The equivalent TOML layout:
//
//	[priorities]
//	r0 = 0.0
//	r1 = 1.0
//
//	[agents.ann]
//	endowments = ["r0"]
//	preferences = [["r1", "r2"]]
//
// Preference entries are ordered indifference tiers, most preferred first.
// The file format is chosen by extension; see [ImportProblem].
//
// # Allocation Format
//
// Allocations are written as a single JSON object mapping each agent to the
// objects he received, in commitment order:
//
//	{
//	  "allocation": {
//	    "ann": ["r2"],
//	    "bob": ["r0"]
//	  }
//	}
package io
