package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cyclelab/tradecycle/pkg/problem"
)

type allocationDoc struct {
	Allocation problem.Allocation `json:"allocation"`
}

// WriteAllocation encodes an allocation as indented JSON and writes it to w.
// Agents appear in sorted order, so equal allocations serialize identically.
func WriteAllocation(alloc problem.Allocation, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(allocationDoc{Allocation: alloc}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportAllocation writes an allocation to a JSON file at path.
// This is a convenience wrapper around [WriteAllocation] for file-based output.
func ExportAllocation(alloc problem.Allocation, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteAllocation(alloc, f)
}

// ReadAllocation decodes an allocation document previously written with
// [WriteAllocation]. It exists for round-trip tooling: solve once, reuse the
// result as the endowments of a follow-up problem.
func ReadAllocation(r io.Reader) (problem.Allocation, error) {
	var doc allocationDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.Allocation, nil
}
