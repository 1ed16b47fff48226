package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyclelab/tradecycle/pkg/cache"
	"github.com/cyclelab/tradecycle/pkg/io"
	"github.com/cyclelab/tradecycle/pkg/observability"
	"github.com/cyclelab/tradecycle/pkg/problem"
	"github.com/cyclelab/tradecycle/pkg/ttc"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "solve <problem-file>",
		Short: "Compute an allocation for a problem file",
		Long: `Solve reads a problem file (TOML or JSON), runs the top trading cycles
mechanism over it, and writes the resulting allocation as JSON.

Solving is deterministic, so results are cached by problem fingerprint.
Use --no-cache to force a fresh run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the allocation to a file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path, output string, noCache bool) error {
	ctx := cmd.Context()

	prob, err := io.ImportProblem(path)
	if err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	key := cache.NewDefaultKeyer().AllocationKey(cache.Hash(prob.Fingerprint()))

	var alloc problem.Allocation
	cached := false
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		if err := json.Unmarshal(data, &alloc); err == nil {
			cached = true
			observability.Cache().OnCacheHit(ctx, "alloc")
			c.Logger.Debug("reusing cached allocation", "key", key)
		}
	}

	if !cached {
		observability.Cache().OnCacheMiss(ctx, "alloc")
		observability.Solver().OnSolveStart(ctx, len(prob.Agents))

		p := newProgress(c.Logger)
		alloc, err = prob.Solve(ttc.Options{Logger: c.Logger.Debugf})
		observability.Solver().OnSolveComplete(ctx, len(prob.Agents), time.Since(p.start), err)
		if err != nil {
			return err
		}
		p.done(fmt.Sprintf("Solved %d agents", len(prob.Agents)))

		if data, err := json.Marshal(alloc); err == nil {
			if err := store.Set(ctx, key, data, 0); err != nil {
				c.Logger.Debug("cache write failed", "err", err)
			} else {
				observability.Cache().OnCacheSet(ctx, "alloc", len(data))
			}
		}
	}

	if output == "" {
		return io.WriteAllocation(alloc, os.Stdout)
	}

	if err := io.ExportAllocation(alloc, output); err != nil {
		return err
	}

	printSuccess("Allocated %d objects among %d agents", countObjects(alloc), len(alloc))
	printStats(len(alloc), countObjects(alloc), cached)
	printFile(output)
	printNewline()
	printNextStep("Inspect the demand graph", fmt.Sprintf("%s graph %s", appName, path))
	return nil
}

func countObjects(alloc problem.Allocation) int {
	n := 0
	for _, objects := range alloc {
		n += len(objects)
	}
	return n
}
