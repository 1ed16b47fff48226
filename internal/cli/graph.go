package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cyclelab/tradecycle/pkg/cache"
	"github.com/cyclelab/tradecycle/pkg/errors"
	"github.com/cyclelab/tradecycle/pkg/io"
	"github.com/cyclelab/tradecycle/pkg/observability"
	"github.com/cyclelab/tradecycle/pkg/render"
)

// graphCommand creates the graph command for demand graph visualization.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "graph <problem-file>",
		Short: "Render the demand graph of a problem",
		Long: `Graph reads a problem file and emits the first-round demand graph, where
each agent points at the holders of the objects in his top preference tier.
Agents not yet holding a top choice are filled grey.

Formats: dot (Graphviz source), svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], output, format, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the graph to a file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include held objects in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, path, output, format string, detailed, noCache bool) error {
	ctx := cmd.Context()

	prob, err := io.ImportProblem(path)
	if err != nil {
		return err
	}

	demand, err := prob.Demand()
	if err != nil {
		return err
	}
	dot := render.ToDOT(demand, render.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		store, err := newCache(noCache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer store.Close()

		key := cache.NewDefaultKeyer().GraphKey(cache.Hash(prob.Fingerprint()), fmt.Sprintf("svg:detailed=%t", detailed))
		if cached, hit, err := store.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "graph")
			c.Logger.Debug("reusing cached render", "key", key)
			data = cached
			break
		}
		observability.Cache().OnCacheMiss(ctx, "graph")

		p := newProgress(c.Logger)
		data, err = render.RenderSVG(dot)
		if err != nil {
			return err
		}
		p.done(fmt.Sprintf("Rendered %d agents", len(demand.Edges)))

		if err := store.Set(ctx, key, data, 0); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown format %q (want dot or svg)", format)
	}

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Demand graph written")
	printFile(output)
	return nil
}
