package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voidshard/dungeongraph"
)

// outputs are the files generate writes; empty paths are skipped.
type outputs struct {
	JSON  string
	Map   string
	Raw   string
	Plan  string
	DOT   string
	SVG   string
	Scale float64
}

// generateCommand creates the generate command which runs the whole pipeline.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		cfgPath   string
		seed      int64
		rooms     int
		selfPairs bool
		out       outputs
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon layout",
		Long: `Generate a dungeon layout.

Rooms are sampled, separated until none overlap, pruned down to those on
sightlines between main rooms & joined with hallways. The result can be
written as JSON, as a plan view PNG & as a Graphviz graph of sightlines.

Flags override values read from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("rooms") {
				cfg.Rooms = rooms
			}
			if cmd.Flags().Changed("self-pairs") {
				cfg.IncludeSelfPairs = selfPairs
			}
			return c.runGenerate(withLogger(cmd.Context(), c.Logger), cfg, out)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file (default: built in defaults)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVarP(&rooms, "rooms", "n", dungeongraph.DefaultRooms, "number of rooms to sample")
	cmd.Flags().BoolVar(&selfPairs, "self-pairs", false, "cast sightlines from main rooms to themselves")

	cmd.Flags().StringVarP(&out.JSON, "output", "o", "", "write the layout as JSON")
	cmd.Flags().StringVar(&out.Map, "png", "", "write a coloured plan view PNG")
	cmd.Flags().StringVar(&out.Raw, "raw", "", "write the raw encoded map PNG")
	cmd.Flags().StringVar(&out.Plan, "plan", "", "write a rasterized plan PNG")
	cmd.Flags().Float64Var(&out.Scale, "plan-scale", 4, "pixels per unit for --plan")
	cmd.Flags().StringVar(&out.DOT, "dot", "", "write the sightline graph as DOT")
	cmd.Flags().StringVar(&out.SVG, "svg", "", "write the sightline graph as SVG")

	return cmd
}

// runGenerate builds the dungeon & writes any requested outputs.
func (c *CLI) runGenerate(ctx context.Context, cfg *dungeongraph.Config, out outputs) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := dungeongraph.Sample(cfg, dungeongraph.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := d.Settle(ctx); err != nil {
		return err
	}
	if err := d.Connect(); err != nil {
		return err
	}

	prog.done("generated dungeon",
		"seed", d.Seed,
		"rooms", d.Stats.Rooms,
		"main", d.Stats.MainRooms,
		"kept", d.Stats.Kept,
		"hallways", d.Stats.Hallways,
		"ticks", d.Stats.Ticks,
	)

	return writeOutputs(ctx, d, out)
}

// writeOutputs writes each requested file in turn, stopping at the first failure.
func writeOutputs(ctx context.Context, d *dungeongraph.Dungeon, out outputs) error {
	logger := loggerFromContext(ctx)

	write := func(kind, fpath string, fn func(string) error) error {
		if fpath == "" {
			return nil
		}
		if err := fn(fpath); err != nil {
			return fmt.Errorf("write %s %s: %w", kind, fpath, err)
		}
		logger.Info("wrote "+kind, "path", fpath)
		return nil
	}

	steps := []struct {
		kind  string
		fpath string
		fn    func(string) error
	}{
		{"json", out.JSON, d.SaveJSON},
		{"map", out.Map, func(p string) error {
			m, err := d.Map()
			if err != nil {
				return err
			}
			return m.SaveAdv(p, dungeongraph.DefaultScheme())
		}},
		{"raw map", out.Raw, func(p string) error {
			m, err := d.Map()
			if err != nil {
				return err
			}
			return m.Save(p)
		}},
		{"plan", out.Plan, func(p string) error { return d.RenderPlan(p, out.Scale) }},
		{"dot", out.DOT, func(p string) error { return os.WriteFile(p, []byte(d.SightlineDOT()), 0644) }},
		{"svg", out.SVG, func(p string) error {
			svg, err := d.RenderSightlinesSVG(ctx)
			if err != nil {
				return err
			}
			return os.WriteFile(p, svg, 0644)
		}},
	}

	for _, s := range steps {
		if err := write(s.kind, s.fpath, s.fn); err != nil {
			return err
		}
	}
	return nil
}
