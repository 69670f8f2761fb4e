package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sessilelab/dropletgen/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	id       int     // row id, tags the output file and derives the seed
	angle    float64 // contact angle in degrees
	seed     uint64  // explicit RNG seed (0 derives from id)
	output   string  // output file path
	annotate bool    // add the caption strip
	clean    bool    // disable blur and noise
	refresh  bool    // bypass the artifact cache
	noCache  bool    // disable caching entirely
	radius   float64 // droplet base radius in pixels
	width    int     // canvas width
	height   int     // canvas height
}

// generateCommand creates the generate command for a single droplet image.
// Invoked without --angle it falls back to the interactive prompt.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single droplet image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("angle") {
				sel, err := runPrompt()
				if err != nil {
					return err
				}
				if sel == nil {
					printInfo("Cancelled")
					return nil
				}
				opts.angle = sel.Angle
				if sel.Output != "" {
					opts.output = sel.Output
				}
			}
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.angle, "angle", 0, "contact angle in degrees, (0, 180) exclusive")
	cmd.Flags().IntVar(&opts.id, "id", 0, "image id (names the output and derives the seed)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "RNG seed (default derives from id)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default droplet_{id}.png)")
	cmd.Flags().BoolVar(&opts.annotate, "annotate", false, "add a caption strip with the contact angle")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "disable blur and noise (exact label mask)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if the artifact is cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "droplet base radius in pixels")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")

	return cmd
}

// runGenerate renders one droplet and writes it to disk.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		ID:       opts.id,
		Angle:    opts.angle,
		Seed:     opts.seed,
		Width:    opts.width,
		Height:   opts.height,
		Radius:   opts.radius,
		Annotate: opts.annotate,
		Clean:    opts.clean,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	}
	c.Config.Apply(&popts)

	result, err := runner.Generate(ctx, popts)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = result.Filename()
	}
	if err := os.WriteFile(out, result.PNG, 0644); err != nil {
		return err
	}

	printSuccess("Generated droplet at %.1f°", result.Meta.AngleDeg)
	printFile(out)
	printDetail("seed %d · %dx%d · %s", result.Meta.Seed, result.Meta.Width, result.Meta.Height, cacheStatus(result.CacheHit))
	return nil
}
