package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/huemosaic/huemosaic/internal/colour"
	imageio "github.com/huemosaic/huemosaic/internal/image"
	"github.com/huemosaic/huemosaic/internal/mosaic"
)

var (
	// Build command flags
	buildOutput     string
	buildClusters   int
	buildAspect     float64
	buildCellSize   int
	buildBackground string
	buildMonoFirst  bool
	buildConfigFile string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Build a colour-sorted mosaic from a directory of cover images",
	Long: `Build reads every supported image in a directory, extracts each one's
dominant colour, and composites the covers into a single mosaic image
sorted around the colour wheel.

Near-monochrome covers (black, white, grey) are grouped into their own
block and sorted dark to light. An optional labels.yaml manifest in the
directory can attach track and artist names to cover files.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Build a mosaic from a folder of covers
  huemosaic build ./covers

  # Write a JPEG with square 200px cells and a 16:9 canvas
  huemosaic build --output wall.jpg --cell-size 200 --aspect 1.78 ./covers

  # Use 6 clusters and a white background for empty cells
  huemosaic build -k 6 --background ffffff ./covers

  # Put the monochrome block before the colourful one
  huemosaic build --mono-first ./covers

  # Load settings from a config file, overridden by any explicit flags
  huemosaic build --config huemosaic.yaml ./covers`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "mosaic.png", "output image path (.png, .jpg)")
	buildCmd.Flags().IntVarP(&buildClusters, "clusters", "k", colour.DefaultClusters, "number of clusters for dominant colour detection (1-16)")
	buildCmd.Flags().Float64Var(&buildAspect, "aspect", 1.0, "target canvas aspect ratio (width:height)")
	buildCmd.Flags().IntVar(&buildCellSize, "cell-size", 300, "pixel size of each square mosaic cell")
	buildCmd.Flags().StringVar(&buildBackground, "background", "", "background colour for empty cells (hex, e.g. 101010)")
	buildCmd.Flags().BoolVar(&buildMonoFirst, "mono-first", false, "place the monochrome block before the colourful block")
	buildCmd.Flags().StringVar(&buildConfigFile, "config", "", "YAML config file (flags override file settings)")
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dir := args[0]
	log.Debug("loading covers", "dir", dir)
	records, err := imageio.LoadDirectory(log, dir)
	if err != nil {
		return err
	}
	log.Debug("loaded covers", "count", len(records))

	builder := mosaic.NewBuilder(cfg, log)
	items, grid, err := builder.Plan(cmd.Context(), records)
	if err != nil {
		return err
	}

	out, err := builder.Render(items, grid)
	if err != nil {
		return err
	}

	if !rootQuiet {
		fmt.Printf("wrote %s: %d covers on a %dx%d grid\n", out, len(items), grid.Rows, grid.Cols)
	}
	return nil
}

// resolveConfig merges defaults, the optional config file and explicit
// flags (in that order of precedence, flags winning) into one validated
// configuration value.
func resolveConfig(flags *pflag.FlagSet) (mosaic.Config, error) {
	cfg := mosaic.DefaultConfig()

	if buildConfigFile != "" {
		if err := cfg.LoadFile(buildConfigFile); err != nil {
			return mosaic.Config{}, err
		}
	}

	if flags.Changed("output") || cfg.OutputPath == "" {
		cfg.OutputPath = buildOutput
	}
	if flags.Changed("clusters") {
		cfg.Clusters = buildClusters
	}
	if flags.Changed("aspect") {
		cfg.AspectRatio = buildAspect
	}
	if flags.Changed("cell-size") {
		cfg.CellWidth = buildCellSize
		cfg.CellHeight = buildCellSize
	}
	if flags.Changed("mono-first") {
		cfg.MonochromeFirst = buildMonoFirst
	}
	if buildBackground != "" {
		rgb, err := colour.ParseHex(buildBackground)
		if err != nil {
			return mosaic.Config{}, err
		}
		cfg.Background = rgb
	}

	return cfg, nil
}
