package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/huemosaic/huemosaic/internal/colour"
	imageio "github.com/huemosaic/huemosaic/internal/image"
	"github.com/huemosaic/huemosaic/internal/mosaic"
)

var (
	// Inspect command flags
	inspectClusters int
	inspectAspect   float64
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <dir>",
	Short: "Show the dominant colour and placement of each cover",
	Long: `Inspect runs the analysis stage of the pipeline without rendering
anything: it extracts each cover's dominant colour, classifies it, and
prints the resulting placement order and grid slots.

When stdout is a terminal, each row is prefixed with a swatch of the
cover's dominant colour.

Examples:
  # Inspect a folder of covers
  huemosaic inspect ./covers

  # Inspect with a different cluster count
  huemosaic inspect -k 6 ./covers`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectClusters, "clusters", "k", colour.DefaultClusters, "number of clusters for dominant colour detection (1-16)")
	inspectCmd.Flags().Float64Var(&inspectAspect, "aspect", 1.0, "target canvas aspect ratio (width:height)")
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := mosaic.DefaultConfig()
	cfg.Clusters = inspectClusters
	cfg.AspectRatio = inspectAspect
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	records, err := imageio.LoadDirectory(log, args[0])
	if err != nil {
		return err
	}

	builder := mosaic.NewBuilder(cfg, log)
	items, grid, err := builder.Plan(cmd.Context(), records)
	if err != nil {
		return err
	}

	swatches := term.IsTerminal(int(os.Stdout.Fd()))

	headers := []string{"SLOT", "COVER", "CLASS", "COLOUR", "HUE", "SAT", "VAL", "WEIGHT"}
	if swatches {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)

	for _, it := range items {
		rgb := it.Sample.HSV.RGB()
		row := []string{
			fmt.Sprintf("%d,%d", it.Row, it.Col),
			coverName(it),
			it.Class.String(),
			rgb.Hex(),
			fmt.Sprintf("%.1f", it.Sample.HSV.H),
			fmt.Sprintf("%.2f", it.Sample.HSV.S),
			fmt.Sprintf("%.2f", it.Sample.HSV.V),
			fmt.Sprintf("%.2f", it.Sample.Weight),
		}
		if swatches {
			row = append([]string{swatch(rgb)}, row...)
		}
		table.AddRow(row)
	}

	fmt.Print(table.Render())
	fmt.Printf("\n%d covers on a %dx%d grid\n", len(items), grid.Rows, grid.Cols)
	return nil
}

// coverName prefers the labelled track name over the file path.
func coverName(it mosaic.Placement) string {
	if it.Record.Title != "" && it.Record.Artist != "" {
		return it.Record.Artist + " - " + it.Record.Title
	}
	if it.Record.Title != "" {
		return it.Record.Title
	}
	return it.Record.ID
}

// swatch renders a truecolor background block for terminal output.
func swatch(rgb colour.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", rgb.R, rgb.G, rgb.B)
}
