package mosaic

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/huemosaic/huemosaic/internal/colour"
)

// Builder runs the full pipeline: dominant-colour extraction, chromatic
// classification, rainbow ordering, grid layout and compositing. The
// whole pipeline is deterministic: building twice from the same records
// and config produces a byte-identical output file.
type Builder struct {
	cfg Config
	log hclog.Logger
}

// NewBuilder creates a Builder for the given configuration.
// A nil logger disables logging.
func NewBuilder(cfg Config, log hclog.Logger) *Builder {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Builder{cfg: cfg, log: log}
}

// Plan computes the placement sequence and grid for a set of records
// without rendering anything. Extraction runs in parallel across records
// bounded by the core count, with a single join point: ordering depends
// on the complete sample set and starts only after every extraction has
// finished. Cancelling ctx abandons the batch.
func (b *Builder) Plan(ctx context.Context, records []Record) ([]Placement, Grid, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, Grid{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(records) == 0 {
		return nil, Grid{}, &EncodeError{Path: b.cfg.OutputPath, Err: ErrNoImages}
	}

	extractor := colour.NewExtractor(b.cfg.Clusters)
	samples := make([]colour.Sample, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := extractor.Extract(rec.Image)
			if err != nil {
				return fmt.Errorf("extract %s: %w", rec.ID, err)
			}
			samples[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Grid{}, err
	}

	items := make([]Placement, len(records))
	for i, rec := range records {
		class := colour.Classify(samples[i], b.cfg.Thresholds)
		b.log.Debug("classified cover",
			"id", rec.ID,
			"hue", fmt.Sprintf("%.1f", samples[i].HSV.H),
			"saturation", fmt.Sprintf("%.2f", samples[i].HSV.S),
			"value", fmt.Sprintf("%.2f", samples[i].HSV.V),
			"weight", fmt.Sprintf("%.2f", samples[i].Weight),
			"class", class.String())
		items[i] = Placement{Record: rec, Sample: samples[i], Class: class, seq: i}
	}

	ordered := rainbowOrder(items, b.cfg.MonochromeFirst)
	grid := chooseGrid(len(ordered), b.cfg.CellWidth, b.cfg.CellHeight, b.cfg.AspectRatio)
	for i := range ordered {
		ordered[i].Row, ordered[i].Col = grid.Slot(i)
	}

	b.log.Debug("planned mosaic", "covers", len(ordered), "rows", grid.Rows, "cols", grid.Cols)
	return ordered, grid, nil
}

// Render composites a planned placement sequence onto the canvas and
// writes the output file. Only this step can fail the build; it returns
// an EncodeError and writes nothing on failure.
func (b *Builder) Render(items []Placement, grid Grid) (string, error) {
	canvas := composite(items, grid, b.cfg)
	if err := encodeCanvas(canvas, b.cfg.OutputPath); err != nil {
		return "", err
	}
	b.log.Info("wrote mosaic",
		"path", b.cfg.OutputPath,
		"covers", len(items),
		"grid", fmt.Sprintf("%dx%d", grid.Rows, grid.Cols))
	return b.cfg.OutputPath, nil
}

// Build runs the whole pipeline and returns the output path.
func (b *Builder) Build(ctx context.Context, records []Record) (string, error) {
	items, grid, err := b.Plan(ctx, records)
	if err != nil {
		return "", err
	}
	return b.Render(items, grid)
}
