package mosaic

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// jpegQuality matches the quality commonly used for cover art.
const jpegQuality = 90

// composite renders the ordered placements into a single canvas. Each
// cover is centre-cropped to the cell aspect ratio and scaled with
// Catmull-Rom resampling; cells past the end of the sequence keep the
// background colour.
func composite(items []Placement, grid Grid, cfg Config) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, grid.Cols*cfg.CellWidth, grid.Rows*cfg.CellHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(cfg.Background.Color()), image.Point{}, draw.Src)

	for _, it := range items {
		dst := image.Rect(
			it.Col*cfg.CellWidth,
			it.Row*cfg.CellHeight,
			(it.Col+1)*cfg.CellWidth,
			(it.Row+1)*cfg.CellHeight,
		)
		src := centerCrop(it.Record.Image.Bounds(), cfg.CellWidth, cfg.CellHeight)
		draw.CatmullRom.Scale(canvas, dst, it.Record.Image, src, draw.Src, nil)
	}

	return canvas
}

// centerCrop returns the largest centred sub-rectangle of b matching the
// cell aspect ratio, so scaling into a cell never distorts the cover.
func centerCrop(b image.Rectangle, cellW, cellH int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw*cellH > sh*cellW {
		// Source is wider than the cell: crop the sides.
		w := sh * cellW / cellH
		x0 := b.Min.X + (sw-w)/2
		return image.Rect(x0, b.Min.Y, x0+w, b.Max.Y)
	}
	// Source is taller than the cell (or matches): crop top and bottom.
	h := sw * cellH / cellW
	y0 := b.Min.Y + (sh-h)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+h)
}

// encodeCanvas encodes the finished canvas and writes it to path in a
// single write, so a failed encode never leaves a partial file behind.
// The encoder is selected by file extension; PNG is the fallback when
// the path has no extension.
func encodeCanvas(canvas *image.RGBA, path string) error {
	var buf bytes.Buffer
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", "":
		err = png.Encode(&buf, canvas)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality})
	default:
		return &EncodeError{Path: path, Err: fmt.Errorf("unsupported output format %q", ext)}
	}
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
