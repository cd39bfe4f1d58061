// Package mosaic arranges album-cover images into a colour-sorted grid
// and renders them to a single composite image.
package mosaic

import "image"

// Record is one decoded cover image handed to the builder: its pixel
// data, a stable identifier (file path or track ID) and optional display
// metadata. Records are treated as immutable once inside the pipeline.
type Record struct {
	ID     string
	Title  string
	Artist string
	Image  image.Image
}
