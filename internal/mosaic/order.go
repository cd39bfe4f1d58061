package mosaic

import (
	"sort"

	"github.com/huemosaic/huemosaic/internal/colour"
)

// Placement binds one record to its grid slot, along with the colour
// analysis that determined its position in the sequence.
type Placement struct {
	Record Record
	Sample colour.Sample
	Class  colour.Class
	Row    int
	Col    int

	// seq is the record's original input position. It is the final sort
	// tie-break, which makes the placement order a strict total order.
	seq int
}

// rainbowOrder produces the deterministic placement sequence: colourful
// covers walk the hue wheel in ascending order, monochrome covers sort
// dark to light in their own block. The colourful block comes first
// unless monochromeFirst is set.
func rainbowOrder(items []Placement, monochromeFirst bool) []Placement {
	colorful := make([]Placement, 0, len(items))
	mono := make([]Placement, 0)
	for _, it := range items {
		if it.Class == colour.Monochrome {
			mono = append(mono, it)
		} else {
			colorful = append(colorful, it)
		}
	}

	sort.Slice(colorful, func(i, j int) bool { return lessColorful(colorful[i], colorful[j]) })
	sort.Slice(mono, func(i, j int) bool { return lessMonochrome(mono[i], mono[j]) })

	if monochromeFirst {
		return append(mono, colorful...)
	}
	return append(colorful, mono...)
}

// lessColorful orders colourful covers by hue ascending, breaking ties by
// saturation descending, cluster weight descending and finally original
// input position.
func lessColorful(a, b Placement) bool {
	if a.Sample.HSV.H != b.Sample.HSV.H {
		return a.Sample.HSV.H < b.Sample.HSV.H
	}
	return lessTieBreak(a, b)
}

// lessMonochrome orders monochrome covers by brightness ascending (black
// before white), with the same tie-break chain as the colourful block.
func lessMonochrome(a, b Placement) bool {
	if a.Sample.HSV.V != b.Sample.HSV.V {
		return a.Sample.HSV.V < b.Sample.HSV.V
	}
	return lessTieBreak(a, b)
}

func lessTieBreak(a, b Placement) bool {
	if a.Sample.HSV.S != b.Sample.HSV.S {
		return a.Sample.HSV.S > b.Sample.HSV.S
	}
	if a.Sample.Weight != b.Sample.Weight {
		return a.Sample.Weight > b.Sample.Weight
	}
	return a.seq < b.seq
}
