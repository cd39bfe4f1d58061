// Huemosaic - colour-sorted album cover mosaics
//
// Huemosaic reduces each cover image in a folder to its dominant colour
// and composites the covers into a single mosaic sorted around the
// colour wheel.
package main

import (
	"github.com/huemosaic/huemosaic/internal/cli"
)

func main() {
	cli.Execute()
}
