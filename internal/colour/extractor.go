package colour

import (
	"fmt"
	"image"
	"math"
)

// Sample is the dominant colour of a single image: the centroid of the
// largest pixel cluster in HSV space, plus the fraction of sampled pixels
// that fell into that cluster.
type Sample struct {
	HSV    HSV
	Weight float64
}

// Default extraction settings.
const (
	// DefaultClusters is the default k for k-means clustering.
	DefaultClusters = 4

	// defaultMaxSamples bounds the number of pixels fed into clustering
	// so extraction cost is independent of image size.
	defaultMaxSamples = 4096

	defaultMaxIterations = 20
	defaultConvergence   = 1e-3
)

// Extractor reduces an image to its single dominant colour by clustering
// a bounded pixel sample in HSV space. Extraction is fully deterministic:
// pixel sampling is grid-based and centroid seeding uses farthest-point
// selection rather than random initialisation, so the same image always
// yields the same Sample.
type Extractor struct {
	clusters      int
	maxSamples    int
	maxIterations int
	convergence   float64
}

// NewExtractor creates an Extractor with the given cluster count.
// A cluster count below 1 falls back to DefaultClusters.
func NewExtractor(clusters int) *Extractor {
	if clusters < 1 {
		clusters = DefaultClusters
	}
	return &Extractor{
		clusters:      clusters,
		maxSamples:    defaultMaxSamples,
		maxIterations: defaultMaxIterations,
		convergence:   defaultConvergence,
	}
}

// Extract produces the dominant-colour Sample for an image.
// The returned hue is in [0, 360) and saturation/value in [0, 1].
func (e *Extractor) Extract(img image.Image) (Sample, error) {
	if img == nil {
		return Sample{}, fmt.Errorf("image cannot be nil")
	}

	points := samplePixels(img, e.maxSamples)
	if len(points) == 0 {
		return Sample{}, fmt.Errorf("no pixels found in image")
	}

	clusters := e.cluster(points)
	dom := dominantCluster(clusters)

	return Sample{
		HSV:    dom.centroid,
		Weight: float64(dom.size) / float64(len(points)),
	}, nil
}

// samplePixels samples up to maxSamples pixels from the image on a fixed
// grid and converts them to HSV. Grid sampling keeps the result
// deterministic for a given image.
func samplePixels(img image.Image, maxSamples int) []HSV {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height
	if totalPixels <= 0 {
		return nil
	}

	if totalPixels <= maxSamples {
		// Small image, sample all pixels.
		points := make([]HSV, 0, totalPixels)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				points = append(points, RGBToHSV(ToRGB(img.At(x, y))))
			}
		}
		return points
	}

	// Large image: step through on a grid sized to land near maxSamples.
	step := max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)

	points := make([]HSV, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			points = append(points, RGBToHSV(ToRGB(img.At(x, y))))
			if len(points) >= maxSamples {
				return points
			}
		}
	}

	return points
}
